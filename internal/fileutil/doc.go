// Package fileutil discovers the files that tagsearch reads.
//
// ScanDirectory walks a directory and returns the absolute paths of files
// whose extension is in an allow-list, skipping hidden directories, excluded
// directory names and paths matched by doublestar ignore globs.
//
// # Main Components
//
// ScanOptions - Configuration struct for directory scanning:
//   - Extensions: file extensions to include (case-insensitive, leading dot optional)
//   - Ignore: doublestar globs relative to the scanned directory
//   - Recursive: enable/disable subdirectory traversal
//   - ExcludeDirs: directory names to skip (e.g., "node_modules")
//   - MaxDepth: limit recursion depth (0 = unlimited, 1 = current dir only)
//   - SkipFiles: absolute paths to leave out (the --output report)
//
// ScanResult - Results of directory scan:
//   - Files: absolute paths of all matched files (sorted alphabetically)
//   - Errors: non-fatal errors encountered during the walk
//
// # Usage
//
//	result, err := fileutil.ScanDirectory(root, fileutil.ScanOptions{
//	    Extensions:  fileutil.DefaultExtensions,
//	    Ignore:      []string{"archive/**"},
//	    Recursive:   true,
//	    ExcludeDirs: []string{"node_modules"},
//	})
//	if err != nil {
//	    return err // root missing or not a directory
//	}
//	for _, err := range result.Errors {
//	    log.Printf("skipped: %v", err)
//	}
//
// # Error Tolerance
//
// Unreadable subdirectories are recorded in ScanResult.Errors and the walk
// continues. Only an inaccessible root or an invalid ignore pattern fails the
// whole scan.
package fileutil
