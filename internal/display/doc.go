// Package display renders tagsearch reports and warnings for the terminal.
//
// Report functions write through an *Output, which remembers the first write
// error so a report can be printed in full and checked once:
//
//	out := display.NewOutput(os.Stdout)
//	display.Files(out, paths, vim)
//	if err := out.Err(); errors.Is(err, display.ErrOutputTerminated) {
//	    // the reader closed the pipe; not a failure
//	}
//
// Warnings go to stderr and never mix with report output:
//
//	display.WarnUnreadableFiles(failed).Display(os.Stderr)
//
// Color comes from github.com/fatih/color and is disabled automatically when
// the destination is not a terminal or NO_COLOR is set.
package display
