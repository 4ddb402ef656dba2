// Package corpus reads a known list of files and extracts the tags of each
// one, in parallel.
//
// A failure to read one file never stops the others: the failure is recorded
// in Corpus.Failures and logged, and the file is left out of Documents.
package corpus

import (
	"context"
	"errors"
	"fmt"

	"github.com/harrison/tagsearch/internal/logger"
	"github.com/harrison/tagsearch/internal/tags"
	"github.com/harrison/tagsearch/internal/workpool"
)

// Document is one file and the tags found in it.
type Document struct {
	Path string
	Tags tags.Tagset
}

// Corpus is the result of loading a file list.
type Corpus struct {
	// Documents holds every readable file, in the order of the input list.
	Documents []Document
	// Failures holds one *FileError per unreadable file, in input order.
	Failures []*FileError
}

// Logger is the subset of the console logger used while loading.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

// Options configures Load.
type Options struct {
	Extractor tags.Extractor
	Reader    Reader
	// Workers bounds concurrent reads (0 = one per CPU).
	Workers int
	// Logger receives per-file warnings (nil = discard)
	Logger Logger
}

type loadResult struct {
	doc Document
	err *FileError
}

// Load reads and extracts every path. It only returns an error when ctx is
// cancelled; per-file problems end up in Corpus.Failures.
func Load(ctx context.Context, paths []string, opts Options) (*Corpus, error) {
	if opts.Extractor == nil {
		opts.Extractor = tags.NewPatternExtractor()
	}
	if opts.Reader == nil {
		opts.Reader = NewFileReader(false)
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNoOpLogger()
	}

	results, err := workpool.Map(ctx, paths, opts.Workers, func(_ context.Context, path string) (loadResult, error) {
		content, err := opts.Reader.Read(path)
		if err != nil {
			return loadResult{err: &FileError{Path: path, Err: err}}, nil
		}
		return loadResult{doc: Document{Path: path, Tags: opts.Extractor.Extract(content)}}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load files: %w", err)
	}

	c := &Corpus{Documents: make([]Document, 0, len(results))}
	for _, r := range results {
		if r.err != nil {
			c.Failures = append(c.Failures, r.err)
			opts.Logger.LogWarn(fmt.Sprintf("skipping %v", r.err))
			continue
		}
		c.Documents = append(c.Documents, r.doc)
	}
	opts.Logger.LogDebug(fmt.Sprintf("loaded %d files (%d unreadable)", len(c.Documents), len(c.Failures)))
	return c, nil
}

// FailedPaths returns the paths of the unreadable files.
func (c *Corpus) FailedPaths() []string {
	out := make([]string, len(c.Failures))
	for i, f := range c.Failures {
		out[i] = f.Path
	}
	return out
}

// Err joins the per-file failures into one error, or returns nil.
func (c *Corpus) Err() error {
	errs := make([]error, len(c.Failures))
	for i, f := range c.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}
