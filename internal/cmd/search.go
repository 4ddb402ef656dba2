package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/tagsearch/internal/config"
	"github.com/harrison/tagsearch/internal/corpus"
	"github.com/harrison/tagsearch/internal/display"
	"github.com/harrison/tagsearch/internal/filelock"
	"github.com/harrison/tagsearch/internal/fileutil"
	"github.com/harrison/tagsearch/internal/filter"
	"github.com/harrison/tagsearch/internal/logger"
	"github.com/harrison/tagsearch/internal/tags"
)

// outputLockTimeout bounds the wait for another run writing the same --output file.
const outputLockTimeout = 10 * time.Second

// mode is the report produced by a run.
type mode int

const (
	modeFiles mode = iota
	modeTags
	modeUntagged
	modeSimilar
	modeCount
	modeTree
	modeSummary
)

// selectMode picks the report; earlier flags win over later ones.
func selectMode(opts *rootOptions, good []string) mode {
	switch {
	case opts.untagged:
		return modeUntagged
	case opts.similar:
		return modeSimilar
	case opts.count:
		return modeCount
	case opts.tree:
		return modeTree
	case opts.summarise:
		return modeSummary
	case opts.list, opts.long, len(good) == 0:
		return modeTags
	default:
		return modeFiles
	}
}

// loadConfig reads the config file and applies the flags that were set.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		if _, statErr := os.Stat(opts.configPath); statErr != nil {
			return nil, fmt.Errorf("config file: %w", statErr)
		}
		cfg, err = config.LoadConfig(opts.configPath)
	} else {
		cfg, err = config.LoadConfigFromDir(opts.dir)
	}
	if err != nil {
		return nil, err
	}

	var f config.Flags
	changed := cmd.Flags().Changed
	if changed("workers") {
		f.Workers = &opts.workers
	}
	if changed("log-level") {
		f.LogLevel = &opts.logLevel
	}
	if changed("scanner") {
		f.Scanner = &opts.scanner
	}
	if changed("skip-code") {
		f.SkipCode = &opts.skipCode
	}
	if changed("or") {
		f.OrFilter = &opts.orFilter
	}
	if changed("fuzzy") {
		f.Fuzzy = &opts.fuzzy
	}
	cfg.MergeWithFlags(f)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// configureColor turns color off unless the report goes to a terminal.
func configureColor(opts *rootOptions, out io.Writer) {
	if opts.noColor || opts.output != "" {
		color.NoColor = true
		return
	}
	if f, ok := out.(*os.File); ok {
		color.NoColor = !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
		return
	}
	color.NoColor = true
}

// loadDocuments discovers and reads the files under the search directory.
func loadDocuments(cmd *cobra.Command, cfg *config.Config, opts *rootOptions, log *logger.ConsoleLogger) (*corpus.Corpus, error) {
	dir := opts.dir
	scan, err := fileutil.ScanDirectory(dir, fileutil.ScanOptions{
		Extensions:  cfg.Extensions,
		Ignore:      cfg.Ignore,
		Recursive:   true,
		ExcludeDirs: cfg.ExcludeDirs,
		SkipFiles:   reportFiles(opts.output),
	})
	if err != nil {
		return nil, fmt.Errorf("error getting files: %w", err)
	}
	for _, scanErr := range scan.Errors {
		log.LogWarn(scanErr.Error())
	}
	log.LogDebug(fmt.Sprintf("found %d candidate files under %s", len(scan.Files), dir))

	extractor, err := tags.ExtractorByName(cfg.Scanner)
	if err != nil {
		return nil, err
	}

	c, err := corpus.Load(cmd.Context(), scan.Files, corpus.Options{
		Extractor: extractor,
		Reader:    corpus.NewFileReader(cfg.SkipCode),
		Workers:   cfg.Workers,
		Logger:    log,
	})
	if err != nil {
		return nil, err
	}

	for i := range c.Documents {
		c.Documents[i].Path = displayPath(dir, c.Documents[i].Path)
	}
	for _, f := range c.Failures {
		f.Path = displayPath(dir, f.Path)
	}
	return c, nil
}

// reportFiles returns the absolute paths of the --output report and its lock
// file, so a report saved inside the searched tree is not read back as a note.
func reportFiles(output string) []string {
	if output == "" {
		return nil
	}
	abs, err := filepath.Abs(output)
	if err != nil {
		return nil
	}
	return []string{abs, abs + ".lock"}
}

// displayPath shows an absolute path found under root the way the user wrote
// root, e.g. "notes/a.md" for root "." rather than "/home/me/notes/a.md".
func displayPath(root, abs string) string {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return abs
	}
	rel, err := filepath.Rel(absRoot, abs)
	if err != nil {
		return abs
	}
	return filepath.Join(root, rel)
}

// runSearch is the root command: load config, read files, print one report.
func runSearch(cmd *cobra.Command, opts *rootOptions, args []string) error {
	start := time.Now()

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	configureColor(opts, cmd.OutOrStdout())

	good, bad := filter.ParseKeywords(args)
	bad = append(bad, opts.not...)
	q := filter.New(good, bad, cfg.OrFilter, cfg.Fuzzy).WithWorkers(cfg.Workers)
	log.LogDebug(fmt.Sprintf("query: good=%v bad=%v or=%t fuzzy=%t workers=%d", q.Good(), q.Bad(), q.OrFilter(), q.Fuzzy(), q.Workers()))

	c, err := loadDocuments(cmd, cfg, opts, log)
	if err != nil {
		return err
	}
	if err := c.Err(); err != nil {
		display.WarnUnreadableFiles(c.FailedPaths()).Display(cmd.ErrOrStderr())
		log.LogDebug(fmt.Sprintf("unreadable files:\n%v", err))
	}

	var buf bytes.Buffer
	target := cmd.OutOrStdout()
	if opts.output != "" {
		target = &buf
	}
	out := display.NewOutput(target)
	writeReport(out, selectMode(opts, good), q, c.Documents, opts)

	if err := out.Err(); err != nil {
		if errors.Is(err, display.ErrOutputTerminated) {
			log.LogDebug("output closed early")
			return nil
		}
		return fmt.Errorf("write output: %w", err)
	}

	if opts.output != "" {
		err := filelock.WriteLocked(opts.output, buf.Bytes(), filelock.WriteOptions{
			Timeout: outputLockTimeout,
			Monitor: func(path string, m filelock.LockMetrics) {
				log.LogTrace(fmt.Sprintf("lock %s: %d attempts, waited %v", path, m.Attempts, m.Waited))
			},
		})
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		log.LogInfo(fmt.Sprintf("report saved to %s", opts.output))
	}

	log.LogSummary(logger.Summary{
		Root:       opts.dir,
		Files:      len(c.Documents) + len(c.Failures),
		Tagged:     len(c.Documents) - len(q.Untagged(c.Documents)),
		Unreadable: len(c.Failures),
		Duration:   time.Since(start),
	})
	return nil
}

// writeReport prints the report for m.
func writeReport(out *display.Output, m mode, q *filter.Filter, docs []corpus.Document, opts *rootOptions) {
	switch m {
	case modeUntagged:
		display.Untagged(out, q.Untagged(docs), opts.vim)
	case modeSimilar:
		display.Issues(out, q.SimilarTags(docs))
	case modeCount:
		display.Counts(out, q.CountOfTags(docs))
	case modeTree:
		display.Tree(out, q.TagsMatching(docs))
	case modeSummary:
		display.Summary(out, q.FilesByTag(docs))
	case modeTags:
		display.Tags(out, q.TagsMatching(docs), opts.long)
	default:
		display.Files(out, q.FilesMatching(docs), opts.vim)
	}
}
