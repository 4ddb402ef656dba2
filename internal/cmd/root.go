package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// rootOptions holds the flag values of the root command.
type rootOptions struct {
	not        []string
	orFilter   bool
	fuzzy      bool
	list       bool
	long       bool
	untagged   bool
	count      bool
	similar    bool
	tree       bool
	summarise  bool
	vim        bool
	dir        string
	configPath string
	logLevel   string
	scanner    string
	workers    int
	skipCode   bool
	output     string
	noColor    bool
}

// NewRootCommand creates and returns the root cobra command for tagsearch
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tagsearch [keywords...]",
		Short: "Search for, and/or summarise, tags in plaintext files",
		Long: `tagsearch finds @tags written inline in plaintext notes (.txt, .md, .org)
and filters files by them.

A tag is '@' at the start of a line or after whitespace, followed by letters,
digits, '_', '-' or '/'. Slashes make hierarchical tags: @work/projectA is the
tag work > projectA and matches the keywords "work", "projectA" and
"work/projectA".

With keywords, matching files are listed. Files must match ALL keywords
unless --or is given. Prefix a keyword with '!' (or use --not) to exclude
files carrying it. Without keywords, all tags are listed.

Settings can be stored in .tagsearch.yaml in the search directory.`,
		Example: `  tagsearch                      # list every tag
  tagsearch work projectA        # files tagged with both
  tagsearch --or stoic zen       # files tagged with either
  tagsearch -f stoic '!draft'    # fuzzy match, skipping drafts
  tagsearch --tree               # tag hierarchy as an outline
  tagsearch --similar-tags       # likely duplicate tags`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// Execute prints the error once
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&opts.not, "not", nil, "Keywords to inverse filter (i.e. ignore matching files)")
	flags.BoolVarP(&opts.orFilter, "or", "o", false, "Filter using ANY, rather than ALL keywords")
	flags.BoolVarP(&opts.fuzzy, "fuzzy", "f", false, "Fuzzy-match tags (case-insensitive substring)")
	flags.BoolVarP(&opts.list, "list", "l", false, "List all tags for files matching keywords")
	flags.BoolVar(&opts.long, "long", false, "Long list (e.g. tall) all tags for files matching keywords")
	flags.BoolVarP(&opts.untagged, "untagged", "u", false, "Show untagged files")
	flags.BoolVarP(&opts.count, "count", "c", false, "Show count of tags")
	flags.BoolVar(&opts.similar, "similar-tags", false, "Show similar tags")
	flags.BoolVarP(&opts.tree, "tree", "t", false, "Show tags of matching files as a tree")
	flags.BoolVarP(&opts.summarise, "summarise", "s", false, "List tags of matching files with the files carrying them")
	flags.BoolVarP(&opts.vim, "vim", "v", false, "Output format suitable for vim quickfix")
	flags.StringVarP(&opts.dir, "dir", "d", ".", "Directory to search")
	flags.StringVar(&opts.configPath, "config", "", "Config file (default <dir>/.tagsearch.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	flags.StringVar(&opts.scanner, "scanner", "", "Tag extractor: pattern or scanner")
	flags.IntVarP(&opts.workers, "workers", "j", 0, "Files read in parallel (0 = one per CPU)")
	flags.BoolVar(&opts.skipCode, "skip-code", false, "Ignore tags inside Markdown code blocks and spans")
	flags.StringVar(&opts.output, "output", "", "Write the report to this file instead of stdout")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	return cmd
}

// Execute runs root and prints a failure as a single "Error: ..." line on the
// command's stderr.
func Execute(ctx context.Context, root *cobra.Command) error {
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
