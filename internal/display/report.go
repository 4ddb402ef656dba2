package display

import (
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/tagsearch/internal/filter"
	"github.com/harrison/tagsearch/internal/similarity"
	"github.com/harrison/tagsearch/internal/tags"
	"github.com/harrison/tagsearch/internal/tree"
)

// Quickfix formats for editors that read "file:line:message" lists.
const (
	quickfixFile     = "%s:1:\n"
	quickfixUntagged = "%s:1:Ignore this message\n"
)

// Files prints one path per line, or quickfix lines when vim is set.
func Files(out *Output, paths []string, vim bool) {
	for _, p := range paths {
		if vim {
			out.Printf(quickfixFile, p)
		} else {
			out.Println(p)
		}
	}
}

// Untagged prints untagged files; the vim form carries a placeholder message
// so the quickfix list accepts it.
func Untagged(out *Output, paths []string, vim bool) {
	for _, p := range paths {
		if vim {
			out.Printf(quickfixUntagged, p)
		} else {
			out.Println(p)
		}
	}
}

// Tags prints the joined tags separated by ", ", or one per line when long.
func Tags(out *Output, set tags.Tagset, long bool) {
	sep := ", "
	if long {
		sep = "\n"
	}
	out.Println(strings.Join(set.Strings(), sep))
}

// Counts prints "count key" rows with the count right-aligned.
func Counts(out *Output, rows []filter.TagCount) {
	for _, r := range rows {
		out.Printf("%5d %s\n", r.Count, r.Key)
	}
}

// Issues prints the similar-tag report. Nothing is printed when there are no
// issues.
func Issues(out *Output, issues []similarity.Issue) {
	if len(issues) == 0 {
		return
	}
	out.Println("Similar tags:")
	for _, issue := range issues {
		kind := issueColor(issue.Kind).Sprint(issue.Kind.String())
		out.Printf("%s - %s & %s\n", kind, issue.A, issue.B)
	}
}

// Tree prints the outline of the vocabulary.
func Tree(out *Output, vocabulary tags.Tagset) {
	_ = tree.Write(out, vocabulary.Sorted())
}

// Summary prints each tag followed by its files, indented with a tab.
func Summary(out *Output, groups []filter.TagFiles) {
	for _, g := range groups {
		out.Println(color.New(color.Bold).Sprint(g.Tag.String()))
		for _, f := range g.Files {
			out.Printf("\t%s\n", f)
		}
	}
}

func issueColor(k similarity.Kind) *color.Color {
	switch k {
	case similarity.Case:
		return color.New(color.FgCyan)
	case similarity.Plural:
		return color.New(color.FgYellow)
	default:
		return color.New(color.Reset)
	}
}
