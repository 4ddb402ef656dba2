// Package similarity finds tag segments that are probably meant to be the
// same word: the same letters in a different case, or a singular and plural
// form.
package similarity

import (
	"fmt"
	"strings"

	"github.com/harrison/tagsearch/internal/tags"
)

// Kind classifies an Issue.
type Kind int

const (
	// Case means the segments differ only in letter case.
	Case Kind = iota
	// Plural means one segment is the other plus a trailing "s".
	Plural
)

// String returns the label used in reports.
func (k Kind) String() string {
	switch k {
	case Case:
		return "CASE"
	case Plural:
		return "PLURAL"
	default:
		return "UNKNOWN"
	}
}

// Issue is a pair of segments that look like duplicates. A comes from the tag
// that sorts first.
type Issue struct {
	Kind Kind
	A    string
	B    string
}

// String formats the issue as "KIND - a & b".
func (i Issue) String() string {
	return fmt.Sprintf("%s - %s & %s", i.Kind, i.A, i.B)
}

// Find compares every pair of distinct tags in vocabulary and returns the
// issues found, each distinct issue once. Tags are compared position by
// position and only the first differing segment is classified.
func Find(vocabulary []tags.Tag) []Issue {
	sorted := tags.NewTagset(vocabulary...).Sorted()

	seen := make(map[Issue]bool)
	var issues []Issue
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			issue, ok := Compare(sorted[i], sorted[j])
			if !ok || seen[issue] {
				continue
			}
			seen[issue] = true
			issues = append(issues, issue)
		}
	}
	return issues
}

// Compare classifies the first differing segment of a and b. It reports false
// when the tags agree on every shared position or the first difference is
// neither a case nor a plural variant.
func Compare(a, b tags.Tag) (Issue, bool) {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			continue
		}
		return classify(a[i], b[i])
	}
	return Issue{}, false
}

func classify(a, b string) (Issue, bool) {
	if strings.EqualFold(a, b) {
		return Issue{Kind: Case, A: a, B: b}, true
	}
	if isPluralOf(a, b) || isPluralOf(b, a) {
		return Issue{Kind: Plural, A: a, B: b}, true
	}
	return Issue{}, false
}

// isPluralOf reports whether long is short followed by a single "s".
func isPluralOf(long, short string) bool {
	return len(long) == len(short)+1 && strings.HasSuffix(long, "s") && long[:len(short)] == short
}
