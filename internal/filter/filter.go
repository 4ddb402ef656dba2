// Package filter decides which tagsets satisfy a keyword query and builds the
// reports derived from it: matching files, matching tags, untagged files, tag
// counts and similar tags.
//
// A query has good keywords, which a tagset must match (all of them, or any
// with OrFilter), and bad keywords, any of which vetoes the tagset. Every
// segment of a tag is a candidate, and so is the full "a/b/c" path of a
// hierarchical tag.
package filter

import (
	"strings"

	"github.com/harrison/tagsearch/internal/tags"
)

// Filter is an immutable keyword query. Build it with New.
type Filter struct {
	good      []string
	bad       []string
	orFilter  bool
	fuzzy     bool
	threshold int
	// workers bounds the parallel matching pass (0 = one per CPU)
	workers int
}

// New builds a Filter. Keywords are compared case-insensitively and
// deduplicated. With orFilter one good match is enough; otherwise the number
// of good matches must reach the number of good keywords. With fuzzy a keyword
// matches any candidate containing it.
func New(good, bad []string, orFilter, fuzzy bool) *Filter {
	f := &Filter{
		good:     normalize(good),
		bad:      normalize(bad),
		orFilter: orFilter,
		fuzzy:    fuzzy,
	}
	if orFilter {
		f.threshold = 1
	} else {
		f.threshold = len(f.good)
	}
	return f
}

// ParseKeywords splits command-line keywords into good and bad ones. A
// keyword starting with "!" is bad; a lone "!" is ignored.
func ParseKeywords(args []string) (good, bad []string) {
	for _, kw := range args {
		switch {
		case kw == "" || kw == "!":
		case strings.HasPrefix(kw, "!"):
			bad = append(bad, kw[1:])
		default:
			good = append(good, kw)
		}
	}
	return good, bad
}

// WithWorkers returns a copy of f whose parallel reports use at most n
// goroutines. Zero or negative means one per CPU.
func (f *Filter) WithWorkers(n int) *Filter {
	c := *f
	c.workers = n
	return &c
}

// Workers is the limit set by WithWorkers.
func (f *Filter) Workers() int { return f.workers }

// Good returns the normalized good keywords.
func (f *Filter) Good() []string { return append([]string(nil), f.good...) }

// Bad returns the normalized bad keywords.
func (f *Filter) Bad() []string { return append([]string(nil), f.bad...) }

// OrFilter reports whether any single good match is enough.
func (f *Filter) OrFilter() bool { return f.orFilter }

// Fuzzy reports whether keywords match as substrings.
func (f *Filter) Fuzzy() bool { return f.fuzzy }

// Threshold is the number of good matches a tagset needs.
func (f *Filter) Threshold() int { return f.threshold }

// Matches reports whether the tagset passes the query.
func (f *Filter) Matches(set tags.Tagset) bool {
	count := 0
	for _, t := range set.Sorted() {
		for _, candidate := range candidates(t) {
			if f.anyMatch(f.bad, candidate) {
				return false
			}
			if f.anyMatch(f.good, candidate) {
				count++
			}
		}
	}
	return count >= f.threshold
}

// candidates lists the strings of t that keywords are tested against: each
// segment, then the joined path when there is more than one segment.
func candidates(t tags.Tag) []string {
	if len(t) == 1 {
		return []string{t[0]}
	}
	out := make([]string, 0, len(t)+1)
	out = append(out, t...)
	return append(out, t.String())
}

func (f *Filter) anyMatch(keywords []string, candidate string) bool {
	if len(keywords) == 0 {
		return false
	}
	lower := strings.ToLower(candidate)
	for _, kw := range keywords {
		if f.fuzzy {
			if strings.Contains(lower, kw) {
				return true
			}
		} else if lower == kw {
			return true
		}
	}
	return false
}

func normalize(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	var out []string
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
	}
	return out
}
