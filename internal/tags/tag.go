// Package tags extracts hierarchical @tags from plaintext.
//
// A tag token starts with '@' at the beginning of the text or right after
// whitespace, and continues while characters are ASCII letters, digits,
// '_', '-' or '/'. The token is split on '/' into the segments of a Tag, so
// "@work/projectA" becomes Tag{"work", "projectA"}.
//
// Two Extractor implementations are provided: PatternExtractor (a compiled
// regular expression) and ScanExtractor (a single-pass byte scanner). Both
// return identical Tagsets for every input.
package tags

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Separator splits a token into hierarchical segments.
const Separator = "/"

// ErrInvalidTag is returned when a token has no non-empty segment.
var ErrInvalidTag = errors.New("invalid tag token")

// Tag is an ordered, non-empty sequence of non-empty segments.
type Tag []string

// ParseTag splits a token (with or without its leading '@' markers) into a Tag.
// Empty segments are dropped, so "a//b" and "a/" parse as {"a","b"} and {"a"}.
func ParseTag(token string) (Tag, error) {
	raw := strings.TrimLeft(token, "@")
	var t Tag
	for _, seg := range strings.Split(raw, Separator) {
		if seg != "" {
			t = append(t, seg)
		}
	}
	if len(t) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTag, token)
	}
	return t, nil
}

// String joins the segments with "/".
func (t Tag) String() string {
	return strings.Join(t, Separator)
}

// Depth returns the number of segments.
func (t Tag) Depth() int {
	return len(t)
}

// Equal reports whether both tags have the same segments.
func (t Tag) Equal(other Tag) bool {
	return slices.Equal(t, other)
}

// Compare orders tags segment by segment; a prefix sorts before its extensions.
func (t Tag) Compare(other Tag) int {
	return slices.Compare(t, other)
}

// Sort orders tags in place by Compare.
func Sort(ts []Tag) {
	slices.SortFunc(ts, Tag.Compare)
}
