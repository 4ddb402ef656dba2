// Package tree renders a tag vocabulary as an indented outline in which
// shared parent segments are printed once.
package tree

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/harrison/tagsearch/internal/tags"
)

// Indent is the indentation added for each level below the root.
const Indent = "    "

// Render returns the outline of ts, one segment per line.
func Render(ts []tags.Tag) string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_ = Write(&b, ts)
	return b.String()
}

// Write writes the outline of ts to w. ts is not modified.
func Write(w io.Writer, ts []tags.Tag) error {
	sorted := slices.Clone(ts)
	tags.Sort(sorted)

	var open []string
	for _, t := range sorted {
		diverged := false
		for depth, seg := range t {
			if !diverged && depth < len(open) && open[depth] == seg {
				continue
			}
			if !diverged {
				open = open[:depth]
				diverged = true
			}
			open = append(open, seg)
			if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat(Indent, len(open)-1), seg); err != nil {
				return err
			}
		}
	}
	return nil
}
