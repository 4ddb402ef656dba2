package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestDisplayWarning_TitleOnly(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "Configuration Missing"}.Display(&buf)

	assert.Equal(t, "Warning: Configuration Missing\n", buf.String())
}

func TestDisplayWarning_AllParts(t *testing.T) {
	var buf bytes.Buffer
	Warning{
		Title:      "Something odd",
		Message:    "Details here",
		Files:      []string{"a.md", "b.md"},
		Suggestion: "Try again",
	}.Display(&buf)

	want := "Warning: Something odd\n" +
		"    Details here\n" +
		"    Affected files:\n" +
		"      1. a.md\n" +
		"      2. b.md\n" +
		"    Suggestion:\n" +
		"    Try again\n"
	assert.Equal(t, want, buf.String())
}

func TestDisplayWarning_SingleFile(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "x", Files: []string{"only.txt"}}.Display(&buf)

	assert.Contains(t, buf.String(), "Affected file:\n")
	assert.NotContains(t, buf.String(), "Affected files:")
}

func TestDisplayWarning_Color(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	var buf bytes.Buffer
	Warning{Title: "colored"}.Display(&buf)

	output := buf.String()
	assert.True(t, strings.HasPrefix(output, "\x1b[33m"), "expected yellow, got %q", output)
	assert.Contains(t, output, "\x1b[0m")
}

func TestWarnUnreadableFiles(t *testing.T) {
	one := WarnUnreadableFiles([]string{"locked.md"})
	assert.Equal(t, "1 file could not be read", one.Title)
	assert.Equal(t, []string{"locked.md"}, one.Files)

	many := WarnUnreadableFiles([]string{"a", "b", "c"})
	assert.Equal(t, "3 files could not be read", many.Title)
	assert.NotEmpty(t, many.Suggestion)
}
