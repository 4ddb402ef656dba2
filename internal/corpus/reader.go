package corpus

import (
	"os"
	"path/filepath"
	"strings"
)

// Reader fetches the text content of a file.
type Reader interface {
	Read(path string) (string, error)
}

// FileReader reads files from disk. When SkipCode is set, Markdown files
// (.md, .markdown) have their code blocks and spans blanked before the text is
// returned.
type FileReader struct {
	SkipCode bool
	stripper *CodeStripper
}

// NewFileReader creates a FileReader.
func NewFileReader(skipCode bool) *FileReader {
	r := &FileReader{SkipCode: skipCode}
	if skipCode {
		r.stripper = NewCodeStripper()
	}
	return r
}

// Read implements Reader.
func (r *FileReader) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if r.SkipCode && r.stripper != nil && isMarkdown(path) {
		data = r.stripper.Strip(data)
	}
	return string(data), nil
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
