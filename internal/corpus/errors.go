package corpus

import (
	"errors"
	"fmt"
)

// ErrFileUnreadable marks a file that could not be opened or read.
var ErrFileUnreadable = errors.New("file unreadable")

// FileError records a failure for a single file. It wraps ErrFileUnreadable
// and the underlying I/O error.
type FileError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the cause to errors.Is and errors.As.
func (e *FileError) Unwrap() []error {
	return []error{ErrFileUnreadable, e.Err}
}
