package display

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// ErrOutputTerminated reports that the reader of our output went away, for
// example a pager that was quit early. Callers treat it as success.
var ErrOutputTerminated = errors.New("output terminated")

// Output writes report lines and remembers the first write error. After an
// error every further write is a no-op, so report code can print freely and
// check Err once at the end.
type Output struct {
	w   io.Writer
	err error
}

// NewOutput wraps w.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// Printf formats and writes.
func (o *Output) Printf(format string, args ...any) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprintf(o.w, format, args...)
}

// Println writes the arguments followed by a newline.
func (o *Output) Println(args ...any) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprintln(o.w, args...)
}

// Write implements io.Writer.
func (o *Output) Write(p []byte) (int, error) {
	if o.err != nil {
		return 0, o.err
	}
	var n int
	n, o.err = o.w.Write(p)
	return n, o.err
}

// Err returns the first write error, with a closed pipe mapped to
// ErrOutputTerminated.
func (o *Output) Err() error {
	return Classify(o.err)
}

// Classify maps a broken pipe to ErrOutputTerminated and returns other errors
// unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.EPIPE) || errors.Is(err, ErrOutputTerminated) {
		return fmt.Errorf("%w: %v", ErrOutputTerminated, err)
	}
	return err
}
