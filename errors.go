package sheetinspect

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	// ErrFileAccess means the source file is missing or unreadable.
	ErrFileAccess = errors.New("file access error")
	// ErrFormat means the file exists but is not a readable workbook.
	ErrFormat = errors.New("format error")
	// ErrDependencyMissing means no workbook reader is configured for the
	// requested mode.
	ErrDependencyMissing = errors.New("dependency missing")
)

// Error is returned by Load for every failure. It records the kind, the
// path involved and the stack at the point of failure.
type Error struct {
	Kind error
	Path string
	// Hint is an install instruction for ErrDependencyMissing.
	Hint  string
	Err   error
	stack []byte
}

func newError(kind error, path string, err error) *Error {
	return &Error{
		Kind:  kind,
		Path:  path,
		Err:   err,
		stack: debug.Stack(),
	}
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Stack returns the goroutine stack captured when the error was created.
func (e *Error) Stack() []byte {
	return e.stack
}

// Trace returns the diagnostic trace for err: the captured stack of the
// innermost *Error, or the current stack when err carries none.
func Trace(err error) string {
	var ie *Error
	if errors.As(err, &ie) && len(ie.stack) > 0 {
		return string(ie.stack)
	}
	return string(debug.Stack())
}

// Hint returns the install instruction attached to err, if any.
func Hint(err error) string {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Hint
	}
	return ""
}
