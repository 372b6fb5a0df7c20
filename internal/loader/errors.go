package loader

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrMissingResource is returned when a source file or directory is absent.
	ErrMissingResource = errors.New("missing resource")
	// ErrMalformedInput is returned when a source cannot be parsed.
	ErrMalformedInput = errors.New("malformed input")
)

// ParseError describes a single unparseable line.
type ParseError struct {
	Source string
	Line   int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap lets errors.Is match both ErrMalformedInput and the cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedInput}
	}
	return []error{ErrMalformedInput, e.Err}
}

// openError classifies an error from opening a source.
func openError(kind, path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s %s: %w", ErrMissingResource, kind, path, err)
	}
	return fmt.Errorf("failed to open %s %s: %w", kind, path, err)
}
