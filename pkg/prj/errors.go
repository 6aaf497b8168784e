package prj

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrMalformedNumericField = errors.New("malformed numeric field")
	ErrUnexpectedDataType    = errors.New("unexpected data type")
	ErrMissingTerminator     = errors.New("missing section terminator")
	ErrNotSectioned          = errors.New("record kind has no section")
	ErrBadCount              = errors.New("invalid element count")
	ErrUnknownKind           = errors.New("unknown record kind")
	ErrICMismatch            = errors.New("initial condition zone mismatch")
	ErrTrailingInput         = errors.New("unexpected input after record")
	ErrInvalidToken          = errors.New("value cannot be written as a single token")
)

// FieldError reports a field whose token could not be stored.
type FieldError struct {
	Record Kind
	Field  string
	Text   string
	Line   int
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s (line %d): %v: %q", e.Record, e.Field, e.Line, e.Err, e.Text)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ReadError reports a token the Reader could not produce.
type ReadError struct {
	Line int
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
