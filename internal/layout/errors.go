package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec is returned when a RecordSpec violates the layout preconditions.
var ErrInvalidSpec = errors.New("invalid record spec")

// InvalidSpecError describes which part of a RecordSpec is invalid.
type InvalidSpecError struct {
	Record string
	Field  string // empty when the problem concerns the whole record
	Reason string
}

func (e *InvalidSpecError) Error() string {
	name := e.Record
	if name == "" {
		name = "<anonymous>"
	}

	if e.Field != "" {
		return fmt.Sprintf("%s: record %s, field %s: %s", ErrInvalidSpec, name, e.Field, e.Reason)
	}

	return fmt.Sprintf("%s: record %s: %s", ErrInvalidSpec, name, e.Reason)
}

// Is reports ErrInvalidSpec as a match so callers can use errors.Is.
func (e *InvalidSpecError) Is(target error) bool {
	return target == ErrInvalidSpec
}

func invalid(record, field, format string, args ...any) error {
	return &InvalidSpecError{
		Record: record,
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}
