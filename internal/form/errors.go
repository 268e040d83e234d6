package form

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for field lookup and validation.
var (
	ErrUnknownField  = errors.New("unknown field")
	ErrRequired      = errors.New("field is required")
	ErrInvalidFormat = errors.New("invalid format")
)

// FieldError describes why a single field value was rejected.
type FieldError struct {
	Field  Field
	Reason error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", Describe(e.Field).Label, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return e.Reason
}

// ValidationError collects the field errors that block leaving a step.
type ValidationError struct {
	Step   int
	Fields []*FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Error())
	}
	return fmt.Sprintf("step %d is incomplete: %s", e.Step, strings.Join(msgs, "; "))
}

// Unwrap exposes the individual field errors to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields))
	for _, fe := range e.Fields {
		errs = append(errs, fe)
	}
	return errs
}

// First returns the first offending field in display order.
func (e *ValidationError) First() Field {
	if len(e.Fields) == 0 {
		return ""
	}
	return e.Fields[0].Field
}
