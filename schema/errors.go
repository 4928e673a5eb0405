package schema

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingRequiredField = errors.New("schema: missing required field")
	ErrTypeMismatch         = errors.New("schema: field type mismatch")
)

// MissingRequiredFieldError reports one absent required key.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	if e == nil {
		return ErrMissingRequiredField.Error()
	}
	return fmt.Sprintf("%s: %s", ErrMissingRequiredField.Error(), e.Field)
}

func (e *MissingRequiredFieldError) Unwrap() error {
	return ErrMissingRequiredField
}

// TypeMismatchError reports a field whose shape differs from the schema.
type TypeMismatchError struct {
	Field    string
	Expected FieldType
	Actual   FieldType
}

func (e *TypeMismatchError) Error() string {
	if e == nil {
		return ErrTypeMismatch.Error()
	}
	return fmt.Sprintf("%s: %s expected %s, got %s", ErrTypeMismatch.Error(), e.Field, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// ValidationErrors aggregates every violation found in a single pass.
type ValidationErrors []error

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "schema: no violations"
	}
	parts := make([]string, 0, len(v))
	for _, err := range v {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}

// Unwrap exposes the individual violations to errors.Is and errors.As.
func (v ValidationErrors) Unwrap() []error {
	return v
}
