package schema

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrValidation is wrapped by every payload validation failure.
var ErrValidation = errors.New("validation failed")

type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Msg }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

func checkText(field, v string, max int) error {
	n := utf8.RuneCountInString(strings.TrimSpace(v))
	if n < 1 {
		return invalid(field, "is required")
	}
	if utf8.RuneCountInString(v) > max {
		return invalid(field, "must be at most %d characters", max)
	}
	return nil
}

func checkOptText(field string, v *string, max int) error {
	if v == nil {
		return nil
	}
	if utf8.RuneCountInString(*v) > max {
		return invalid(field, "must be at most %d characters", max)
	}
	return nil
}

func checkOptNonNeg(field string, v *float64) error {
	if v != nil && *v < 0 {
		return invalid(field, "must be >= 0")
	}
	return nil
}

const (
	maxNameLen  = 100
	maxNotesLen = 500
	maxUnitLen  = 20
)
