package validators

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrValidationFailed is matched by every field-level validation failure.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnsupportedType is returned when Validate receives a value it has no
	// rules for.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// FieldErrors maps a JSON field name to a human readable message.
type FieldErrors map[string]string

// Error lists the failures sorted by field name so the text is stable.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s %s", field, e[field]))
	}

	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(parts, "; "))
}

// Unwrap lets callers match any FieldErrors with errors.Is(err, ErrValidationFailed).
func (e FieldErrors) Unwrap() error {
	return ErrValidationFailed
}

// Fields returns the per-field messages of err, or nil if err carries none.
func Fields(err error) map[string]string {
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	return nil
}
