package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation targets a nonexistent id.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a missing or malformed field in a create or
// update request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
