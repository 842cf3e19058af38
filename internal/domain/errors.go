package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrDuplicateInvoice = errors.New("invoice already exists for this series and sequence")
	ErrEmptySeries      = errors.New("invoice series must not be empty")
)

// ValidationError reports a contract violation in invoicing input, such as a
// negative quantity. Business-data sloppiness (missing or non-numeric fields)
// is tolerated and defaulted instead.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
