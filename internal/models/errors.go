package models

import "errors"

var (
	// ErrInvalidParameter matches every *ValidationError.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrNotFound is returned when the referenced address does not exist.
	ErrNotFound = errors.New("address not found")
	// ErrStoreUnavailable wraps any failure of the underlying persistence layer.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError describes rejected client input.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError returns a validation error for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidParameter
}
