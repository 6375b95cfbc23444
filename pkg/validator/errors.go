package validator

import "errors"

// Common validation errors.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidLength is returned when a field has an invalid length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidFormat is returned when a field has an invalid format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrNotAllowed is returned when a value is not a member of the allowed set.
	ErrNotAllowed = errors.New("value is not allowed")
)
