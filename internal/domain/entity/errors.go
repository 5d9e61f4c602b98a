package entity

import (
	"errors"
	"fmt"
)

// ErrValidationFailed indicates that validation checks have failed.
// Every *ValidationError matches it with errors.Is.
var ErrValidationFailed = errors.New("validation failed")

// Code enumerates the ways a field value can be rejected.
type Code string

const (
	CodeRequired      Code = "required"
	CodeNotUnique     Code = "not_unique"
	CodeInvalidFormat Code = "invalid_format"
	CodeMissingMarker Code = "missing_marker"
	CodeTooShort      Code = "too_short"
	CodeTooLong       Code = "too_long"
	CodeNotAllowed    Code = "not_allowed"
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Code    Code
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Is reports whether target is ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// AsValidationError unwraps err into a *ValidationError if it carries one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
