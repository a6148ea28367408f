package error

import "errors"

// Property domain errors.
var (
	// ErrPropertyNotFound is returned when a property is not found in the system.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrMissingPropertyName is returned when a property is created without a name.
	ErrMissingPropertyName = errors.New("property name is required")

	// ErrPropertyNameTooLong is returned when the property name exceeds the maximum length.
	ErrPropertyNameTooLong = errors.New("property name too long")
)

// PropertyErrorCode defines error codes for property errors.
type PropertyErrorCode string

const (
	ErrCodeMissingPropertyName PropertyErrorCode = "PRP-010001"
	ErrCodePropertyNameTooLong PropertyErrorCode = "PRP-010002"
	ErrCodePropertyNotFound    PropertyErrorCode = "PRP-020001"
)

// PropertyError represents a property error with code and message.
type PropertyError struct {
	Code    PropertyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PropertyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PropertyError) Unwrap() error {
	return e.Err
}

// NewPropertyError creates a new PropertyError with the given code and message.
func NewPropertyError(code PropertyErrorCode, message string, err error) *PropertyError {
	return &PropertyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
