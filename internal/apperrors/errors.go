// Package apperrors defines the error taxonomy surfaced to API clients.
// Services return these; controllers map them onto HTTP status codes.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means the request carried no valid credential (401)
	ErrUnauthorized = errors.New("authentication required")
	// ErrForbidden means the requester is authenticated but not permitted on the object (403)
	ErrForbidden = errors.New("permission denied")
	// ErrNotFound means the target resource does not exist (404)
	ErrNotFound = errors.New("not found")
)

// ValidationError is a rejected input with field-level detail (400)
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation creates a ValidationError for a field
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
