package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrNotFound is returned by repositories when a post id has no row
	ErrNotFound = errors.New("post not found")

	// ErrNotAuthorized is returned when a scoped mutation matched no row.
	// Covers both "no such post" and "not your post"; they are never told apart.
	ErrNotAuthorized = errors.New("post was not modified")

	// ErrOperationFailed wraps any store fault surfaced by the service
	ErrOperationFailed = errors.New("post operation failed")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// operationFailed joins the store fault with ErrOperationFailed so handlers can
// match the kind while logs keep the cause.
func operationFailed(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrOperationFailed, op, err)
}
