package comments

import (
	"errors"
	"fmt"
)

var (
	// ErrContentEmpty indicates comment content is empty
	ErrContentEmpty = errors.New("comment content is required")

	// ErrNotAuthorized indicates no comment matched the post, id and owner
	ErrNotAuthorized = errors.New("comment was not modified")

	// ErrOperationFailed wraps any store fault surfaced by the service
	ErrOperationFailed = errors.New("comment operation failed")
)

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrContentEmpty)
}

func operationFailed(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrOperationFailed, op, err)
}
