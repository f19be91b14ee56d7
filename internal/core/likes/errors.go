package likes

import (
	"errors"
	"fmt"
)

var (
	// ErrPostNotFound indicates the post being liked doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrLikeNotFound indicates no like row exists for the lookup
	ErrLikeNotFound = errors.New("like not found")

	// ErrLikeAlreadyExists indicates the (user, post) unique key is taken.
	// Repositories return it when the store rejects a duplicate insert.
	ErrLikeAlreadyExists = errors.New("like already exists")

	// ErrNotAuthorized indicates the caller has no identity
	ErrNotAuthorized = errors.New("not authorized")

	// ErrOperationFailed wraps any store fault surfaced by the service
	ErrOperationFailed = errors.New("like operation failed")
)

func operationFailed(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrOperationFailed, op, err)
}
