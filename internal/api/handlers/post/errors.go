package post

import (
	"errors"
	"log/slog"
	"net/http"

	"Postboard/internal/api/handlers"
	"Postboard/internal/core/posts"
)

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsValidationError(err):
		var valErr *posts.ValidationError
		errors.As(err, &valErr)
		handlers.WriteError(w, http.StatusPreconditionFailed, "ValidationError", valErr.Message)

	case errors.Is(err, posts.ErrNotAuthorized):
		handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized",
			"Post does not exist or you are not its author")

	case errors.Is(err, posts.ErrOperationFailed):
		slog.Error("post operation failed", "error", err)
		handlers.WriteError(w, http.StatusBadRequest, "OperationFailed",
			"The post operation could not be completed")

	default:
		// Don't leak internal error details to clients
		slog.Error("unexpected error in post handler", "error", err)
		handlers.WriteError(w, http.StatusBadRequest, "OperationFailed",
			"The post operation could not be completed")
	}
}
