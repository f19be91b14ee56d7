package like

import (
	"errors"
	"log/slog"
	"net/http"

	"Postboard/internal/api/handlers"
	"Postboard/internal/core/likes"
)

// handleServiceError maps like service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, likes.ErrPostNotFound):
		handlers.WriteError(w, http.StatusBadRequest, "PostNotFound", "Post not found")

	case errors.Is(err, likes.ErrNotAuthorized):
		handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")

	default:
		// Don't leak internal error details to clients
		slog.Error("like operation failed", "error", err)
		handlers.WriteError(w, http.StatusBadRequest, "OperationFailed",
			"The like operation could not be completed")
	}
}
