package comments

import (
	"errors"
	"log/slog"
	"net/http"

	"Postboard/internal/api/handlers"
	"Postboard/internal/core/comments"
)

// handleServiceError maps service-layer errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case comments.IsValidationError(err):
		handlers.WriteError(w, http.StatusPreconditionFailed, "ValidationError", err.Error())

	case errors.Is(err, comments.ErrNotAuthorized):
		handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized",
			"Comment does not exist or you are not its author")

	default:
		// Don't leak internal error details to clients
		slog.Error("comment operation failed", "error", err)
		handlers.WriteError(w, http.StatusBadRequest, "OperationFailed",
			"The comment operation could not be completed")
	}
}

// scopeIDs parses {postId} and, when wanted, {commentId}. ok is false if any
// segment is not an integer.
func scopeIDs(r *http.Request, withComment bool) (postID, commentID int64, ok bool) {
	postID, ok = handlers.PathID(r, "postId")
	if !ok || !withComment {
		return postID, 0, ok
	}
	commentID, ok = handlers.PathID(r, "commentId")
	return postID, commentID, ok
}
