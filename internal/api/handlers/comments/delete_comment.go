package comments

import (
	"net/http"

	"Postboard/internal/api/handlers"
	"Postboard/internal/api/middleware"
	"Postboard/internal/core/comments"
)

// DeleteCommentHandler handles comment deletion
type DeleteCommentHandler struct {
	service comments.Service
}

// NewDeleteCommentHandler creates a new handler for deleting comments
func NewDeleteCommentHandler(service comments.Service) *DeleteCommentHandler {
	return &DeleteCommentHandler{
		service: service,
	}
}

// HandleDelete handles DELETE /posts/{postId}/comments/{commentId}
func (h *DeleteCommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID, commentID, ok := scopeIDs(r, true)
	if !ok {
		handleServiceError(w, comments.ErrNotAuthorized)
		return
	}

	if err := h.service.DeleteComment(r.Context(), middleware.GetIdentity(r), postID, commentID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteMessage(w, http.StatusOK, "Comment deleted")
}
