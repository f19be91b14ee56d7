package comments

import (
	"net/http"

	"Postboard/internal/api/handlers"
	"Postboard/internal/api/middleware"
	"Postboard/internal/core/comments"
)

// UpdateCommentHandler handles comment update requests
type UpdateCommentHandler struct {
	service comments.Service
}

// NewUpdateCommentHandler creates a new handler for updating comments
func NewUpdateCommentHandler(service comments.Service) *UpdateCommentHandler {
	return &UpdateCommentHandler{
		service: service,
	}
}

// HandleUpdate handles PUT /posts/{postId}/comments/{commentId}
//
// Request body: { "content": "..." }
func (h *UpdateCommentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req comments.UpdateCommentRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	postID, commentID, ok := scopeIDs(r, true)
	if !ok {
		if req.Content == "" {
			handleServiceError(w, comments.ErrContentEmpty)
			return
		}
		handleServiceError(w, comments.ErrNotAuthorized)
		return
	}

	err := h.service.UpdateComment(r.Context(), middleware.GetIdentity(r), postID, commentID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteMessage(w, http.StatusOK, "Comment updated")
}
