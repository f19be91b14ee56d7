package post

import (
	"net/http"

	"Postboard/internal/api/handlers"
	"Postboard/internal/api/middleware"
	"Postboard/internal/core/posts"
)

// UpdateHandler handles post edits
type UpdateHandler struct {
	service posts.Service
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service posts.Service) *UpdateHandler {
	return &UpdateHandler{
		service: service,
	}
}

// HandleUpdate handles PUT /posts/{postId}
// Request body: { "title": "...", "content": "..." }
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req posts.UpdatePostRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	postID, ok := handlers.PathID(r, "postId")
	if !ok {
		// Validation still outranks the unmatched id
		if req.Content == "" {
			handleServiceError(w, posts.NewValidationError("content", "content is required"))
			return
		}
		handleServiceError(w, posts.ErrNotAuthorized)
		return
	}

	if err := h.service.UpdatePost(r.Context(), middleware.GetIdentity(r), postID, req); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteMessage(w, http.StatusOK, "Post updated")
}
