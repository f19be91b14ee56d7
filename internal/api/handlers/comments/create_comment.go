package comments

import (
	"net/http"

	"Postboard/internal/api/handlers"
	"Postboard/internal/api/middleware"
	"Postboard/internal/core/comments"
)

// CreateCommentHandler handles comment creation
type CreateCommentHandler struct {
	service comments.Service
}

// NewCreateCommentHandler creates a new handler for creating comments
func NewCreateCommentHandler(service comments.Service) *CreateCommentHandler {
	return &CreateCommentHandler{
		service: service,
	}
}

// HandleCreate handles POST /posts/{postId}/comments
//
// Request body: { "content": "..." }
// The post is not checked for existence.
func (h *CreateCommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req comments.CreateCommentRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	postID, _, ok := scopeIDs(r, false)
	if !ok {
		if req.Content == "" {
			handleServiceError(w, comments.ErrContentEmpty)
			return
		}
		handleServiceError(w, comments.ErrNotAuthorized)
		return
	}

	if err := h.service.CreateComment(r.Context(), middleware.GetIdentity(r), postID, req); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteMessage(w, http.StatusCreated, "Comment created")
}
