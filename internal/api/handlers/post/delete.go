package post

import (
	"net/http"

	"Postboard/internal/api/handlers"
	"Postboard/internal/api/middleware"
	"Postboard/internal/core/posts"
)

// DeleteHandler handles post deletion
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new delete handler
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{
		service: service,
	}
}

// HandleDelete handles DELETE /posts/{postId}
// Only the author can delete; a missing post answers the same 401.
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID, ok := handlers.PathID(r, "postId")
	if !ok {
		handleServiceError(w, posts.ErrNotAuthorized)
		return
	}

	if err := h.service.DeletePost(r.Context(), middleware.GetIdentity(r), postID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteMessage(w, http.StatusOK, "Post deleted")
}
