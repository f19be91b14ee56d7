package like

import (
	"net/http"

	"Postboard/internal/api/handlers"
	"Postboard/internal/api/middleware"
	"Postboard/internal/core/likes"
	"Postboard/internal/core/posts"
)

// LikedPostsHandler lists the posts the caller has liked
type LikedPostsHandler struct {
	service likes.Service
}

// NewLikedPostsHandler creates a new liked-posts handler
func NewLikedPostsHandler(service likes.Service) *LikedPostsHandler {
	return &LikedPostsHandler{
		service: service,
	}
}

// LikedPostsResponse is the body of GET /posts/my/like
type LikedPostsResponse struct {
	Posts   []*posts.Post `json:"posts"`
	Success bool          `json:"success"`
}

// HandleLikedPosts handles GET /posts/my/like
func (h *LikedPostsHandler) HandleLikedPosts(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.LikedPosts(r.Context(), middleware.GetIdentity(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, LikedPostsResponse{
		Success: true,
		Posts:   list,
	})
}
