package post

import (
	"net/http"

	"Postboard/internal/api/handlers"
	"Postboard/internal/core/posts"
)

// ListHandler handles post listing and search
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{
		service: service,
	}
}

// ListResponse is the body of GET /posts
type ListResponse struct {
	Posts   []*posts.PostView `json:"posts"`
	Success bool              `json:"success"`
}

// HandleList handles GET /posts?search=term
// A non-empty term must appear in both title and content.
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	views, err := h.service.ListPosts(r.Context(), search)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, ListResponse{
		Success: true,
		Posts:   views,
	})
}
