package post

import (
	"net/http"

	"Postboard/internal/api/handlers"
	"Postboard/internal/core/posts"
)

// GetHandler handles single post reads
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{
		service: service,
	}
}

// GetResponse is the body of GET /posts/{postId}; Post is null when absent
type GetResponse struct {
	Post    *posts.Post `json:"post"`
	Success bool        `json:"success"`
}

// HandleGet handles GET /posts/{postId}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID, ok := handlers.PathID(r, "postId")
	if !ok {
		handlers.WriteJSON(w, http.StatusOK, GetResponse{Success: true})
		return
	}

	post, err := h.service.GetPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, GetResponse{
		Success: true,
		Post:    post,
	})
}
