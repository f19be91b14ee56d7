package post

import (
	"net/http"

	"Postboard/internal/api/handlers"
	"Postboard/internal/api/middleware"
	"Postboard/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{
		service: service,
	}
}

// HandleCreate handles POST /posts
// Request body: { "title": "...", "content": "..." }
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req posts.CreatePostRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	// Author comes from the verified identity, never from the body
	identity := middleware.GetIdentity(r)

	if err := h.service.CreatePost(r.Context(), identity, req); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteMessage(w, http.StatusCreated, "Post created")
}
