package comments

import (
	"net/http"

	"Postboard/internal/api/handlers"
	"Postboard/internal/core/comments"
)

// GetCommentsHandler handles comment listing for a post
type GetCommentsHandler struct {
	service comments.Service
}

// NewGetCommentsHandler creates a new handler for listing comments
func NewGetCommentsHandler(service comments.Service) *GetCommentsHandler {
	return &GetCommentsHandler{
		service: service,
	}
}

// GetCommentsResponse is the body of GET /posts/{postId}/comments
type GetCommentsResponse struct {
	Comments []*comments.Comment `json:"comments"`
	Success  bool                `json:"success"`
}

// HandleGetComments handles GET /posts/{postId}/comments, newest first
func (h *GetCommentsHandler) HandleGetComments(w http.ResponseWriter, r *http.Request) {
	postID, _, ok := scopeIDs(r, false)
	if !ok {
		handlers.WriteJSON(w, http.StatusOK, GetCommentsResponse{
			Success:  true,
			Comments: []*comments.Comment{},
		})
		return
	}

	list, err := h.service.ListComments(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, GetCommentsResponse{
		Success:  true,
		Comments: list,
	})
}
