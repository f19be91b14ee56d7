package like

import (
	"net/http"

	"Postboard/internal/api/handlers"
	"Postboard/internal/api/middleware"
	"Postboard/internal/core/likes"
)

// ToggleHandler handles like toggling
type ToggleHandler struct {
	service likes.Service
}

// NewToggleHandler creates a new toggle handler
func NewToggleHandler(service likes.Service) *ToggleHandler {
	return &ToggleHandler{
		service: service,
	}
}

// ToggleResponse is the body of PUT /posts/{postId}/like
type ToggleResponse struct {
	Message string             `json:"message"`
	Result  likes.ToggleResult `json:"result"`
	Success bool               `json:"success"`
}

// HandleToggle handles PUT /posts/{postId}/like
// Creates the caller's like if absent, removes it if present.
func (h *ToggleHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	postID, ok := handlers.PathID(r, "postId")
	if !ok {
		handleServiceError(w, likes.ErrPostNotFound)
		return
	}

	result, err := h.service.ToggleLike(r.Context(), middleware.GetIdentity(r), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	message := "Like added"
	if result == likes.Deleted {
		message = "Like removed"
	}

	handlers.WriteJSON(w, http.StatusOK, ToggleResponse{
		Success: true,
		Message: message,
		Result:  result,
	})
}
