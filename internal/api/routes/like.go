package routes

import (
	"Postboard/internal/api/handlers/like"
	"Postboard/internal/api/middleware"
	"Postboard/internal/core/likes"

	"github.com/go-chi/chi/v5"
)

// RegisterLikeRoutes registers like endpoints on the router
func RegisterLikeRoutes(r chi.Router, service likes.Service, authMiddleware *middleware.AuthMiddleware) {
	toggleHandler := like.NewToggleHandler(service)
	likedHandler := like.NewLikedPostsHandler(service)

	// The static /posts/my/like segment wins over /posts/{postId} in chi's tree
	r.With(authMiddleware.RequireAuth).Get("/posts/my/like", likedHandler.HandleLikedPosts)

	// Toggle: creates the caller's like if absent, removes it if present
	r.With(authMiddleware.RequireAuth).Put("/posts/{postId}/like", toggleHandler.HandleToggle)
}
