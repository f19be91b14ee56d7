package routes

import (
	"Postboard/internal/api/handlers/post"
	"Postboard/internal/api/middleware"
	"Postboard/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers post endpoints on the router.
// Reads are public; writes require authentication and are scoped to the author.
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.AuthMiddleware) {
	// Initialize handlers
	createHandler := post.NewCreateHandler(service)
	listHandler := post.NewListHandler(service)
	getHandler := post.NewGetHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)

	r.Get("/posts", listHandler.HandleList)
	r.Get("/posts/{postId}", getHandler.HandleGet)

	r.With(authMiddleware.RequireAuth).Post("/posts", createHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Put("/posts/{postId}", updateHandler.HandleUpdate)
	r.With(authMiddleware.RequireAuth).Delete("/posts/{postId}", deleteHandler.HandleDelete)
}
