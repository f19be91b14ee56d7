package routes

import (
	"Postboard/internal/api/handlers/comments"
	"Postboard/internal/api/middleware"
	commentsCore "Postboard/internal/core/comments"

	"github.com/go-chi/chi/v5"
)

// RegisterCommentRoutes registers comment endpoints nested under a post
func RegisterCommentRoutes(r chi.Router, service commentsCore.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := comments.NewCreateCommentHandler(service)
	getHandler := comments.NewGetCommentsHandler(service)
	updateHandler := comments.NewUpdateCommentHandler(service)
	deleteHandler := comments.NewDeleteCommentHandler(service)

	r.Get("/posts/{postId}/comments", getHandler.HandleGetComments)

	r.With(authMiddleware.RequireAuth).Post("/posts/{postId}/comments", createHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Put("/posts/{postId}/comments/{commentId}", updateHandler.HandleUpdate)
	r.With(authMiddleware.RequireAuth).Delete("/posts/{postId}/comments/{commentId}", deleteHandler.HandleDelete)
}
