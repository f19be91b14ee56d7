package comments

import (
	"context"

	"Postboard/internal/auth"
	"Postboard/internal/core/ownership"
)

// Service defines the business logic interface for comments.
// Mutations are scoped by (postID, commentID, owner) jointly.
type Service interface {
	// CreateComment adds a comment to postID owned by identity
	CreateComment(ctx context.Context, identity auth.Identity, postID int64, req CreateCommentRequest) error

	// ListComments returns a post's comments newest first
	ListComments(ctx context.Context, postID int64) ([]*Comment, error)

	// UpdateComment edits a comment; ErrNotAuthorized if no row matched
	UpdateComment(ctx context.Context, identity auth.Identity, postID, commentID int64, req UpdateCommentRequest) error

	// DeleteComment removes a comment; ErrNotAuthorized if no row matched
	DeleteComment(ctx context.Context, identity auth.Identity, postID, commentID int64) error
}

// Repository defines the data access interface for comments
type Repository interface {
	// Create inserts a new comment and fills in CommentID and timestamps
	Create(ctx context.Context, comment *Comment) error

	// ListByPost retrieves a post's comments ordered by created_at DESC
	ListByPost(ctx context.Context, postID int64) ([]*Comment, error)

	// Update rewrites content and nickname of the comment matching
	// comment.PostID, comment.CommentID and owner. Reports whether a row changed.
	Update(ctx context.Context, comment *Comment, owner ownership.Filter) (bool, error)

	// Delete removes the comment matching postID, commentID and owner
	Delete(ctx context.Context, postID, commentID int64, owner ownership.Filter) (bool, error)
}
