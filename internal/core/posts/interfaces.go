package posts

import (
	"context"

	"Postboard/internal/auth"
	"Postboard/internal/core/ownership"
)

// Service defines the business logic interface for posts
type Service interface {
	// CreatePost creates a post owned by identity
	// Flow: Validate content -> Insert with nickname snapshot
	CreatePost(ctx context.Context, identity auth.Identity, req CreatePostRequest) error

	// GetPost returns the post or nil if it does not exist (not an error)
	GetPost(ctx context.Context, postID int64) (*Post, error)

	// UpdatePost edits a post owned by identity
	// Returns ErrNotAuthorized when the post is missing OR owned by someone else
	UpdatePost(ctx context.Context, identity auth.Identity, postID int64, req UpdatePostRequest) error

	// DeletePost hard-deletes a post owned by identity
	// Returns ErrNotAuthorized when the post is missing OR owned by someone else
	DeletePost(ctx context.Context, identity auth.Identity, postID int64) error

	// ListPosts returns posts newest first, each with its like count.
	// A non-empty search keeps only posts whose title AND content contain it.
	ListPosts(ctx context.Context, search string) ([]*PostView, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post and fills in PostID, CreatedAt and UpdatedAt
	Create(ctx context.Context, post *Post) error

	// GetByID retrieves a post by id
	// Returns ErrNotFound if absent
	GetByID(ctx context.Context, postID int64) (*Post, error)

	// Update rewrites title, content and nickname of the post matching both
	// post.PostID and owner. Reports whether a row changed.
	Update(ctx context.Context, post *Post, owner ownership.Filter) (bool, error)

	// Delete removes the post matching both postID and owner.
	// Reports whether a row was removed.
	Delete(ctx context.Context, postID int64, owner ownership.Filter) (bool, error)

	// List returns posts newest first with like counts aggregated at query time
	List(ctx context.Context, search string) ([]*PostView, error)

	// ListByIDs returns the given posts newest first, without like counts
	ListByIDs(ctx context.Context, postIDs []int64) ([]*Post, error)
}
