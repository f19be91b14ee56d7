package likes

import (
	"context"

	"Postboard/internal/auth"
	"Postboard/internal/core/posts"
)

// Service defines the business logic interface for likes
type Service interface {
	// ToggleLike flips the caller's like on a post.
	// Flow: Verify post exists -> Find-or-create on (user, post) -> Delete if it pre-existed
	// Returns ErrPostNotFound without touching likes when the post is missing.
	ToggleLike(ctx context.Context, identity auth.Identity, postID int64) (ToggleResult, error)

	// LikedPosts returns the posts the caller has liked, newest first
	LikedPosts(ctx context.Context, identity auth.Identity) ([]*posts.Post, error)
}

// Repository defines the data access interface for likes
type Repository interface {
	// FindOrCreate returns the like for (userID, postID), inserting it if absent.
	// created is true only when this call inserted the row. A duplicate insert
	// rejected by the store's unique key must be reported as created=false, not
	// as an error.
	FindOrCreate(ctx context.Context, userID string, postID int64) (like *Like, created bool, err error)

	// Delete removes a like by id. Reports whether a row was removed.
	Delete(ctx context.Context, likeID int64) (bool, error)

	// ListPostIDsByUser returns the ids of every post userID has liked
	ListPostIDsByUser(ctx context.Context, userID string) ([]int64, error)
}

// PostReader is the slice of posts.Repository the like service depends on
type PostReader interface {
	GetByID(ctx context.Context, postID int64) (*posts.Post, error)
	ListByIDs(ctx context.Context, postIDs []int64) ([]*posts.Post, error)
}
