package likes

import "time"

// Like records one user's endorsement of one post.
// At most one Like exists per (UserID, PostID); it is never updated in place.
type Like struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UserID    string    `json:"userId" db:"user_id"`
	LikeID    int64     `json:"likeId" db:"like_id"`
	PostID    int64     `json:"postId" db:"post_id"`
}

// ToggleResult reports which way a toggle flipped the like state
type ToggleResult string

const (
	// Created means no like existed and one was inserted
	Created ToggleResult = "create"
	// Deleted means a like existed and was removed
	Deleted ToggleResult = "delete"
)
