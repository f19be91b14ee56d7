package comments

import (
	"time"
)

// Comment represents a comment row.
// PostID is a weak reference: the post is not required to exist and deleting
// a post does not cascade to its comments.
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	UserID    string    `json:"userId" db:"user_id"`
	Nickname  string    `json:"nickname" db:"nickname"`
	Content   string    `json:"content" db:"content"`
	CommentID int64     `json:"commentId" db:"comment_id"`
	PostID    int64     `json:"postId" db:"post_id"`
}

// OwnerID implements ownership.Record
func (c *Comment) OwnerID() string {
	if c == nil {
		return ""
	}
	return c.UserID
}

// CreateCommentRequest represents input for commenting on a post
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// UpdateCommentRequest represents input for editing a comment
type UpdateCommentRequest struct {
	Content string `json:"content"`
}
