package posts

import (
	"time"
)

// Post represents a post row.
// Nickname is a snapshot of the author's display name, refreshed on edit.
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	UserID    string    `json:"userId" db:"user_id"`
	Nickname  string    `json:"nickname" db:"nickname"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	PostID    int64     `json:"postId" db:"post_id"`
}

// OwnerID implements ownership.Record
func (p *Post) OwnerID() string {
	if p == nil {
		return ""
	}
	return p.UserID
}

// PostView is a post annotated with its like count, as returned by listings.
// LikeCount is derived from the likes table at read time, never stored.
type PostView struct {
	Post
	LikeCount int `json:"like_count"`
}

// CreatePostRequest represents input for creating a new post
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostRequest represents input for editing a post
type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
