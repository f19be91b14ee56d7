// Package memory is an in-process content store with the same constraints as
// the Postgres schema: owner-scoped conditional mutations, a unique
// (user_id, post_id) key on likes and cascading like removal on post delete.
package memory

import (
	"sort"
	"sync"
	"time"

	"Postboard/internal/core/comments"
	"Postboard/internal/core/likes"
	"Postboard/internal/core/posts"
)

type likeKey struct {
	userID string
	postID int64
}

// Store holds every table behind one lock, the way a single database would
type Store struct {
	mu            sync.RWMutex
	posts         map[int64]*posts.Post
	comments      map[int64]*comments.Comment
	likes         map[int64]*likes.Like
	likeKeys      map[likeKey]int64
	nextPostID    int64
	nextCommentID int64
	nextLikeID    int64
	now           func() time.Time
}

// New creates an empty store
func New() *Store {
	return &Store{
		posts:    make(map[int64]*posts.Post),
		comments: make(map[int64]*comments.Comment),
		likes:    make(map[int64]*likes.Like),
		likeKeys: make(map[likeKey]int64),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Posts returns the post repository view of the store
func (s *Store) Posts() posts.Repository { return &postRepo{s: s} }

// Comments returns the comment repository view of the store
func (s *Store) Comments() comments.Repository { return &commentRepo{s: s} }

// Likes returns the like repository view of the store
func (s *Store) Likes() likes.Repository { return &likeRepo{s: s} }

// likeCountLocked counts like rows for a post; callers hold s.mu
func (s *Store) likeCountLocked(postID int64) int {
	n := 0
	for _, l := range s.likes {
		if l.PostID == postID {
			n++
		}
	}
	return n
}

// newestFirst orders by created_at DESC with the id as tiebreak
func newestFirst(aTime, bTime time.Time, aID, bID int64) bool {
	if !aTime.Equal(bTime) {
		return aTime.After(bTime)
	}
	return aID > bID
}

func sortPosts(list []*posts.Post) {
	sort.Slice(list, func(i, j int) bool {
		return newestFirst(list[i].CreatedAt, list[j].CreatedAt, list[i].PostID, list[j].PostID)
	})
}
