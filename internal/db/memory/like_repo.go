package memory

import (
	"context"

	"Postboard/internal/core/likes"
)

type likeRepo struct {
	s *Store
}

// FindOrCreate checks and inserts under one write lock, which is what the
// unique index gives the Postgres store.
func (r *likeRepo) FindOrCreate(_ context.Context, userID string, postID int64) (*likes.Like, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := likeKey{userID: userID, postID: postID}
	if id, ok := r.s.likeKeys[key]; ok {
		out := *r.s.likes[id]
		return &out, false, nil
	}

	// likes.post_id REFERENCES posts
	if _, ok := r.s.posts[postID]; !ok {
		return nil, false, likes.ErrPostNotFound
	}

	r.s.nextLikeID++
	like := &likes.Like{
		LikeID:    r.s.nextLikeID,
		UserID:    userID,
		PostID:    postID,
		CreatedAt: r.s.now(),
	}
	r.s.likes[like.LikeID] = like
	r.s.likeKeys[key] = like.LikeID

	out := *like
	return &out, true, nil
}

func (r *likeRepo) Delete(_ context.Context, likeID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	like, ok := r.s.likes[likeID]
	if !ok {
		return false, nil
	}
	delete(r.s.likes, likeID)
	delete(r.s.likeKeys, likeKey{userID: like.UserID, postID: like.PostID})
	return true, nil
}

func (r *likeRepo) ListPostIDsByUser(_ context.Context, userID string) ([]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := make([]int64, 0)
	for key, id := range r.s.likeKeys {
		if key.userID == userID {
			ids = append(ids, r.s.likes[id].PostID)
		}
	}
	return ids, nil
}
