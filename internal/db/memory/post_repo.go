package memory

import (
	"context"
	"sort"
	"strings"

	"Postboard/internal/core/ownership"
	"Postboard/internal/core/posts"
)

type postRepo struct {
	s *Store
}

func (r *postRepo) Create(_ context.Context, post *posts.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextPostID++
	now := r.s.now()
	post.PostID = r.s.nextPostID
	post.CreatedAt = now
	post.UpdatedAt = now

	stored := *post
	r.s.posts[post.PostID] = &stored
	return nil
}

func (r *postRepo) GetByID(_ context.Context, postID int64) (*posts.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.posts[postID]
	if !ok {
		return nil, posts.ErrNotFound
	}
	out := *p
	return &out, nil
}

func (r *postRepo) Update(_ context.Context, post *posts.Post, owner ownership.Filter) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.posts[post.PostID]
	if !ok || !owner.Permits(existing) {
		return false, nil
	}

	existing.Title = post.Title
	existing.Content = post.Content
	existing.Nickname = post.Nickname
	existing.UpdatedAt = r.s.now()

	*post = *existing
	return true, nil
}

func (r *postRepo) Delete(_ context.Context, postID int64, owner ownership.Filter) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.posts[postID]
	if !ok || !owner.Permits(existing) {
		return false, nil
	}

	delete(r.s.posts, postID)

	// ON DELETE CASCADE on likes.post_id
	for id, l := range r.s.likes {
		if l.PostID == postID {
			delete(r.s.likes, id)
			delete(r.s.likeKeys, likeKey{userID: l.UserID, postID: l.PostID})
		}
	}
	return true, nil
}

func (r *postRepo) List(_ context.Context, search string) ([]*posts.PostView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*posts.PostView, 0, len(r.s.posts))
	for _, p := range r.s.posts {
		// Title AND content must both contain the term
		if search != "" && !(strings.Contains(p.Title, search) && strings.Contains(p.Content, search)) {
			continue
		}
		result = append(result, &posts.PostView{
			Post:      *p,
			LikeCount: r.s.likeCountLocked(p.PostID),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return newestFirst(result[i].CreatedAt, result[j].CreatedAt, result[i].PostID, result[j].PostID)
	})
	return result, nil
}

func (r *postRepo) ListByIDs(_ context.Context, postIDs []int64) ([]*posts.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	seen := make(map[int64]struct{}, len(postIDs))
	result := make([]*posts.Post, 0, len(postIDs))
	for _, id := range postIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := r.s.posts[id]; ok {
			out := *p
			result = append(result, &out)
		}
	}

	sortPosts(result)
	return result, nil
}
