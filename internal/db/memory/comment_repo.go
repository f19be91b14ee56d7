package memory

import (
	"context"
	"sort"

	"Postboard/internal/core/comments"
	"Postboard/internal/core/ownership"
)

type commentRepo struct {
	s *Store
}

func (r *commentRepo) Create(_ context.Context, comment *comments.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextCommentID++
	now := r.s.now()
	comment.CommentID = r.s.nextCommentID
	comment.CreatedAt = now
	comment.UpdatedAt = now

	stored := *comment
	r.s.comments[comment.CommentID] = &stored
	return nil
}

func (r *commentRepo) ListByPost(_ context.Context, postID int64) ([]*comments.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*comments.Comment, 0)
	for _, c := range r.s.comments {
		if c.PostID == postID {
			out := *c
			result = append(result, &out)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return newestFirst(result[i].CreatedAt, result[j].CreatedAt, result[i].CommentID, result[j].CommentID)
	})
	return result, nil
}

func (r *commentRepo) Update(_ context.Context, comment *comments.Comment, owner ownership.Filter) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.comments[comment.CommentID]
	if !ok || existing.PostID != comment.PostID || !owner.Permits(existing) {
		return false, nil
	}

	existing.Content = comment.Content
	existing.Nickname = comment.Nickname
	existing.UpdatedAt = r.s.now()

	*comment = *existing
	return true, nil
}

func (r *commentRepo) Delete(_ context.Context, postID, commentID int64, owner ownership.Filter) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.comments[commentID]
	if !ok || existing.PostID != postID || !owner.Permits(existing) {
		return false, nil
	}

	delete(r.s.comments, commentID)
	return true, nil
}
