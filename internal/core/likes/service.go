package likes

import (
	"context"
	"errors"
	"log/slog"

	"Postboard/internal/auth"
	"Postboard/internal/core/posts"
)

// likeService implements the Service interface.
// It holds no lock: the store's unique key on (user_id, post_id) is what keeps
// two racing toggles from both inserting.
type likeService struct {
	repo     Repository
	postRepo PostReader
	logger   *slog.Logger
}

// NewService creates a new like service
func NewService(repo Repository, postRepo PostReader, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &likeService{
		repo:     repo,
		postRepo: postRepo,
		logger:   logger,
	}
}

// ToggleLike implements the toggle behavior:
//   - No like -> insert it (Created)
//   - Like exists -> delete it (Deleted)
func (s *likeService) ToggleLike(ctx context.Context, identity auth.Identity, postID int64) (ToggleResult, error) {
	if identity.IsZero() {
		return "", ErrNotAuthorized
	}

	// 1. Existence check is read-only and happens before any like state is touched
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			return "", ErrPostNotFound
		}
		s.logger.Error("[LIKE-TOGGLE] failed to read post",
			"post_id", postID,
			"error", err)
		return "", operationFailed("read post", err)
	}

	// 2. Find-or-create against the unique key
	like, created, err := s.repo.FindOrCreate(ctx, identity.UserID, postID)
	if errors.Is(err, ErrPostNotFound) {
		// post deleted between the check and the insert
		return "", ErrPostNotFound
	}
	if err != nil {
		s.logger.Error("[LIKE-TOGGLE] find-or-create failed",
			"post_id", postID,
			"user", identity.UserID,
			"error", err)
		return "", operationFailed("find or create like", err)
	}

	if created {
		s.logger.Info("[LIKE-TOGGLE] like created",
			"post_id", postID,
			"user", identity.UserID)
		return Created, nil
	}

	// 3. The row pre-existed, so this toggle removes it.
	// Zero rows affected means a concurrent toggle already removed it; the
	// resulting state is still "absent", which is what this call asked for.
	removed, err := s.repo.Delete(ctx, like.LikeID)
	if err != nil {
		s.logger.Error("[LIKE-TOGGLE] failed to delete like",
			"like_id", like.LikeID,
			"post_id", postID,
			"user", identity.UserID,
			"error", err)
		return "", operationFailed("delete like", err)
	}

	s.logger.Info("[LIKE-TOGGLE] like deleted",
		"post_id", postID,
		"user", identity.UserID,
		"row_removed", removed)
	return Deleted, nil
}

// LikedPosts is a two-phase read: the caller's liked post ids, then those posts
func (s *likeService) LikedPosts(ctx context.Context, identity auth.Identity) ([]*posts.Post, error) {
	if identity.IsZero() {
		return nil, ErrNotAuthorized
	}

	postIDs, err := s.repo.ListPostIDsByUser(ctx, identity.UserID)
	if err != nil {
		s.logger.Error("[LIKE-LIST] failed to list liked post ids",
			"user", identity.UserID,
			"error", err)
		return nil, operationFailed("list liked post ids", err)
	}
	if len(postIDs) == 0 {
		return []*posts.Post{}, nil
	}

	result, err := s.postRepo.ListByIDs(ctx, postIDs)
	if err != nil {
		s.logger.Error("[LIKE-LIST] failed to load liked posts",
			"user", identity.UserID,
			"count", len(postIDs),
			"error", err)
		return nil, operationFailed("load liked posts", err)
	}
	if result == nil {
		result = []*posts.Post{}
	}
	return result, nil
}
