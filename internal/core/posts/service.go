package posts

import (
	"context"
	"errors"
	"log/slog"

	"Postboard/internal/auth"
	"Postboard/internal/core/ownership"
)

type postService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new post service
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:   repo,
		logger: logger,
	}
}

// CreatePost validates content and inserts a post owned by identity
func (s *postService) CreatePost(ctx context.Context, identity auth.Identity, req CreatePostRequest) error {
	if err := validateContent(req.Content); err != nil {
		return err
	}
	if identity.IsZero() {
		return ErrNotAuthorized
	}

	post := &Post{
		UserID:   identity.UserID,
		Nickname: identity.Nickname,
		Title:    req.Title,
		Content:  req.Content,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		s.logger.Error("[POST-CREATE] failed to insert post",
			"user", identity.UserID,
			"error", err)
		return operationFailed("create post", err)
	}

	s.logger.Info("[POST-CREATE] post created",
		"post_id", post.PostID,
		"user", identity.UserID)
	return nil
}

// GetPost returns the post or nil when it does not exist
func (s *postService) GetPost(ctx context.Context, postID int64) (*Post, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("[POST-GET] failed to read post",
			"post_id", postID,
			"error", err)
		return nil, operationFailed("get post", err)
	}
	return post, nil
}

// UpdatePost performs a conditional update scoped to (postID, identity.UserID)
func (s *postService) UpdatePost(ctx context.Context, identity auth.Identity, postID int64, req UpdatePostRequest) error {
	if err := validateContent(req.Content); err != nil {
		return err
	}
	if identity.IsZero() {
		return ErrNotAuthorized
	}

	post := &Post{
		PostID:   postID,
		UserID:   identity.UserID,
		Nickname: identity.Nickname,
		Title:    req.Title,
		Content:  req.Content,
	}

	updated, err := s.repo.Update(ctx, post, ownership.For(identity))
	if err != nil {
		s.logger.Error("[POST-UPDATE] failed to update post",
			"post_id", postID,
			"user", identity.UserID,
			"error", err)
		return operationFailed("update post", err)
	}
	if !updated {
		s.logger.Info("[POST-UPDATE] no row matched post and owner",
			"post_id", postID,
			"user", identity.UserID)
		return ErrNotAuthorized
	}

	return nil
}

// DeletePost performs a conditional delete scoped to (postID, identity.UserID)
func (s *postService) DeletePost(ctx context.Context, identity auth.Identity, postID int64) error {
	if identity.IsZero() {
		return ErrNotAuthorized
	}

	deleted, err := s.repo.Delete(ctx, postID, ownership.For(identity))
	if err != nil {
		s.logger.Error("[POST-DELETE] failed to delete post",
			"post_id", postID,
			"user", identity.UserID,
			"error", err)
		return operationFailed("delete post", err)
	}
	if !deleted {
		s.logger.Info("[POST-DELETE] no row matched post and owner",
			"post_id", postID,
			"user", identity.UserID)
		return ErrNotAuthorized
	}

	return nil
}

// ListPosts returns the aggregated listing, optionally filtered by search
func (s *postService) ListPosts(ctx context.Context, search string) ([]*PostView, error) {
	views, err := s.repo.List(ctx, search)
	if err != nil {
		s.logger.Error("[POST-LIST] failed to list posts",
			"search", search,
			"error", err)
		return nil, operationFailed("list posts", err)
	}
	if views == nil {
		views = []*PostView{}
	}
	return views, nil
}

func validateContent(content string) error {
	if content == "" {
		return NewValidationError("content", "content is required")
	}
	return nil
}
