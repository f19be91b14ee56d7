package comments

import (
	"context"
	"log/slog"

	"Postboard/internal/auth"
	"Postboard/internal/core/ownership"
)

type commentService struct {
	repo   Repository
	logger *slog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		repo:   repo,
		logger: logger,
	}
}

func (s *commentService) CreateComment(ctx context.Context, identity auth.Identity, postID int64, req CreateCommentRequest) error {
	if req.Content == "" {
		return ErrContentEmpty
	}
	if identity.IsZero() {
		return ErrNotAuthorized
	}

	comment := &Comment{
		PostID:   postID,
		UserID:   identity.UserID,
		Nickname: identity.Nickname,
		Content:  req.Content,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		s.logger.Error("[COMMENT-CREATE] failed to insert comment",
			"post_id", postID,
			"user", identity.UserID,
			"error", err)
		return operationFailed("create comment", err)
	}

	s.logger.Info("[COMMENT-CREATE] comment created",
		"comment_id", comment.CommentID,
		"post_id", postID,
		"user", identity.UserID)
	return nil
}

func (s *commentService) ListComments(ctx context.Context, postID int64) ([]*Comment, error) {
	result, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		s.logger.Error("[COMMENT-LIST] failed to list comments",
			"post_id", postID,
			"error", err)
		return nil, operationFailed("list comments", err)
	}
	if result == nil {
		result = []*Comment{}
	}
	return result, nil
}

func (s *commentService) UpdateComment(ctx context.Context, identity auth.Identity, postID, commentID int64, req UpdateCommentRequest) error {
	if req.Content == "" {
		return ErrContentEmpty
	}
	if identity.IsZero() {
		return ErrNotAuthorized
	}

	comment := &Comment{
		CommentID: commentID,
		PostID:    postID,
		UserID:    identity.UserID,
		Nickname:  identity.Nickname,
		Content:   req.Content,
	}

	updated, err := s.repo.Update(ctx, comment, ownership.For(identity))
	if err != nil {
		s.logger.Error("[COMMENT-UPDATE] failed to update comment",
			"comment_id", commentID,
			"post_id", postID,
			"error", err)
		return operationFailed("update comment", err)
	}
	if !updated {
		return ErrNotAuthorized
	}
	return nil
}

func (s *commentService) DeleteComment(ctx context.Context, identity auth.Identity, postID, commentID int64) error {
	if identity.IsZero() {
		return ErrNotAuthorized
	}

	deleted, err := s.repo.Delete(ctx, postID, commentID, ownership.For(identity))
	if err != nil {
		s.logger.Error("[COMMENT-DELETE] failed to delete comment",
			"comment_id", commentID,
			"post_id", postID,
			"error", err)
		return operationFailed("delete comment", err)
	}
	if !deleted {
		return ErrNotAuthorized
	}
	return nil
}
