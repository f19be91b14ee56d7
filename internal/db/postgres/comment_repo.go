package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Postboard/internal/core/comments"
	"Postboard/internal/core/ownership"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

const commentColumns = `comment_id, post_id, user_id, nickname, content, created_at, updated_at`

// Create inserts a new comment. The post is not checked for existence.
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	query := `
		INSERT INTO comments (post_id, user_id, nickname, content)
		VALUES ($1, $2, $3, $4)
		RETURNING comment_id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		comment.PostID, comment.UserID, comment.Nickname, comment.Content,
	).Scan(&comment.CommentID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// ListByPost retrieves a post's comments ordered by created_at DESC
func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at DESC, comment_id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]*comments.Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, comment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return result, nil
}

// Update rewrites the comment matching comment_id, post_id and user_id
func (r *postgresCommentRepo) Update(ctx context.Context, comment *comments.Comment, owner ownership.Filter) (bool, error) {
	if owner.UserID == "" {
		return false, nil
	}

	query := `
		UPDATE comments
		SET content = $1, nickname = $2, updated_at = NOW()
		WHERE comment_id = $3 AND post_id = $4 AND user_id = $5
		RETURNING ` + commentColumns

	updated, err := scanComment(r.db.QueryRowContext(ctx, query,
		comment.Content, comment.Nickname, comment.CommentID, comment.PostID, owner.UserID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to update comment: %w", err)
	}

	*comment = *updated
	return true, nil
}

// Delete removes the comment matching comment_id, post_id and user_id
func (r *postgresCommentRepo) Delete(ctx context.Context, postID, commentID int64, owner ownership.Filter) (bool, error) {
	if owner.UserID == "" {
		return false, nil
	}

	result, err := r.db.ExecContext(ctx,
		`DELETE FROM comments WHERE comment_id = $1 AND post_id = $2 AND user_id = $3`,
		commentID, postID, owner.UserID)
	if err != nil {
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %w", err)
	}

	return rowsAffected > 0, nil
}

func scanComment(row rowScanner) (*comments.Comment, error) {
	var c comments.Comment
	err := row.Scan(
		&c.CommentID, &c.PostID, &c.UserID, &c.Nickname, &c.Content,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
