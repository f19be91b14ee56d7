package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Postboard/internal/core/ownership"
	"Postboard/internal/core/posts"

	"github.com/lib/pq"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

const postColumns = `post_id, user_id, nickname, title, content, created_at, updated_at`

// Create inserts a new post and fills in the generated id and timestamps
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (user_id, nickname, title, content)
		VALUES ($1, $2, $3, $4)
		RETURNING post_id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		post.UserID, post.Nickname, post.Title, post.Content,
	).Scan(&post.PostID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by id
func (r *postgresPostRepo) GetByID(ctx context.Context, postID int64) (*posts.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE post_id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, postID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// Update rewrites a post only when post_id and user_id both match.
// Returns false, nil when no row matched.
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post, owner ownership.Filter) (bool, error) {
	if owner.UserID == "" {
		return false, nil
	}

	query := `
		UPDATE posts
		SET title = $1, content = $2, nickname = $3, updated_at = NOW()
		WHERE post_id = $4 AND user_id = $5
		RETURNING ` + postColumns

	updated, err := scanPost(r.db.QueryRowContext(ctx, query,
		post.Title, post.Content, post.Nickname, post.PostID, owner.UserID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to update post: %w", err)
	}

	*post = *updated
	return true, nil
}

// Delete removes a post only when post_id and user_id both match.
// Likes go with it via ON DELETE CASCADE; comments stay.
func (r *postgresPostRepo) Delete(ctx context.Context, postID int64, owner ownership.Filter) (bool, error) {
	if owner.UserID == "" {
		return false, nil
	}

	result, err := r.db.ExecContext(ctx,
		`DELETE FROM posts WHERE post_id = $1 AND user_id = $2`,
		postID, owner.UserID)
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %w", err)
	}

	return rowsAffected > 0, nil
}

// List returns posts newest first with like counts aggregated at read time.
// A non-empty search must appear in both title and content (case-sensitive).
func (r *postgresPostRepo) List(ctx context.Context, search string) ([]*posts.PostView, error) {
	query := `
		SELECT
			p.post_id, p.user_id, p.nickname, p.title, p.content, p.created_at, p.updated_at,
			COALESCE(l.like_count, 0) AS like_count
		FROM posts p
		LEFT JOIN (
			SELECT post_id, COUNT(*) AS like_count
			FROM likes
			GROUP BY post_id
		) l ON l.post_id = p.post_id
	`
	var args []interface{}
	if search != "" {
		query += ` WHERE strpos(p.title, $1) > 0 AND strpos(p.content, $1) > 0`
		args = append(args, search)
	}
	query += ` ORDER BY p.created_at DESC, p.post_id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]*posts.PostView, 0)
	for rows.Next() {
		var view posts.PostView
		err := rows.Scan(
			&view.PostID, &view.UserID, &view.Nickname, &view.Title, &view.Content,
			&view.CreatedAt, &view.UpdatedAt, &view.LikeCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, &view)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return result, nil
}

// ListByIDs loads a batch of posts, newest first. Unknown ids are skipped.
func (r *postgresPostRepo) ListByIDs(ctx context.Context, postIDs []int64) ([]*posts.Post, error) {
	if len(postIDs) == 0 {
		return []*posts.Post{}, nil
	}

	// Use ANY($1) for PostgreSQL array support with pq.Array() for type conversion
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE post_id = ANY($1::bigint[])
		ORDER BY created_at DESC, post_id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(postIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by id: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]*posts.Post, 0, len(postIDs))
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*posts.Post, error) {
	var post posts.Post
	err := row.Scan(
		&post.PostID, &post.UserID, &post.Nickname, &post.Title, &post.Content,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}
