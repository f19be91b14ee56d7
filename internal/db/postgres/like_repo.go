package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Postboard/internal/core/likes"
)

// likesUserPostKey is the unique constraint on likes(user_id, post_id)
const likesUserPostKey = "likes_user_post_key"

// maxFindOrCreateAttempts bounds the insert/select loop when a concurrent
// toggle keeps deleting the row between our insert and our read.
const maxFindOrCreateAttempts = 3

type postgresLikeRepo struct {
	db *sql.DB
}

// NewLikeRepository creates a new PostgreSQL like repository
func NewLikeRepository(db *sql.DB) likes.Repository {
	return &postgresLikeRepo{db: db}
}

// FindOrCreate inserts the (user, post) like. A unique violation means the row
// already existed, in which case the existing row is returned with created=false.
// A foreign key violation means the post vanished and maps to ErrPostNotFound.
func (r *postgresLikeRepo) FindOrCreate(ctx context.Context, userID string, postID int64) (*likes.Like, bool, error) {
	insert := `
		INSERT INTO likes (user_id, post_id)
		VALUES ($1, $2)
		RETURNING like_id, created_at
	`

	for attempt := 0; attempt < maxFindOrCreateAttempts; attempt++ {
		like := &likes.Like{UserID: userID, PostID: postID}
		err := r.db.QueryRowContext(ctx, insert, userID, postID).Scan(&like.LikeID, &like.CreatedAt)
		if err == nil {
			return like, true, nil
		}

		if isForeignKeyViolation(err) {
			return nil, false, likes.ErrPostNotFound
		}
		if !isUniqueViolation(err, likesUserPostKey) {
			return nil, false, fmt.Errorf("failed to insert like: %w", err)
		}

		existing, err := r.getByUserAndPost(ctx, userID, postID)
		if errors.Is(err, likes.ErrLikeNotFound) {
			// deleted again before we could read it; try the insert once more
			continue
		}
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	return nil, false, fmt.Errorf("like (%s, %d) contended after %d attempts: %w",
		userID, postID, maxFindOrCreateAttempts, likes.ErrLikeAlreadyExists)
}

func (r *postgresLikeRepo) getByUserAndPost(ctx context.Context, userID string, postID int64) (*likes.Like, error) {
	query := `
		SELECT like_id, user_id, post_id, created_at
		FROM likes
		WHERE user_id = $1 AND post_id = $2
	`

	var like likes.Like
	err := r.db.QueryRowContext(ctx, query, userID, postID).Scan(
		&like.LikeID, &like.UserID, &like.PostID, &like.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, likes.ErrLikeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get like: %w", err)
	}

	return &like, nil
}

// Delete removes a like by id and reports whether a row was removed
func (r *postgresLikeRepo) Delete(ctx context.Context, likeID int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE like_id = $1`, likeID)
	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %w", err)
	}

	return rowsAffected > 0, nil
}

// ListPostIDsByUser returns the ids of every post the user has liked
func (r *postgresLikeRepo) ListPostIDsByUser(ctx context.Context, userID string) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT post_id FROM likes WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list liked post ids: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan post id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating liked post ids: %w", err)
	}

	return ids, nil
}
