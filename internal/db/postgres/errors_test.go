package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		err        error
		name       string
		constraint string
		want       bool
	}{
		{
			name: "pq duplicate on like key",
			err:  &pq.Error{Code: "23505", Constraint: likesUserPostKey},
			want: true, constraint: likesUserPostKey,
		},
		{
			name: "pgx duplicate on like key",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: likesUserPostKey},
			want: true, constraint: likesUserPostKey,
		},
		{
			name: "wrapped pgx duplicate",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: likesUserPostKey}),
			want: true, constraint: likesUserPostKey,
		},
		{
			name: "duplicate on another constraint",
			err:  &pq.Error{Code: "23505", Constraint: "posts_pkey"},
			want: false, constraint: likesUserPostKey,
		},
		{
			name: "any constraint accepted",
			err:  &pq.Error{Code: "23505", Constraint: "posts_pkey"},
			want: true,
		},
		{
			name: "foreign key is not unique",
			err:  &pq.Error{Code: "23503"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("duplicate key value"),
			want: false,
		},
		{
			name: "nil",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err, tt.constraint))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(errors.New("boom")))
}

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "sqlite3", "file::memory:")
	assert.ErrorContains(t, err, "unsupported database driver")
}
