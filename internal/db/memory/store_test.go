package memory

import (
	"context"
	"testing"
	"time"

	"Postboard/internal/core/comments"
	"Postboard/internal/core/likes"
	"Postboard/internal/core/ownership"
	"Postboard/internal/core/posts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ReturnsCopies(t *testing.T) {
	s := New()
	ctx := context.Background()

	p := &posts.Post{UserID: "u1", Nickname: "n", Title: "t", Content: "c"}
	require.NoError(t, s.Posts().Create(ctx, p))

	p.Title = "mutated by caller"
	got, err := s.Posts().GetByID(ctx, p.PostID)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)

	got.Title = "mutated again"
	again, err := s.Posts().GetByID(ctx, p.PostID)
	require.NoError(t, err)
	assert.Equal(t, "t", again.Title)
}

func TestStore_OrderTiesBreakOnID(t *testing.T) {
	s := New()
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Posts().Create(ctx, &posts.Post{UserID: "u", Content: "c"}))
	}

	list, err := s.Posts().List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, int64(3), list[0].PostID)
	assert.Equal(t, int64(1), list[2].PostID)
}

func TestStore_UniqueLikeKey(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.Posts().Create(ctx, &posts.Post{UserID: "u2", Content: "c"}))

	first, created, err := s.Likes().FindOrCreate(ctx, "u1", 1)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := s.Likes().FindOrCreate(ctx, "u1", 1)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.LikeID, second.LikeID)
	assert.Equal(t, 1, s.likeCountLocked(first.PostID))

	removed, err := s.Likes().Delete(ctx, first.LikeID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Likes().Delete(ctx, first.LikeID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestStore_LikeRequiresPost(t *testing.T) {
	s := New()

	_, _, err := s.Likes().FindOrCreate(context.Background(), "u1", 42)
	assert.ErrorIs(t, err, likes.ErrPostNotFound)
	assert.Equal(t, 0, s.likeCountLocked(42))
}

func TestStore_EmptyFilterMatchesNothing(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Posts().Create(ctx, &posts.Post{UserID: "u1", Content: "c"}))
	ok, err := s.Posts().Delete(ctx, 1, ownership.Filter{})
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Comments().Create(ctx, &comments.Comment{PostID: 1, UserID: "u1", Content: "c"}))
	ok, err = s.Comments().Delete(ctx, 1, 1, ownership.Filter{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_ListByIDsSkipsUnknownAndDuplicates(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Posts().Create(ctx, &posts.Post{UserID: "u1", Content: "a"}))
	require.NoError(t, s.Posts().Create(ctx, &posts.Post{UserID: "u1", Content: "b"}))

	list, err := s.Posts().ListByIDs(ctx, []int64{1, 1, 2, 77})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
