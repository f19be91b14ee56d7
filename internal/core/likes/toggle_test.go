package likes_test

import (
	"context"
	"sync"
	"testing"

	"Postboard/internal/auth"
	"Postboard/internal/core/likes"
	"Postboard/internal/core/posts"
	"Postboard/internal/db/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixture(t *testing.T) (likes.Repository, posts.Service, likes.Service) {
	t.Helper()
	store := memory.New()
	likeRepo := store.Likes()
	postService := posts.NewService(store.Posts(), nil)
	likeService := likes.NewService(likeRepo, store.Posts(), nil)
	return likeRepo, postService, likeService
}

// likedIDs returns the post ids of the user's like rows
func likedIDs(t *testing.T, repo likes.Repository, userID string) []int64 {
	t.Helper()
	ids, err := repo.ListPostIDsByUser(context.Background(), userID)
	require.NoError(t, err)
	return ids
}

func likeCount(t *testing.T, svc posts.Service, postID int64) int {
	t.Helper()
	list, err := svc.ListPosts(context.Background(), "")
	require.NoError(t, err)
	for _, p := range list {
		if p.PostID == postID {
			return p.LikeCount
		}
	}
	t.Fatalf("post %d not listed", postID)
	return 0
}

func createPost(t *testing.T, svc posts.Service, who auth.Identity, title, content string) int64 {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, svc.CreatePost(ctx, who, posts.CreatePostRequest{Title: title, Content: content}))

	list, err := svc.ListPosts(ctx, "")
	require.NoError(t, err)
	require.NotEmpty(t, list)
	return list[0].PostID
}

func TestToggleLike_PairRestoresState(t *testing.T) {
	likeRepo, postService, likeService := newFixture(t)
	ctx := context.Background()
	u := auth.Identity{UserID: "u1", Nickname: "one"}

	postID := createPost(t, postService, u, "t", "c")

	result, err := likeService.ToggleLike(ctx, u, postID)
	require.NoError(t, err)
	assert.Equal(t, likes.Created, result)
	assert.Equal(t, 1, likeCount(t, postService, postID))
	assert.Equal(t, []int64{postID}, likedIDs(t, likeRepo, u.UserID))

	result, err = likeService.ToggleLike(ctx, u, postID)
	require.NoError(t, err)
	assert.Equal(t, likes.Deleted, result)
	assert.Equal(t, 0, likeCount(t, postService, postID))
	assert.Empty(t, likedIDs(t, likeRepo, u.UserID))
}

func TestToggleLike_MissingPost(t *testing.T) {
	likeRepo, _, likeService := newFixture(t)
	u := auth.Identity{UserID: "u1", Nickname: "one"}

	_, err := likeService.ToggleLike(context.Background(), u, 12345)
	assert.ErrorIs(t, err, likes.ErrPostNotFound)
	assert.Empty(t, likedIDs(t, likeRepo, u.UserID))
}

func TestToggleLike_LikeCountAndLikedPosts(t *testing.T) {
	_, postService, likeService := newFixture(t)
	ctx := context.Background()
	author := auth.Identity{UserID: "author", Nickname: "writer"}
	u1 := auth.Identity{UserID: "u1", Nickname: "one"}
	u2 := auth.Identity{UserID: "u2", Nickname: "two"}
	u3 := auth.Identity{UserID: "u3", Nickname: "three"}

	postID := createPost(t, postService, author, "t", "c")

	for _, u := range []auth.Identity{u1, u2, u3} {
		result, err := likeService.ToggleLike(ctx, u, postID)
		require.NoError(t, err)
		require.Equal(t, likes.Created, result)
	}

	list, err := postService.ListPosts(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].LikeCount)

	liked, err := likeService.LikedPosts(ctx, u1)
	require.NoError(t, err)
	require.Len(t, liked, 1)
	assert.Equal(t, postID, liked[0].PostID)

	_, err = likeService.ToggleLike(ctx, u1, postID)
	require.NoError(t, err)

	list, err = postService.ListPosts(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, list[0].LikeCount)

	liked, err = likeService.LikedPosts(ctx, u1)
	require.NoError(t, err)
	assert.Empty(t, liked)
}

func TestToggleLike_DeletedPostDropsLikes(t *testing.T) {
	likeRepo, postService, likeService := newFixture(t)
	ctx := context.Background()
	u := auth.Identity{UserID: "u1", Nickname: "one"}

	postID := createPost(t, postService, u, "t", "c")
	_, err := likeService.ToggleLike(ctx, u, postID)
	require.NoError(t, err)

	require.NoError(t, postService.DeletePost(ctx, u, postID))
	assert.Empty(t, likedIDs(t, likeRepo, u.UserID))

	liked, err := likeService.LikedPosts(ctx, u)
	require.NoError(t, err)
	assert.Empty(t, liked)
}

func TestToggleLike_ConcurrentTogglesKeepOneRow(t *testing.T) {
	likeRepo, postService, likeService := newFixture(t)
	ctx := context.Background()
	u := auth.Identity{UserID: "u1", Nickname: "one"}

	postID := createPost(t, postService, u, "t", "c")

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := likeService.ToggleLike(ctx, u, postID); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("toggle failed: %v", err)
	}
	rows := likedIDs(t, likeRepo, u.UserID)
	assert.LessOrEqual(t, len(rows), 1)
	assert.Equal(t, len(rows), likeCount(t, postService, postID))
}
