package comments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Postboard/internal/api/middleware"
	"Postboard/internal/auth"
	"Postboard/internal/core/comments"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCommentService implements comments.Service for testing
type mockCommentService struct {
	createFunc func(ctx context.Context, identity auth.Identity, postID int64, req comments.CreateCommentRequest) error
	listFunc   func(ctx context.Context, postID int64) ([]*comments.Comment, error)
	updateFunc func(ctx context.Context, identity auth.Identity, postID, commentID int64, req comments.UpdateCommentRequest) error
	deleteFunc func(ctx context.Context, identity auth.Identity, postID, commentID int64) error
}

func (m *mockCommentService) CreateComment(ctx context.Context, identity auth.Identity, postID int64, req comments.CreateCommentRequest) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, identity, postID, req)
	}
	return nil
}

func (m *mockCommentService) ListComments(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, postID)
	}
	return []*comments.Comment{}, nil
}

func (m *mockCommentService) UpdateComment(ctx context.Context, identity auth.Identity, postID, commentID int64, req comments.UpdateCommentRequest) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, identity, postID, commentID, req)
	}
	return nil
}

func (m *mockCommentService) DeleteComment(ctx context.Context, identity auth.Identity, postID, commentID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, identity, postID, commentID)
	}
	return nil
}

var bob = auth.Identity{UserID: "user-2", Nickname: "bob"}

func newRequest(method string, body interface{}, params map[string]string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}

	req := httptest.NewRequest(method, "/posts/x/comments", &buf)
	req.Header.Set("Content-Type", "application/json")

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = middleware.SetTestIdentity(ctx, bob)
	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreateCommentHandler_Success(t *testing.T) {
	var gotPostID int64
	var gotIdentity auth.Identity
	service := &mockCommentService{
		createFunc: func(_ context.Context, identity auth.Identity, postID int64, req comments.CreateCommentRequest) error {
			gotIdentity = identity
			gotPostID = postID
			assert.Equal(t, "nice post", req.Content)
			return nil
		},
	}

	w := httptest.NewRecorder()
	NewCreateCommentHandler(service).HandleCreate(w, newRequest(http.MethodPost,
		comments.CreateCommentRequest{Content: "nice post"}, map[string]string{"postId": "7"}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(7), gotPostID)
	assert.Equal(t, bob, gotIdentity)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Comment created", body["message"])
}

func TestCreateCommentHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		postID     string
		body       interface{}
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "empty content",
			postID:     "7",
			body:       comments.CreateCommentRequest{},
			serviceErr: comments.ErrContentEmpty,
			wantStatus: http.StatusPreconditionFailed,
			wantError:  "ValidationError",
		},
		{
			name:       "empty content on bad post id",
			postID:     "abc",
			body:       comments.CreateCommentRequest{},
			wantStatus: http.StatusPreconditionFailed,
			wantError:  "ValidationError",
		},
		{
			name:       "bad post id",
			postID:     "abc",
			body:       comments.CreateCommentRequest{Content: "hi"},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Unauthorized",
		},
		{
			name:       "store fault",
			postID:     "7",
			body:       comments.CreateCommentRequest{Content: "hi"},
			serviceErr: fmt.Errorf("%w: insert: %w", comments.ErrOperationFailed, errors.New("connection reset")),
			wantStatus: http.StatusBadRequest,
			wantError:  "OperationFailed",
		},
		{
			name:       "malformed json",
			postID:     "7",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
			wantError:  "InvalidRequest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			service := &mockCommentService{
				createFunc: func(context.Context, auth.Identity, int64, comments.CreateCommentRequest) error {
					called = true
					return tt.serviceErr
				},
			}

			w := httptest.NewRecorder()
			NewCreateCommentHandler(service).HandleCreate(w, newRequest(http.MethodPost,
				tt.body, map[string]string{"postId": tt.postID}))

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantError, body["error"])
			if tt.postID == "abc" {
				assert.False(t, called, "service must not be called for a non-integer post id")
			}
		})
	}
}

func TestGetCommentsHandler(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	service := &mockCommentService{
		listFunc: func(_ context.Context, postID int64) ([]*comments.Comment, error) {
			if postID != 3 {
				return []*comments.Comment{}, nil
			}
			return []*comments.Comment{
				{CommentID: 2, PostID: 3, UserID: "user-2", Nickname: "bob", Content: "second", CreatedAt: created},
				{CommentID: 1, PostID: 3, UserID: "user-1", Nickname: "alice", Content: "first", CreatedAt: created},
			}, nil
		},
	}
	handler := NewGetCommentsHandler(service)

	t.Run("lists newest first", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.HandleGetComments(w, newRequest(http.MethodGet, nil, map[string]string{"postId": "3"}))

		require.Equal(t, http.StatusOK, w.Code)
		var resp GetCommentsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		require.Len(t, resp.Comments, 2)
		assert.Equal(t, "second", resp.Comments[0].Content)
	})

	t.Run("unknown post is an empty list", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.HandleGetComments(w, newRequest(http.MethodGet, nil, map[string]string{"postId": "99"}))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"comments":[],"success":true}`, w.Body.String())
	})

	t.Run("non-integer post id is an empty list", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.HandleGetComments(w, newRequest(http.MethodGet, nil, map[string]string{"postId": "abc"}))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"comments":[],"success":true}`, w.Body.String())
	})

	t.Run("store fault", func(t *testing.T) {
		failing := &mockCommentService{
			listFunc: func(context.Context, int64) ([]*comments.Comment, error) {
				return nil, comments.ErrOperationFailed
			},
		}
		w := httptest.NewRecorder()
		NewGetCommentsHandler(failing).HandleGetComments(w,
			newRequest(http.MethodGet, nil, map[string]string{"postId": "3"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "OperationFailed", decodeBody(t, w)["error"])
	})
}

func TestUpdateCommentHandler(t *testing.T) {
	tests := []struct {
		name       string
		params     map[string]string
		body       interface{}
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "success",
			params:     map[string]string{"postId": "1", "commentId": "4"},
			body:       comments.UpdateCommentRequest{Content: "edited"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not the author",
			params:     map[string]string{"postId": "1", "commentId": "4"},
			body:       comments.UpdateCommentRequest{Content: "edited"},
			serviceErr: comments.ErrNotAuthorized,
			wantStatus: http.StatusUnauthorized,
			wantError:  "Unauthorized",
		},
		{
			name:       "empty content",
			params:     map[string]string{"postId": "1", "commentId": "4"},
			body:       comments.UpdateCommentRequest{},
			serviceErr: comments.ErrContentEmpty,
			wantStatus: http.StatusPreconditionFailed,
			wantError:  "ValidationError",
		},
		{
			name:       "non-integer comment id",
			params:     map[string]string{"postId": "1", "commentId": "x"},
			body:       comments.UpdateCommentRequest{Content: "edited"},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPostID, gotCommentID int64
			service := &mockCommentService{
				updateFunc: func(_ context.Context, _ auth.Identity, postID, commentID int64, _ comments.UpdateCommentRequest) error {
					gotPostID, gotCommentID = postID, commentID
					return tt.serviceErr
				},
			}

			w := httptest.NewRecorder()
			NewUpdateCommentHandler(service).HandleUpdate(w, newRequest(http.MethodPut, tt.body, tt.params))

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeBody(t, w)
			if tt.wantError == "" {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, int64(1), gotPostID)
				assert.Equal(t, int64(4), gotCommentID)
				return
			}
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}

func TestDeleteCommentHandler(t *testing.T) {
	tests := []struct {
		name       string
		params     map[string]string
		serviceErr error
		wantStatus int
	}{
		{"success", map[string]string{"postId": "1", "commentId": "4"}, nil, http.StatusOK},
		{"not the author", map[string]string{"postId": "1", "commentId": "4"}, comments.ErrNotAuthorized, http.StatusUnauthorized},
		{"non-integer post id", map[string]string{"postId": "x", "commentId": "4"}, nil, http.StatusUnauthorized},
		{"store fault", map[string]string{"postId": "1", "commentId": "4"}, comments.ErrOperationFailed, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockCommentService{
				deleteFunc: func(context.Context, auth.Identity, int64, int64) error {
					return tt.serviceErr
				},
			}

			w := httptest.NewRecorder()
			NewDeleteCommentHandler(service).HandleDelete(w, newRequest(http.MethodDelete, nil, tt.params))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"success":true,"message":"Comment deleted"}`, w.Body.String())
			}
		})
	}
}
