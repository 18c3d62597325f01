package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/deppfellow/blog-api/internal/errs"
	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/sqlerr"
	"github.com/deppfellow/blog-api/internal/testutil"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *testutil.MemStore
	users    *UserService
	posts    *PostService
	comments *CommentService
}

func newFixture() *fixture {
	store := testutil.NewMemStore()
	return &fixture{
		store:    store,
		users:    NewUserService(store),
		posts:    NewPostService(store, store),
		comments: NewCommentService(store, store, store),
	}
}

func ptr[T any](v T) *T { return &v }

func requireFieldErrors(t *testing.T, err error, fields ...string) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, errs.ValidationFailedMessage, httpErr.Message)

	got := make([]string, 0, len(httpErr.Errors))
	for _, fe := range httpErr.Errors {
		got = append(got, fe.Field)
		assert.Equal(t, "does not exist", fe.Error)
	}
	assert.ElementsMatch(t, fields, got)
}

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown owner", func(t *testing.T) {
		f := newFixture()

		_, err := f.posts.CreatePost(ctx, &model.CreatePostRequest{UserID: 42, Body: "hello"})
		requireFieldErrors(t, err, "user_id")

		posts, err := f.posts.ListPosts(ctx)
		require.NoError(t, err)
		assert.Empty(t, posts, "nothing is written")
	})

	t.Run("known owner", func(t *testing.T) {
		f := newFixture()
		user, err := f.users.CreateUser(ctx, &model.CreateUserRequest{Name: "Alice"})
		require.NoError(t, err)

		post, err := f.posts.CreatePost(ctx, &model.CreatePostRequest{UserID: user.ID, Body: "hello"})
		require.NoError(t, err)
		assert.Equal(t, user.ID, post.UserID)
		assert.Equal(t, "hello", post.Body)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("missing post wins over missing owner", func(t *testing.T) {
		f := newFixture()

		_, err := f.posts.UpdatePost(ctx, &model.UpdatePostRequest{ID: 7, UserID: ptr(int64(99))})
		require.ErrorIs(t, err, pgx.ErrNoRows)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, sqlerr.HandleError(err), &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "Post not found", httpErr.Message)
	})

	t.Run("unknown new owner", func(t *testing.T) {
		f := newFixture()
		user, err := f.users.CreateUser(ctx, &model.CreateUserRequest{Name: "Alice"})
		require.NoError(t, err)
		post, err := f.posts.CreatePost(ctx, &model.CreatePostRequest{UserID: user.ID, Body: "hello"})
		require.NoError(t, err)

		_, err = f.posts.UpdatePost(ctx, &model.UpdatePostRequest{ID: post.ID, UserID: ptr(int64(99))})
		requireFieldErrors(t, err, "user_id")
	})

	t.Run("partial body update keeps owner", func(t *testing.T) {
		f := newFixture()
		user, err := f.users.CreateUser(ctx, &model.CreateUserRequest{Name: "Alice"})
		require.NoError(t, err)
		post, err := f.posts.CreatePost(ctx, &model.CreatePostRequest{UserID: user.ID, Body: "hello"})
		require.NoError(t, err)

		updated, err := f.posts.UpdatePost(ctx, &model.UpdatePostRequest{ID: post.ID, Body: ptr("edited")})
		require.NoError(t, err)
		assert.Equal(t, user.ID, updated.UserID)
		assert.Equal(t, "edited", updated.Body)
	})
}

func TestCommentService_CreateComment(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	alice, err := f.users.CreateUser(ctx, &model.CreateUserRequest{Name: "Alice"})
	require.NoError(t, err)
	bob, err := f.users.CreateUser(ctx, &model.CreateUserRequest{Name: "Bob"})
	require.NoError(t, err)
	post, err := f.posts.CreatePost(ctx, &model.CreatePostRequest{UserID: alice.ID, Body: "hello"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		req    model.CreateCommentRequest
		fields []string
	}{
		{"unknown post", model.CreateCommentRequest{PostID: 404, UserID: bob.ID, Body: "hi"}, []string{"post_id"}},
		{"unknown user", model.CreateCommentRequest{PostID: post.ID, UserID: 404, Body: "hi"}, []string{"user_id"}},
		{"both unknown", model.CreateCommentRequest{PostID: 404, UserID: 405, Body: "hi"}, []string{"post_id", "user_id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.comments.CreateComment(ctx, &tt.req)
			requireFieldErrors(t, err, tt.fields...)
		})
	}

	t.Run("author is taken from the request, not the post", func(t *testing.T) {
		comment, err := f.comments.CreateComment(ctx, &model.CreateCommentRequest{PostID: post.ID, UserID: bob.ID, Body: "hi"})
		require.NoError(t, err)
		assert.Equal(t, bob.ID, comment.UserID)
		assert.Equal(t, post.ID, comment.PostID)
	})
}

func TestCommentService_UpdateComment(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	alice, err := f.users.CreateUser(ctx, &model.CreateUserRequest{Name: "Alice"})
	require.NoError(t, err)
	post, err := f.posts.CreatePost(ctx, &model.CreatePostRequest{UserID: alice.ID, Body: "hello"})
	require.NoError(t, err)
	comment, err := f.comments.CreateComment(ctx, &model.CreateCommentRequest{PostID: post.ID, UserID: alice.ID, Body: "first"})
	require.NoError(t, err)

	_, err = f.comments.UpdateComment(ctx, &model.UpdateCommentRequest{ID: 999, PostID: ptr(int64(999))})
	require.ErrorIs(t, err, pgx.ErrNoRows)

	_, err = f.comments.UpdateComment(ctx, &model.UpdateCommentRequest{ID: comment.ID, PostID: ptr(int64(999))})
	requireFieldErrors(t, err, "post_id")

	updated, err := f.comments.UpdateComment(ctx, &model.UpdateCommentRequest{ID: comment.ID, Body: ptr("second")})
	require.NoError(t, err)
	assert.Equal(t, "second", updated.Body)
	assert.Equal(t, alice.ID, updated.UserID)
}

func TestUserService_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	alice, err := f.users.CreateUser(ctx, &model.CreateUserRequest{Name: "Alice"})
	require.NoError(t, err)
	bob, err := f.users.CreateUser(ctx, &model.CreateUserRequest{Name: "Bob"})
	require.NoError(t, err)
	post, err := f.posts.CreatePost(ctx, &model.CreatePostRequest{UserID: alice.ID, Body: "hello"})
	require.NoError(t, err)
	_, err = f.comments.CreateComment(ctx, &model.CreateCommentRequest{PostID: post.ID, UserID: bob.ID, Body: "hi"})
	require.NoError(t, err)

	require.NoError(t, f.users.DeleteUser(ctx, alice.ID))

	_, err = f.posts.GetPost(ctx, post.ID, model.With())
	require.ErrorIs(t, err, pgx.ErrNoRows)

	loaded, err := f.users.GetUser(ctx, bob.ID, model.With(model.RelationComments))
	require.NoError(t, err)
	assert.Empty(t, loaded.Comments, "comments on the deleted post are gone")

	err = f.users.DeleteUser(ctx, alice.ID)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}
