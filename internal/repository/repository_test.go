package repository

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/deppfellow/blog-api/internal/database"
	"github.com/deppfellow/blog-api/internal/errs"
	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepositories(t *testing.T) *Repositories {
	t.Helper()

	dsn := os.Getenv("BLOG_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("BLOG_TEST_DATABASE_URL not set, skipping repository tests")
	}

	ctx := context.Background()
	logger := zerolog.Nop()
	require.NoError(t, database.MigrateDSN(ctx, &logger, dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE comments, posts, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return New(pool)
}

func ptr[T any](v T) *T { return &v }

func TestUserRepository_Lifecycle(t *testing.T) {
	repos := setupRepositories(t)
	ctx := context.Background()

	alice, err := repos.User.CreateUser(ctx, model.User{Name: "Alice"})
	require.NoError(t, err)
	assert.Positive(t, alice.ID)
	assert.Equal(t, "Alice", alice.Name)

	bob, err := repos.User.CreateUser(ctx, model.User{Name: "Bob"})
	require.NoError(t, err)

	users, err := repos.User.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, alice.ID, users[0].ID)
	assert.Equal(t, bob.ID, users[1].ID)

	updated, err := repos.User.UpdateUser(ctx, alice.ID, model.UserPatch{})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.Name, "absent fields keep their value")

	updated, err = repos.User.UpdateUser(ctx, alice.ID, model.UserPatch{Name: ptr("Alicia")})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)

	exists, err := repos.User.UserExists(ctx, bob.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repos.User.DeleteUser(ctx, bob.ID))

	_, err = repos.User.GetUserByID(ctx, bob.ID, model.With())
	require.ErrorIs(t, err, pgx.ErrNoRows)

	err = repos.User.DeleteUser(ctx, bob.ID)
	require.ErrorIs(t, err, pgx.ErrNoRows)

	_, err = repos.User.UpdateUser(ctx, bob.ID, model.UserPatch{Name: ptr("ghost")})
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestUserRepository_GetUserByIDLoadsOnlyRequestedRelations(t *testing.T) {
	repos := setupRepositories(t)
	ctx := context.Background()

	alice, err := repos.User.CreateUser(ctx, model.User{Name: "Alice"})
	require.NoError(t, err)
	bob, err := repos.User.CreateUser(ctx, model.User{Name: "Bob"})
	require.NoError(t, err)

	post, err := repos.Post.CreatePost(ctx, model.Post{UserID: alice.ID, Body: "hello"})
	require.NoError(t, err)
	_, err = repos.Post.CreatePost(ctx, model.Post{UserID: bob.ID, Body: "not alice's"})
	require.NoError(t, err)

	_, err = repos.Comment.CreateComment(ctx, model.Comment{PostID: post.ID, UserID: bob.ID, Body: "hi"})
	require.NoError(t, err)

	bare, err := repos.User.GetUserByID(ctx, alice.ID, model.With())
	require.NoError(t, err)
	assert.Nil(t, bare.Posts)
	assert.Nil(t, bare.Comments)

	withPosts, err := repos.User.GetUserByID(ctx, alice.ID, model.With(model.RelationPosts))
	require.NoError(t, err)
	require.Len(t, withPosts.Posts, 1)
	assert.Equal(t, post.ID, withPosts.Posts[0].ID)
	assert.Nil(t, withPosts.Comments)

	both, err := repos.User.GetUserByID(ctx, bob.ID, model.With(model.RelationPosts, model.RelationComments))
	require.NoError(t, err)
	assert.Len(t, both.Posts, 1)
	assert.Len(t, both.Comments, 1)

	loaded, err := repos.Post.GetPostByID(ctx, post.ID, model.With(model.RelationComments))
	require.NoError(t, err)
	require.Len(t, loaded.Comments, 1)
	assert.Equal(t, bob.ID, loaded.Comments[0].UserID)
}

func TestPostRepository_PartialUpdate(t *testing.T) {
	repos := setupRepositories(t)
	ctx := context.Background()

	alice, err := repos.User.CreateUser(ctx, model.User{Name: "Alice"})
	require.NoError(t, err)
	bob, err := repos.User.CreateUser(ctx, model.User{Name: "Bob"})
	require.NoError(t, err)

	post, err := repos.Post.CreatePost(ctx, model.Post{UserID: alice.ID, Body: "draft"})
	require.NoError(t, err)

	updated, err := repos.Post.UpdatePost(ctx, post.ID, model.PostPatch{Body: ptr("final")})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, updated.UserID)
	assert.Equal(t, "final", updated.Body)

	updated, err = repos.Post.UpdatePost(ctx, post.ID, model.PostPatch{UserID: &bob.ID})
	require.NoError(t, err)
	assert.Equal(t, bob.ID, updated.UserID)
	assert.Equal(t, "final", updated.Body)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
}

func TestRepositories_DeleteCascades(t *testing.T) {
	repos := setupRepositories(t)
	ctx := context.Background()

	alice, err := repos.User.CreateUser(ctx, model.User{Name: "Alice"})
	require.NoError(t, err)
	post, err := repos.Post.CreatePost(ctx, model.Post{UserID: alice.ID, Body: "hello"})
	require.NoError(t, err)
	comment, err := repos.Comment.CreateComment(ctx, model.Comment{PostID: post.ID, UserID: alice.ID, Body: "me"})
	require.NoError(t, err)

	require.NoError(t, repos.User.DeleteUser(ctx, alice.ID))

	exists, err := repos.Post.PostExists(ctx, post.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repos.Comment.GetCommentByID(ctx, comment.ID)
	require.ErrorIs(t, err, pgx.ErrNoRows)

	comments, err := repos.Comment.ListComments(ctx)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentRepository_ForeignKeyViolation(t *testing.T) {
	repos := setupRepositories(t)
	ctx := context.Background()

	_, err := repos.Comment.CreateComment(ctx, model.Comment{PostID: 999, UserID: 999, Body: "orphan"})
	require.Error(t, err)

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, sqlerr.ForeignKeyViolation, sqlerr.ErrCode(sqlerr.ConvertPgError(pgErr)))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, sqlerr.HandleError(err), &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}
