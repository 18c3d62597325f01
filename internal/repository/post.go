package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const (
	postsTable  = "posts"
	postColumns = "id, user_id, body, created_at, updated_at"
)

type PostRepository struct {
	db DBTX
}

func NewPostRepository(db DBTX) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) ListPosts(ctx context.Context) ([]model.Post, error) {
	rows, err := r.db.Query(ctx, `SELECT `+postColumns+` FROM posts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	posts, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Post])
	if err != nil {
		return nil, fmt.Errorf("failed to collect posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepository) GetPostByID(ctx context.Context, id int64, with model.Relations) (*model.Post, error) {
	rows, err := r.db.Query(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post %d: %w", id, err)
	}

	post, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Post])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NotFound(postsTable)
		}
		return nil, fmt.Errorf("failed to collect post %d: %w", id, err)
	}

	if with.Has(model.RelationComments) {
		comments, err := loadCommentsByPost(ctx, r.db, []int64{post.ID})
		if err != nil {
			return nil, err
		}
		post.Comments = comments[post.ID]
	}

	return &post, nil
}

func (r *PostRepository) CreatePost(ctx context.Context, post model.Post) (*model.Post, error) {
	rows, err := r.db.Query(ctx, `
		INSERT INTO posts (user_id, body)
		VALUES ($1, $2)
		RETURNING `+postColumns, post.UserID, post.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Post])
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return &created, nil
}

func (r *PostRepository) UpdatePost(ctx context.Context, id int64, patch model.PostPatch) (*model.Post, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE posts
		SET user_id = COALESCE($2, user_id),
		    body = COALESCE($3, body),
		    updated_at = now()
		WHERE id = $1
		RETURNING `+postColumns, id, patch.UserID, patch.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", id, err)
	}

	updated, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Post])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NotFound(postsTable)
		}
		return nil, fmt.Errorf("failed to update post %d: %w", id, err)
	}

	return &updated, nil
}

func (r *PostRepository) DeletePost(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.NotFound(postsTable)
	}
	return nil
}

func (r *PostRepository) PostExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check post %d: %w", id, err)
	}
	return exists, nil
}
