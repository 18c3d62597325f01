package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/blog-api/internal/model"
	"github.com/jackc/pgx/v5"
)

// Each loader issues a single query for every parent id it is given, so
// loading a relation for n parents costs one round trip, not n.

func loadPostsByUser(ctx context.Context, db DBTX, userIDs []int64) (map[int64][]model.Post, error) {
	rows, err := db.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE user_id = ANY($1)
		ORDER BY id`, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts for users: %w", err)
	}

	posts, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Post])
	if err != nil {
		return nil, fmt.Errorf("failed to collect posts: %w", err)
	}

	return groupBy(posts, func(p *model.Post) int64 { return p.UserID }), nil
}

func loadCommentsByPost(ctx context.Context, db DBTX, postIDs []int64) (map[int64][]model.Comment, error) {
	comments, err := loadComments(ctx, db, `WHERE post_id = ANY($1)`, postIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments for posts: %w", err)
	}
	return groupBy(comments, func(c *model.Comment) int64 { return c.PostID }), nil
}

func loadCommentsByUser(ctx context.Context, db DBTX, userIDs []int64) (map[int64][]model.Comment, error) {
	comments, err := loadComments(ctx, db, `WHERE user_id = ANY($1)`, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments for users: %w", err)
	}
	return groupBy(comments, func(c *model.Comment) int64 { return c.UserID }), nil
}

func loadComments(ctx context.Context, db DBTX, where string, ids []int64) ([]model.Comment, error) {
	rows, err := db.Query(ctx, `SELECT `+commentColumns+` FROM comments `+where+` ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Comment])
}

// groupBy buckets items by key, preserving their order within each bucket.
func groupBy[T any](items []T, key func(*T) int64) map[int64][]T {
	out := make(map[int64][]T)
	for i := range items {
		k := key(&items[i])
		out[k] = append(out[k], items[i])
	}
	return out
}
