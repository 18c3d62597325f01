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
	commentsTable  = "comments"
	commentColumns = "id, post_id, user_id, body, created_at, updated_at"
)

type CommentRepository struct {
	db DBTX
}

func NewCommentRepository(db DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) ListComments(ctx context.Context) ([]model.Comment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+commentColumns+` FROM comments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Comment])
	if err != nil {
		return nil, fmt.Errorf("failed to collect comments: %w", err)
	}

	return comments, nil
}

func (r *CommentRepository) GetCommentByID(ctx context.Context, id int64) (*model.Comment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment %d: %w", id, err)
	}

	comment, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Comment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NotFound(commentsTable)
		}
		return nil, fmt.Errorf("failed to collect comment %d: %w", id, err)
	}

	return &comment, nil
}

func (r *CommentRepository) CreateComment(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	rows, err := r.db.Query(ctx, `
		INSERT INTO comments (post_id, user_id, body)
		VALUES ($1, $2, $3)
		RETURNING `+commentColumns, comment.PostID, comment.UserID, comment.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Comment])
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return &created, nil
}

func (r *CommentRepository) UpdateComment(ctx context.Context, id int64, patch model.CommentPatch) (*model.Comment, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE comments
		SET post_id = COALESCE($2, post_id),
		    user_id = COALESCE($3, user_id),
		    body = COALESCE($4, body),
		    updated_at = now()
		WHERE id = $1
		RETURNING `+commentColumns, id, patch.PostID, patch.UserID, patch.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment %d: %w", id, err)
	}

	updated, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Comment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NotFound(commentsTable)
		}
		return nil, fmt.Errorf("failed to update comment %d: %w", id, err)
	}

	return &updated, nil
}

func (r *CommentRepository) DeleteComment(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.NotFound(commentsTable)
	}
	return nil
}
