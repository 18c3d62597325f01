package model

import (
	"time"

	"github.com/deppfellow/blog-api/internal/validation"
)

// Comment belongs to a post and to the user who wrote it. It has no children.
type Comment struct {
	ID        int64     `db:"id"`
	PostID    int64     `db:"post_id"`
	UserID    int64     `db:"user_id"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type CommentPatch struct {
	PostID *int64
	UserID *int64
	Body   *string
}

type ListCommentsRequest struct{}

func (r *ListCommentsRequest) Validate() error {
	return nil
}

type CommentIDRequest struct {
	ID int64 `param:"id" json:"-" validate:"gt=0"`
}

func (r *CommentIDRequest) Validate() error {
	return validation.Struct(r)
}

// CreateCommentRequest requires both the post and the author to be named
// explicitly; the author is never inferred from the post.
type CreateCommentRequest struct {
	PostID int64  `json:"post_id" validate:"required,gt=0"`
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Body   string `json:"body" validate:"required,min=1,max=5000"`
}

func (r *CreateCommentRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateCommentRequest struct {
	ID     int64   `param:"id" json:"-" validate:"gt=0"`
	PostID *int64  `json:"post_id" validate:"omitnil,gt=0"`
	UserID *int64  `json:"user_id" validate:"omitnil,gt=0"`
	Body   *string `json:"body" validate:"omitnil,min=1,max=5000"`
}

func (r *UpdateCommentRequest) Validate() error {
	return validation.Struct(r)
}

func (r *UpdateCommentRequest) Patch() CommentPatch {
	return CommentPatch{PostID: r.PostID, UserID: r.UserID, Body: r.Body}
}
