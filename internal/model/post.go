package model

import (
	"time"

	"github.com/deppfellow/blog-api/internal/validation"
)

// Post is a stored post. Comments is only populated when requested.
type Post struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	Comments []Comment `db:"-"`
}

type PostPatch struct {
	UserID *int64
	Body   *string
}

type ListPostsRequest struct{}

func (r *ListPostsRequest) Validate() error {
	return nil
}

type PostIDRequest struct {
	ID int64 `param:"id" json:"-" validate:"gt=0"`
}

func (r *PostIDRequest) Validate() error {
	return validation.Struct(r)
}

// CreatePostRequest requires an owner; its existence is checked by the post service.
type CreatePostRequest struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Body   string `json:"body" validate:"required,min=1,max=10000"`
}

func (r *CreatePostRequest) Validate() error {
	return validation.Struct(r)
}

type UpdatePostRequest struct {
	ID     int64   `param:"id" json:"-" validate:"gt=0"`
	UserID *int64  `json:"user_id" validate:"omitnil,gt=0"`
	Body   *string `json:"body" validate:"omitnil,min=1,max=10000"`
}

func (r *UpdatePostRequest) Validate() error {
	return validation.Struct(r)
}

func (r *UpdatePostRequest) Patch() PostPatch {
	return PostPatch{UserID: r.UserID, Body: r.Body}
}
