package model

import (
	"time"

	"github.com/deppfellow/blog-api/internal/validation"
)

// User is a stored user. Posts and Comments are only populated when the
// matching relation was requested from the store.
type User struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	Posts    []Post    `db:"-"`
	Comments []Comment `db:"-"`
}

// UserPatch carries the fields of a partial update; nil means unchanged.
type UserPatch struct {
	Name *string
}

// ListUsersRequest has no input.
type ListUsersRequest struct{}

func (r *ListUsersRequest) Validate() error {
	return nil
}

// UserIDRequest addresses a single user by path id.
type UserIDRequest struct {
	ID int64 `param:"id" json:"-" validate:"gt=0"`
}

func (r *UserIDRequest) Validate() error {
	return validation.Struct(r)
}

type CreateUserRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateUserRequest struct {
	ID   int64   `param:"id" json:"-" validate:"gt=0"`
	Name *string `json:"name" validate:"omitnil,min=1,max=255"`
}

func (r *UpdateUserRequest) Validate() error {
	return validation.Struct(r)
}

// Patch returns the fields present in the request.
func (r *UpdateUserRequest) Patch() UserPatch {
	return UserPatch{Name: r.Name}
}
