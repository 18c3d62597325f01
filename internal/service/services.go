// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, checks that
// referenced records exist, and calls the stores to read and
// write users, posts and comments.
package service

import (
	"context"

	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/repository"
	"github.com/deppfellow/blog-api/internal/server"
)

// UserStore is the persistence the user, post and comment services need for users.
type UserStore interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id int64, with model.Relations) (*model.User, error)
	CreateUser(ctx context.Context, user model.User) (*model.User, error)
	UpdateUser(ctx context.Context, id int64, patch model.UserPatch) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
	UserExists(ctx context.Context, id int64) (bool, error)
}

type PostStore interface {
	ListPosts(ctx context.Context) ([]model.Post, error)
	GetPostByID(ctx context.Context, id int64, with model.Relations) (*model.Post, error)
	CreatePost(ctx context.Context, post model.Post) (*model.Post, error)
	UpdatePost(ctx context.Context, id int64, patch model.PostPatch) (*model.Post, error)
	DeletePost(ctx context.Context, id int64) error
	PostExists(ctx context.Context, id int64) (bool, error)
}

type CommentStore interface {
	ListComments(ctx context.Context) ([]model.Comment, error)
	GetCommentByID(ctx context.Context, id int64) (*model.Comment, error)
	CreateComment(ctx context.Context, comment model.Comment) (*model.Comment, error)
	UpdateComment(ctx context.Context, id int64, patch model.CommentPatch) (*model.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}

type Services struct {
	Auth    *AuthService
	User    *UserService
	Post    *PostService
	Comment *CommentService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return NewServicesWithStores(s, repos.User, repos.Post, repos.Comment)
}

// NewServicesWithStores wires the services on top of arbitrary store
// implementations, e.g. an in-memory store in tests.
func NewServicesWithStores(s *server.Server, users UserStore, posts PostStore, comments CommentStore) (*Services, error) {
	return &Services{
		Auth:    NewAuthService(s),
		User:    NewUserService(users),
		Post:    NewPostService(posts, users),
		Comment: NewCommentService(comments, posts, users),
	}, nil
}
