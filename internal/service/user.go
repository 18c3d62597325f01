package service

import (
	"context"

	"github.com/deppfellow/blog-api/internal/model"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.ListUsers(ctx)
}

// GetUser loads the user and the relations in with.
func (s *UserService) GetUser(ctx context.Context, id int64, with model.Relations) (*model.User, error) {
	return s.users.GetUserByID(ctx, id, with)
}

func (s *UserService) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	return s.users.CreateUser(ctx, model.User{Name: req.Name})
}

func (s *UserService) UpdateUser(ctx context.Context, req *model.UpdateUserRequest) (*model.User, error) {
	return s.users.UpdateUser(ctx, req.ID, req.Patch())
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	return s.users.DeleteUser(ctx, id)
}
