package handler

import (
	"context"

	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/resource"
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/deppfellow/blog-api/internal/service"
	"github.com/labstack/echo/v4"
)

// Relations eagerly loaded by the user endpoints.
var (
	showUserRelations     = model.With(model.RelationPosts, model.RelationComments)
	userPostsRelations    = model.With(model.RelationPosts)
	userCommentsRelations = model.With(model.RelationComments)
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// ResolveUser fails with a 404 when no user has id.
func (h *UserHandler) ResolveUser(ctx context.Context, id int64) error {
	_, err := h.users.GetUser(ctx, id, model.With())
	return err
}

func (h *UserHandler) ListUsers(c echo.Context, _ *model.ListUsersRequest) ([]resource.User, error) {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return resource.NewUsers(users), nil
}

func (h *UserHandler) CreateUser(c echo.Context, req *model.CreateUserRequest) (resource.User, error) {
	user, err := h.users.CreateUser(c.Request().Context(), req)
	if err != nil {
		return resource.User{}, err
	}
	return resource.NewUser(user, model.With()), nil
}

// ShowUser returns the user with its posts and comments nested.
func (h *UserHandler) ShowUser(c echo.Context, req *model.UserIDRequest) (resource.User, error) {
	user, err := h.users.GetUser(c.Request().Context(), req.ID, showUserRelations)
	if err != nil {
		return resource.User{}, err
	}
	return resource.NewUser(user, showUserRelations), nil
}

func (h *UserHandler) UpdateUser(c echo.Context, req *model.UpdateUserRequest) (resource.User, error) {
	user, err := h.users.UpdateUser(c.Request().Context(), req)
	if err != nil {
		return resource.User{}, err
	}
	return resource.NewUser(user, model.With()), nil
}

func (h *UserHandler) DeleteUser(c echo.Context, req *model.UserIDRequest) error {
	return h.users.DeleteUser(c.Request().Context(), req.ID)
}

// ListUserPosts returns the user's posts as a flat sequence.
func (h *UserHandler) ListUserPosts(c echo.Context, req *model.UserIDRequest) ([]resource.Post, error) {
	user, err := h.users.GetUser(c.Request().Context(), req.ID, userPostsRelations)
	if err != nil {
		return nil, err
	}
	return resource.NewPosts(user.Posts), nil
}

func (h *UserHandler) ListUserComments(c echo.Context, req *model.UserIDRequest) ([]resource.Comment, error) {
	user, err := h.users.GetUser(c.Request().Context(), req.ID, userCommentsRelations)
	if err != nil {
		return nil, err
	}
	return resource.NewComments(user.Comments), nil
}
