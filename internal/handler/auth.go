package handler

import (
	"github.com/deppfellow/blog-api/internal/middleware"
	"github.com/deppfellow/blog-api/internal/resource"
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Handler
}

func NewAuthHandler(s *server.Server) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
	}
}

// CurrentUserRequest has no input; the identity comes from the session.
type CurrentUserRequest struct{}

func (r *CurrentUserRequest) Validate() error {
	return nil
}

// CurrentUser returns the caller identity RequireAuth stored on the context.
func (h *AuthHandler) CurrentUser(c echo.Context, _ *CurrentUserRequest) (resource.Caller, error) {
	return resource.Caller{
		ID:          middleware.GetUserID(c),
		SessionID:   middleware.GetSessionID(c),
		Role:        middleware.GetUserRole(c),
		Permissions: middleware.GetPermissions(c),
	}, nil
}
