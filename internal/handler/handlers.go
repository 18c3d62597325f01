// Package handler is the first layer after the router.
//
// It binds and validates requests through the validation package,
// calls the service layer and projects the results through the
// resource package before writing them.
package handler

import (
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/deppfellow/blog-api/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Auth    *AuthHandler
	User    *UserHandler
	Post    *PostHandler
	Comment *CommentHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Auth:    NewAuthHandler(s),
		User:    NewUserHandler(s, services.User),
		Post:    NewPostHandler(s, services.Post),
		Comment: NewCommentHandler(s, services.Comment),
	}
}
