package handler

import (
	"context"

	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/resource"
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/deppfellow/blog-api/internal/service"
	"github.com/labstack/echo/v4"
)

type CommentHandler struct {
	Handler
	comments *service.CommentService
}

func NewCommentHandler(s *server.Server, comments *service.CommentService) *CommentHandler {
	return &CommentHandler{
		Handler:  NewHandler(s),
		comments: comments,
	}
}

func (h *CommentHandler) ResolveComment(ctx context.Context, id int64) error {
	_, err := h.comments.GetComment(ctx, id)
	return err
}

func (h *CommentHandler) ListComments(c echo.Context, _ *model.ListCommentsRequest) ([]resource.Comment, error) {
	comments, err := h.comments.ListComments(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return resource.NewComments(comments), nil
}

func (h *CommentHandler) CreateComment(c echo.Context, req *model.CreateCommentRequest) (resource.Comment, error) {
	comment, err := h.comments.CreateComment(c.Request().Context(), req)
	if err != nil {
		return resource.Comment{}, err
	}
	return resource.NewComment(comment), nil
}

func (h *CommentHandler) ShowComment(c echo.Context, req *model.CommentIDRequest) (resource.Comment, error) {
	comment, err := h.comments.GetComment(c.Request().Context(), req.ID)
	if err != nil {
		return resource.Comment{}, err
	}
	return resource.NewComment(comment), nil
}

func (h *CommentHandler) UpdateComment(c echo.Context, req *model.UpdateCommentRequest) (resource.Comment, error) {
	comment, err := h.comments.UpdateComment(c.Request().Context(), req)
	if err != nil {
		return resource.Comment{}, err
	}
	return resource.NewComment(comment), nil
}

func (h *CommentHandler) DeleteComment(c echo.Context, req *model.CommentIDRequest) error {
	return h.comments.DeleteComment(c.Request().Context(), req.ID)
}
