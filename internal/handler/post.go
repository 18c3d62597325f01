package handler

import (
	"context"

	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/resource"
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/deppfellow/blog-api/internal/service"
	"github.com/labstack/echo/v4"
)

// A shown post always carries its comments, possibly as [].
var showPostRelations = model.With(model.RelationComments)

type PostHandler struct {
	Handler
	posts *service.PostService
}

func NewPostHandler(s *server.Server, posts *service.PostService) *PostHandler {
	return &PostHandler{
		Handler: NewHandler(s),
		posts:   posts,
	}
}

func (h *PostHandler) ResolvePost(ctx context.Context, id int64) error {
	_, err := h.posts.GetPost(ctx, id, model.With())
	return err
}

func (h *PostHandler) ListPosts(c echo.Context, _ *model.ListPostsRequest) ([]resource.Post, error) {
	posts, err := h.posts.ListPosts(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return resource.NewPosts(posts), nil
}

func (h *PostHandler) CreatePost(c echo.Context, req *model.CreatePostRequest) (resource.Post, error) {
	post, err := h.posts.CreatePost(c.Request().Context(), req)
	if err != nil {
		return resource.Post{}, err
	}
	return resource.NewPost(post, model.With()), nil
}

func (h *PostHandler) ShowPost(c echo.Context, req *model.PostIDRequest) (resource.Post, error) {
	post, err := h.posts.GetPost(c.Request().Context(), req.ID, showPostRelations)
	if err != nil {
		return resource.Post{}, err
	}
	return resource.NewPost(post, showPostRelations), nil
}

func (h *PostHandler) UpdatePost(c echo.Context, req *model.UpdatePostRequest) (resource.Post, error) {
	post, err := h.posts.UpdatePost(c.Request().Context(), req)
	if err != nil {
		return resource.Post{}, err
	}
	return resource.NewPost(post, model.With()), nil
}

func (h *PostHandler) DeletePost(c echo.Context, req *model.PostIDRequest) error {
	return h.posts.DeletePost(c.Request().Context(), req.ID)
}

func (h *PostHandler) ListPostComments(c echo.Context, req *model.PostIDRequest) ([]resource.Comment, error) {
	post, err := h.posts.GetPost(c.Request().Context(), req.ID, showPostRelations)
	if err != nil {
		return nil, err
	}
	return resource.NewComments(post.Comments), nil
}
