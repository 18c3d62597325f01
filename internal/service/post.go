package service

import (
	"context"

	"github.com/deppfellow/blog-api/internal/errs"
	"github.com/deppfellow/blog-api/internal/model"
)

type PostService struct {
	posts PostStore
	users UserStore
}

func NewPostService(posts PostStore, users UserStore) *PostService {
	return &PostService{posts: posts, users: users}
}

func (s *PostService) ListPosts(ctx context.Context) ([]model.Post, error) {
	return s.posts.ListPosts(ctx)
}

func (s *PostService) GetPost(ctx context.Context, id int64, with model.Relations) (*model.Post, error) {
	return s.posts.GetPostByID(ctx, id, with)
}

func (s *PostService) CreatePost(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error) {
	if err := s.checkOwner(ctx, &req.UserID); err != nil {
		return nil, err
	}

	return s.posts.CreatePost(ctx, model.Post{
		UserID: req.UserID,
		Body:   req.Body,
	})
}

// UpdatePost reports a missing post before it looks at the new owner.
func (s *PostService) UpdatePost(ctx context.Context, req *model.UpdatePostRequest) (*model.Post, error) {
	if _, err := s.posts.GetPostByID(ctx, req.ID, model.With()); err != nil {
		return nil, err
	}

	if err := s.checkOwner(ctx, req.UserID); err != nil {
		return nil, err
	}

	return s.posts.UpdatePost(ctx, req.ID, req.Patch())
}

func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	return s.posts.DeletePost(ctx, id)
}

// checkOwner fails with a user_id field error when userID is set and unknown.
func (s *PostService) checkOwner(ctx context.Context, userID *int64) error {
	if userID == nil {
		return nil
	}

	exists, err := s.users.UserExists(ctx, *userID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewFieldValidationError(errs.FieldError{Field: "user_id", Error: "does not exist"})
	}
	return nil
}
