package service

import (
	"context"

	"github.com/deppfellow/blog-api/internal/errs"
	"github.com/deppfellow/blog-api/internal/model"
)

type CommentService struct {
	comments CommentStore
	posts    PostStore
	users    UserStore
}

func NewCommentService(comments CommentStore, posts PostStore, users UserStore) *CommentService {
	return &CommentService{comments: comments, posts: posts, users: users}
}

func (s *CommentService) ListComments(ctx context.Context) ([]model.Comment, error) {
	return s.comments.ListComments(ctx)
}

func (s *CommentService) GetComment(ctx context.Context, id int64) (*model.Comment, error) {
	return s.comments.GetCommentByID(ctx, id)
}

// CreateComment stores a comment once both the post and the author resolve.
// The author is never derived from the post.
func (s *CommentService) CreateComment(ctx context.Context, req *model.CreateCommentRequest) (*model.Comment, error) {
	if err := s.checkReferences(ctx, &req.PostID, &req.UserID); err != nil {
		return nil, err
	}

	return s.comments.CreateComment(ctx, model.Comment{
		PostID: req.PostID,
		UserID: req.UserID,
		Body:   req.Body,
	})
}

func (s *CommentService) UpdateComment(ctx context.Context, req *model.UpdateCommentRequest) (*model.Comment, error) {
	if _, err := s.comments.GetCommentByID(ctx, req.ID); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, req.PostID, req.UserID); err != nil {
		return nil, err
	}

	return s.comments.UpdateComment(ctx, req.ID, req.Patch())
}

func (s *CommentService) DeleteComment(ctx context.Context, id int64) error {
	return s.comments.DeleteComment(ctx, id)
}

// checkReferences reports every unknown reference in one validation error.
func (s *CommentService) checkReferences(ctx context.Context, postID, userID *int64) error {
	var fieldErrors []errs.FieldError

	if postID != nil {
		exists, err := s.posts.PostExists(ctx, *postID)
		if err != nil {
			return err
		}
		if !exists {
			fieldErrors = append(fieldErrors, errs.FieldError{Field: "post_id", Error: "does not exist"})
		}
	}

	if userID != nil {
		exists, err := s.users.UserExists(ctx, *userID)
		if err != nil {
			return err
		}
		if !exists {
			fieldErrors = append(fieldErrors, errs.FieldError{Field: "user_id", Error: "does not exist"})
		}
	}

	if len(fieldErrors) > 0 {
		return errs.NewFieldValidationError(fieldErrors...)
	}
	return nil
}
