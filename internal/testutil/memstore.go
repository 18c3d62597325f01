// Package testutil provides an in-memory entity store that satisfies the
// service layer's store interfaces, so handlers and services can be tested
// without PostgreSQL.
package testutil

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/sqlerr"
)

// MemStore mirrors the PostgreSQL schema: ids are assigned sequentially
// per table, lists are ordered by id, and deletes cascade.
type MemStore struct {
	mu sync.RWMutex

	users    map[int64]model.User
	posts    map[int64]model.Post
	comments map[int64]model.Comment

	nextUserID    int64
	nextPostID    int64
	nextCommentID int64
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:    make(map[int64]model.User),
		posts:    make(map[int64]model.Post),
		comments: make(map[int64]model.Comment),
	}
}

func sortedValues[T any](m map[int64]T, keep func(T) bool) []T {
	out := make([]T, 0, len(m))
	for _, id := range slices.Sorted(maps.Keys(m)) {
		if keep == nil || keep(m[id]) {
			out = append(out, m[id])
		}
	}
	return out
}

// Users

func (s *MemStore) ListUsers(_ context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.users, nil), nil
}

func (s *MemStore) GetUserByID(_ context.Context, id int64, with model.Relations) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, sqlerr.NotFound("users")
	}

	if with.Has(model.RelationPosts) {
		user.Posts = sortedValues(s.posts, func(p model.Post) bool { return p.UserID == id })
	}
	if with.Has(model.RelationComments) {
		user.Comments = sortedValues(s.comments, func(c model.Comment) bool { return c.UserID == id })
	}

	return &user, nil
}

func (s *MemStore) CreateUser(_ context.Context, user model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUserID++
	now := time.Now()
	user.ID, user.CreatedAt, user.UpdatedAt = s.nextUserID, now, now
	s.users[user.ID] = user
	return &user, nil
}

func (s *MemStore) UpdateUser(_ context.Context, id int64, patch model.UserPatch) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, sqlerr.NotFound("users")
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	user.UpdatedAt = time.Now()
	s.users[id] = user
	return &user, nil
}

func (s *MemStore) DeleteUser(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return sqlerr.NotFound("users")
	}
	delete(s.users, id)

	for postID, post := range s.posts {
		if post.UserID == id {
			s.deletePostLocked(postID)
		}
	}
	for commentID, comment := range s.comments {
		if comment.UserID == id {
			delete(s.comments, commentID)
		}
	}
	return nil
}

func (s *MemStore) UserExists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[id]
	return ok, nil
}

// Posts

func (s *MemStore) ListPosts(_ context.Context) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.posts, nil), nil
}

func (s *MemStore) GetPostByID(_ context.Context, id int64, with model.Relations) (*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, sqlerr.NotFound("posts")
	}

	if with.Has(model.RelationComments) {
		post.Comments = sortedValues(s.comments, func(c model.Comment) bool { return c.PostID == id })
	}

	return &post, nil
}

func (s *MemStore) CreatePost(_ context.Context, post model.Post) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPostID++
	now := time.Now()
	post.ID, post.CreatedAt, post.UpdatedAt = s.nextPostID, now, now
	post.Comments = nil
	s.posts[post.ID] = post
	return &post, nil
}

func (s *MemStore) UpdatePost(_ context.Context, id int64, patch model.PostPatch) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, sqlerr.NotFound("posts")
	}
	if patch.UserID != nil {
		post.UserID = *patch.UserID
	}
	if patch.Body != nil {
		post.Body = *patch.Body
	}
	post.UpdatedAt = time.Now()
	s.posts[id] = post
	return &post, nil
}

func (s *MemStore) DeletePost(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return sqlerr.NotFound("posts")
	}
	s.deletePostLocked(id)
	return nil
}

func (s *MemStore) deletePostLocked(id int64) {
	delete(s.posts, id)
	for commentID, comment := range s.comments {
		if comment.PostID == id {
			delete(s.comments, commentID)
		}
	}
}

func (s *MemStore) PostExists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.posts[id]
	return ok, nil
}

// Comments

func (s *MemStore) ListComments(_ context.Context) ([]model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.comments, nil), nil
}

func (s *MemStore) GetCommentByID(_ context.Context, id int64) (*model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, ok := s.comments[id]
	if !ok {
		return nil, sqlerr.NotFound("comments")
	}
	return &comment, nil
}

func (s *MemStore) CreateComment(_ context.Context, comment model.Comment) (*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCommentID++
	now := time.Now()
	comment.ID, comment.CreatedAt, comment.UpdatedAt = s.nextCommentID, now, now
	s.comments[comment.ID] = comment
	return &comment, nil
}

func (s *MemStore) UpdateComment(_ context.Context, id int64, patch model.CommentPatch) (*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[id]
	if !ok {
		return nil, sqlerr.NotFound("comments")
	}
	if patch.PostID != nil {
		comment.PostID = *patch.PostID
	}
	if patch.UserID != nil {
		comment.UserID = *patch.UserID
	}
	if patch.Body != nil {
		comment.Body = *patch.Body
	}
	comment.UpdatedAt = time.Now()
	s.comments[id] = comment
	return &comment, nil
}

func (s *MemStore) DeleteComment(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return sqlerr.NotFound("comments")
	}
	delete(s.comments, id)
	return nil
}
