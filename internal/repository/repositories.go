// Package repository handles all interactions with the database.
//
// It contains the raw SQL for fetching, persisting and updating users,
// posts and comments, and the batched loaders that eager-load has-many
// relations when a caller asks for them.
package repository

import (
	"context"

	"github.com/deppfellow/blog-api/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories is a container for all repository instances.
type Repositories struct {
	User    *UserRepository
	Post    *PostRepository
	Comment *CommentRepository
}

// NewRepositories builds every repository on top of the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool)
}

// New builds every repository on top of db.
func New(db DBTX) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
	}
}
