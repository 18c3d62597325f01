package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const (
	usersTable  = "users"
	userColumns = "id, name, created_at, updated_at"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect users: %w", err)
	}

	return users, nil
}

// GetUserByID fetches one user and eager-loads the relations named in with.
func (r *UserRepository) GetUserByID(ctx context.Context, id int64, with model.Relations) (*model.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}

	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NotFound(usersTable)
		}
		return nil, fmt.Errorf("failed to collect user %d: %w", id, err)
	}

	users := []model.User{user}
	if err := r.loadRelations(ctx, users, with); err != nil {
		return nil, err
	}

	return &users[0], nil
}

func (r *UserRepository) loadRelations(ctx context.Context, users []model.User, with model.Relations) error {
	if len(users) == 0 || len(with) == 0 {
		return nil
	}

	ids := make([]int64, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}

	if with.Has(model.RelationPosts) {
		posts, err := loadPostsByUser(ctx, r.db, ids)
		if err != nil {
			return err
		}
		for i := range users {
			users[i].Posts = posts[users[i].ID]
		}
	}

	if with.Has(model.RelationComments) {
		comments, err := loadCommentsByUser(ctx, r.db, ids)
		if err != nil {
			return err
		}
		for i := range users {
			users[i].Comments = comments[users[i].ID]
		}
	}

	return nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	rows, err := r.db.Query(ctx, `
		INSERT INTO users (name)
		VALUES ($1)
		RETURNING `+userColumns, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &created, nil
}

// UpdateUser changes only the fields set in patch.
func (r *UserRepository) UpdateUser(ctx context.Context, id int64, patch model.UserPatch) (*model.User, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE users
		SET name = COALESCE($2, name),
		    updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, patch.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}

	updated, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NotFound(usersTable)
		}
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}

	return &updated, nil
}

// DeleteUser removes the user; posts and comments go with it (ON DELETE CASCADE).
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.NotFound(usersTable)
	}
	return nil
}

func (r *UserRepository) UserExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user %d: %w", id, err)
	}
	return exists, nil
}
