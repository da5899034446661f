// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelamos/pvz-backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	BindToken(ctx context.Context, id int64, token string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// Create inserts the user and relies on the store's constraints for
// username length, email format/uniqueness, and the role enum; a
// violation comes back already translated into the error taxonomy.
func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (role, username, password_hash, email, current_token)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.GetContext(ctx, &user.ID, query,
		user.Role,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.CurrentToken,
	)
	if err != nil {
		return core.TranslateDBError("create user", err)
	}

	return nil
}

func (r *repository) GetByUsername(
	ctx context.Context,
	username string,
) (*User, error) {
	query := `
		SELECT id, role, username, password_hash, email, current_token
		FROM users
		WHERE username = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := `
		SELECT id, role, username, password_hash, email, current_token
		FROM users
		WHERE email = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

// BindToken overwrites the user's live token. Login supersedes any prior
// session unconditionally; this is a policy choice, kept as an explicit
// named operation.
func (r *repository) BindToken(
	ctx context.Context,
	id int64,
	token string,
) error {
	query := `
		UPDATE users
		SET current_token = $2
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, token)
	if err != nil {
		return fmt.Errorf("bind token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("bind token: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("bind token: %w", core.ErrUserNotFound)
	}

	return nil
}
