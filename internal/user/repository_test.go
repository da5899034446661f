// AngelaMos | 2026
// repository_test.go

package user

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/pvz-backend/internal/core"
)

func newRepoWithMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp),
	)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func userColumns() []string {
	return []string{
		"id", "role", "username", "password_hash", "email", "current_token",
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	token := "token-abc"
	u := &User{
		Role:         RoleClient,
		Username:     "client1",
		PasswordHash: "$argon2id$hash",
		Email:        "client1@example.com",
		CurrentToken: &token,
	}

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(RoleClient, "client1", "$argon2id$hash", "client1@example.com", "token-abc").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, int64(7), u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_DuplicateUsername(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "users_username_key",
		})

	token := "token-abc"
	err := repo.Create(context.Background(), &User{
		Role:         RoleClient,
		Username:     "client1",
		PasswordHash: "hash",
		Email:        "client1@example.com",
		CurrentToken: &token,
	})
	assert.ErrorIs(t, err, core.ErrDuplicateUsername)
}

func TestRepository_Create_ShortUsername(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{
			Code:           "23514",
			ConstraintName: "users_username_check",
		})

	token := "token-abc"
	err := repo.Create(context.Background(), &User{
		Role:         RoleClient,
		Username:     "abc",
		PasswordHash: "hash",
		Email:        "abc@example.com",
		CurrentToken: &token,
	})
	assert.ErrorIs(t, err, core.ErrUsernameTooShort)
}

func TestRepository_GetByUsername(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .+ FROM users\s+WHERE username`).
		WithArgs("client1").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(int64(7), RoleClient, "client1", "hash", "client1@example.com", "token-abc"))

	u, err := repo.GetByUsername(context.Background(), "client1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)
	require.NotNil(t, u.CurrentToken)
	assert.Equal(t, "token-abc", *u.CurrentToken)
}

func TestRepository_GetByUsername_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .+ FROM users\s+WHERE username`).
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, core.ErrUserNotFound)
}

func TestRepository_GetByEmail_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .+ FROM users\s+WHERE email`).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, core.ErrUserNotFound)
}

func TestRepository_BindToken(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE users\s+SET current_token`).
		WithArgs(int64(7), "new-token").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.BindToken(context.Background(), 7, "new-token"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_BindToken_UnknownUser(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE users\s+SET current_token`).
		WithArgs(int64(999), "new-token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.BindToken(context.Background(), 999, "new-token")
	assert.ErrorIs(t, err, core.ErrUserNotFound)
}
