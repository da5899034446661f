// AngelaMos | 2026
// pgerr_test.go

package core

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateDBError_ConstraintMapping(t *testing.T) {
	cases := []struct {
		name       string
		code       string
		constraint string
		want       error
	}{
		{"duplicate username", "23505", "users_username_key", ErrDuplicateUsername},
		{"duplicate email", "23505", "users_email_key", ErrDuplicateEmail},
		{"short username", "23514", "users_username_check", ErrUsernameTooShort},
		{"bad email format", "23514", "users_email_check", ErrInvalidEmail},
		{"second open reception", "23P01", "only_one_open_reception", ErrReceptionAlreadyOpen},
		{"reception for unknown pvz", "23503", "receptions_pvz_id_fkey", ErrPVZNotFound},
		{"product for unknown reception", "23503", "products_reception_id_fkey", ErrReceptionNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pgErr := &pgconn.PgError{
				Code:           tc.code,
				ConstraintName: tc.constraint,
			}

			got := TranslateDBError("op", pgErr)
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestTranslateDBError_EnumViolations(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    error
	}{
		{
			"role",
			`invalid input value for enum user_role: "admin"`,
			ErrInvalidRole,
		},
		{
			"city",
			`invalid input value for enum city_type: "London"`,
			ErrInvalidCity,
		},
		{
			"product type",
			`invalid input value for enum product_type: "furniture"`,
			ErrInvalidProductType,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: "22P02", Message: tc.message}

			got := TranslateDBError("op", pgErr)
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestTranslateDBError_UnknownConstraintPassesThrough(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "some_future_constraint",
		Message:        "duplicate key value",
	}

	got := TranslateDBError("op", pgErr)
	assert.ErrorIs(t, got, pgErr)
}

func TestTranslateDBError_NonPGErrorIsWrapped(t *testing.T) {
	raw := errors.New("driver: bad connection")

	got := TranslateDBError("create user", raw)
	assert.ErrorIs(t, got, raw)
	assert.Contains(t, got.Error(), "create user")
}
