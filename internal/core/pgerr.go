// AngelaMos | 2026
// pgerr.go

package core

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes the store is expected to raise against this schema.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgExclusionViolation  = "23P01"
	pgInvalidTextRepr     = "22P02"
)

// Constraint names are part of the migration contract; the mapping below
// is exact-match on purpose. An unmapped engine error passes through with
// its raw message and gets logged so the table can be maintained.
var uniqueConstraints = map[string]error{
	"users_username_key": ErrDuplicateUsername,
	"users_email_key":    ErrDuplicateEmail,
}

var checkConstraints = map[string]error{
	"users_username_check": ErrUsernameTooShort,
	"users_email_check":    ErrInvalidEmail,
}

var exclusionConstraints = map[string]error{
	"only_one_open_reception": ErrReceptionAlreadyOpen,
}

var foreignKeyConstraints = map[string]error{
	"receptions_pvz_id_fkey":     ErrPVZNotFound,
	"products_reception_id_fkey": ErrReceptionNotFound,
}

// TranslateDBError maps a store-level constraint violation to the error
// taxonomy. Errors with no pgconn payload (driver errors, context
// cancellation) are wrapped and returned unchanged.
func TranslateDBError(op string, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if mapped := mapPGError(pgErr); mapped != nil {
		return fmt.Errorf("%s: %w", op, mapped)
	}

	slog.Warn("unmapped database error",
		"op", op,
		"sqlstate", pgErr.Code,
		"constraint", pgErr.ConstraintName,
		"message", pgErr.Message,
	)

	return fmt.Errorf("%s: %w", op, err)
}

func mapPGError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgUniqueViolation:
		return uniqueConstraints[pgErr.ConstraintName]
	case pgCheckViolation:
		return checkConstraints[pgErr.ConstraintName]
	case pgExclusionViolation:
		return exclusionConstraints[pgErr.ConstraintName]
	case pgForeignKeyViolation:
		return foreignKeyConstraints[pgErr.ConstraintName]
	case pgInvalidTextRepr:
		return mapEnumError(pgErr.Message)
	}
	return nil
}

// Enum violations do not carry a constraint name; the enum type name in
// the message text is the only discriminator Postgres provides.
func mapEnumError(message string) error {
	switch {
	case strings.Contains(message, "user_role"):
		return ErrInvalidRole
	case strings.Contains(message, "city_type"):
		return ErrInvalidCity
	case strings.Contains(message, "product_type"):
		return ErrInvalidProductType
	}
	return nil
}
