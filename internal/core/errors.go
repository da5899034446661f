// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"net/http"
)

// Auth failures. ErrTokenExpired is the only one the transport layer
// reports as 401; the client is expected to log in again on seeing it.
var (
	ErrTokenMissing = errors.New("authorization token missing")
	ErrTokenExpired = errors.New("authorization token expired")
	ErrTokenInvalid = errors.New("authorization token invalid")
	ErrTokenStale   = errors.New("authorization token superseded by a newer login")
)

var ErrInsufficientRole = errors.New("insufficient role")

// Validation failures surfaced from store constraints or pre-hash checks.
var (
	ErrInvalidCity        = errors.New("city must be one of: Moscow, Kazan, Saint Petersburg")
	ErrInvalidProductType = errors.New("product type must be one of: electronics, clothing, footwear")
	ErrInvalidRole        = errors.New("role must be client or moderator")
	ErrPasswordTooShort   = errors.New("password must be at least 7 characters long")
	ErrUsernameTooShort   = errors.New("username must be at least 5 characters long")
	ErrInvalidEmail       = errors.New("invalid email format")
)

// Conflicts.
var (
	ErrDuplicateUsername    = errors.New("username already registered")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrReceptionAlreadyOpen = errors.New("an open reception already exists for this pickup point")
)

// Missing entities.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrPVZNotFound       = errors.New("pickup point not found")
	ErrReceptionNotFound = errors.New("reception not found")
	ErrNoOpenReception   = errors.New("no open reception for this pickup point")
	ErrProductNotFound   = errors.New("product not found")
)

// Invalid state transitions.
var (
	ErrReceptionClosed = errors.New("reception is closed")
	ErrEmptyReception  = errors.New("reception has no products to remove")
	ErrInvalidPassword = errors.New("invalid password")
)

type AppError struct {
	Err     error
	Message string
	Status  int
	Code    string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(err error, message string, status int, code string) *AppError {
	return &AppError{Err: err, Message: message, Status: status, Code: code}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// statusTable maps each taxonomy sentinel to its transport representation.
// Per the error-handling policy, only an expired token is distinguished
// (401); every other taxonomy error is a uniform client failure (400).
var statusTable = []struct {
	err    error
	status int
	code   string
}{
	{ErrTokenExpired, http.StatusUnauthorized, "TOKEN_EXPIRED"},
	{ErrTokenMissing, http.StatusBadRequest, "TOKEN_MISSING"},
	{ErrTokenInvalid, http.StatusBadRequest, "TOKEN_INVALID"},
	{ErrTokenStale, http.StatusBadRequest, "TOKEN_STALE"},
	{ErrInsufficientRole, http.StatusBadRequest, "INSUFFICIENT_ROLE"},

	{ErrInvalidCity, http.StatusBadRequest, "INVALID_CITY"},
	{ErrInvalidProductType, http.StatusBadRequest, "INVALID_PRODUCT_TYPE"},
	{ErrInvalidRole, http.StatusBadRequest, "INVALID_ROLE"},
	{ErrPasswordTooShort, http.StatusBadRequest, "PASSWORD_TOO_SHORT"},
	{ErrUsernameTooShort, http.StatusBadRequest, "USERNAME_TOO_SHORT"},
	{ErrInvalidEmail, http.StatusBadRequest, "INVALID_EMAIL"},

	{ErrDuplicateUsername, http.StatusBadRequest, "DUPLICATE_USERNAME"},
	{ErrDuplicateEmail, http.StatusBadRequest, "DUPLICATE_EMAIL"},
	{ErrReceptionAlreadyOpen, http.StatusBadRequest, "RECEPTION_ALREADY_OPEN"},

	{ErrUserNotFound, http.StatusBadRequest, "USER_NOT_FOUND"},
	{ErrPVZNotFound, http.StatusBadRequest, "PVZ_NOT_FOUND"},
	{ErrReceptionNotFound, http.StatusBadRequest, "RECEPTION_NOT_FOUND"},
	{ErrNoOpenReception, http.StatusBadRequest, "NO_OPEN_RECEPTION"},
	{ErrProductNotFound, http.StatusBadRequest, "PRODUCT_NOT_FOUND"},

	{ErrReceptionClosed, http.StatusBadRequest, "RECEPTION_CLOSED"},
	{ErrEmptyReception, http.StatusBadRequest, "EMPTY_RECEPTION"},
	{ErrInvalidPassword, http.StatusBadRequest, "INVALID_PASSWORD"},
}

// FromError resolves any error into an AppError. Taxonomy sentinels get
// their mapped status and code; anything unmapped passes through with its
// raw message as a 500 so the mapping table's gaps stay visible.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	for _, entry := range statusTable {
		if errors.Is(err, entry.err) {
			return &AppError{
				Err:     entry.err,
				Message: entry.err.Error(),
				Status:  entry.status,
				Code:    entry.code,
			}
		}
	}

	return &AppError{
		Err:     err,
		Message: err.Error(),
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL",
	}
}

func TokenExpiredError() *AppError {
	return FromError(ErrTokenExpired)
}

func TokenInvalidError() *AppError {
	return FromError(ErrTokenInvalid)
}

func TokenStaleError() *AppError {
	return FromError(ErrTokenStale)
}

func InsufficientRoleError(required string) *AppError {
	return NewAppError(
		ErrInsufficientRole,
		"insufficient permissions - required role: "+required,
		http.StatusBadRequest,
		"INSUFFICIENT_ROLE",
	)
}
