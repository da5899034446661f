// AngelaMos | 2026
// errors_test.go

package core

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromError_OnlyExpiredTokenIsUnauthorized(t *testing.T) {
	appErr := FromError(ErrTokenExpired)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
	assert.Equal(t, "TOKEN_EXPIRED", appErr.Code)
}

func TestFromError_TaxonomyErrorsAreBadRequests(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{ErrTokenMissing, "TOKEN_MISSING"},
		{ErrTokenInvalid, "TOKEN_INVALID"},
		{ErrTokenStale, "TOKEN_STALE"},
		{ErrInsufficientRole, "INSUFFICIENT_ROLE"},
		{ErrInvalidCity, "INVALID_CITY"},
		{ErrInvalidProductType, "INVALID_PRODUCT_TYPE"},
		{ErrPasswordTooShort, "PASSWORD_TOO_SHORT"},
		{ErrDuplicateUsername, "DUPLICATE_USERNAME"},
		{ErrReceptionAlreadyOpen, "RECEPTION_ALREADY_OPEN"},
		{ErrUserNotFound, "USER_NOT_FOUND"},
		{ErrPVZNotFound, "PVZ_NOT_FOUND"},
		{ErrNoOpenReception, "NO_OPEN_RECEPTION"},
		{ErrReceptionClosed, "RECEPTION_CLOSED"},
		{ErrEmptyReception, "EMPTY_RECEPTION"},
		{ErrInvalidPassword, "INVALID_PASSWORD"},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			appErr := FromError(tc.err)
			assert.Equal(t, http.StatusBadRequest, appErr.Status)
			assert.Equal(t, tc.code, appErr.Code)
		})
	}
}

func TestFromError_WrappedSentinelStillResolves(t *testing.T) {
	wrapped := fmt.Errorf("open reception: %w", ErrReceptionAlreadyOpen)

	appErr := FromError(wrapped)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "RECEPTION_ALREADY_OPEN", appErr.Code)
}

func TestFromError_UnmappedErrorPassesThroughAsInternal(t *testing.T) {
	raw := errors.New("connection reset by peer")

	appErr := FromError(raw)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "INTERNAL", appErr.Code)
	assert.Equal(t, "connection reset by peer", appErr.Message)
}

func TestFromError_ExistingAppErrorIsReturnedAsIs(t *testing.T) {
	orig := InsufficientRoleError("moderator")

	appErr := FromError(orig)
	require.Same(t, orig, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Contains(t, appErr.Message, "moderator")
}

func TestAppError_Unwrap(t *testing.T) {
	appErr := FromError(ErrTokenStale)
	assert.ErrorIs(t, appErr, ErrTokenStale)
}
