// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/pvz-backend/internal/config"
	"github.com/angelamos/pvz-backend/internal/core"
)

func newTestManager(t *testing.T, expire time.Duration) *JWTManager {
	t.Helper()

	dir := t.TempDir()
	privPath := filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")
	require.NoError(t, GenerateKeyPair(privPath, pubPath))

	manager, err := NewJWTManager(config.JWTConfig{
		PrivateKeyPath:    privPath,
		PublicKeyPath:     pubPath,
		AccessTokenExpire: expire,
		Issuer:            "pvz-backend",
		Audience:          "pvz-backend-api",
	})
	require.NoError(t, err)

	return manager
}

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := newTestManager(t, 30*time.Minute)

	token, err := manager.CreateAccessToken("client@example.com", "client")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "client@example.com", claims.Email)
	assert.Equal(t, "client", claims.Role)
}

func TestJWTManager_ExpiredTokenIsDistinguished(t *testing.T) {
	manager := newTestManager(t, -time.Minute)

	token, err := manager.CreateAccessToken("client@example.com", "client")
	require.NoError(t, err)

	_, err = manager.VerifyAccessToken(token)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestJWTManager_GarbageTokenIsInvalid(t *testing.T) {
	manager := newTestManager(t, 30*time.Minute)

	_, err := manager.VerifyAccessToken("not.a.token")
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestJWTManager_TokenFromAnotherKeyIsInvalid(t *testing.T) {
	signer := newTestManager(t, 30*time.Minute)
	verifier := newTestManager(t, 30*time.Minute)

	token, err := signer.CreateAccessToken("client@example.com", "client")
	require.NoError(t, err)

	_, err = verifier.VerifyAccessToken(token)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestJWTManager_JWKSContainsSigningKey(t *testing.T) {
	manager := newTestManager(t, 30*time.Minute)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/.well-known/jwks.json", nil)
	manager.GetJWKSHandler()(rec, req)

	require.Equal(t, 200, rec.Code)

	var jwks struct {
		Keys []map[string]any `json:"keys"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &jwks))
	require.Len(t, jwks.Keys, 1)
	assert.Equal(t, "EC", jwks.Keys[0]["kty"])
	assert.Equal(t, manager.GetKeyID(), jwks.Keys[0]["kid"])
}
