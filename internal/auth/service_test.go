// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/pvz-backend/internal/core"
)

// fakeUserProvider is an in-memory UserProvider keyed by username and
// email, enough to drive the register/login/authenticate flows.
type fakeUserProvider struct {
	users  map[string]*UserInfo
	nextID int64
}

func newFakeUserProvider() *fakeUserProvider {
	return &fakeUserProvider{users: make(map[string]*UserInfo), nextID: 1}
}

func (f *fakeUserProvider) Create(
	_ context.Context,
	username, role, email, passwordHash, token string,
) (*UserInfo, error) {
	for _, u := range f.users {
		if u.Username == username {
			return nil, core.ErrDuplicateUsername
		}
		if u.Email == email {
			return nil, core.ErrDuplicateEmail
		}
	}

	info := &UserInfo{
		ID:           f.nextID,
		Username:     username,
		Email:        email,
		Role:         role,
		PasswordHash: passwordHash,
		CurrentToken: token,
	}
	f.nextID++
	f.users[username] = info
	return info, nil
}

func (f *fakeUserProvider) GetByUsername(
	_ context.Context,
	username string,
) (*UserInfo, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, core.ErrUserNotFound
}

func (f *fakeUserProvider) GetByEmail(
	_ context.Context,
	email string,
) (*UserInfo, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, core.ErrUserNotFound
}

func (f *fakeUserProvider) BindToken(
	_ context.Context,
	userID int64,
	token string,
) error {
	for _, u := range f.users {
		if u.ID == userID {
			u.CurrentToken = token
			return nil
		}
	}
	return core.ErrUserNotFound
}

func newTestService(t *testing.T) (*Service, *fakeUserProvider) {
	t.Helper()

	users := newFakeUserProvider()
	svc := NewService(newTestManager(t, 30*time.Minute), users)
	return svc, users
}

func register(t *testing.T, svc *Service) *RegisterResponse {
	t.Helper()

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Username: "client1",
		Role:     "client",
		Password: "password1",
		Email:    "client1@example.com",
	})
	require.NoError(t, err)
	return resp
}

func TestService_Register(t *testing.T) {
	svc, users := newTestService(t)

	resp := register(t, svc)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "client1", resp.Username)
	assert.Equal(t, "client1@example.com", resp.Email)

	stored := users.users["client1"]
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.CurrentToken, "registration issues an initial token")
	assert.NotEqual(t, "password1", stored.PasswordHash)
}

func TestService_Register_LowercasesEmail(t *testing.T) {
	svc, users := newTestService(t)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "client1",
		Role:     "client",
		Password: "password1",
		Email:    "Client1@Example.COM",
	})
	require.NoError(t, err)
	assert.Equal(t, "client1@example.com", users.users["client1"].Email)
}

func TestService_Register_ShortPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "client1",
		Role:     "client",
		Password: "short1",
		Email:    "client1@example.com",
	})
	assert.ErrorIs(t, err, core.ErrPasswordTooShort)
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)
	register(t, svc)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "client1",
		Role:     "client",
		Password: "password1",
		Email:    "other@example.com",
	})
	assert.ErrorIs(t, err, core.ErrDuplicateUsername)
}

func TestService_Login(t *testing.T) {
	svc, users := newTestService(t)
	register(t, svc)

	initialToken := users.users["client1"].CurrentToken

	token, err := svc.Login(context.Background(), LoginRequest{
		Username: "client1",
		Password: "password1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, token, users.users["client1"].CurrentToken)
	assert.NotEqual(t, initialToken, token, "login supersedes the previous token")
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	register(t, svc)

	_, err := svc.Login(context.Background(), LoginRequest{
		Username: "client1",
		Password: "password2",
	})
	assert.ErrorIs(t, err, core.ErrInvalidPassword)
}

func TestService_Login_UnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), LoginRequest{
		Username: "nobody",
		Password: "password1",
	})
	assert.ErrorIs(t, err, core.ErrUserNotFound)
}

func TestService_Authenticate(t *testing.T) {
	svc, _ := newTestService(t)
	register(t, svc)

	token, err := svc.Login(context.Background(), LoginRequest{
		Username: "client1",
		Password: "password1",
	})
	require.NoError(t, err)

	claims, err := svc.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "client1@example.com", claims.Email)
	assert.Equal(t, "client", claims.Role)
}

func TestService_Authenticate_SupersededTokenIsStale(t *testing.T) {
	svc, _ := newTestService(t)
	register(t, svc)

	ctx := context.Background()
	first, err := svc.Login(ctx, LoginRequest{
		Username: "client1",
		Password: "password1",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{
		Username: "client1",
		Password: "password1",
	})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, first)
	assert.ErrorIs(t, err, core.ErrTokenStale)
}

func TestService_Authenticate_UnknownSubjectIsInvalid(t *testing.T) {
	svc, users := newTestService(t)
	register(t, svc)

	token, err := svc.Login(context.Background(), LoginRequest{
		Username: "client1",
		Password: "password1",
	})
	require.NoError(t, err)

	delete(users.users, "client1")

	_, err = svc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestService_Authenticate_GarbageToken(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Authenticate(context.Background(), "garbage")
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}
