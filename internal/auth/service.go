// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/angelamos/pvz-backend/internal/core"
	"github.com/angelamos/pvz-backend/internal/middleware"
)

type UserInfo struct {
	ID           int64
	Username     string
	Email        string
	Role         string
	PasswordHash string
	CurrentToken string
}

type UserProvider interface {
	Create(
		ctx context.Context,
		username, role, email, passwordHash, token string,
	) (*UserInfo, error)
	GetByUsername(ctx context.Context, username string) (*UserInfo, error)
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	BindToken(ctx context.Context, userID int64, token string) error
}

type Service struct {
	jwt   *JWTManager
	users UserProvider
}

func NewService(jwt *JWTManager, users UserProvider) *Service {
	return &Service{jwt: jwt, users: users}
}

const minPasswordLength = 7

// Register validates the password before hashing (the store only ever
// sees the hash, so length cannot be a column constraint), issues the
// user's initial token, and persists the record. Username length, email
// format and role validity surface from the store's own constraints.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*RegisterResponse, error) {
	if len(req.Password) < minPasswordLength {
		return nil, core.ErrPasswordTooShort
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	email := strings.ToLower(req.Email)

	token, err := s.jwt.CreateAccessToken(email, req.Role)
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	info, err := s.users.Create(
		ctx,
		req.Username,
		req.Role,
		email,
		passwordHash,
		token,
	)
	if err != nil {
		return nil, err
	}

	return &RegisterResponse{
		ID:       info.ID,
		Username: info.Username,
		Email:    info.Email,
	}, nil
}

// Login verifies credentials and binds a freshly minted token as the
// user's single live session, superseding any previous one.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (string, error) {
	info, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			//nolint:errcheck // burn a hash anyway to keep lookup timing flat
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
		}
		return "", err
	}

	valid, _, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&info.PasswordHash,
	)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return "", core.ErrInvalidPassword
	}

	token, err := s.jwt.CreateAccessToken(info.Email, info.Role)
	if err != nil {
		return "", fmt.Errorf("create access token: %w", err)
	}

	if err := s.users.BindToken(ctx, info.ID, token); err != nil {
		return "", err
	}

	return token, nil
}

// Authenticate is the full token check: cryptographic verification
// first, then equality against the store's current token for the
// subject. A token that verifies but no longer matches the stored one
// has been superseded by a newer login and is reported stale.
func (s *Service) Authenticate(
	ctx context.Context,
	token string,
) (*middleware.AccessTokenClaims, error) {
	claims, err := s.jwt.VerifyAccessToken(token)
	if err != nil {
		return nil, err
	}

	info, err := s.users.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return nil, fmt.Errorf(
				"authenticate: unknown subject: %w",
				core.ErrTokenInvalid,
			)
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if info.CurrentToken == "" || info.CurrentToken != token {
		return nil, fmt.Errorf("authenticate: %w", core.ErrTokenStale)
	}

	if info.Role != claims.Role {
		return nil, fmt.Errorf(
			"authenticate: role claim mismatch: %w",
			core.ErrTokenInvalid,
		)
	}

	return &middleware.AccessTokenClaims{
		UserID: info.ID,
		Email:  info.Email,
		Role:   info.Role,
	}, nil
}

var _ middleware.TokenVerifier = (*Service)(nil)
