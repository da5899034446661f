// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"strings"

	"github.com/angelamos/pvz-backend/internal/auth"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	username, role, email, passwordHash, token string,
) (*auth.UserInfo, error) {
	user := &User{
		Role:         role,
		Username:     username,
		PasswordHash: passwordHash,
		Email:        strings.ToLower(email),
		CurrentToken: &token,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByUsername(
	ctx context.Context,
	username string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) BindToken(
	ctx context.Context,
	userID int64,
	token string,
) error {
	return s.repo.BindToken(ctx, userID, token)
}

func toUserInfo(u *User) *auth.UserInfo {
	info := &auth.UserInfo{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Role:         u.Role,
		PasswordHash: u.PasswordHash,
	}
	if u.CurrentToken != nil {
		info.CurrentToken = *u.CurrentToken
	}
	return info
}

var _ auth.UserProvider = (*Service)(nil)
