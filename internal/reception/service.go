// AngelaMos | 2026
// service.go

package reception

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Open(
	ctx context.Context,
	pvzID int64,
) (*Reception, error) {
	return s.repo.Open(ctx, pvzID)
}

func (s *Service) AddProduct(
	ctx context.Context,
	receptionID int64,
	productType string,
) (*Product, error) {
	return s.repo.AddProduct(ctx, receptionID, productType)
}

func (s *Service) RemoveLastProduct(
	ctx context.Context,
	pvzID int64,
) (*Product, error) {
	return s.repo.RemoveLastProduct(ctx, pvzID)
}

func (s *Service) Close(
	ctx context.Context,
	pvzID int64,
) (*Reception, error) {
	return s.repo.Close(ctx, pvzID)
}
