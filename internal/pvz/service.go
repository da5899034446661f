// AngelaMos | 2026
// service.go

package pvz

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	city string,
) (*PickupPoint, error) {
	return s.repo.Create(ctx, city)
}

func (s *Service) List(
	ctx context.Context,
	params ListParams,
) ([]ReportItem, int, error) {
	params.Normalize()
	return s.repo.List(ctx, params)
}
