// AngelaMos | 2026
// dto.go

package pvz

import (
	"time"
)

type CreateRequest struct {
	City string `json:"city" validate:"required"`
}

type PickupPointResponse struct {
	ID           int64     `json:"id"`
	City         string    `json:"city"`
	RegisteredAt time.Time `json:"registered_at"`
}

// ListParams filters receptions by an inclusive closed datetime range.
// A nil bound leaves that side of the range open.
type ListParams struct {
	Page      int
	PageSize  int
	StartDate *time.Time
	EndDate   *time.Time
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
}

func (p *ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ReportItem is a pickup point with its date-filtered receptions and
// their products nested, as assembled by the reporting query. A pickup
// point with no receptions in range still appears with an empty list.
type ReportItem struct {
	ID           int64             `json:"id"`
	City         string            `json:"city"`
	RegisteredAt time.Time         `json:"registered_at"`
	Receptions   []ReceptionReport `json:"receptions"`
}

type ReceptionReport struct {
	ID       int64           `json:"id"`
	PVZID    int64           `json:"pvz_id"`
	DateTime time.Time       `json:"datetime"`
	Status   string          `json:"status"`
	Products []ProductReport `json:"products"`
}

type ProductReport struct {
	ID          int64     `json:"id"`
	ReceptionID int64     `json:"reception_id"`
	DateTime    time.Time `json:"datetime"`
	Type        string    `json:"type"`
}

func ToPickupPointResponse(p *PickupPoint) PickupPointResponse {
	return PickupPointResponse{
		ID:           p.ID,
		City:         p.City,
		RegisteredAt: p.RegisteredAt,
	}
}
