// AngelaMos | 2026
// dto.go

package reception

import (
	"time"
)

type OpenRequest struct {
	PVZID int64 `json:"pvz_id" validate:"required,gt=0"`
}

type AddProductRequest struct {
	ReceptionID int64  `json:"reception_id" validate:"required,gt=0"`
	Type        string `json:"type" validate:"required"`
}

type ReceptionResponse struct {
	ID       int64     `json:"id"`
	PVZID    int64     `json:"pvz_id"`
	DateTime time.Time `json:"datetime"`
	Status   string    `json:"status"`
}

type ProductResponse struct {
	ID          int64     `json:"id"`
	ReceptionID int64     `json:"reception_id"`
	DateTime    time.Time `json:"datetime"`
	Type        string    `json:"type"`
}

func ToReceptionResponse(r *Reception) ReceptionResponse {
	return ReceptionResponse{
		ID:       r.ID,
		PVZID:    r.PVZID,
		DateTime: r.DateTime,
		Status:   r.Status,
	}
}

func ToProductResponse(p *Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		ReceptionID: p.ReceptionID,
		DateTime:    p.DateTime,
		Type:        p.Type,
	}
}
