// AngelaMos | 2026
// entity.go

package reception

import (
	"time"
)

// Reception lifecycle is two states with no way back: a reception is
// open from creation until closed, and closed is terminal. product_ids
// preserves insertion order so removal can pop from the tail.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Product types mirrored by the product_type enum in the schema.
const (
	TypeElectronics = "electronics"
	TypeClothing    = "clothing"
	TypeFootwear    = "footwear"
)

type Reception struct {
	ID       int64     `db:"id"`
	PVZID    int64     `db:"pvz_id"`
	DateTime time.Time `db:"datetime"`
	Status   string    `db:"status"`
}

type Product struct {
	ID          int64     `db:"id"`
	ReceptionID int64     `db:"reception_id"`
	DateTime    time.Time `db:"datetime"`
	Type        string    `db:"type"`
}

func (r *Reception) IsOpen() bool {
	return r.Status == StatusOpen
}
