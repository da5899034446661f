// AngelaMos | 2026
// entity.go

package pvz

import (
	"time"
)

// PickupPoint is immutable after creation; only moderators create them.
type PickupPoint struct {
	ID           int64     `db:"id"`
	City         string    `db:"city"`
	RegisteredAt time.Time `db:"registered_at"`
}

// The closed set of cities a pickup point may be registered in, mirrored
// by the city_type enum in the schema.
const (
	CityMoscow          = "Moscow"
	CityKazan           = "Kazan"
	CitySaintPetersburg = "Saint Petersburg"
)
