// AngelaMos | 2026
// repository.go

package pvz

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/angelamos/pvz-backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, city string) (*PickupPoint, error)
	List(ctx context.Context, params ListParams) ([]ReportItem, int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// Create relies on the city_type enum for city validation; an unknown
// city surfaces as a translated constraint violation.
func (r *repository) Create(
	ctx context.Context,
	city string,
) (*PickupPoint, error) {
	query := `
		INSERT INTO pickup_points (city)
		VALUES ($1)
		RETURNING id, city, registered_at`

	var point PickupPoint
	if err := r.db.GetContext(ctx, &point, query, city); err != nil {
		return nil, core.TranslateDBError("create pickup point", err)
	}

	return &point, nil
}

type reportRow struct {
	ID           int64     `db:"id"`
	City         string    `db:"city"`
	RegisteredAt time.Time `db:"registered_at"`
	Receptions   []byte    `db:"receptions"`
}

// listQuery nests each pickup point's in-range receptions and their
// products as JSON. Both date bounds are applied inside the join
// condition, explicitly parenthesized so a nil bound leaves that side
// open and a closed range means start <= datetime <= end.
const listQuery = `
	SELECT
		p.id,
		p.city,
		p.registered_at,
		COALESCE(
			json_agg(
				json_build_object(
					'id', r.id,
					'pvz_id', r.pvz_id,
					'datetime', r.datetime,
					'status', r.status,
					'products', (
						SELECT COALESCE(
							json_agg(
								json_build_object(
									'id', pr.id,
									'reception_id', pr.reception_id,
									'datetime', pr.datetime,
									'type', pr.type
								)
								ORDER BY pr.id
							),
							'[]'::json
						)
						FROM products pr
						WHERE pr.reception_id = r.id
					)
				)
				ORDER BY r.id
			) FILTER (WHERE r.id IS NOT NULL),
			'[]'::json
		) AS receptions
	FROM pickup_points p
	LEFT JOIN receptions r
		ON r.pvz_id = p.id
		AND ($1::timestamptz IS NULL OR r.datetime >= $1)
		AND ($2::timestamptz IS NULL OR r.datetime <= $2)
	GROUP BY p.id, p.city, p.registered_at
	ORDER BY p.id
	LIMIT $3 OFFSET $4`

// The date filter prunes receptions, not pickup points: a point with no
// receptions in range still matches, so the total is the distinct count
// of pickup points independent of pagination.
const countQuery = `
	SELECT COUNT(DISTINCT p.id)
	FROM pickup_points p
	LEFT JOIN receptions r
		ON r.pvz_id = p.id
		AND ($1::timestamptz IS NULL OR r.datetime >= $1)
		AND ($2::timestamptz IS NULL OR r.datetime <= $2)`

func (r *repository) List(
	ctx context.Context,
	params ListParams,
) ([]ReportItem, int, error) {
	params.Normalize()

	var total int
	err := r.db.GetContext(
		ctx,
		&total,
		countQuery,
		params.StartDate,
		params.EndDate,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("count pickup points: %w", err)
	}

	var rows []reportRow
	err = r.db.SelectContext(
		ctx,
		&rows,
		listQuery,
		params.StartDate,
		params.EndDate,
		params.PageSize,
		params.Offset(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list pickup points: %w", err)
	}

	items := make([]ReportItem, 0, len(rows))
	for _, row := range rows {
		item, convErr := toReportItem(row)
		if convErr != nil {
			return nil, 0, convErr
		}
		items = append(items, item)
	}

	return items, total, nil
}

func toReportItem(row reportRow) (ReportItem, error) {
	item := ReportItem{
		ID:           row.ID,
		City:         row.City,
		RegisteredAt: row.RegisteredAt,
		Receptions:   []ReceptionReport{},
	}

	if len(row.Receptions) > 0 {
		if err := json.Unmarshal(row.Receptions, &item.Receptions); err != nil {
			return ReportItem{}, fmt.Errorf("decode receptions: %w", err)
		}
	}

	return item, nil
}
