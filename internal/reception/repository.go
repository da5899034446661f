// AngelaMos | 2026
// repository.go

package reception

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/angelamos/pvz-backend/internal/core"
)

type Repository interface {
	Open(ctx context.Context, pvzID int64) (*Reception, error)
	AddProduct(ctx context.Context, receptionID int64, productType string) (*Product, error)
	RemoveLastProduct(ctx context.Context, pvzID int64) (*Product, error)
	Close(ctx context.Context, pvzID int64) (*Reception, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Open inserts an open reception and lets the exclusion constraint
// enforce at most one open reception per pickup point. The constraint
// is the single source of truth; no check-then-insert here.
func (r *repository) Open(
	ctx context.Context,
	pvzID int64,
) (*Reception, error) {
	query := `
		INSERT INTO receptions (pvz_id)
		VALUES ($1)
		RETURNING id, pvz_id, datetime, status`

	var rec Reception
	if err := r.db.GetContext(ctx, &rec, query, pvzID); err != nil {
		return nil, core.TranslateDBError("open reception", err)
	}

	return &rec, nil
}

// AddProduct locks the reception row, rejects closed receptions, then
// inserts the product and appends its id to product_ids so the tail of
// the array is always the most recently received product.
func (r *repository) AddProduct(
	ctx context.Context,
	receptionID int64,
	productType string,
) (*Product, error) {
	var product Product

	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var status string
		err := tx.GetContext(ctx, &status,
			`SELECT status FROM receptions WHERE id = $1 FOR UPDATE`,
			receptionID,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return core.ErrReceptionNotFound
			}
			return fmt.Errorf("lock reception: %w", err)
		}
		if status != StatusOpen {
			return core.ErrReceptionClosed
		}

		err = tx.GetContext(ctx, &product,
			`INSERT INTO products (reception_id, type)
			 VALUES ($1, $2)
			 RETURNING id, reception_id, datetime, type`,
			receptionID, productType,
		)
		if err != nil {
			return core.TranslateDBError("add product", err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE receptions
			 SET product_ids = array_append(product_ids, $1::int)
			 WHERE id = $2`,
			product.ID, receptionID,
		)
		if err != nil {
			return fmt.Errorf("append product id: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &product, nil
}

type openReceptionRow struct {
	ID     int64         `db:"id"`
	LastID sql.NullInt64 `db:"last_id"`
	Count  int           `db:"count"`
}

// RemoveLastProduct pops the tail of product_ids: the products table
// row is deleted and the id trimmed from the array in one transaction,
// with the reception row locked so concurrent removals serialize.
func (r *repository) RemoveLastProduct(
	ctx context.Context,
	pvzID int64,
) (*Product, error) {
	var product Product

	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var row openReceptionRow
		err := tx.GetContext(ctx, &row,
			`SELECT
				id,
				product_ids[cardinality(product_ids)] AS last_id,
				cardinality(product_ids) AS count
			 FROM receptions
			 WHERE pvz_id = $1 AND status = 'open'
			 FOR UPDATE`,
			pvzID,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return core.ErrNoOpenReception
			}
			return fmt.Errorf("lock open reception: %w", err)
		}
		if row.Count == 0 || !row.LastID.Valid {
			return core.ErrEmptyReception
		}

		err = tx.GetContext(ctx, &product,
			`DELETE FROM products
			 WHERE id = $1
			 RETURNING id, reception_id, datetime, type`,
			row.LastID.Int64,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return core.ErrProductNotFound
			}
			return fmt.Errorf("delete product: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE receptions
			 SET product_ids = product_ids[1:cardinality(product_ids) - 1]
			 WHERE id = $1`,
			row.ID,
		)
		if err != nil {
			return fmt.Errorf("trim product ids: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// Close flips the open reception to closed in a single conditional
// UPDATE; zero rows means there was nothing open to close.
func (r *repository) Close(
	ctx context.Context,
	pvzID int64,
) (*Reception, error) {
	query := `
		UPDATE receptions
		SET status = 'closed'
		WHERE pvz_id = $1 AND status = 'open'
		RETURNING id, pvz_id, datetime, status`

	var rec Reception
	if err := r.db.GetContext(ctx, &rec, query, pvzID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNoOpenReception
		}
		return nil, fmt.Errorf("close reception: %w", err)
	}

	return &rec, nil
}
