package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/storesync/internal/domain"
	"github.com/jonesrussell/storesync/internal/logger"
)

// ProductRepository handles database operations for products.
type ProductRepository struct {
	db     *sqlx.DB
	logger logger.Interface
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *sqlx.DB, log logger.Interface) *ProductRepository {
	return &ProductRepository{db: db, logger: log}
}

// UpsertBatch inserts or updates products transactionally, keyed on
// (store_id, product_id). Re-applying the same batch is idempotent:
// mutable fields are refreshed and is_active is set true on every
// sighting. Note that delisted products are never flipped inactive by
// this path; see MarkInactiveBefore.
func (r *ProductRepository) UpsertBatch(ctx context.Context, products []*domain.Product) (written int, err error) {
	if len(products) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO products (store_id, category_id, product_id, name, url,
		                      image_url, price, original_price, size, stock_status,
		                      is_active, last_synced_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE, $11, $11, $11)
		ON CONFLICT (store_id, product_id) DO UPDATE SET
			category_id = EXCLUDED.category_id,
			name = EXCLUDED.name,
			url = EXCLUDED.url,
			image_url = EXCLUDED.image_url,
			price = EXCLUDED.price,
			original_price = EXCLUDED.original_price,
			size = EXCLUDED.size,
			stock_status = EXCLUDED.stock_status,
			is_active = TRUE,
			last_synced_at = EXCLUDED.last_synced_at,
			updated_at = EXCLUDED.updated_at
	`

	retryErr := withRetry(ctx, r.logger, "products.upsert_batch", func() error {
		tx, txErr := r.db.BeginTxx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}
		defer func() {
			if txErr != nil {
				_ = tx.Rollback()
			}
		}()

		written = 0
		now := time.Now()
		for _, p := range products {
			_, execErr := tx.ExecContext(ctx, query,
				p.StoreID,
				p.CategoryID,
				p.ProductID,
				p.Name,
				p.URL,
				p.ImageURL,
				p.Price,
				p.OriginalPrice,
				p.Size,
				p.StockStatus,
				now,
			)
			if execErr != nil {
				txErr = fmt.Errorf("failed to upsert product %q: %w", p.ProductID, execErr)
				return txErr
			}
			written++
		}

		if txErr = tx.Commit(); txErr != nil {
			return fmt.Errorf("failed to commit products: %w", txErr)
		}
		return nil
	})
	if retryErr != nil {
		return 0, retryErr
	}

	return written, nil
}

// CountByStore returns the number of product rows for a store.
func (r *ProductRepository) CountByStore(ctx context.Context, storeID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM products WHERE store_id = $1`, storeID)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// MarkInactiveBefore flips is_active off for a store's products whose
// last_synced_at predates cutoff. This is the reconciliation pass for
// delisted products; the upsert alone only ever sets is_active true.
// Enabled per run via sync.deactivate_missing.
func (r *ProductRepository) MarkInactiveBefore(ctx context.Context, storeID int64, cutoff time.Time) (int64, error) {
	query := `
		UPDATE products
		SET is_active = FALSE,
		    updated_at = NOW()
		WHERE store_id = $1
		  AND is_active = TRUE
		  AND last_synced_at < $2
	`

	var deactivated int64
	err := withRetry(ctx, r.logger, "products.mark_inactive", func() error {
		result, execErr := r.db.ExecContext(ctx, query, storeID, cutoff)
		if execErr != nil {
			return fmt.Errorf("failed to mark products inactive: %w", execErr)
		}
		deactivated, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		return 0, err
	}

	return deactivated, nil
}
