package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/storesync/internal/domain"
	"github.com/jonesrussell/storesync/internal/logger"
)

// CategoryRepository handles database operations for categories.
type CategoryRepository struct {
	db     *sqlx.DB
	logger logger.Interface
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *sqlx.DB, log logger.Interface) *CategoryRepository {
	return &CategoryRepository{db: db, logger: log}
}

// ListByStore returns all categories for a store ordered by slug.
func (r *CategoryRepository) ListByStore(ctx context.Context, storeID int64) ([]*domain.Category, error) {
	var categories []*domain.Category
	query := `
		SELECT id, store_id, external_id, slug, name, url, created_at
		FROM categories
		WHERE store_id = $1
		ORDER BY slug
	`

	err := r.db.SelectContext(ctx, &categories, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if categories == nil {
		categories = []*domain.Category{}
	}

	return categories, nil
}

// CountByStore returns the number of categories known for a store.
func (r *CategoryRepository) CountByStore(ctx context.Context, storeID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM categories WHERE store_id = $1`, storeID)
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

// InsertBatch inserts categories transactionally, skipping ones the
// store already has. The (store_id, slug) unique key is the dedup
// mechanism; extractors do not deduplicate.
func (r *CategoryRepository) InsertBatch(ctx context.Context, categories []*domain.Category) (inserted int, err error) {
	if len(categories) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO categories (store_id, external_id, slug, name, url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (store_id, slug) DO NOTHING
	`

	retryErr := withRetry(ctx, r.logger, "categories.insert_batch", func() error {
		tx, txErr := r.db.BeginTxx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}
		defer func() {
			if txErr != nil {
				_ = tx.Rollback()
			}
		}()

		inserted = 0
		now := time.Now()
		for _, cat := range categories {
			result, execErr := tx.ExecContext(ctx, query,
				cat.StoreID, cat.ExternalID, cat.Slug, cat.Name, cat.URL, now)
			if execErr != nil {
				txErr = fmt.Errorf("failed to insert category %q: %w", cat.Slug, execErr)
				return txErr
			}
			if n, _ := result.RowsAffected(); n > 0 {
				inserted++
			}
		}

		if txErr = tx.Commit(); txErr != nil {
			return fmt.Errorf("failed to commit categories: %w", txErr)
		}
		return nil
	})
	if retryErr != nil {
		return 0, retryErr
	}

	return inserted, nil
}
