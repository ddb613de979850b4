package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/storesync/internal/domain"
	"github.com/jonesrussell/storesync/internal/logger"
)

// StoreRepository handles database operations for stores.
type StoreRepository struct {
	db     *sqlx.DB
	logger logger.Interface
}

// NewStoreRepository creates a new store repository.
func NewStoreRepository(db *sqlx.DB, log logger.Interface) *StoreRepository {
	return &StoreRepository{db: db, logger: log}
}

const storeColumns = `id, slug, name, base_url, api_endpoint, web_token,
	       token_last_fetched_at, category_source, category_filter, enabled,
	       created_at, updated_at`

// ListEnabled returns all enabled stores ordered by slug.
func (r *StoreRepository) ListEnabled(ctx context.Context) ([]*domain.Store, error) {
	var stores []*domain.Store
	query := `
		SELECT ` + storeColumns + `
		FROM stores
		WHERE enabled = TRUE
		ORDER BY slug
	`

	err := r.db.SelectContext(ctx, &stores, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	if stores == nil {
		stores = []*domain.Store{}
	}

	return stores, nil
}

// GetBySlug retrieves a store by its slug.
func (r *StoreRepository) GetBySlug(ctx context.Context, slug string) (*domain.Store, error) {
	var store domain.Store
	query := `
		SELECT ` + storeColumns + `
		FROM stores
		WHERE slug = $1
	`

	err := r.db.GetContext(ctx, &store, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, slug)
		}
		return nil, fmt.Errorf("failed to get store: %w", err)
	}

	return &store, nil
}

// UpdateToken persists a freshly acquired web token for a store.
func (r *StoreRepository) UpdateToken(ctx context.Context, storeID int64, token string) error {
	query := `
		UPDATE stores
		SET web_token = $1,
		    token_last_fetched_at = $2,
		    updated_at = $2
		WHERE id = $3
	`

	return withRetry(ctx, r.logger, "stores.update_token", func() error {
		result, err := r.db.ExecContext(ctx, query, token, time.Now(), storeID)
		return execRequireRows(result, err, ErrStoreNotFound)
	})
}

// Upsert inserts or updates a store keyed on its slug. Returns true
// when the store was newly created.
func (r *StoreRepository) Upsert(ctx context.Context, store *domain.Store) (bool, error) {
	query := `
		INSERT INTO stores (slug, name, base_url, api_endpoint, category_source,
		                    category_filter, enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			base_url = EXCLUDED.base_url,
			api_endpoint = EXCLUDED.api_endpoint,
			category_source = EXCLUDED.category_source,
			category_filter = EXCLUDED.category_filter,
			enabled = EXCLUDED.enabled,
			updated_at = NOW()
		RETURNING id, (xmax = 0) AS is_insert
	`

	var (
		id       int64
		isInsert bool
	)
	err := r.db.QueryRowContext(ctx, query,
		store.Slug,
		store.Name,
		store.BaseURL,
		store.APIEndpoint,
		store.CategorySource,
		store.CategoryFilter,
		store.Enabled,
	).Scan(&id, &isInsert)
	if err != nil {
		return false, fmt.Errorf("failed to upsert store: %w", err)
	}

	store.ID = id
	return isInsert, nil
}
