// Package sync drives store synchronization: per-store workers that
// extract and persist catalogs, and the orchestrator that fans them
// out across the bounded pool.
package sync

import (
	"context"
	"time"

	"github.com/jonesrussell/storesync/internal/domain"
)

//go:generate mockgen -destination=../../testutils/mocks/syncmocks/mocks.go -package=syncmocks -source=interface.go

// TokenAcquirer obtains a fresh web token for a store.
type TokenAcquirer interface {
	Acquire(ctx context.Context, store *domain.Store) (string, error)
}

// CategoryExtractor discovers the category set for a store.
type CategoryExtractor interface {
	Extract(ctx context.Context, store *domain.Store) ([]*domain.Category, error)
}

// ProductExtractor retrieves all products for one category.
type ProductExtractor interface {
	Extract(
		ctx context.Context,
		store *domain.Store,
		category *domain.Category,
		token string,
		orderBy string,
	) ([]*domain.Product, error)
}

// StoreStore persists store mutations; the sync core only ever updates
// the token.
type StoreStore interface {
	UpdateToken(ctx context.Context, storeID int64, token string) error
}

// StoreLister reads store configuration.
type StoreLister interface {
	ListEnabled(ctx context.Context) ([]*domain.Store, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Store, error)
}

// CategoryStore reads and persists categories.
type CategoryStore interface {
	ListByStore(ctx context.Context, storeID int64) ([]*domain.Category, error)
	InsertBatch(ctx context.Context, categories []*domain.Category) (int, error)
}

// ProductStore persists products.
type ProductStore interface {
	UpsertBatch(ctx context.Context, products []*domain.Product) (int, error)
	MarkInactiveBefore(ctx context.Context, storeID int64, cutoff time.Time) (int64, error)
}

// RunStore persists sync run records.
type RunStore interface {
	Create(ctx context.Context, run *domain.SyncRun) error
	Finish(ctx context.Context, run *domain.SyncRun) error
}
