package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonesrussell/storesync/internal/config"
	"github.com/jonesrussell/storesync/internal/domain"
	"github.com/jonesrussell/storesync/internal/logger"
	"github.com/jonesrussell/storesync/internal/scrape"
)

// StoreWorker drives one store end-to-end: ensure a token, load or
// discover categories, extract and persist products per category.
// Category processing is strictly sequential to keep request pacing
// against one origin predictable.
type StoreWorker struct {
	tokens       TokenAcquirer
	categories   CategoryExtractor
	products     ProductExtractor
	storeRepo    StoreStore
	categoryRepo CategoryStore
	productRepo  ProductStore
	cfg          *config.SyncConfig
	logger       logger.Interface
}

// NewStoreWorker creates a new store worker.
func NewStoreWorker(
	tokens TokenAcquirer,
	categories CategoryExtractor,
	products ProductExtractor,
	storeRepo StoreStore,
	categoryRepo CategoryStore,
	productRepo ProductStore,
	cfg *config.SyncConfig,
	log logger.Interface,
) *StoreWorker {
	return &StoreWorker{
		tokens:       tokens,
		categories:   categories,
		products:     products,
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		cfg:          cfg,
		logger:       log.WithComponent("store_worker"),
	}
}

// Process syncs one store and reports its outcome. Success is false
// only when the store itself could not be processed: no categories, or
// a token expiry that one refresh-and-retry did not resolve. A failing
// category otherwise just logs and the loop moves on; its earlier
// siblings' writes are already committed.
func (w *StoreWorker) Process(ctx context.Context, store *domain.Store) domain.StoreOutcome {
	log := w.logger.WithStore(store.Slug)
	outcome := domain.StoreOutcome{
		StoreID: store.ID,
		Slug:    store.Slug,
		Name:    store.Name,
	}

	startedAt := time.Now()

	w.ensureToken(ctx, store, log)

	categories, err := w.loadCategories(ctx, store, log)
	if err != nil {
		outcome.Reason = err.Error()
		return outcome
	}
	if len(categories) == 0 {
		log.Warn("no categories found")
		outcome.Reason = "no categories found"
		return outcome
	}

	log.Info("processing categories", "count", len(categories))

	for _, category := range categories {
		written, categoryErr := w.processCategory(ctx, store, category, log)
		outcome.ProductsWritten += written

		if categoryErr != nil {
			if errors.Is(categoryErr, scrape.ErrTokenExpired) {
				// Unrecoverable expiry abandons the remaining categories.
				log.Error("unrecoverable token expiry, abandoning store", "error", categoryErr)
				outcome.Reason = categoryErr.Error()
				return outcome
			}
			log.Error("category failed, continuing",
				"category", category.Slug, "error", categoryErr)
			continue
		}
	}

	if w.cfg.DeactivateMissing {
		deactivated, deactivateErr := w.productRepo.MarkInactiveBefore(ctx, store.ID, startedAt)
		if deactivateErr != nil {
			log.Error("failed to deactivate missing products", "error", deactivateErr)
		} else if deactivated > 0 {
			log.Info("deactivated delisted products", "count", deactivated)
		}
	}

	outcome.Success = true
	log.Info("store synced", "products_written", outcome.ProductsWritten)
	return outcome
}

// ensureToken acquires and persists a token for stores that have none.
// Best effort: an acquisition failure here is not fatal, the 403 path
// during extraction governs recovery.
func (w *StoreWorker) ensureToken(ctx context.Context, store *domain.Store, log logger.Interface) {
	if store.Token() != "" {
		return
	}

	token, err := w.tokens.Acquire(ctx, store)
	if err != nil || token == "" {
		log.Warn("token backfill failed", "error", err)
		return
	}

	if updateErr := w.storeRepo.UpdateToken(ctx, store.ID, token); updateErr != nil {
		log.Error("failed to persist token", "error", updateErr)
		return
	}
	store.SetToken(token)
}

// loadCategories returns the store's known categories, extracting and
// persisting them first when the store has none or a refresh is
// configured.
func (w *StoreWorker) loadCategories(
	ctx context.Context, store *domain.Store, log logger.Interface,
) ([]*domain.Category, error) {
	if !w.cfg.RefreshCategories {
		categories, err := w.categoryRepo.ListByStore(ctx, store.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load categories: %w", err)
		}
		if len(categories) > 0 {
			return categories, nil
		}
	}

	extracted, err := w.categories.Extract(ctx, store)
	if err != nil {
		log.Error("category extraction failed", "error", err)
	}
	if len(extracted) > 0 {
		if _, insertErr := w.categoryRepo.InsertBatch(ctx, extracted); insertErr != nil {
			return nil, fmt.Errorf("failed to persist categories: %w", insertErr)
		}
	}

	categories, err := w.categoryRepo.ListByStore(ctx, store.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return categories, nil
}

// processCategory extracts one category and persists its products
// immediately. On token expiry it re-acquires and retries the whole
// category exactly once, so partial first-attempt pages are never
// double counted.
func (w *StoreWorker) processCategory(
	ctx context.Context,
	store *domain.Store,
	category *domain.Category,
	log logger.Interface,
) (int, error) {
	products, err := w.products.Extract(ctx, store, category, store.Token(), w.cfg.OrderBy)
	if err != nil {
		if !errors.Is(err, scrape.ErrTokenExpired) {
			return 0, err
		}

		// Discard any partial page sequence and retry once with a
		// refreshed token.
		products, err = w.retryWithFreshToken(ctx, store, category, log)
		if err != nil {
			return 0, err
		}
	}

	if len(products) == 0 {
		return 0, nil
	}

	written, persistErr := w.productRepo.UpsertBatch(ctx, products)
	if persistErr != nil {
		return 0, fmt.Errorf("failed to persist products for %s: %w", category.Slug, persistErr)
	}
	return written, nil
}

// retryWithFreshToken re-acquires the store token, persists it, and
// retries the category once.
func (w *StoreWorker) retryWithFreshToken(
	ctx context.Context,
	store *domain.Store,
	category *domain.Category,
	log logger.Interface,
) ([]*domain.Product, error) {
	log.Warn("token expired, re-acquiring", "category", category.Slug)

	token, err := w.tokens.Acquire(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w (%w)", err, scrape.ErrTokenExpired)
	}
	if token == "" {
		return nil, fmt.Errorf("empty token after refresh: %w", scrape.ErrTokenExpired)
	}

	if updateErr := w.storeRepo.UpdateToken(ctx, store.ID, token); updateErr != nil {
		return nil, fmt.Errorf("failed to persist refreshed token: %w (%w)", updateErr, scrape.ErrTokenExpired)
	}
	store.SetToken(token)

	products, err := w.products.Extract(ctx, store, category, token, w.cfg.OrderBy)
	if err != nil {
		return nil, fmt.Errorf("retry after token refresh failed: %w", err)
	}
	return products, nil
}
