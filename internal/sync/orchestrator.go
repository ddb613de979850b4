package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonesrussell/storesync/internal/domain"
	"github.com/jonesrussell/storesync/internal/logger"
	"github.com/jonesrussell/storesync/internal/worker"
)

// Summary is the aggregate result of one orchestrator run.
type Summary struct {
	RunID           string
	Duration        time.Duration
	StoresTotal     int
	StoresSucceeded int
	StoresFailed    int
	ProductsWritten int
	Outcomes        []domain.StoreOutcome
}

// Orchestrator fans store workers out across the bounded pool and
// collects per-store outcomes.
type Orchestrator struct {
	stores StoreLister
	runs   RunStore
	pool   *worker.Pool
	logger logger.Interface
}

// NewOrchestrator creates a new orchestrator.
func NewOrchestrator(stores StoreLister, runs RunStore, pool *worker.Pool, log logger.Interface) *Orchestrator {
	return &Orchestrator{
		stores: stores,
		runs:   runs,
		pool:   pool,
		logger: log.WithComponent("orchestrator"),
	}
}

// Run syncs every enabled store, or a single store when storeSlug is
// non-empty. A configuration with zero stores is a no-op completion,
// not an error. Cancellation stops scheduling new stores; stores
// already in flight run to completion and are still counted.
func (o *Orchestrator) Run(ctx context.Context, storeSlug string) (*Summary, error) {
	stores, err := o.loadStores(ctx, storeSlug)
	if err != nil {
		return nil, err
	}

	if len(stores) == 0 {
		o.logger.Info("no stores configured, nothing to do")
		return &Summary{}, nil
	}

	run := &domain.SyncRun{
		ID:          uuid.New().String(),
		StartedAt:   time.Now(),
		StoresTotal: len(stores),
	}
	if createErr := o.runs.Create(ctx, run); createErr != nil {
		return nil, fmt.Errorf("failed to record sync run: %w", createErr)
	}

	log := o.logger.WithRunID(run.ID)
	log.Info("sync run started",
		"stores", len(stores),
		"pool_size", o.pool.Size(),
	)

	if startErr := o.pool.Start(); startErr != nil {
		return nil, fmt.Errorf("failed to start worker pool: %w", startErr)
	}

	results := make(chan domain.StoreOutcome, len(stores))

	submitted := 0
	var unscheduled []domain.StoreOutcome
	for _, store := range stores {
		if submitErr := o.pool.Submit(ctx, store, results); submitErr != nil {
			// Cancellation stops scheduling; account the remainder as failed.
			log.Warn("store not scheduled", "store", store.Slug, "error", submitErr)
			unscheduled = append(unscheduled, domain.StoreOutcome{
				StoreID: store.ID,
				Slug:    store.Slug,
				Name:    store.Name,
				Reason:  fmt.Sprintf("not scheduled: %v", submitErr),
			})
			continue
		}
		submitted++
	}

	summary := &Summary{
		RunID:       run.ID,
		StoresTotal: len(stores),
		Outcomes:    make([]domain.StoreOutcome, 0, len(stores)),
	}
	for range submitted {
		summary.Outcomes = append(summary.Outcomes, <-results)
	}
	summary.Outcomes = append(summary.Outcomes, unscheduled...)

	for _, outcome := range summary.Outcomes {
		if outcome.Success {
			summary.StoresSucceeded++
		} else {
			summary.StoresFailed++
		}
		summary.ProductsWritten += outcome.ProductsWritten
	}
	summary.Duration = time.Since(run.StartedAt)

	run.StoresSucceeded = summary.StoresSucceeded
	run.StoresFailed = summary.StoresFailed
	run.ProductsWritten = summary.ProductsWritten
	if finishErr := o.runs.Finish(context.WithoutCancel(ctx), run); finishErr != nil {
		log.Error("failed to finalize sync run", "error", finishErr)
	}

	if stopErr := o.pool.Stop(context.WithoutCancel(ctx)); stopErr != nil {
		log.Warn("failed to stop worker pool", "error", stopErr)
	}

	log.Info("sync run finished",
		"succeeded", summary.StoresSucceeded,
		"failed", summary.StoresFailed,
		"products_written", summary.ProductsWritten,
		"duration", summary.Duration,
	)

	return summary, nil
}

// loadStores resolves the set of stores to sync.
func (o *Orchestrator) loadStores(ctx context.Context, storeSlug string) ([]*domain.Store, error) {
	if storeSlug != "" {
		store, err := o.stores.GetBySlug(ctx, storeSlug)
		if err != nil {
			return nil, fmt.Errorf("failed to load store %s: %w", storeSlug, err)
		}
		return []*domain.Store{store}, nil
	}

	stores, err := o.stores.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stores: %w", err)
	}
	return stores, nil
}
