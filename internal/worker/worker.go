package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jonesrussell/storesync/internal/domain"
	"github.com/jonesrussell/storesync/internal/logger"
)

// StoreHandler processes one store end-to-end and reports its outcome.
type StoreHandler interface {
	Process(ctx context.Context, store *domain.Store) domain.StoreOutcome
}

// Worker runs store syncs one at a time.
type Worker struct {
	id      int
	handler StoreHandler
	timeout time.Duration
	logger  logger.Interface
	busy    atomic.Bool
}

// NewWorker creates a new worker.
func NewWorker(id int, handler StoreHandler, timeout time.Duration, log logger.Interface) *Worker {
	return &Worker{
		id:      id,
		handler: handler,
		timeout: timeout,
		logger:  log.With("worker_id", id),
	}
}

// Process runs the handler for one store under the per-store timeout.
func (w *Worker) Process(ctx context.Context, store *domain.Store) domain.StoreOutcome {
	w.busy.Store(true)
	defer w.busy.Store(false)

	workCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := time.Now()
	outcome := w.handler.Process(workCtx, store)

	w.logger.Debug("store processed",
		"store", store.Slug,
		"success", outcome.Success,
		"products", outcome.ProductsWritten,
		"duration", time.Since(start),
	)

	return outcome
}

// IsIdle returns true if the worker is not processing a store.
func (w *Worker) IsIdle() bool {
	return !w.busy.Load()
}
