package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonesrussell/storesync/internal/domain"
	"github.com/jonesrussell/storesync/internal/logger"
)

// PoolState represents the current state of the pool.
type PoolState int32

const (
	// PoolStateStopped means the pool is not running.
	PoolStateStopped PoolState = iota

	// PoolStateRunning means the pool is actively processing stores.
	PoolStateRunning

	// PoolStateDraining means the pool is shutting down gracefully.
	PoolStateDraining
)

// String returns the string representation of a pool state.
func (s PoolState) String() string {
	switch s {
	case PoolStateStopped:
		return "stopped"
	case PoolStateRunning:
		return "running"
	case PoolStateDraining:
		return "draining"
	default:
		return "unknown"
	}
}

// Pool manages a bounded pool of workers processing stores. At most
// PoolSize stores are in flight at once; further submissions block
// until a slot frees.
type Pool struct {
	config  Config
	workers []*Worker
	handler StoreHandler
	logger  logger.Interface
	state   atomic.Int32
	sem     chan struct{} // Semaphore for bounded concurrency
	wg      sync.WaitGroup
	stopCh  chan struct{}
	mu      sync.RWMutex

	// Stats
	totalProcessed atomic.Int64
	totalSucceeded atomic.Int64
	totalFailed    atomic.Int64
}

// NewPool creates a new worker pool.
func NewPool(cfg Config, handler StoreHandler, log logger.Interface) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if handler == nil {
		return nil, errors.New("handler cannot be nil")
	}

	p := &Pool{
		config:  cfg,
		handler: handler,
		logger:  log,
		workers: make([]*Worker, cfg.PoolSize),
		sem:     make(chan struct{}, cfg.PoolSize),
		stopCh:  make(chan struct{}),
	}

	// Initialize workers
	for i := range cfg.PoolSize {
		p.workers[i] = NewWorker(i, handler, cfg.StoreTimeout, log)
	}

	p.state.Store(int32(PoolStateStopped))

	return p, nil
}

// Start starts the worker pool.
func (p *Pool) Start() error {
	if !p.state.CompareAndSwap(int32(PoolStateStopped), int32(PoolStateRunning)) {
		return errors.New("pool is already running")
	}

	p.logger.Info("worker pool started", "pool_size", p.config.PoolSize)

	return nil
}

// Stop gracefully stops the worker pool. New submissions are refused;
// in-flight stores run to completion or the drain timeout.
func (p *Pool) Stop(ctx context.Context) error {
	if !p.state.CompareAndSwap(int32(PoolStateRunning), int32(PoolStateDraining)) {
		return errors.New("pool is not running")
	}

	p.logger.Info("worker pool draining")

	// Signal stop
	close(p.stopCh)

	// Wait for active stores to finish with timeout
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("worker pool stopped gracefully")
	case <-ctx.Done():
		p.logger.Warn("worker pool stop timed out")
	case <-time.After(p.config.DrainTimeout):
		p.logger.Warn("worker pool drain timeout exceeded")
	}

	p.state.Store(int32(PoolStateStopped))
	return nil
}

// Submit submits a store for processing. Blocks while all workers are
// busy; the outcome is delivered on results. A cancelled context stops
// scheduling but does not abort in-flight stores.
func (p *Pool) Submit(ctx context.Context, store *domain.Store, results chan<- domain.StoreOutcome) error {
	if p.State() != PoolStateRunning {
		return errors.New("pool is not running")
	}

	// Acquire semaphore (blocks if pool is full)
	select {
	case p.sem <- struct{}{}:
		// Got a slot
	case <-ctx.Done():
		return ctx.Err()
	case <-p.stopCh:
		return errors.New("pool is stopping")
	}

	p.wg.Add(1)

	go func() {
		defer func() {
			<-p.sem // Release semaphore
			p.wg.Done()
		}()

		worker := p.acquireWorker()
		if worker == nil {
			// Semaphore guarantees a free worker; this is defensive only.
			results <- domain.StoreOutcome{
				StoreID: store.ID,
				Slug:    store.Slug,
				Name:    store.Name,
				Reason:  "no idle worker available",
			}
			return
		}

		outcome := worker.Process(ctx, store)

		// Update pool stats
		p.totalProcessed.Add(1)
		if outcome.Success {
			p.totalSucceeded.Add(1)
		} else {
			p.totalFailed.Add(1)
		}

		results <- outcome
	}()

	return nil
}

// acquireWorker finds an idle worker.
func (p *Pool) acquireWorker() *Worker {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, w := range p.workers {
		if w.IsIdle() {
			return w
		}
	}
	return nil
}

// State returns the current pool state.
func (p *Pool) State() PoolState {
	return PoolState(p.state.Load())
}

// IsRunning returns true if the pool is running.
func (p *Pool) IsRunning() bool {
	return p.State() == PoolStateRunning
}

// Size returns the pool size.
func (p *Pool) Size() int {
	return p.config.PoolSize
}

// BusyCount returns the number of busy workers.
func (p *Pool) BusyCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	count := 0
	for _, w := range p.workers {
		if !w.IsIdle() {
			count++
		}
	}
	return count
}

// Stats returns processed, succeeded, and failed counts.
func (p *Pool) Stats() (processed, succeeded, failed int64) {
	return p.totalProcessed.Load(), p.totalSucceeded.Load(), p.totalFailed.Load()
}
