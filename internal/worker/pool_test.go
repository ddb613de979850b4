package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/storesync/internal/domain"
	"github.com/jonesrussell/storesync/internal/logger"
	"github.com/jonesrussell/storesync/internal/worker"
)

type handlerFunc func(ctx context.Context, store *domain.Store) domain.StoreOutcome

func (f handlerFunc) Process(ctx context.Context, store *domain.Store) domain.StoreOutcome {
	return f(ctx, store)
}

func succeedHandler() worker.StoreHandler {
	return handlerFunc(func(_ context.Context, store *domain.Store) domain.StoreOutcome {
		return domain.StoreOutcome{StoreID: store.ID, Slug: store.Slug, Success: true}
	})
}

func TestNewPool_Validation(t *testing.T) {
	t.Parallel()

	_, err := worker.NewPool(worker.Config{}, succeedHandler(), logger.NewNoOp())
	require.Error(t, err)

	_, err = worker.NewPool(worker.NewConfig(2), nil, logger.NewNoOp())
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := worker.NewConfig(0)
	assert.Equal(t, worker.DefaultPoolSize, cfg.PoolSize)
	require.NoError(t, cfg.Validate())

	cfg.StoreTimeout = 0
	require.Error(t, cfg.Validate())
}

func TestPool_Lifecycle(t *testing.T) {
	t.Parallel()

	pool, err := worker.NewPool(worker.NewConfig(2), succeedHandler(), logger.NewNoOp())
	require.NoError(t, err)

	assert.Equal(t, worker.PoolStateStopped, pool.State())
	assert.False(t, pool.IsRunning())

	require.NoError(t, pool.Start())
	assert.True(t, pool.IsRunning())
	require.Error(t, pool.Start(), "double start must fail")

	require.NoError(t, pool.Stop(context.Background()))
	assert.Equal(t, worker.PoolStateStopped, pool.State())
	require.Error(t, pool.Stop(context.Background()), "stopping a stopped pool must fail")
}

func TestPool_SubmitRequiresRunningPool(t *testing.T) {
	t.Parallel()

	pool, err := worker.NewPool(worker.NewConfig(1), succeedHandler(), logger.NewNoOp())
	require.NoError(t, err)

	results := make(chan domain.StoreOutcome, 1)
	err = pool.Submit(context.Background(), &domain.Store{ID: 1, Slug: "s"}, results)
	require.Error(t, err)
}

func TestPool_ProcessesSubmittedStores(t *testing.T) {
	t.Parallel()

	pool, err := worker.NewPool(worker.NewConfig(2), succeedHandler(), logger.NewNoOp())
	require.NoError(t, err)
	require.NoError(t, pool.Start())

	const n = 5
	results := make(chan domain.StoreOutcome, n)
	for i := range n {
		store := &domain.Store{ID: int64(i + 1), Slug: "s"}
		require.NoError(t, pool.Submit(context.Background(), store, results))
	}

	seen := make(map[int64]bool, n)
	for range n {
		outcome := <-results
		assert.True(t, outcome.Success)
		seen[outcome.StoreID] = true
	}
	assert.Len(t, seen, n)

	processed, succeeded, failed := pool.Stats()
	assert.Equal(t, int64(n), processed)
	assert.Equal(t, int64(n), succeeded)
	assert.Zero(t, failed)

	require.NoError(t, pool.Stop(context.Background()))
}

func TestPool_BoundsInFlightStores(t *testing.T) {
	t.Parallel()

	const poolSize = 3

	var inFlight, maxInFlight atomic.Int32
	handler := handlerFunc(func(_ context.Context, store *domain.Store) domain.StoreOutcome {
		current := inFlight.Add(1)
		for {
			observed := maxInFlight.Load()
			if current <= observed || maxInFlight.CompareAndSwap(observed, current) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		return domain.StoreOutcome{StoreID: store.ID, Success: true}
	})

	pool, err := worker.NewPool(worker.NewConfig(poolSize), handler, logger.NewNoOp())
	require.NoError(t, err)
	require.NoError(t, pool.Start())

	const n = 12
	results := make(chan domain.StoreOutcome, n)
	for i := range n {
		require.NoError(t, pool.Submit(context.Background(), &domain.Store{ID: int64(i)}, results))
	}
	for range n {
		<-results
	}

	assert.LessOrEqual(t, maxInFlight.Load(), int32(poolSize))
	require.NoError(t, pool.Stop(context.Background()))
}

func TestPool_SubmitHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	blocked := make(chan struct{})
	release := make(chan struct{})
	handler := handlerFunc(func(_ context.Context, store *domain.Store) domain.StoreOutcome {
		close(blocked)
		<-release
		return domain.StoreOutcome{StoreID: store.ID, Success: true}
	})

	pool, err := worker.NewPool(worker.NewConfig(1), handler, logger.NewNoOp())
	require.NoError(t, err)
	require.NoError(t, pool.Start())

	results := make(chan domain.StoreOutcome, 2)
	require.NoError(t, pool.Submit(context.Background(), &domain.Store{ID: 1}, results))
	<-blocked

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = pool.Submit(ctx, &domain.Store{ID: 2}, results)
	require.ErrorIs(t, err, context.Canceled)

	close(release)
	outcome := <-results
	assert.Equal(t, int64(1), outcome.StoreID)

	require.NoError(t, pool.Stop(context.Background()))
}

func TestWorker_ReportsHandlerOutcome(t *testing.T) {
	t.Parallel()

	w := worker.NewWorker(0, succeedHandler(), time.Minute, logger.NewNoOp())
	assert.True(t, w.IsIdle())

	outcome := w.Process(context.Background(), &domain.Store{ID: 9, Slug: "s"})
	assert.True(t, outcome.Success)
	assert.Equal(t, int64(9), outcome.StoreID)
	assert.True(t, w.IsIdle())
}

func TestPoolState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "stopped", worker.PoolStateStopped.String())
	assert.Equal(t, "running", worker.PoolStateRunning.String())
	assert.Equal(t, "draining", worker.PoolStateDraining.String())
}
