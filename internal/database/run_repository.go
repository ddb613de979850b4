package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/storesync/internal/domain"
	"github.com/jonesrussell/storesync/internal/logger"
)

// RunRepository handles database operations for sync runs.
type RunRepository struct {
	db     *sqlx.DB
	logger logger.Interface
}

// NewRunRepository creates a new sync run repository.
func NewRunRepository(db *sqlx.DB, log logger.Interface) *RunRepository {
	return &RunRepository{db: db, logger: log}
}

// Create inserts a new sync run row at the start of a run.
func (r *RunRepository) Create(ctx context.Context, run *domain.SyncRun) error {
	query := `
		INSERT INTO sync_runs (id, started_at, stores_total)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.ExecContext(ctx, query, run.ID, run.StartedAt, run.StoresTotal)
	if err != nil {
		return fmt.Errorf("failed to create sync run: %w", err)
	}

	return nil
}

// Finish records the aggregate counters when a run completes.
func (r *RunRepository) Finish(ctx context.Context, run *domain.SyncRun) error {
	query := `
		UPDATE sync_runs
		SET finished_at = $1,
		    stores_succeeded = $2,
		    stores_failed = $3,
		    products_written = $4
		WHERE id = $5
	`

	now := time.Now()
	run.FinishedAt = &now

	result, err := r.db.ExecContext(ctx, query,
		run.FinishedAt, run.StoresSucceeded, run.StoresFailed, run.ProductsWritten, run.ID)
	return execRequireRows(result, err, ErrRunNotFound)
}
