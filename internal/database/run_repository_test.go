package database

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/storesync/internal/domain"
	"github.com/jonesrussell/storesync/internal/logger"
)

func TestRunRepository_Create(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewRunRepository(db, logger.NewNoOp())

	run := &domain.SyncRun{
		ID:          "0d9f1a2b",
		StartedAt:   time.Now(),
		StoresTotal: 4,
	}

	mock.ExpectExec(`INSERT INTO sync_runs`).
		WithArgs(run.ID, run.StartedAt, run.StoresTotal).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), run))
}

func TestRunRepository_Finish(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewRunRepository(db, logger.NewNoOp())

	run := &domain.SyncRun{
		ID:              "0d9f1a2b",
		StartedAt:       time.Now(),
		StoresTotal:     4,
		StoresSucceeded: 3,
		StoresFailed:    1,
		ProductsWritten: 120,
	}

	mock.ExpectExec(`UPDATE sync_runs`).
		WithArgs(sqlmock.AnyArg(), 3, 1, 120, run.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Finish(context.Background(), run))
	assert.NotNil(t, run.FinishedAt)
}

func TestRunRepository_Finish_UnknownRun(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewRunRepository(db, logger.NewNoOp())

	run := &domain.SyncRun{ID: "missing"}

	mock.ExpectExec(`UPDATE sync_runs`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Finish(context.Background(), run)
	require.ErrorIs(t, err, ErrRunNotFound)
}
