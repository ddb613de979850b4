package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/storesync/internal/logger"
)

// newMockDB returns a sqlx handle backed by sqlmock. Expectations are
// verified on cleanup.
func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = sqlxDB.Close()
	})

	return sqlxDB, mock
}

func TestIsContentionError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pq.Error{Code: "40001"}, true},
		{"deadlock detected", &pq.Error{Code: "40P01"}, true},
		{"too many connections", &pq.Error{Code: "53300"}, true},
		{"wrapped deadlock", fmt.Errorf("upsert: %w", &pq.Error{Code: "40P01"}), true},
		{"unique violation", &pq.Error{Code: "23505"}, false},
		{"plain error", errors.New("connection refused"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isContentionError(tt.err))
		})
	}
}

func TestWithRetry_SucceedsAfterContention(t *testing.T) {
	t.Parallel()

	calls := 0
	err := withRetry(context.Background(), logger.NewNoOp(), "test.op", func() error {
		calls++
		if calls < 3 {
			return &pq.Error{Code: "40001"}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_NonContentionFailsImmediately(t *testing.T) {
	t.Parallel()

	boom := errors.New("syntax error")
	calls := 0
	err := withRetry(context.Background(), logger.NewNoOp(), "test.op", func() error {
		calls++
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	t.Parallel()

	calls := 0
	err := withRetry(context.Background(), logger.NewNoOp(), "test.op", func() error {
		calls++
		return &pq.Error{Code: "40P01"}
	})

	require.Error(t, err)
	assert.True(t, isContentionError(err))
	assert.Equal(t, maxRetryAttempts, calls)
}

func TestWithRetry_StopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := withRetry(ctx, logger.NewNoOp(), "test.op", func() error {
		calls++
		return &pq.Error{Code: "40001"}
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
