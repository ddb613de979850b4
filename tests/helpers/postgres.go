// Package helpers provides shared setup for integration tests.
package helpers

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const postgresImage = "postgres:16-alpine"

// StartPostgres launches a throwaway PostgreSQL container, applies the
// schema migrations, and returns a connected handle. The container is
// terminated on test cleanup. Skipped in short mode.
func StartPostgres(t *testing.T) *sqlx.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase("storesync_test"),
		postgres.WithUsername("storesync"),
		postgres.WithPassword("storesync"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sqlx.ConnectContext(ctx, "postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

// applyMigrations executes the SQL files under migrations/ in order.
func applyMigrations(t *testing.T, db *sqlx.DB) {
	t.Helper()

	_, filename, _, ok := runtime.Caller(0)
	require.True(t, ok)

	pattern := filepath.Join(filepath.Dir(filename), "..", "..", "migrations", "*.sql")
	files, err := filepath.Glob(pattern)
	require.NoError(t, err)
	require.NotEmpty(t, files, "no migration files found")

	for _, file := range files {
		ddl, readErr := os.ReadFile(file)
		require.NoError(t, readErr)

		_, execErr := db.Exec(string(ddl))
		require.NoError(t, execErr, "migration %s failed", file)
	}
}
