package domain

import "time"

// SyncRun records the aggregate outcome of one orchestrator run.
type SyncRun struct {
	ID              string     `db:"id"`
	StartedAt       time.Time  `db:"started_at"`
	FinishedAt      *time.Time `db:"finished_at"`
	StoresTotal     int        `db:"stores_total"`
	StoresSucceeded int        `db:"stores_succeeded"`
	StoresFailed    int        `db:"stores_failed"`
	ProductsWritten int        `db:"products_written"`
}
