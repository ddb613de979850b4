package database

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/jonesrussell/storesync/internal/logger"
)

// Contention retry settings. Only contention conditions are retried;
// everything else escalates immediately.
const (
	maxRetryAttempts = 3
	baseRetryBackoff = 100 * time.Millisecond
)

// Postgres error codes that indicate transient contention.
const (
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
	pqTooManyConnections   = "53300"
)

// isContentionError reports whether err is a transient contention
// condition worth retrying.
func isContentionError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqSerializationFailure, pqDeadlockDetected, pqTooManyConnections:
			return true
		}
	}
	return false
}

// withRetry runs fn, retrying with exponential backoff on contention
// errors only, bounded to maxRetryAttempts.
func withRetry(ctx context.Context, log logger.Interface, op string, fn func() error) error {
	backoff := baseRetryBackoff

	var err error
	for attempt := 1; attempt <= maxRetryAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !isContentionError(err) {
			return err
		}
		if attempt == maxRetryAttempts {
			break
		}

		log.Warn("database contention, retrying",
			"op", op,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
		backoff *= 2
	}

	return err
}
