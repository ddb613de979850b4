// Package worker provides the bounded worker pool that fans store
// syncs out across a fixed number of concurrent workers.
package worker

import (
	"errors"
	"time"
)

// Pool defaults.
const (
	// DefaultPoolSize is the default number of concurrent store workers.
	DefaultPoolSize = 10
	// DefaultStoreTimeout bounds how long one store may sync.
	DefaultStoreTimeout = 30 * time.Minute
	// DefaultDrainTimeout bounds graceful shutdown.
	DefaultDrainTimeout = 60 * time.Second
)

// Config holds worker pool configuration.
type Config struct {
	// PoolSize caps concurrent store workers.
	PoolSize int
	// StoreTimeout bounds the processing of one store.
	StoreTimeout time.Duration
	// DrainTimeout bounds how long Stop waits for in-flight stores.
	DrainTimeout time.Duration
}

// Validate validates the pool configuration.
func (c *Config) Validate() error {
	if c.PoolSize <= 0 {
		return errors.New("pool size must be positive")
	}
	if c.StoreTimeout <= 0 {
		return errors.New("store timeout must be positive")
	}
	if c.DrainTimeout <= 0 {
		return errors.New("drain timeout must be positive")
	}
	return nil
}

// NewConfig returns a pool config with defaults applied.
func NewConfig(poolSize int) Config {
	if poolSize <= 0 {
		poolSize = DefaultPoolSize
	}
	return Config{
		PoolSize:     poolSize,
		StoreTimeout: DefaultStoreTimeout,
		DrainTimeout: DefaultDrainTimeout,
	}
}
