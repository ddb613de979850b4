package config

import "errors"

// Sync defaults
const (
	// DefaultMaxConcurrency is the worker pool size for store workers.
	DefaultMaxConcurrency = 10
	// DefaultOrderBy is the product listing sort order requested per page.
	DefaultOrderBy = "new"
)

// SyncConfig holds settings for the sync orchestrator.
type SyncConfig struct {
	// MaxConcurrency caps how many stores sync at once.
	MaxConcurrency int `yaml:"max_concurrency"`
	// RefreshCategories re-extracts category sets on every run instead
	// of only when a store has none.
	RefreshCategories bool `yaml:"refresh_categories"`
	// DeactivateMissing flips is_active off for products not sighted in
	// the current run. Off by default; see the product repository.
	DeactivateMissing bool `yaml:"deactivate_missing"`
	// OrderBy is the sort order requested from product listings.
	OrderBy string `yaml:"order_by"`
}

// Validate validates the sync configuration.
func (c *SyncConfig) Validate() error {
	if c.MaxConcurrency <= 0 {
		return errors.New("max_concurrency must be positive")
	}
	return nil
}
