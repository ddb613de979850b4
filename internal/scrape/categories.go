package scrape

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jonesrussell/storesync/internal/config"
	"github.com/jonesrussell/storesync/internal/domain"
	"github.com/jonesrussell/storesync/internal/logger"
)

// CategorySource extracts the normalized category set for one store.
// Implementations must skip malformed entries rather than abort, and
// leave deduplication to the persistence unique key.
type CategorySource interface {
	Extract(ctx context.Context, store *domain.Store) ([]*domain.Category, error)
}

// slugPattern captures the trailing path segment of a category link,
// e.g. https://example.com/mens-watch.html -> mens-watch.
var slugPattern = regexp.MustCompile(`/([^/]+)\.html$`)

// slugFromURL derives a category slug from its link, or "" when the
// link does not match the expected shape.
func slugFromURL(url string) string {
	match := slugPattern.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	return match[1]
}

// CategorySourceFactory selects the category source variant for a
// store by its configured kind.
type CategorySourceFactory struct {
	client *Client
	cfg    *config.ScrapeConfig
	logger logger.Interface
}

// NewCategorySourceFactory creates a new category source factory.
func NewCategorySourceFactory(client *Client, cfg *config.ScrapeConfig, log logger.Interface) *CategorySourceFactory {
	return &CategorySourceFactory{client: client, cfg: cfg, logger: log}
}

// Extract selects the store's variant and runs it, giving callers a
// uniform call site regardless of source kind.
func (f *CategorySourceFactory) Extract(ctx context.Context, store *domain.Store) ([]*domain.Category, error) {
	source, err := f.ForStore(store)
	if err != nil {
		return nil, err
	}
	return source.Extract(ctx, store)
}

// ForStore returns the category source matching the store's variant.
func (f *CategorySourceFactory) ForStore(store *domain.Store) (CategorySource, error) {
	switch store.CategorySource {
	case domain.CategorySourceListing:
		return NewListingCategorySource(f.cfg, f.logger), nil
	case domain.CategorySourceWooCommerce:
		return NewWooCommerceCategorySource(f.client, f.logger), nil
	default:
		return nil, fmt.Errorf("unknown category source %q for store %s", store.CategorySource, store.Slug)
	}
}
