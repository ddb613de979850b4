// Package domain defines the core types shared across the storesync application.
package domain

import (
	"time"

	"github.com/lib/pq"
)

// CategorySourceKind selects how a store's categories are discovered.
type CategorySourceKind string

const (
	// CategorySourceListing scrapes the store's allcategory listing page.
	CategorySourceListing CategorySourceKind = "listing"
	// CategorySourceWooCommerce pages through the WooCommerce Store API.
	CategorySourceWooCommerce CategorySourceKind = "woocommerce"
)

// Store is one independently hosted storefront. It is the unit of
// concurrency and of token ownership; the sync core only ever mutates
// its web token.
type Store struct {
	ID                 int64              `db:"id"`
	Slug               string             `db:"slug"`
	Name               string             `db:"name"`
	BaseURL            string             `db:"base_url"`
	APIEndpoint        string             `db:"api_endpoint"`
	WebToken           *string            `db:"web_token"`
	TokenLastFetchedAt *time.Time         `db:"token_last_fetched_at"`
	CategorySource     CategorySourceKind `db:"category_source"`
	CategoryFilter     pq.StringArray     `db:"category_filter"`
	Enabled            bool               `db:"enabled"`
	CreatedAt          time.Time          `db:"created_at"`
	UpdatedAt          time.Time          `db:"updated_at"`
}

// Token returns the store's current web token, or "" when none is set.
func (s *Store) Token() string {
	if s.WebToken == nil {
		return ""
	}
	return *s.WebToken
}

// SetToken replaces the store's in-memory token after a refresh.
func (s *Store) SetToken(token string) {
	s.WebToken = &token
	now := time.Now()
	s.TokenLastFetchedAt = &now
}

// FilterSet returns the category filter as a set for membership checks.
// A nil return means no filtering is configured.
func (s *Store) FilterSet() map[string]struct{} {
	if len(s.CategoryFilter) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(s.CategoryFilter))
	for _, name := range s.CategoryFilter {
		set[name] = struct{}{}
	}
	return set
}
