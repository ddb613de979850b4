package scrape

import (
	"context"
	"fmt"
	"strings"

	colly "github.com/gocolly/colly/v2"

	"github.com/jonesrussell/storesync/internal/config"
	"github.com/jonesrussell/storesync/internal/domain"
	"github.com/jonesrussell/storesync/internal/logger"
)

// listingPath is the fixed catalog listing page scraped by the listing
// variant.
const listingPath = "/allcategory.html"

// Listing page selectors.
const (
	categoryAnchorSelector = "div.cat-area a"
	categoryNameSelector   = "h4.cat-text"
)

// ListingCategorySource extracts categories from a store's allcategory
// listing page.
type ListingCategorySource struct {
	cfg    *config.ScrapeConfig
	logger logger.Interface
}

// NewListingCategorySource creates the listing-page category source.
func NewListingCategorySource(cfg *config.ScrapeConfig, log logger.Interface) *ListingCategorySource {
	return &ListingCategorySource{
		cfg:    cfg,
		logger: log.WithComponent("category_listing"),
	}
}

// Extract fetches the listing page and parses category anchors.
// Anchors missing a name, link, or derivable slug are skipped.
func (s *ListingCategorySource) Extract(ctx context.Context, store *domain.Store) ([]*domain.Category, error) {
	log := s.logger.WithStore(store.Slug)

	collector := colly.NewCollector(
		colly.StdlibContext(ctx),
		colly.UserAgent(s.cfg.UserAgent),
	)
	collector.SetRequestTimeout(s.cfg.RequestTimeout)

	if limitErr := collector.Limit(&colly.LimitRule{
		DomainGlob: "*",
		Delay:      s.cfg.RequestDelay,
	}); limitErr != nil {
		return nil, fmt.Errorf("failed to set rate limit: %w", limitErr)
	}

	var categories []*domain.Category
	collector.OnHTML(categoryAnchorSelector, func(e *colly.HTMLElement) {
		name := strings.TrimSpace(e.ChildText(categoryNameSelector))
		url := strings.TrimSpace(e.Attr("href"))
		slug := slugFromURL(url)

		if name == "" || url == "" || slug == "" {
			log.Debug("skipping malformed category anchor", "url", url)
			return
		}

		categories = append(categories, &domain.Category{
			StoreID:    store.ID,
			ExternalID: slug,
			Slug:       slug,
			Name:       name,
			URL:        url,
		})
	})

	listingURL := strings.TrimRight(store.BaseURL, "/") + listingPath
	log.Info("fetching category listing", "url", listingURL)

	if visitErr := collector.Visit(listingURL); visitErr != nil {
		return nil, fmt.Errorf("failed to fetch category listing for %s: %w", store.Slug, visitErr)
	}
	collector.Wait()

	log.Info("categories extracted", "count", len(categories))
	return categories, nil
}
