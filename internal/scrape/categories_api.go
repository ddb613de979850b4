package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/jonesrussell/storesync/internal/domain"
	"github.com/jonesrussell/storesync/internal/logger"
)

// categoriesPerPage is the fixed page size requested from the
// WooCommerce categories endpoint.
const categoriesPerPage = 100

// categoriesPath is the WooCommerce Store API categories route,
// appended to the store's api_endpoint.
const categoriesPath = "/products/categories"

// wooCategory is one entry of the WooCommerce categories response.
type wooCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// WooCommerceCategorySource pages through a store's WooCommerce
// categories endpoint.
type WooCommerceCategorySource struct {
	client *Client
	logger logger.Interface
}

// NewWooCommerceCategorySource creates the REST category source.
func NewWooCommerceCategorySource(client *Client, log logger.Interface) *WooCommerceCategorySource {
	return &WooCommerceCategorySource{
		client: client,
		logger: log.WithComponent("category_api"),
	}
}

// Extract pages through the categories endpoint until a short page.
// Names arrive HTML-entity-escaped and are decoded before the store's
// category filter is applied. Malformed entries are skipped.
func (s *WooCommerceCategorySource) Extract(ctx context.Context, store *domain.Store) ([]*domain.Category, error) {
	log := s.logger.WithStore(store.Slug)

	endpoint := strings.TrimRight(store.BaseURL, "/") + store.APIEndpoint + categoriesPath
	filter := store.FilterSet()

	var categories []*domain.Category
	for page := 1; ; page++ {
		resp, err := s.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"page":     strconv.Itoa(page),
				"per_page": strconv.Itoa(categoriesPerPage),
			}).
			Get(endpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch categories page %d for %s: %w", page, store.Slug, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("categories endpoint for %s returned status %d", store.Slug, resp.StatusCode())
		}

		var entries []wooCategory
		if unmarshalErr := json.Unmarshal(resp.Body(), &entries); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to decode categories page %d for %s: %w", page, store.Slug, unmarshalErr)
		}

		if len(entries) == 0 {
			break
		}

		for _, entry := range entries {
			if entry.Slug == "" || entry.Name == "" {
				log.Debug("skipping malformed category entry", "id", entry.ID)
				continue
			}

			name := html.UnescapeString(entry.Name)
			if filter != nil {
				if _, keep := filter[name]; !keep {
					continue
				}
			}

			categories = append(categories, &domain.Category{
				StoreID:    store.ID,
				ExternalID: strconv.Itoa(entry.ID),
				Slug:       entry.Slug,
				Name:       name,
				URL:        endpoint + "/" + strconv.Itoa(entry.ID),
			})
		}

		// A short page means the catalog is exhausted.
		if len(entries) < categoriesPerPage {
			break
		}

		s.client.Pause(ctx)
	}

	log.Info("categories extracted", "count", len(categories))
	return categories, nil
}
