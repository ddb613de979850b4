package scrape

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonesrussell/storesync/internal/domain"
	"github.com/jonesrussell/storesync/internal/logger"
)

// productsPerPage is the fixed page size of the product listing
// endpoint. The offset advances by exactly this much per request.
const productsPerPage = 12

// ProductExtractor pages through a store's product listing endpoint
// for one category.
type ProductExtractor struct {
	client *Client
	logger logger.Interface
}

// NewProductExtractor creates a new product extractor.
func NewProductExtractor(client *Client, log logger.Interface) *ProductExtractor {
	return &ProductExtractor{
		client: client,
		logger: log.WithComponent("product_extractor"),
	}
}

// Extract retrieves all products for a category via offset pagination.
// A page parsing to zero products is end-of-catalog, not an error. An
// HTTP 403 returns ErrTokenExpired without consuming further pages; the
// caller re-acquires and retries the whole category. Any other request
// failure terminates the loop early and keeps what was accumulated.
func (e *ProductExtractor) Extract(
	ctx context.Context,
	store *domain.Store,
	category *domain.Category,
	token string,
	orderBy string,
) ([]*domain.Product, error) {
	log := e.logger.WithStore(store.Slug).WithCategory(category.Slug)

	endpoint := strings.TrimRight(store.BaseURL, "/") + store.APIEndpoint

	var products []*domain.Product
	offset := 0
	for page := 1; ; page++ {
		log.Debug("fetching product page", "page", page, "offset", offset)

		resp, err := e.client.R().
			SetContext(ctx).
			SetFormData(map[string]string{
				"getresult":     strconv.Itoa(offset),
				"web_token":     token,
				"category_slug": category.Slug,
				"orderby":       orderBy,
			}).
			Post(endpoint)
		if err != nil {
			log.Error("failed to fetch product page, keeping partial results",
				"page", page, "error", err)
			break
		}

		if resp.StatusCode() == http.StatusForbidden {
			log.Warn("web token rejected", "page", page)
			return products, fmt.Errorf("store %s: %w", store.Slug, ErrTokenExpired)
		}
		if resp.IsError() {
			log.Error("product page returned error status, keeping partial results",
				"page", page, "status", resp.StatusCode())
			break
		}

		pageProducts := parseProductPage(string(resp.Body()), store.ID, category.ID, log)
		if len(pageProducts) == 0 {
			log.Debug("empty page, catalog exhausted", "pages", page)
			break
		}

		products = append(products, pageProducts...)
		offset += productsPerPage

		e.client.Pause(ctx)
	}

	log.Info("products extracted", "count", len(products))
	return products, nil
}
