package scrape_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/storesync/internal/domain"
	"github.com/jonesrussell/storesync/internal/logger"
	"github.com/jonesrussell/storesync/internal/scrape"
)

// productCard renders one listing card fragment.
func productCard(id, name string, price string) string {
	return fmt.Sprintf(`
		<div class="col-lg-4 col-md-6 col-6">
			<a href="/products/%s.html"><img class="img-fluid" src="/img/%s.jpg"></a>
			<h6>%s</h6>
			<h6>Rs. %s</h6>
			<button data-product_id="%s">Add to Cart</button>
		</div>`, id, id, name, price, id)
}

// productPage renders n cards into one page fragment.
func productPage(n, startID int) string {
	var sb strings.Builder
	for i := range n {
		id := fmt.Sprintf("p%d", startID+i)
		sb.WriteString(productCard(id, "Product "+id, "1,299"))
	}
	return sb.String()
}

func testCategory() *domain.Category {
	return &domain.Category{ID: 7, StoreID: 1, Slug: "mens-watch", Name: "Mens Watch"}
}

func TestProductExtractor_PaginationStopsOnEmptyPage(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var offsets []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())

		mu.Lock()
		offsets = append(offsets, r.PostFormValue("getresult"))
		mu.Unlock()

		assert.Equal(t, "tok123", r.PostFormValue("web_token"))
		assert.Equal(t, "mens-watch", r.PostFormValue("category_slug"))
		assert.Equal(t, "new", r.PostFormValue("orderby"))

		if r.PostFormValue("getresult") == "0" {
			_, _ = w.Write([]byte(productPage(12, 0)))
			return
		}
		// Second page is empty: end of catalog.
		_, _ = w.Write([]byte("<div></div>"))
	}))
	defer srv.Close()

	extractor := scrape.NewProductExtractor(scrape.NewClient(testScrapeConfig()), logger.NewNoOp())

	products, err := extractor.Extract(
		context.Background(), testStore(srv.URL), testCategory(), "tok123", "new")
	require.NoError(t, err)

	assert.Len(t, products, 12)
	// Offset advances by exactly the page size until the empty page.
	assert.Equal(t, []string{"0", "12"}, offsets)
}

func TestProductExtractor_ForbiddenSignalsTokenExpired(t *testing.T) {
	t.Parallel()

	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	extractor := scrape.NewProductExtractor(scrape.NewClient(testScrapeConfig()), logger.NewNoOp())

	products, err := extractor.Extract(
		context.Background(), testStore(srv.URL), testCategory(), "stale", "new")
	require.ErrorIs(t, err, scrape.ErrTokenExpired)
	assert.Empty(t, products)
	// No further pages are consumed after the 403.
	assert.Equal(t, 1, requests)
}

func TestProductExtractor_ForbiddenMidwayKeepsAccumulated(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostFormValue("getresult") == "0" {
			_, _ = w.Write([]byte(productPage(12, 0)))
			return
		}
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	extractor := scrape.NewProductExtractor(scrape.NewClient(testScrapeConfig()), logger.NewNoOp())

	products, err := extractor.Extract(
		context.Background(), testStore(srv.URL), testCategory(), "tok", "new")
	require.ErrorIs(t, err, scrape.ErrTokenExpired)
	assert.Len(t, products, 12)
}

func TestProductExtractor_ServerErrorReturnsPartialResults(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostFormValue("getresult") == "0" {
			_, _ = w.Write([]byte(productPage(12, 0)))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	extractor := scrape.NewProductExtractor(scrape.NewClient(testScrapeConfig()), logger.NewNoOp())

	products, err := extractor.Extract(
		context.Background(), testStore(srv.URL), testCategory(), "tok", "new")
	require.NoError(t, err)
	assert.Len(t, products, 12)
}

func TestProductExtractor_FillsProductFields(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostFormValue("getresult") != "0" {
			_, _ = w.Write([]byte(""))
			return
		}
		_, _ = w.Write([]byte(`
			<div class="col-lg-4 col-md-6 col-6">
				<a href="/products/watch-1.html"><img class="img-fluid" src="/img/watch-1.jpg"></a>
				<h6>Classic Watch</h6>
				<h6 class="l-through">Rs. 2,499</h6>
				<h6>Rs. 1,999</h6>
				<label class="badge badge-primary">XL</label>
				<button data-product_id="4711">Sold Out</button>
			</div>`))
	}))
	defer srv.Close()

	extractor := scrape.NewProductExtractor(scrape.NewClient(testScrapeConfig()), logger.NewNoOp())

	products, err := extractor.Extract(
		context.Background(), testStore(srv.URL), testCategory(), "tok", "new")
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "4711", p.ProductID)
	assert.Equal(t, "Classic Watch", p.Name)
	assert.Equal(t, "/products/watch-1.html", p.URL)
	assert.Equal(t, "/img/watch-1.jpg", p.ImageURL)
	assert.InDelta(t, 1999.0, p.Price, 0.001)
	require.NotNil(t, p.OriginalPrice)
	assert.InDelta(t, 2499.0, *p.OriginalPrice, 0.001)
	assert.Equal(t, "XL", p.Size)
	assert.Equal(t, domain.StockStatusOutOfStock, p.StockStatus)
	assert.Equal(t, int64(1), p.StoreID)
	assert.Equal(t, int64(7), p.CategoryID)
}
