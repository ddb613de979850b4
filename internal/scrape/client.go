// Package scrape implements token acquisition, category discovery, and
// paginated product extraction against upstream storefronts.
package scrape

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jonesrussell/storesync/internal/config"
)

// Client wraps the shared resty client with the pacing configuration
// every scraper applies.
type Client struct {
	http *resty.Client
	cfg  *config.ScrapeConfig
}

// NewClient creates the shared scrape client.
func NewClient(cfg *config.ScrapeConfig) *Client {
	httpClient := resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetHeader("User-Agent", cfg.UserAgent)

	return &Client{http: httpClient, cfg: cfg}
}

// R starts a new request.
func (c *Client) R() *resty.Request {
	return c.http.R()
}

// Pause applies the fixed politeness delay between requests to one
// origin. Returns early when the context is cancelled.
func (c *Client) Pause(ctx context.Context) {
	if c.cfg.RequestDelay <= 0 {
		return
	}
	select {
	case <-time.After(c.cfg.RequestDelay):
	case <-ctx.Done():
	}
}
