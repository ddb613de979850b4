package scrape

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jonesrussell/storesync/internal/domain"
	"github.com/jonesrussell/storesync/internal/logger"
)

// tokenPattern matches the inline-script token assignment embedded in
// store homepages, e.g. `var web_token = "a1b2c3";`.
var tokenPattern = regexp.MustCompile(`(?i)var\s+web_token\s*=\s*["']([a-f0-9]+)["']`)

// tokenLogPrefixLen bounds how much of a token is logged.
const tokenLogPrefixLen = 8

// TokenAcquirer fetches a storefront homepage and extracts the session
// token from inline script content.
type TokenAcquirer struct {
	client *Client
	logger logger.Interface
}

// NewTokenAcquirer creates a new token acquirer.
func NewTokenAcquirer(client *Client, log logger.Interface) *TokenAcquirer {
	return &TokenAcquirer{
		client: client,
		logger: log.WithComponent("token_acquirer"),
	}
}

// Acquire fetches the store homepage and returns the first token
// assignment found. Returns ErrTokenNotFound when the page carries no
// token, or a wrapped error on request failure; neither is fatal to the
// caller, which persists nothing on failure. The politeness delay is
// applied after every call, success or failure.
func (a *TokenAcquirer) Acquire(ctx context.Context, store *domain.Store) (string, error) {
	defer a.client.Pause(ctx)

	log := a.logger.WithStore(store.Slug)
	log.Info("fetching web token")

	resp, err := a.client.R().
		SetContext(ctx).
		Get(store.BaseURL)
	if err != nil {
		log.Error("failed to fetch homepage", "error", err)
		return "", fmt.Errorf("failed to fetch homepage for %s: %w", store.Slug, err)
	}
	if resp.IsError() {
		log.Error("homepage returned error status", "status", resp.StatusCode())
		return "", fmt.Errorf("homepage for %s returned status %d", store.Slug, resp.StatusCode())
	}

	match := tokenPattern.FindSubmatch(resp.Body())
	if match == nil {
		log.Warn("no web token found in homepage")
		return "", ErrTokenNotFound
	}

	token := string(match[1])
	log.Info("web token extracted", "token_prefix", tokenPrefix(token))
	return token, nil
}

// tokenPrefix truncates a token for logging.
func tokenPrefix(token string) string {
	if len(token) <= tokenLogPrefixLen {
		return token
	}
	return token[:tokenLogPrefixLen] + "..."
}
