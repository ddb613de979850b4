package config

import (
	"errors"
	"time"
)

// Scrape defaults
const (
	// DefaultRequestTimeout bounds every outbound storefront request.
	DefaultRequestTimeout = 30 * time.Second
	// DefaultRequestDelay is the politeness delay between successive
	// requests to one origin.
	DefaultRequestDelay = 500 * time.Millisecond
	// DefaultUserAgent identifies outbound requests.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// ScrapeConfig holds outbound HTTP settings shared by all scrapers.
type ScrapeConfig struct {
	// RequestTimeout bounds each storefront request.
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// RequestDelay is the fixed pause between successive requests.
	RequestDelay time.Duration `yaml:"request_delay"`
	// UserAgent is the outbound identification string.
	UserAgent string `yaml:"user_agent"`
}

// Validate validates the scrape configuration.
func (c *ScrapeConfig) Validate() error {
	if c.RequestTimeout <= 0 {
		return errors.New("request_timeout must be positive")
	}
	if c.RequestDelay < 0 {
		return errors.New("request_delay must not be negative")
	}
	return nil
}
