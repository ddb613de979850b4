package scrape

import "errors"

var (
	// ErrTokenExpired signals that the storefront rejected the web token
	// (HTTP 403). Callers re-acquire and retry exactly once at the
	// category boundary before failing the store.
	ErrTokenExpired = errors.New("web token expired")

	// ErrTokenNotFound indicates the homepage did not contain a token
	// assignment.
	ErrTokenNotFound = errors.New("web token not found in homepage")
)
