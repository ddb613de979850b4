// Package stores provides loading of store seed definitions from YAML
// files for the import command.
package stores

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/jonesrussell/storesync/internal/domain"
)

var (
	// ErrNoStores indicates no stores were found in the seed file
	ErrNoStores = errors.New("no stores found in seed file")
	// ErrMissingRequiredField indicates a required field is missing
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrInvalidCategorySource indicates an unknown category source kind
	ErrInvalidCategorySource = errors.New("invalid category source")
)

// defaultWooCommerceEndpoint is applied when a WooCommerce store omits
// its api_endpoint.
const defaultWooCommerceEndpoint = "/wp-json/wc/store"

// Seed represents one store definition loaded from a seed file.
type Seed struct {
	Slug           string   `mapstructure:"slug"`
	Name           string   `mapstructure:"name"`
	BaseURL        string   `mapstructure:"base_url"`
	APIEndpoint    string   `mapstructure:"api_endpoint"`
	CategorySource string   `mapstructure:"category_source"`
	CategoryFilter []string `mapstructure:"category_filter"`
	Enabled        *bool    `mapstructure:"enabled"`
}

// ToDomain converts a validated seed to a domain store.
func (s *Seed) ToDomain() *domain.Store {
	enabled := true
	if s.Enabled != nil {
		enabled = *s.Enabled
	}

	return &domain.Store{
		Slug:           s.Slug,
		Name:           s.Name,
		BaseURL:        strings.TrimRight(s.BaseURL, "/"),
		APIEndpoint:    s.APIEndpoint,
		CategorySource: domain.CategorySourceKind(s.CategorySource),
		CategoryFilter: s.CategoryFilter,
		Enabled:        enabled,
	}
}

// seedFile represents the structure of a stores YAML file.
type seedFile struct {
	Stores []map[string]any `yaml:"stores"`
}

// Loader handles loading and validating store seed files.
type Loader struct {
	path string
}

// NewLoader creates a new Loader instance.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load loads and validates all store seeds from the file. Invalid
// entries are skipped; the skipped count is reported alongside.
func (l *Loader) Load() (seeds []*Seed, skipped int, err error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file seedFile
	if unmarshalErr := yaml.Unmarshal(data, &file); unmarshalErr != nil {
		return nil, 0, fmt.Errorf("failed to parse YAML: %w", unmarshalErr)
	}

	if len(file.Stores) == 0 {
		return nil, 0, ErrNoStores
	}

	seeds = make([]*Seed, 0, len(file.Stores))
	for _, raw := range file.Stores {
		seed, convertErr := convertSeed(raw)
		if convertErr != nil {
			skipped++
			continue
		}
		if validateErr := validateSeed(seed); validateErr != nil {
			skipped++
			continue
		}
		seeds = append(seeds, seed)
	}

	if len(seeds) == 0 {
		return nil, skipped, ErrNoStores
	}

	return seeds, skipped, nil
}

// convertSeed converts a raw seed map to a Seed struct.
func convertSeed(raw map[string]any) (*Seed, error) {
	var seed Seed
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &seed,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if decodeErr := decoder.Decode(raw); decodeErr != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", decodeErr)
	}

	if seed.APIEndpoint == "" && seed.CategorySource == string(domain.CategorySourceWooCommerce) {
		seed.APIEndpoint = defaultWooCommerceEndpoint
	}

	return &seed, nil
}

// validateSeed checks required fields and URL validity.
func validateSeed(seed *Seed) error {
	if seed.Slug == "" {
		return fmt.Errorf("%w: slug", ErrMissingRequiredField)
	}
	if seed.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingRequiredField)
	}
	if seed.BaseURL == "" {
		return fmt.Errorf("%w: base_url", ErrMissingRequiredField)
	}
	if _, err := url.ParseRequestURI(seed.BaseURL); err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}

	switch domain.CategorySourceKind(seed.CategorySource) {
	case domain.CategorySourceListing, domain.CategorySourceWooCommerce:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCategorySource, seed.CategorySource)
	}

	return nil
}
