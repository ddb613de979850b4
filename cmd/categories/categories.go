// Package categories implements the category bootstrap command that
// extracts and persists category sets without running a product sync.
package categories

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/storesync/cmd/common"
	"github.com/jonesrussell/storesync/internal/domain"
	"github.com/jonesrussell/storesync/internal/scrape"
)

// storeFlag restricts extraction to one store when set.
var storeFlag string

// Command returns the categories command.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Extract and persist categories for stores",
		Long: `Categories discovers each store's category set from its listing
page or WooCommerce API and persists it. Product syncs reuse the
persisted set; run this after adding a store.`,
		RunE: runCategories,
	}

	cmd.Flags().StringVar(&storeFlag, "store", "", "extract categories for a single store by slug")

	return cmd
}

// runCategories executes the categories command.
func runCategories(cmd *cobra.Command, _ []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	repos, err := common.OpenRepositories(deps)
	if err != nil {
		return err
	}
	defer func() { _ = repos.Close() }()

	stores, err := resolveStores(cmd.Context(), repos)
	if err != nil {
		return err
	}
	if len(stores) == 0 {
		deps.Logger.Info("no stores configured, nothing to do")
		return nil
	}

	client := scrape.NewClient(deps.Config.GetScrapeConfig())
	factory := scrape.NewCategorySourceFactory(client, deps.Config.GetScrapeConfig(), deps.Logger)

	for _, store := range stores {
		extracted, extractErr := factory.Extract(cmd.Context(), store)
		if extractErr != nil {
			deps.Logger.Error("category extraction failed",
				"store", store.Slug, "error", extractErr)
			continue
		}

		inserted, insertErr := repos.Categories.InsertBatch(cmd.Context(), extracted)
		if insertErr != nil {
			deps.Logger.Error("failed to persist categories",
				"store", store.Slug, "error", insertErr)
			continue
		}

		deps.Logger.Info("categories persisted",
			"store", store.Slug,
			"extracted", len(extracted),
			"inserted", inserted,
		)
	}

	return nil
}

// resolveStores loads the stores to bootstrap.
func resolveStores(ctx context.Context, repos *common.Repositories) ([]*domain.Store, error) {
	if storeFlag != "" {
		store, err := repos.Stores.GetBySlug(ctx, storeFlag)
		if err != nil {
			return nil, fmt.Errorf("failed to load store %s: %w", storeFlag, err)
		}
		return []*domain.Store{store}, nil
	}

	stores, err := repos.Stores.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stores: %w", err)
	}
	return stores, nil
}
