package stores

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/storesync/cmd/common"
)

// tokenAgePrecision rounds the displayed token age.
const tokenAgePrecision = time.Minute

// listCommand creates the list subcommand.
func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configured stores",
		RunE:  runList,
	}
}

// runList executes the list subcommand.
func runList(cmd *cobra.Command, _ []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	repos, err := common.OpenRepositories(deps)
	if err != nil {
		return err
	}
	defer func() { _ = repos.Close() }()

	storeList, err := repos.Stores.ListEnabled(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list stores: %w", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Slug", "Name", "Variant", "Token Age", "Categories"})

	for _, store := range storeList {
		tokenAge := "-"
		if store.TokenLastFetchedAt != nil {
			tokenAge = time.Since(*store.TokenLastFetchedAt).Round(tokenAgePrecision).String()
		}

		categoryCount, countErr := repos.Categories.CountByStore(cmd.Context(), store.ID)
		if countErr != nil {
			deps.Logger.Warn("failed to count categories", "store", store.Slug, "error", countErr)
		}

		t.AppendRow(table.Row{
			store.Slug,
			store.Name,
			store.CategorySource,
			tokenAge,
			categoryCount,
		})
	}

	t.Render()
	return nil
}
