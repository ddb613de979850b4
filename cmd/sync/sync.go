// Package sync implements the sync command that runs a full catalog
// harvest across configured stores.
package sync

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/storesync/cmd/common"
	syncpkg "github.com/jonesrussell/storesync/internal/sync"
)

// storeFlag restricts a run to one store when set.
var storeFlag string

// Command returns the sync command.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync product catalogs from all enabled stores",
		Long: `Sync runs the scraping orchestrator: every enabled store is
processed under the bounded worker pool, products are upserted
incrementally, and a summary is printed when the run completes.`,
		RunE: runSync,
	}

	cmd.Flags().StringVar(&storeFlag, "store", "", "sync a single store by slug")

	return cmd
}

// runSync executes the sync command.
func runSync(cmd *cobra.Command, _ []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	repos, err := common.OpenRepositories(deps)
	if err != nil {
		return err
	}
	defer func() { _ = repos.Close() }()

	orchestrator, err := common.BuildOrchestrator(deps, repos)
	if err != nil {
		return err
	}

	summary, err := orchestrator.Run(cmd.Context(), storeFlag)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	renderSummary(summary)
	return nil
}

// renderSummary prints the per-store outcomes and totals.
func renderSummary(summary *syncpkg.Summary) {
	if summary.StoresTotal == 0 {
		fmt.Println("No stores configured.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Store", "Products", "Status", "Reason"})

	for _, outcome := range summary.Outcomes {
		status := "ok"
		if !outcome.Success {
			status = "failed"
		}
		t.AppendRow(table.Row{outcome.Slug, outcome.ProductsWritten, status, outcome.Reason})
	}

	t.AppendFooter(table.Row{
		fmt.Sprintf("%d succeeded / %d failed", summary.StoresSucceeded, summary.StoresFailed),
		summary.ProductsWritten,
		summary.Duration.Round(summaryDurationPrecision),
		"",
	})
	t.Render()
}
