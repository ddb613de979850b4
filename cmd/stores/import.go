package stores

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/storesync/cmd/common"
	storespkg "github.com/jonesrussell/storesync/internal/stores"
)

// fileFlag is the path to the YAML seed file.
var fileFlag string

// importCommand creates the import subcommand.
func importCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import store definitions from a YAML seed file",
		Long: `Import reads store definitions from a YAML seed file, validates
them, and upserts them keyed on slug. Invalid entries are skipped
with a warning.`,
		RunE: runImport,
	}

	cmd.Flags().StringVar(&fileFlag, "file", "stores.yml", "path to the stores seed file")

	return cmd
}

// runImport executes the import subcommand.
func runImport(cmd *cobra.Command, _ []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	seeds, skipped, err := storespkg.NewLoader(fileFlag).Load()
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}
	if skipped > 0 {
		deps.Logger.Warn("skipped invalid store entries", "count", skipped)
	}

	repos, err := common.OpenRepositories(deps)
	if err != nil {
		return err
	}
	defer func() { _ = repos.Close() }()

	created := 0
	updated := 0
	for _, seed := range seeds {
		store := seed.ToDomain()
		isNew, upsertErr := repos.Stores.Upsert(cmd.Context(), store)
		if upsertErr != nil {
			deps.Logger.Error("failed to upsert store", "slug", store.Slug, "error", upsertErr)
			continue
		}
		if isNew {
			created++
		} else {
			updated++
		}
	}

	deps.Logger.Info("store import finished",
		"created", created,
		"updated", updated,
		"skipped", skipped,
	)
	fmt.Printf("Imported %d stores (%d created, %d updated, %d skipped)\n",
		created+updated, created, updated, skipped)

	return nil
}
