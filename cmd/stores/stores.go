// Package stores implements store administration commands: listing
// configured stores and importing them from a YAML seed file.
package stores

import (
	"github.com/spf13/cobra"
)

// Command returns the stores command with its subcommands.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stores",
		Short: "Manage store configuration",
		Long: `The stores command lists configured stores and imports store
definitions from a YAML seed file.`,
	}

	cmd.AddCommand(listCommand())
	cmd.AddCommand(importCommand())

	return cmd
}
