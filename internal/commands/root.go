// Package commands wires the extraction pipeline behind a CLI. The
// commands only connect boundary contracts: a parsed-document JSON file
// in, tabular files out.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "debrokly",
		Short: "Extract transactions from credit card statement documents",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newExtractCommand())

	return rootCmd
}
