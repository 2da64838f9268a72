// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "go-settings-admin",
	Short: "GoSettings-Admin is a web-based dynamic settings registry",
	Long: `GoSettings-Admin is a web-based administration service whose core is a
schema-driven settings registry: administrators define typed configuration
entries at runtime, grouped and ordered, and the application reads them back
through a single registry accessor.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
