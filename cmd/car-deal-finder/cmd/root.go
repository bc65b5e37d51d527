// Package cmd implements the CLI commands for car-deal-finder.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "car-deal-finder",
	Short: "Score used car listings and surface the best deals",
	Long: "An API-first service that stores extracted used car listings, classifies\n" +
		"their Danish condition descriptions, scores every listing against the rest\n" +
		"of the collection, and reports the best deals.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
