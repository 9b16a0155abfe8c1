package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	datasetPath string
	category    string
	verbose     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gridsight",
	Short: "Gridsight - U.S. grid reliability analytics",
	Long: `Gridsight CLI

Trend and correlation analytics over the consolidated SAIDI/SAIFI/CAIDI
dataset (by state and year, 2013-2023).

Usage:
  go run ./cmd/gridsight [command]

Examples:
  go run ./cmd/gridsight summary
  go run ./cmd/gridsight trends --metric SAIDI
  go run ./cmd/gridsight rank --metric SAIDI --by slope --desc
  go run ./cmd/gridsight data-check`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "dataset CSV path (overrides DATASET_PATH)")
	rootCmd.PersistentFlags().StringVar(&category, "category", "", "event category (overrides DATASET_CATEGORY)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
