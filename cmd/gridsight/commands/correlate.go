package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/gridsight/internal/analytics"
	"github.com/wonny/gridsight/internal/reliability"
)

// correlateCmd prints the pairwise Pearson correlation matrix
var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Pairwise Pearson correlations among SAIDI, SAIFI and CAIDI",
	Long: `Pools all (state, year) observations and computes Pearson's r for each
pair of metrics. Prints N/A when a metric has zero variance.

Example:
  go run ./cmd/gridsight correlate`,
	RunE: runCorrelate,
}

func init() {
	rootCmd.AddCommand(correlateCmd)
}

func runCorrelate(cmd *cobra.Command, args []string) error {
	ds, _, log, err := loadDataset(context.Background())
	if err != nil {
		return err
	}

	matrix, err := analytics.Correlations(ds)
	if err != nil {
		var undefined *analytics.UndefinedCorrelationError
		if errors.As(err, &undefined) {
			// Degrade to N/A instead of failing the command
			log.WithError(err).Warn("correlation not computable")
			fmt.Println("Correlation: N/A (" + err.Error() + ")")
			return nil
		}
		return err
	}

	fmt.Printf("=== Pearson Correlations (n=%d pooled observations) ===\n\n", matrix.N)
	fmt.Printf("%-8s", "")
	for _, m := range reliability.Metrics() {
		fmt.Printf("%10s", m)
	}
	fmt.Println()
	for _, a := range reliability.Metrics() {
		fmt.Printf("%-8s", a)
		for _, b := range reliability.Metrics() {
			fmt.Printf("%10.3f", matrix.R(a, b))
		}
		fmt.Println()
	}

	return nil
}
