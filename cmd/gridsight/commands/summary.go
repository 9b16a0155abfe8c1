package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/gridsight/internal/analytics"
)

// summaryCmd prints national yearly aggregates
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "National yearly aggregates per metric",
	Long: `Computes the mean and sample standard deviation of SAIDI, SAIFI and
CAIDI across all states reporting each year.

Example:
  go run ./cmd/gridsight summary`,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	ds, _, _, err := loadDataset(context.Background())
	if err != nil {
		return err
	}

	summaries := analytics.NationalYearSummaries(ds)

	fmt.Println("=== National Yearly Aggregates ===")
	fmt.Println()
	fmt.Printf("%-6s %-4s %-22s %-22s %-22s\n", "Year", "N", "SAIDI (mean/sd)", "SAIFI (mean/sd)", "CAIDI (mean/sd)")
	for _, s := range summaries {
		fmt.Printf("%-6d %-4d %-22s %-22s %-22s\n",
			s.Year, s.SAIDI.N,
			formatStat(s.SAIDI), formatStat(s.SAIFI), formatStat(s.CAIDI))
	}

	return nil
}

// formatStat renders a summary cell, with N/A for an undefined stddev.
func formatStat(s analytics.SummaryStat) string {
	if s.StdDev == nil {
		return fmt.Sprintf("%.1f / N/A", s.Mean)
	}
	return fmt.Sprintf("%.1f / %.1f", s.Mean, *s.StdDev)
}
