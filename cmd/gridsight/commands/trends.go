package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/wonny/gridsight/internal/analytics"
	"github.com/wonny/gridsight/internal/insight"
	"github.com/wonny/gridsight/internal/reliability"
)

var trendsMetric string

// trendsCmd prints per-state OLS trend slopes
var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Per-state linear trend slopes for a metric",
	Long: `Fits an ordinary-least-squares regression of the metric against year
for every state with at least two reported years. Slopes are in metric
units per year.

Example:
  go run ./cmd/gridsight trends --metric SAIDI`,
	RunE: runTrends,
}

func init() {
	trendsCmd.Flags().StringVar(&trendsMetric, "metric", "SAIDI", "metric (SAIDI|SAIFI|CAIDI)")
	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, args []string) error {
	metric, err := reliability.ParseMetric(trendsMetric)
	if err != nil {
		return err
	}

	ds, _, _, err := loadDataset(context.Background())
	if err != nil {
		return err
	}

	trends, err := analytics.StateTrends(ds, metric)
	if err != nil {
		return err
	}

	states := make([]string, 0, len(trends))
	for state := range trends {
		states = append(states, state)
	}
	sort.Strings(states)

	fmt.Printf("=== %s Trends (%d states with >=2 years) ===\n\n", metric, len(trends))
	fmt.Printf("%-6s %-10s %-12s %-6s\n", "State", "Slope/yr", "Intercept", "Years")
	for _, state := range states {
		t := trends[state]
		fmt.Printf("%-6s %+-10.2f %-12.1f %-6d\n", t.State, t.Slope, t.Intercept, t.Years)
	}

	fmt.Println()
	fmt.Println(insight.TrendHighlight(trends, metric))

	return nil
}
