package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/gridsight/internal/analytics"
	"github.com/wonny/gridsight/internal/reliability"
)

var (
	rankMetric string
	rankBy     string
	rankDesc   bool
	rankTop    int
)

// rankCmd prints ranked state lists
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank states by multi-year mean or trend slope",
	Long: `Orders states by the chosen statistic of a metric. Ties break by
state code, so the ordering is deterministic.

Examples:
  go run ./cmd/gridsight rank --metric SAIDI --by mean
  go run ./cmd/gridsight rank --metric SAIDI --by slope --desc --top 10`,
	RunE: runRank,
}

func init() {
	rankCmd.Flags().StringVar(&rankMetric, "metric", "SAIDI", "metric (SAIDI|SAIFI|CAIDI)")
	rankCmd.Flags().StringVar(&rankBy, "by", "mean", "statistic (mean|slope)")
	rankCmd.Flags().BoolVar(&rankDesc, "desc", false, "descending order")
	rankCmd.Flags().IntVar(&rankTop, "top", 0, "limit output to the first N states (0 = all)")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	metric, err := reliability.ParseMetric(rankMetric)
	if err != nil {
		return err
	}
	statistic, err := analytics.ParseStatistic(rankBy)
	if err != nil {
		return err
	}

	ds, _, _, err := loadDataset(context.Background())
	if err != nil {
		return err
	}

	order := analytics.Ascending
	if rankDesc {
		order = analytics.Descending
	}

	ranks, err := analytics.RankStates(ds, metric, statistic, order)
	if err != nil {
		return err
	}
	if rankTop > 0 && len(ranks) > rankTop {
		ranks = ranks[:rankTop]
	}

	unit := metric.Unit()
	if statistic == analytics.StatTrendSlope {
		unit += " (slope/yr)"
	}

	fmt.Printf("=== %s by %s ===\n\n", metric, statistic)
	for i, r := range ranks {
		fmt.Printf("%3d. %-4s %-22s %+10.2f  %s\n", i+1, r.State, reliability.StateName(r.State), r.Value, unit)
	}

	return nil
}
