package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/gridsight/internal/reliability"
	"github.com/wonny/gridsight/internal/report"
)

var (
	reportOut string
	reportTop int
)

// reportCmd builds the full JSON report
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Full analytics report as JSON",
	Long: `Assembles every derived statistic (yearly aggregates, correlations,
trends, rankings, narratives) into one JSON document for downstream
consumers.

Example:
  go run ./cmd/gridsight report --out report.json`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportOut, "out", "", "output file (default stdout)")
	reportCmd.Flags().IntVar(&reportTop, "top", 5, "length of ranked lists")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ds, cfg, log, err := loadDataset(context.Background())
	if err != nil {
		return err
	}

	cat, err := reliability.ParseCategory(cfg.Dataset.Category)
	if err != nil {
		return err
	}

	builder := report.NewBuilder(cat, cfg.Dataset.CAIDITolerance, reportTop, log.Zerolog())
	rep, err := builder.Build(ds)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if reportOut == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(reportOut, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.WithField("path", reportOut).Info("report written")

	return nil
}
