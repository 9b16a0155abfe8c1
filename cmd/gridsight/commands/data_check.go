package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/gridsight/internal/reliability"
)

// dataCheckCmd represents the data check command
var dataCheckCmd = &cobra.Command{
	Use:   "data-check",
	Short: "Dataset diagnostics",
	Long: `Loads the configured dataset and reports its shape and quality:

- observation, state and year counts
- per-year state coverage
- records violating the CAIDI = SAIDI/SAIFI tolerance

Example:
  go run ./cmd/gridsight data-check`,
	RunE: runDataCheck,
}

func init() {
	rootCmd.AddCommand(dataCheckCmd)
}

func runDataCheck(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Gridsight Data Check ===")
	fmt.Println()

	ds, cfg, _, err := loadDataset(context.Background())
	if err != nil {
		return err
	}

	years := ds.Years()
	states := ds.States()

	fmt.Println("Dataset")
	fmt.Println("--------------------------------------------------")
	fmt.Printf("  Source    : %s (%s)\n", cfg.Dataset.Source, cfg.Dataset.Category)
	fmt.Printf("  Rows      : %d\n", ds.Len())
	fmt.Printf("  States    : %d\n", len(states))
	if len(years) > 0 {
		fmt.Printf("  Years     : %d (%d-%d)\n", len(years), years[0], years[len(years)-1])
	}
	fmt.Println()

	fmt.Println("Per-year state coverage")
	fmt.Println("--------------------------------------------------")
	for _, year := range years {
		n := len(ds.ByYear(year))
		marker := ""
		if n < len(states) {
			marker = fmt.Sprintf("  (%d states missing)", len(states)-n)
		}
		fmt.Printf("  %d : %d%s\n", year, n, marker)
	}
	fmt.Println()

	issues := reliability.CheckConsistency(ds.Records(), cfg.Dataset.CAIDITolerance)
	fmt.Printf("CAIDI consistency (tolerance %.0f%%)\n", cfg.Dataset.CAIDITolerance*100)
	fmt.Println("--------------------------------------------------")
	if len(issues) == 0 {
		fmt.Println("  OK: all records within tolerance")
		return nil
	}
	fmt.Printf("  %d record(s) flagged:\n", len(issues))
	for _, issue := range issues {
		fmt.Printf("  %s %d: CAIDI %.1f vs SAIDI/SAIFI %.1f (off by %.1f%%)\n",
			issue.Record.State, issue.Record.Year,
			issue.Record.CAIDI, issue.Expected, issue.RelError*100)
	}

	return nil
}
