package analytics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/wonny/gridsight/internal/reliability"
)

// SummaryStat is a mean with its sample standard deviation (n-1
// denominator). StdDev is nil when fewer than two states reported,
// so consumers can render "N/A" instead of a fabricated zero.
type SummaryStat struct {
	N      int      `json:"n"`
	Mean   float64  `json:"mean"`
	StdDev *float64 `json:"std_dev,omitempty"`
}

// NationalYearSummary aggregates one year's observations across all
// reporting states.
type NationalYearSummary struct {
	Year  int         `json:"year"`
	SAIDI SummaryStat `json:"saidi"`
	SAIFI SummaryStat `json:"saifi"`
	CAIDI SummaryStat `json:"caidi"`
}

// Stat returns the summary for the given metric.
func (s NationalYearSummary) Stat(m reliability.Metric) SummaryStat {
	switch m {
	case reliability.SAIDI:
		return s.SAIDI
	case reliability.SAIFI:
		return s.SAIFI
	case reliability.CAIDI:
		return s.CAIDI
	default:
		return SummaryStat{}
	}
}

// NationalYearSummaries computes per-year national aggregates, ascending
// by year. Years with no observations are simply absent.
func NationalYearSummaries(ds *reliability.Dataset) []NationalYearSummary {
	years := ds.Years()
	out := make([]NationalYearSummary, 0, len(years))

	for _, year := range years {
		records := ds.ByYear(year)
		summary := NationalYearSummary{Year: year}

		for _, m := range reliability.Metrics() {
			values := make([]float64, len(records))
			for i, r := range records {
				values[i] = r.Value(m)
			}

			st := SummaryStat{N: len(values), Mean: stat.Mean(values, nil)}
			if len(values) >= 2 {
				sd := stat.StdDev(values, nil)
				st.StdDev = &sd
			}

			switch m {
			case reliability.SAIDI:
				summary.SAIDI = st
			case reliability.SAIFI:
				summary.SAIFI = st
			case reliability.CAIDI:
				summary.CAIDI = st
			}
		}

		out = append(out, summary)
	}

	return out
}
