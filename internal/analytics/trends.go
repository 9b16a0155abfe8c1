package analytics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/wonny/gridsight/internal/reliability"
)

// StateTrend is the ordinary-least-squares fit of a metric against year
// for one state. Year is the raw independent variable, so Slope is in
// metric units per year.
type StateTrend struct {
	State     string             `json:"state"`
	Metric    reliability.Metric `json:"metric"`
	Slope     float64            `json:"slope"`
	Intercept float64            `json:"intercept"`
	Years     int                `json:"years"` // distinct years fitted
}

// StateTrends fits a per-state OLS trend for the given metric. States
// with fewer than two distinct years are omitted. A duplicated
// (state, year) pair fails with DuplicateObservationError: the dataset
// invariant forbids duplicates, and averaging them would silently mask a
// data-integrity problem.
func StateTrends(ds *reliability.Dataset, metric reliability.Metric) (map[string]StateTrend, error) {
	trends := make(map[string]StateTrend)

	for _, state := range ds.States() {
		records := ds.ByState(state)

		seen := make(map[int]bool, len(records))
		xs := make([]float64, 0, len(records))
		ys := make([]float64, 0, len(records))
		for _, r := range records {
			if seen[r.Year] {
				return nil, &reliability.DuplicateObservationError{State: state, Year: r.Year}
			}
			seen[r.Year] = true
			xs = append(xs, float64(r.Year))
			ys = append(ys, r.Value(metric))
		}

		if len(xs) < 2 {
			continue
		}

		intercept, slope := stat.LinearRegression(xs, ys, nil, false)
		trends[state] = StateTrend{
			State:     state,
			Metric:    metric,
			Slope:     slope,
			Intercept: intercept,
			Years:     len(xs),
		}
	}

	return trends, nil
}

// StateTrendFor fits the trend for a single state. Unlike StateTrends,
// a state with fewer than two distinct years is an explicit
// InsufficientDataError here, since the caller asked for that state.
func StateTrendFor(ds *reliability.Dataset, state string, metric reliability.Metric) (StateTrend, error) {
	trends, err := StateTrends(ds, metric)
	if err != nil {
		return StateTrend{}, err
	}
	trend, ok := trends[state]
	if !ok {
		return StateTrend{}, &InsufficientDataError{
			State:  state,
			Metric: metric,
			Years:  len(ds.ByState(state)),
		}
	}
	return trend, nil
}
