package analytics

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/wonny/gridsight/internal/reliability"
)

// Statistic selects what RankStates orders by.
type Statistic string

const (
	StatMean       Statistic = "mean"  // multi-year mean of the metric
	StatTrendSlope Statistic = "slope" // OLS trend slope of the metric
)

// ParseStatistic converts a CLI/config string to a Statistic.
func ParseStatistic(s string) (Statistic, error) {
	switch Statistic(s) {
	case StatMean:
		return StatMean, nil
	case StatTrendSlope:
		return StatTrendSlope, nil
	default:
		return "", fmt.Errorf("unknown statistic %q (expected mean or slope)", s)
	}
}

// Order is the ranking direction.
type Order int

const (
	Ascending Order = iota
	Descending
)

// StateRank is one entry of a ranked state list.
type StateRank struct {
	State string  `json:"state"`
	Value float64 `json:"value"`
}

// RankStates orders states by the chosen statistic of the metric. Ties
// break by state code ascending, so the ordering is deterministic. For
// StatTrendSlope, states without a fitted trend are omitted.
func RankStates(ds *reliability.Dataset, metric reliability.Metric, statistic Statistic, order Order) ([]StateRank, error) {
	var ranks []StateRank

	switch statistic {
	case StatMean:
		for _, state := range ds.States() {
			records := ds.ByState(state)
			values := make([]float64, len(records))
			for i, r := range records {
				values[i] = r.Value(metric)
			}
			ranks = append(ranks, StateRank{State: state, Value: stat.Mean(values, nil)})
		}

	case StatTrendSlope:
		trends, err := StateTrends(ds, metric)
		if err != nil {
			return nil, err
		}
		for state, trend := range trends {
			ranks = append(ranks, StateRank{State: state, Value: trend.Slope})
		}

	default:
		return nil, fmt.Errorf("unknown statistic %q", statistic)
	}

	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Value != ranks[j].Value {
			if order == Descending {
				return ranks[i].Value > ranks[j].Value
			}
			return ranks[i].Value < ranks[j].Value
		}
		return ranks[i].State < ranks[j].State
	})

	return ranks, nil
}
