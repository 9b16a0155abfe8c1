package analytics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/wonny/gridsight/internal/reliability"
)

// CorrelationMatrix is the symmetric table of pairwise Pearson
// coefficients among the three indices, computed over all (state, year)
// observations pooled together.
type CorrelationMatrix struct {
	N            int                                                   `json:"n"`
	Coefficients map[reliability.Metric]map[reliability.Metric]float64 `json:"coefficients"`
}

// R returns the coefficient for a pair of metrics. R(m, m) is exactly 1.
func (c CorrelationMatrix) R(a, b reliability.Metric) float64 {
	return c.Coefficients[a][b]
}

// Correlations computes the pooled pairwise Pearson correlations. Fails
// with UndefinedCorrelationError when fewer than two observations exist
// or any metric is constant across the sample.
func Correlations(ds *reliability.Dataset) (CorrelationMatrix, error) {
	records := ds.Records()
	n := len(records)

	if n < 2 {
		return CorrelationMatrix{}, &UndefinedCorrelationError{N: n}
	}

	series := make(map[reliability.Metric][]float64, 3)
	for _, m := range reliability.Metrics() {
		values := make([]float64, n)
		for i, r := range records {
			values[i] = r.Value(m)
		}
		if stat.Variance(values, nil) == 0 {
			return CorrelationMatrix{}, &UndefinedCorrelationError{Metric: m, N: n}
		}
		series[m] = values
	}

	matrix := CorrelationMatrix{
		N:            n,
		Coefficients: make(map[reliability.Metric]map[reliability.Metric]float64, 3),
	}
	for _, m := range reliability.Metrics() {
		matrix.Coefficients[m] = make(map[reliability.Metric]float64, 3)
	}

	metrics := reliability.Metrics()
	for i, a := range metrics {
		// Self-correlation is 1 by definition; only off-diagonal pairs
		// are estimated.
		matrix.Coefficients[a][a] = 1
		for _, b := range metrics[i+1:] {
			r := stat.Correlation(series[a], series[b], nil)
			matrix.Coefficients[a][b] = r
			matrix.Coefficients[b][a] = r
		}
	}

	return matrix, nil
}
