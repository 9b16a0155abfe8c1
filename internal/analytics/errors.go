package analytics

import (
	"fmt"

	"github.com/wonny/gridsight/internal/reliability"
)

// InsufficientDataError indicates that a state has fewer than two
// distinct years of data, so no trend can be fitted.
type InsufficientDataError struct {
	State  string
	Metric reliability.Metric
	Years  int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data for %s %s trend: %d year(s), need 2", e.State, e.Metric, e.Years)
}

// UndefinedCorrelationError indicates that Pearson's r is not computable
// because a metric's pooled observations have zero variance (or fewer
// than two observations exist).
type UndefinedCorrelationError struct {
	Metric reliability.Metric
	N      int
}

func (e *UndefinedCorrelationError) Error() string {
	if e.N < 2 {
		return fmt.Sprintf("correlation undefined: %d pooled observations", e.N)
	}
	return fmt.Sprintf("correlation undefined: %s has zero variance across %d observations", e.Metric, e.N)
}
