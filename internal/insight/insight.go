// Package insight renders short analytic narrative strings from engine
// output, in the register of the published reliability write-ups.
package insight

import (
	"fmt"
	"sort"

	"github.com/wonny/gridsight/internal/analytics"
	"github.com/wonny/gridsight/internal/reliability"
)

// NoData is returned when a selection has nothing to narrate.
const NoData = "No data available for the selected filters."

// YearHighlight names the highest and lowest state for a metric in one
// year and quantifies the gap.
func YearHighlight(ds *reliability.Dataset, metric reliability.Metric, category reliability.Category, year int) string {
	records := ds.ByYear(year)
	if len(records) == 0 {
		return NoData
	}

	maxRec, minRec := records[0], records[0]
	for _, r := range records[1:] {
		if r.Value(metric) > maxRec.Value(metric) {
			maxRec = r
		}
		if r.Value(metric) < minRec.Value(metric) {
			minRec = r
		}
	}
	gap := maxRec.Value(metric) - minRec.Value(metric)

	return fmt.Sprintf(
		"The highest %s %s in %d occurs in %s (%.1f), while the lowest is in %s (%.1f). This represents a gap of %.1f.",
		metric.Label(), category.Description(), year,
		reliability.StateName(maxRec.State), maxRec.Value(metric),
		reliability.StateName(minRec.State), minRec.Value(metric),
		gap,
	)
}

// TrendHighlight names the states with the steepest increase and
// decrease for a metric, with slopes in metric units per year.
func TrendHighlight(trends map[string]analytics.StateTrend, metric reliability.Metric) string {
	if len(trends) == 0 {
		return NoData
	}

	// Walk states alphabetically so ties resolve deterministically.
	states := make([]string, 0, len(trends))
	for state := range trends {
		states = append(states, state)
	}
	sort.Strings(states)

	steepestUp := trends[states[0]]
	steepestDown := trends[states[0]]
	for _, state := range states[1:] {
		t := trends[state]
		if t.Slope > steepestUp.Slope {
			steepestUp = t
		}
		if t.Slope < steepestDown.Slope {
			steepestDown = t
		}
	}

	unit := slopeUnit(metric)
	if steepestDown.Slope >= 0 {
		// Every state is flat or rising
		return fmt.Sprintf("%s is rising fastest in %s (%+.1f %s); no state shows a decline.",
			metric.Label(), reliability.StateName(steepestUp.State), steepestUp.Slope, unit)
	}
	if steepestUp.Slope <= 0 {
		// Every state is flat or falling
		return fmt.Sprintf("%s is falling fastest in %s (%+.1f %s); no state shows an increase.",
			metric.Label(), reliability.StateName(steepestDown.State), steepestDown.Slope, unit)
	}

	return fmt.Sprintf("%s is rising fastest in %s (%+.1f %s) and falling fastest in %s (%+.1f %s).",
		metric.Label(),
		reliability.StateName(steepestUp.State), steepestUp.Slope, unit,
		reliability.StateName(steepestDown.State), steepestDown.Slope, unit,
	)
}

// slopeUnit phrases a trend slope's unit, e.g. "+69.8 minutes per year".
func slopeUnit(m reliability.Metric) string {
	switch m {
	case reliability.SAIFI:
		return "interruptions per year"
	default:
		return "minutes per year"
	}
}
