package reliability

import (
	"fmt"
	"strings"
)

// Metric identifies one of the three IEEE distribution reliability indices.
type Metric string

const (
	SAIDI Metric = "SAIDI" // System Average Interruption Duration Index
	SAIFI Metric = "SAIFI" // System Average Interruption Frequency Index
	CAIDI Metric = "CAIDI" // Customer Average Interruption Duration Index
)

// Metrics returns the three indices in canonical order.
func Metrics() []Metric {
	return []Metric{SAIDI, SAIFI, CAIDI}
}

// ParseMetric converts a user-supplied string to a Metric.
func ParseMetric(s string) (Metric, error) {
	switch Metric(strings.ToUpper(s)) {
	case SAIDI:
		return SAIDI, nil
	case SAIFI:
		return SAIFI, nil
	case CAIDI:
		return CAIDI, nil
	default:
		return "", fmt.Errorf("unknown metric %q (expected SAIDI, SAIFI or CAIDI)", s)
	}
}

// Unit returns the reporting unit for the metric.
func (m Metric) Unit() string {
	switch m {
	case SAIDI:
		return "minutes per customer per year"
	case SAIFI:
		return "interruptions per customer per year"
	case CAIDI:
		return "minutes per interruption"
	default:
		return ""
	}
}

// Label returns the descriptive label used in narrative text.
func (m Metric) Label() string {
	switch m {
	case SAIDI:
		return "total outage duration (SAIDI)"
	case SAIFI:
		return "outage frequency (SAIFI)"
	case CAIDI:
		return "average restoration time (CAIDI)"
	default:
		return string(m)
	}
}
