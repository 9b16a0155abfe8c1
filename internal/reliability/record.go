package reliability

// Year bounds of the consolidated dataset.
const (
	MinYear = 2013
	MaxYear = 2023
)

// Record is one observation: a state's reliability indices for one year.
// Values are pre-aggregated by the upstream IEEE reporting; the engine
// never recomputes them.
type Record struct {
	State string  `json:"state"` // USPS postal code
	Year  int     `json:"year"`
	SAIDI float64 `json:"saidi"` // minutes per customer per year
	SAIFI float64 `json:"saifi"` // interruptions per customer per year
	CAIDI float64 `json:"caidi"` // minutes per interruption
}

// Value returns the record's value for the given metric.
func (r Record) Value(m Metric) float64 {
	switch m {
	case SAIDI:
		return r.SAIDI
	case SAIFI:
		return r.SAIFI
	case CAIDI:
		return r.CAIDI
	default:
		return 0
	}
}
