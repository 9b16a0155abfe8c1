package reliability

import (
	"fmt"
	"sort"
)

// DuplicateObservationError reports two rows for the same (state, year),
// which the dataset invariant forbids.
type DuplicateObservationError struct {
	State string
	Year  int
}

func (e *DuplicateObservationError) Error() string {
	return fmt.Sprintf("duplicate observation for %s in %d", e.State, e.Year)
}

// Dataset is an immutable, ordered collection of Records, unique on
// (state, year). All derived statistics are pure functions of a Dataset.
type Dataset struct {
	records []Record
}

// NewDataset validates the given records and builds a Dataset. State
// identifiers are normalized to postal codes. Fails on the first invalid
// record or duplicate (state, year) pair.
func NewDataset(records []Record) (*Dataset, error) {
	seen := make(map[string]bool, len(records))
	out := make([]Record, 0, len(records))

	for i, r := range records {
		if err := ValidateRecord(i, r); err != nil {
			return nil, err
		}
		code, _ := StateCode(r.State)
		r.State = code

		key := fmt.Sprintf("%s-%d", r.State, r.Year)
		if seen[key] {
			return nil, &DuplicateObservationError{State: r.State, Year: r.Year}
		}
		seen[key] = true
		out = append(out, r)
	}

	return &Dataset{records: out}, nil
}

// FromRecords builds a Dataset without validating records or the
// uniqueness invariant. Callers own the invariants; operations that
// depend on uniqueness still detect duplicate observations themselves.
func FromRecords(records []Record) *Dataset {
	out := make([]Record, len(records))
	copy(out, records)
	return &Dataset{records: out}
}

// Len returns the number of observations.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of the observations in load order.
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Years returns the distinct years present, ascending.
func (d *Dataset) Years() []int {
	set := make(map[int]bool)
	for _, r := range d.records {
		set[r.Year] = true
	}
	years := make([]int, 0, len(set))
	for y := range set {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// States returns the distinct state codes present, ascending.
func (d *Dataset) States() []string {
	set := make(map[string]bool)
	for _, r := range d.records {
		set[r.State] = true
	}
	states := make([]string, 0, len(set))
	for s := range set {
		states = append(states, s)
	}
	sort.Strings(states)
	return states
}

// ByYear returns the observations for one year.
func (d *Dataset) ByYear(year int) []Record {
	var out []Record
	for _, r := range d.records {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}

// ByState returns the observations for one state, ascending by year.
func (d *Dataset) ByState(state string) []Record {
	var out []Record
	for _, r := range d.records {
		if r.State == state {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
