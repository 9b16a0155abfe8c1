package reliability

import (
	"fmt"
	"math"
)

// RecordValidationError reports a malformed input row rejected at load time.
type RecordValidationError struct {
	Row    int // zero-based index into the input rows
	Field  string
	Reason string
}

func (e *RecordValidationError) Error() string {
	return fmt.Sprintf("invalid record at row %d: field %s: %s", e.Row, e.Field, e.Reason)
}

// ValidateRecord checks a single record against the data model: known
// state, year in range, non-negative metric values.
func ValidateRecord(row int, r Record) error {
	if _, ok := StateCode(r.State); !ok {
		return &RecordValidationError{Row: row, Field: "state", Reason: fmt.Sprintf("unknown state %q", r.State)}
	}
	if r.Year < MinYear || r.Year > MaxYear {
		return &RecordValidationError{Row: row, Field: "year", Reason: fmt.Sprintf("year %d outside %d-%d", r.Year, MinYear, MaxYear)}
	}
	for _, m := range Metrics() {
		if v := r.Value(m); v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return &RecordValidationError{Row: row, Field: string(m), Reason: fmt.Sprintf("value %v is not a non-negative number", v)}
		}
	}
	return nil
}

// ConsistencyIssue flags a record whose CAIDI disagrees with SAIDI/SAIFI
// beyond the reporting tolerance. Flagged records indicate a data-quality
// problem upstream; they are reported, never corrected.
type ConsistencyIssue struct {
	Record   Record  `json:"record"`
	Expected float64 `json:"expected_caidi"` // SAIDI / SAIFI
	RelError float64 `json:"relative_error"`
}

// CheckConsistency returns the records violating CAIDI = SAIDI/SAIFI by
// more than tol (relative error). Records with zero SAIFI are skipped:
// no interruptions means CAIDI is not meaningful for that row.
func CheckConsistency(records []Record, tol float64) []ConsistencyIssue {
	var issues []ConsistencyIssue
	for _, r := range records {
		if r.SAIFI == 0 {
			continue
		}
		expected := r.SAIDI / r.SAIFI
		if expected == 0 {
			if r.CAIDI != 0 {
				issues = append(issues, ConsistencyIssue{Record: r, Expected: expected, RelError: math.Inf(1)})
			}
			continue
		}
		relErr := math.Abs(r.CAIDI-expected) / expected
		if relErr > tol {
			issues = append(issues, ConsistencyIssue{Record: r, Expected: expected, RelError: relErr})
		}
	}
	return issues
}
