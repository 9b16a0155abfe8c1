package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/wonny/gridsight/internal/reliability"
)

// CSVSource reads the consolidated state/year dataset from a CSV file.
// The file carries each index three times (one column per event
// category); a Category selects which triple populates the Dataset.
type CSVSource struct {
	path     string
	category reliability.Category
	log      zerolog.Logger
}

// NewCSVSource creates a CSV-backed dataset source.
func NewCSVSource(path string, category reliability.Category, log zerolog.Logger) *CSVSource {
	return &CSVSource{
		path:     path,
		category: category,
		log:      log.With().Str("component", "source.csv").Logger(),
	}
}

// Load reads and validates the dataset. Rows with a missing value for any
// of the selected metric columns are skipped (and counted); malformed
// numeric fields are rejected with a RecordValidationError.
func (s *CSVSource) Load(ctx context.Context) (*reliability.Dataset, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows; parseRow skips short ones
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("dataset %s is empty", s.path)
	}

	cols, err := indexColumns(rows[0], s.category)
	if err != nil {
		return nil, err
	}

	var records []reliability.Record
	skipped := 0

	for i, row := range rows[1:] {
		rec, ok, err := parseRow(i, row, cols)
		if err != nil {
			return nil, err
		}
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	ds, err := reliability.NewDataset(records)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("path", s.path).
		Str("category", string(s.category)).
		Int("rows", ds.Len()).
		Int("skipped", skipped).
		Msg("dataset loaded")

	return ds, nil
}

// columnIndex locates the state, year and selected metric columns in the
// header row.
type columnIndex struct {
	state, year         int
	saidi, saifi, caidi int
}

func indexColumns(header []string, category reliability.Category) (columnIndex, error) {
	idx := columnIndex{state: -1, year: -1, saidi: -1, saifi: -1, caidi: -1}
	suffix := category.ColumnSuffix()

	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "State":
			idx.state = i
		case "Year":
			idx.year = i
		case "SAIDI_" + suffix:
			idx.saidi = i
		case "SAIFI_" + suffix:
			idx.saifi = i
		case "CAIDI_" + suffix:
			idx.caidi = i
		}
	}

	if idx.state < 0 || idx.year < 0 {
		return idx, fmt.Errorf("dataset header missing State/Year columns")
	}
	if idx.saidi < 0 || idx.saifi < 0 || idx.caidi < 0 {
		return idx, fmt.Errorf("dataset header missing metric columns for category %s", category)
	}
	return idx, nil
}

// parseRow converts one CSV row. ok=false means the row lacks a value for
// the selected category and should be skipped.
func parseRow(row int, fields []string, cols columnIndex) (reliability.Record, bool, error) {
	var rec reliability.Record

	max := cols.state
	for _, c := range []int{cols.year, cols.saidi, cols.saifi, cols.caidi} {
		if c > max {
			max = c
		}
	}
	if len(fields) <= max {
		return rec, false, nil
	}

	rec.State = strings.TrimSpace(fields[cols.state])

	yearStr := strings.TrimSpace(fields[cols.year])
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return rec, false, &reliability.RecordValidationError{Row: row, Field: "year", Reason: fmt.Sprintf("not an integer: %q", yearStr)}
	}
	rec.Year = year

	for _, m := range []struct {
		field string
		col   int
		dst   *float64
	}{
		{"SAIDI", cols.saidi, &rec.SAIDI},
		{"SAIFI", cols.saifi, &rec.SAIFI},
		{"CAIDI", cols.caidi, &rec.CAIDI},
	} {
		raw := strings.TrimSpace(fields[m.col])
		if raw == "" || strings.EqualFold(raw, "na") || strings.EqualFold(raw, "n/a") {
			return rec, false, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return rec, false, &reliability.RecordValidationError{Row: row, Field: m.field, Reason: fmt.Sprintf("not a number: %q", raw)}
		}
		*m.dst = v
	}

	return rec, true, nil
}
