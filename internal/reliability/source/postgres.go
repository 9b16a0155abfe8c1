package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/wonny/gridsight/internal/reliability"
)

// PostgresSource reads the consolidated dataset from a static table. The
// table mirrors the CSV layout with lowercased column names
// (state, year, saidi_all_events, ...). Read-only: the engine never
// writes back.
type PostgresSource struct {
	pool     *pgxpool.Pool
	table    string
	category reliability.Category
	log      zerolog.Logger
}

// NewPostgresSource creates a Postgres-backed dataset source.
func NewPostgresSource(pool *pgxpool.Pool, table string, category reliability.Category, log zerolog.Logger) *PostgresSource {
	return &PostgresSource{
		pool:     pool,
		table:    table,
		category: category,
		log:      log.With().Str("component", "source.postgres").Logger(),
	}
}

// Load reads and validates the dataset. Rows with a NULL value for any of
// the selected metric columns are skipped (and counted).
func (s *PostgresSource) Load(ctx context.Context) (*reliability.Dataset, error) {
	suffix := strings.ToLower(s.category.ColumnSuffix())
	query := fmt.Sprintf(
		`SELECT state, year, saidi_%[1]s, saifi_%[1]s, caidi_%[1]s FROM %[2]s ORDER BY state, year`,
		suffix, s.table,
	)

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query dataset: %w", err)
	}
	defer rows.Close()

	var records []reliability.Record
	skipped := 0

	for rows.Next() {
		var (
			state               string
			year                int
			saidi, saifi, caidi *float64
		)
		if err := rows.Scan(&state, &year, &saidi, &saifi, &caidi); err != nil {
			return nil, fmt.Errorf("scan dataset row: %w", err)
		}
		if saidi == nil || saifi == nil || caidi == nil {
			skipped++
			continue
		}
		records = append(records, reliability.Record{
			State: state,
			Year:  year,
			SAIDI: *saidi,
			SAIFI: *saifi,
			CAIDI: *caidi,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read dataset rows: %w", err)
	}

	ds, err := reliability.NewDataset(records)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("table", s.table).
		Str("category", string(s.category)).
		Int("rows", ds.Len()).
		Int("skipped", skipped).
		Msg("dataset loaded")

	return ds, nil
}
