package report

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/wonny/gridsight/internal/analytics"
	"github.com/wonny/gridsight/internal/insight"
	"github.com/wonny/gridsight/internal/reliability"
)

// =============================================================================
// Report Types
// =============================================================================

// Report is the full analytics output handed to consumers (a dashboard
// or report generator) as plain structured data.
type Report struct {
	GeneratedAt  time.Time                       `json:"generated_at"`
	Category     reliability.Category            `json:"category"`
	Observations int                             `json:"observations"`
	Years        []int                           `json:"years"`
	Summaries    []analytics.NationalYearSummary `json:"national_summaries"`

	// Correlations is nil when not computable (zero-variance input);
	// CorrelationNote carries the reason so consumers can render "N/A".
	Correlations    *analytics.CorrelationMatrix `json:"correlations,omitempty"`
	CorrelationNote string                       `json:"correlation_note,omitempty"`

	Metrics map[reliability.Metric]MetricReport `json:"metrics"`

	ConsistencyIssues []reliability.ConsistencyIssue `json:"consistency_issues,omitempty"`
}

// MetricReport is the per-metric section: trends, rankings and narrative.
type MetricReport struct {
	Trends map[string]analytics.StateTrend `json:"trends"`

	BestByMean      []analytics.StateRank `json:"best_by_mean"`       // lowest multi-year mean first
	WorstByMean     []analytics.StateRank `json:"worst_by_mean"`      // highest multi-year mean first
	LargestIncrease []analytics.StateRank `json:"largest_increase"`   // steepest positive slope first
	LargestDecrease []analytics.StateRank `json:"largest_decrease"`   // steepest negative slope first

	TrendNarrative string `json:"trend_narrative,omitempty"`

	// YearNarratives keys are years; values phrase the year's
	// highest/lowest state and the gap.
	YearNarratives map[int]string `json:"year_narratives,omitempty"`
}

// =============================================================================
// Builder
// =============================================================================

// Builder assembles Reports from a loaded dataset.
type Builder struct {
	category  reliability.Category
	tolerance float64
	topN      int
	log       zerolog.Logger
}

// NewBuilder creates a report builder. topN bounds the ranked lists;
// tolerance is the CAIDI consistency threshold.
func NewBuilder(category reliability.Category, tolerance float64, topN int, log zerolog.Logger) *Builder {
	if topN <= 0 {
		topN = 5
	}
	return &Builder{
		category:  category,
		tolerance: tolerance,
		topN:      topN,
		log:       log.With().Str("component", "report.builder").Logger(),
	}
}

// Build computes every derived statistic for the dataset. Undefined
// statistics degrade to omitted fields; only data-integrity failures
// (duplicate observations) abort the report.
func (b *Builder) Build(ds *reliability.Dataset) (*Report, error) {
	report := &Report{
		GeneratedAt:  time.Now(),
		Category:     b.category,
		Observations: ds.Len(),
		Years:        ds.Years(),
		Summaries:    analytics.NationalYearSummaries(ds),
		Metrics:      make(map[reliability.Metric]MetricReport, 3),
	}

	if matrix, err := analytics.Correlations(ds); err != nil {
		// Degrade to N/A, keep building
		report.CorrelationNote = err.Error()
		b.log.Warn().Err(err).Msg("correlation not computable")
	} else {
		report.Correlations = &matrix
	}

	for _, m := range reliability.Metrics() {
		section, err := b.buildMetric(ds, m)
		if err != nil {
			return nil, err
		}
		report.Metrics[m] = section
	}

	report.ConsistencyIssues = reliability.CheckConsistency(ds.Records(), b.tolerance)
	if n := len(report.ConsistencyIssues); n > 0 {
		b.log.Warn().Int("flagged", n).Msg("records violate CAIDI consistency tolerance")
	}

	return report, nil
}

func (b *Builder) buildMetric(ds *reliability.Dataset, m reliability.Metric) (MetricReport, error) {
	var section MetricReport

	trends, err := analytics.StateTrends(ds, m)
	if err != nil {
		return section, err
	}
	section.Trends = trends
	section.TrendNarrative = insight.TrendHighlight(trends, m)

	byMeanAsc, err := analytics.RankStates(ds, m, analytics.StatMean, analytics.Ascending)
	if err != nil {
		return section, err
	}
	byMeanDesc, err := analytics.RankStates(ds, m, analytics.StatMean, analytics.Descending)
	if err != nil {
		return section, err
	}
	bySlopeDesc, err := analytics.RankStates(ds, m, analytics.StatTrendSlope, analytics.Descending)
	if err != nil {
		return section, err
	}
	bySlopeAsc, err := analytics.RankStates(ds, m, analytics.StatTrendSlope, analytics.Ascending)
	if err != nil {
		return section, err
	}

	section.BestByMean = head(byMeanAsc, b.topN)
	section.WorstByMean = head(byMeanDesc, b.topN)
	section.LargestIncrease = head(bySlopeDesc, b.topN)
	section.LargestDecrease = head(bySlopeAsc, b.topN)

	section.YearNarratives = make(map[int]string)
	for _, year := range ds.Years() {
		section.YearNarratives[year] = insight.YearHighlight(ds, m, b.category, year)
	}

	return section, nil
}

func head(ranks []analytics.StateRank, n int) []analytics.StateRank {
	if len(ranks) <= n {
		return ranks
	}
	return ranks[:n]
}
