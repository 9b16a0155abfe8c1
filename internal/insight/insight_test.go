package insight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/gridsight/internal/analytics"
	"github.com/wonny/gridsight/internal/reliability"
)

func TestYearHighlight(t *testing.T) {
	ds, err := reliability.NewDataset([]reliability.Record{
		{State: "TX", Year: 2020, SAIDI: 512.3, SAIFI: 2.0, CAIDI: 256.2},
		{State: "NE", Year: 2020, SAIDI: 89.1, SAIFI: 0.9, CAIDI: 99.0},
		{State: "NY", Year: 2020, SAIDI: 150.0, SAIFI: 1.1, CAIDI: 136.4},
	})
	require.NoError(t, err)

	got := YearHighlight(ds, reliability.SAIDI, reliability.AllEvents, 2020)

	assert.Contains(t, got, "total outage duration (SAIDI)")
	assert.Contains(t, got, "including major events")
	assert.Contains(t, got, "Texas (512.3)")
	assert.Contains(t, got, "Nebraska (89.1)")
	assert.Contains(t, got, "gap of 423.2")
}

func TestYearHighlightNoData(t *testing.T) {
	ds, err := reliability.NewDataset(nil)
	require.NoError(t, err)

	got := YearHighlight(ds, reliability.SAIFI, reliability.AllEvents, 2020)
	assert.Equal(t, NoData, got)
}

func TestTrendHighlight(t *testing.T) {
	trends := map[string]analytics.StateTrend{
		"TX": {State: "TX", Metric: reliability.SAIDI, Slope: 69.8},
		"NY": {State: "NY", Metric: reliability.SAIDI, Slope: -12.4},
		"CA": {State: "CA", Metric: reliability.SAIDI, Slope: 3.0},
	}

	got := TrendHighlight(trends, reliability.SAIDI)

	assert.Contains(t, got, "Texas (+69.8 minutes per year)")
	assert.Contains(t, got, "New York (-12.4 minutes per year)")
}

func TestTrendHighlightAllRising(t *testing.T) {
	trends := map[string]analytics.StateTrend{
		"TX": {State: "TX", Metric: reliability.SAIFI, Slope: 0.2},
		"NY": {State: "NY", Metric: reliability.SAIFI, Slope: 0.1},
	}

	got := TrendHighlight(trends, reliability.SAIFI)

	assert.Contains(t, got, "no state shows a decline")
	assert.Contains(t, got, "interruptions per year")
	assert.False(t, strings.Contains(got, "falling"))
}

func TestTrendHighlightEmpty(t *testing.T) {
	got := TrendHighlight(nil, reliability.CAIDI)
	assert.Equal(t, NoData, got)
}
