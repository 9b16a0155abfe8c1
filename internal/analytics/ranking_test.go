package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/gridsight/internal/reliability"
)

func TestRankStatesByMeanTieBreak(t *testing.T) {
	// CA and TX tie on the mean; NY is lowest
	ds := mustDataset(t, []reliability.Record{
		{State: "CA", Year: 2020, SAIDI: 150, SAIFI: 1.0, CAIDI: 150},
		{State: "TX", Year: 2020, SAIDI: 150, SAIFI: 1.0, CAIDI: 150},
		{State: "NY", Year: 2020, SAIDI: 90, SAIFI: 1.0, CAIDI: 90},
	})

	ranks, err := RankStates(ds, reliability.SAIDI, StatMean, Ascending)
	require.NoError(t, err)
	require.Len(t, ranks, 3)

	assert.Equal(t, "NY", ranks[0].State)
	assert.Equal(t, 90.0, ranks[0].Value)
	// Tie broken alphabetically: CA before TX
	assert.Equal(t, "CA", ranks[1].State)
	assert.Equal(t, "TX", ranks[2].State)
}

func TestRankStatesDescending(t *testing.T) {
	ds := mustDataset(t, []reliability.Record{
		{State: "CA", Year: 2020, SAIDI: 150, SAIFI: 1.0, CAIDI: 150},
		{State: "TX", Year: 2020, SAIDI: 150, SAIFI: 1.0, CAIDI: 150},
		{State: "NY", Year: 2020, SAIDI: 90, SAIFI: 1.0, CAIDI: 90},
	})

	ranks, err := RankStates(ds, reliability.SAIDI, StatMean, Descending)
	require.NoError(t, err)
	require.Len(t, ranks, 3)

	// Ties still break alphabetically ascending
	assert.Equal(t, "CA", ranks[0].State)
	assert.Equal(t, "TX", ranks[1].State)
	assert.Equal(t, "NY", ranks[2].State)
}

func TestRankStatesMultiYearMean(t *testing.T) {
	ds := mustDataset(t, []reliability.Record{
		{State: "TX", Year: 2020, SAIDI: 100, SAIFI: 1.0, CAIDI: 100},
		{State: "TX", Year: 2021, SAIDI: 300, SAIFI: 1.0, CAIDI: 300},
		{State: "NY", Year: 2020, SAIDI: 150, SAIFI: 1.0, CAIDI: 150},
	})

	ranks, err := RankStates(ds, reliability.SAIDI, StatMean, Ascending)
	require.NoError(t, err)
	require.Len(t, ranks, 2)

	// TX mean = 200, NY mean = 150
	assert.Equal(t, "NY", ranks[0].State)
	assert.Equal(t, 150.0, ranks[0].Value)
	assert.Equal(t, "TX", ranks[1].State)
	assert.Equal(t, 200.0, ranks[1].Value)
}

func TestRankStatesByTrendSlope(t *testing.T) {
	ds := mustDataset(t, []reliability.Record{
		// TX rising 10/yr
		{State: "TX", Year: 2020, SAIDI: 100, SAIFI: 1.0, CAIDI: 100},
		{State: "TX", Year: 2022, SAIDI: 120, SAIFI: 1.0, CAIDI: 120},
		// NY falling 5/yr
		{State: "NY", Year: 2020, SAIDI: 100, SAIFI: 1.0, CAIDI: 100},
		{State: "NY", Year: 2022, SAIDI: 90, SAIFI: 1.0, CAIDI: 90},
		// VT has one year: no trend, omitted from the ranking
		{State: "VT", Year: 2020, SAIDI: 50, SAIFI: 1.0, CAIDI: 50},
	})

	ranks, err := RankStates(ds, reliability.SAIDI, StatTrendSlope, Descending)
	require.NoError(t, err)
	require.Len(t, ranks, 2)

	assert.Equal(t, "TX", ranks[0].State)
	assert.InDelta(t, 10.0, ranks[0].Value, 1e-9)
	assert.Equal(t, "NY", ranks[1].State)
	assert.InDelta(t, -5.0, ranks[1].Value, 1e-9)
}

func TestRankStatesPropagatesDuplicateError(t *testing.T) {
	ds := reliability.FromRecords([]reliability.Record{
		{State: "TX", Year: 2020, SAIDI: 100, SAIFI: 1.0, CAIDI: 100},
		{State: "TX", Year: 2020, SAIDI: 200, SAIFI: 1.0, CAIDI: 200},
	})

	_, err := RankStates(ds, reliability.SAIDI, StatTrendSlope, Ascending)
	var dup *reliability.DuplicateObservationError
	assert.ErrorAs(t, err, &dup)
}

func TestParseStatistic(t *testing.T) {
	got, err := ParseStatistic("mean")
	require.NoError(t, err)
	assert.Equal(t, StatMean, got)

	got, err = ParseStatistic("slope")
	require.NoError(t, err)
	assert.Equal(t, StatTrendSlope, got)

	_, err = ParseStatistic("median")
	assert.Error(t, err)
}
