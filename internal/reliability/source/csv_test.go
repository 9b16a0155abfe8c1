package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/gridsight/internal/reliability"
)

const testHeader = "State,Year," +
	"CAIDI_All_Events,SAIDI_All_Events,SAIFI_All_Events," +
	"CAIDI_Without_Major_Event_Days,SAIDI_Without_Major_Event_Days,SAIFI_Without_Major_Event_Days," +
	"CAIDI_Loss_of_Supply_Removed,SAIDI_Loss_of_Supply_Removed,SAIFI_Loss_of_Supply_Removed\n"

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte(testHeader+body), 0o644))
	return path
}

func TestCSVSourceLoad(t *testing.T) {
	path := writeCSV(t,
		"Texas,2020,200,300,1.5,150,180,1.2,190,285,1.5\n"+
			"New York,2020,125,100,0.8,110,88,0.8,120,96,0.8\n"+
			"Texas,2021,194.4,350,1.8,160,192,1.2,188,338,1.8\n")

	src := NewCSVSource(path, reliability.AllEvents, zerolog.Nop())
	ds, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, []string{"NY", "TX"}, ds.States())

	tx2020 := ds.ByState("TX")[0]
	assert.Equal(t, 2020, tx2020.Year)
	assert.Equal(t, 300.0, tx2020.SAIDI)
	assert.Equal(t, 1.5, tx2020.SAIFI)
	assert.Equal(t, 200.0, tx2020.CAIDI)
}

func TestCSVSourceCategorySelection(t *testing.T) {
	path := writeCSV(t, "Texas,2020,200,300,1.5,150,180,1.2,190,285,1.5\n")

	src := NewCSVSource(path, reliability.WithoutMajorEventDays, zerolog.Nop())
	ds, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())

	rec := ds.Records()[0]
	assert.Equal(t, 180.0, rec.SAIDI)
	assert.Equal(t, 1.2, rec.SAIFI)
	assert.Equal(t, 150.0, rec.CAIDI)
}

func TestCSVSourceSkipsMissingValues(t *testing.T) {
	path := writeCSV(t,
		"Texas,2020,200,300,1.5,150,180,1.2,190,285,1.5\n"+
			"Alaska,2020,,,,150,180,1.2,190,285,1.5\n")

	src := NewCSVSource(path, reliability.AllEvents, zerolog.Nop())
	ds, err := src.Load(context.Background())
	require.NoError(t, err)

	// The Alaska row has no All_Events values: skipped, not an error
	assert.Equal(t, 1, ds.Len())
	assert.Equal(t, []string{"TX"}, ds.States())
}

func TestCSVSourceRejectsMalformedNumbers(t *testing.T) {
	path := writeCSV(t, "Texas,2020,200,abc,1.5,150,180,1.2,190,285,1.5\n")

	src := NewCSVSource(path, reliability.AllEvents, zerolog.Nop())
	_, err := src.Load(context.Background())

	var verr *reliability.RecordValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "SAIDI", verr.Field)
	assert.Equal(t, 0, verr.Row)
}

func TestCSVSourceRejectsUnknownState(t *testing.T) {
	path := writeCSV(t, "Atlantis,2020,200,300,1.5,150,180,1.2,190,285,1.5\n")

	src := NewCSVSource(path, reliability.AllEvents, zerolog.Nop())
	_, err := src.Load(context.Background())

	var verr *reliability.RecordValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "state", verr.Field)
}

func TestCSVSourceRejectsDuplicateRows(t *testing.T) {
	path := writeCSV(t,
		"Texas,2020,200,300,1.5,150,180,1.2,190,285,1.5\n"+
			"Texas,2020,210,320,1.5,150,180,1.2,190,285,1.5\n")

	src := NewCSVSource(path, reliability.AllEvents, zerolog.Nop())
	_, err := src.Load(context.Background())

	var dup *reliability.DuplicateObservationError
	require.ErrorAs(t, err, &dup)
}

func TestCSVSourceMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte("State,Year\nTexas,2020\n"), 0o644))

	src := NewCSVSource(path, reliability.AllEvents, zerolog.Nop())
	_, err := src.Load(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, os.ErrNotExist))
}

func TestCSVSourceMissingFile(t *testing.T) {
	src := NewCSVSource(filepath.Join(t.TempDir(), "absent.csv"), reliability.AllEvents, zerolog.Nop())
	_, err := src.Load(context.Background())
	require.Error(t, err)
}
