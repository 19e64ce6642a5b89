package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forest-guardian/regrowth/internal/trajectory"
)

func TestBuildRecordRows(t *testing.T) {
	epoch := 2000
	records := map[[2]int]trajectory.Record{
		{4, 2}: {
			BaselineState:      trajectory.StateBare,
			CurrentState:       trajectory.StateDense,
			Trend:              trajectory.TrendGaining,
			Slope:              trajectory.SomeValue(0.012),
			Intercept:          trajectory.SomeValue(-23.7),
			CurrentComposite:   trajectory.SomeValue(0.65),
			Change:             trajectory.ChangeEstablishment,
			EstablishmentEpoch: &epoch,
		},
		{5, 2}: {
			BaselineState: trajectory.StateNoData,
			CurrentState:  trajectory.StateNoData,
			Trend:         trajectory.TrendNoData,
			Change:        trajectory.ChangeNoData,
		},
	}
	coordinates := map[[2]int]Coordinate{
		{4, 2}: {Latitude: -21.5, Longitude: -48.2},
		{5, 2}: {Latitude: -21.5, Longitude: -48.1},
	}

	rows := BuildRecordRows(records, coordinates)
	require.Len(t, rows, 2)

	byKey := make(map[[2]int]RecordRow)
	for _, row := range rows {
		byKey[[2]int{row.X, row.Y}] = row
	}

	established := byKey[[2]int{4, 2}]
	assert.Equal(t, "establishment", established.ChangeClass)
	assert.Equal(t, "bare", established.BaselineState)
	require.NotNil(t, established.Slope)
	assert.InDelta(t, 0.012, *established.Slope, 1e-9)
	require.NotNil(t, established.EstablishmentEpoch)
	assert.Equal(t, 2000, *established.EstablishmentEpoch)
	assert.Equal(t, -21.5, established.Latitude)

	// no-data must stay distinguishable from a real zero
	empty := byKey[[2]int{5, 2}]
	assert.Equal(t, "no_data", empty.ChangeClass)
	assert.Nil(t, empty.Slope)
	assert.Nil(t, empty.EstablishmentEpoch)
	assert.Nil(t, empty.ProjectedYears)
}

func TestExportRecordsCSV(t *testing.T) {
	series := trajectory.Series{
		{Date: time.Date(2021, time.July, 1, 0, 0, 0, 0, time.UTC), NIR: 0.8, Red: 0.2, Valid: true},
		{Date: time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC), NIR: 0.8, Red: 0.2, Valid: true},
	}
	records := map[[2]int]trajectory.Record{
		{0, 0}: trajectory.Evaluate(series, trajectory.DefaultConfig()),
	}
	coordinates := map[[2]int]Coordinate{{0, 0}: {Latitude: 1, Longitude: 2}}

	path := filepath.Join(t.TempDir(), "records.csv")
	rows := BuildRecordRows(records, coordinates)
	require.NoError(t, ExportRecordsCSV(rows, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)
	assert.True(t, strings.HasPrefix(content, "x,y,latitude,longitude"))
	assert.Contains(t, content, "dense")
}
