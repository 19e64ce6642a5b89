package trajectory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func julyObservation(year int, index float64) Observation {
	return obsAt(time.Date(year, time.July, 10, 0, 0, 0, 0, time.UTC), index)
}

func TestEvaluateLossScenario(t *testing.T) {
	cfg := DefaultConfig()

	// dense in the baseline window, bare today
	series := Series{
		julyObservation(1986, 0.65),
		julyObservation(1988, 0.65),
		julyObservation(2000, 0.40),
		julyObservation(2021, 0.15),
		julyObservation(2023, 0.15),
	}

	record := Evaluate(series, cfg)
	assert.Equal(t, StateDense, record.BaselineState)
	assert.Equal(t, StateBare, record.CurrentState)
	assert.Equal(t, ChangeLoss, record.Change)
	assert.Nil(t, record.EstablishmentEpoch)
	assert.False(t, record.ProjectedYears.Valid)
}

func TestEvaluateEstablishmentScenario(t *testing.T) {
	cfg := DefaultConfig()

	series := Series{
		julyObservation(1986, 0.15),
		julyObservation(1991, 0.20),
		julyObservation(1996, 0.35),
		julyObservation(2001, 0.62),
		julyObservation(2006, 0.63),
		julyObservation(2021, 0.65),
		julyObservation(2023, 0.65),
	}

	record := Evaluate(series, cfg)
	assert.Equal(t, StateBare, record.BaselineState)
	assert.Equal(t, StateDense, record.CurrentState)
	assert.Equal(t, ChangeEstablishment, record.Change)
	require.NotNil(t, record.EstablishmentEpoch)
	assert.Equal(t, 2000, *record.EstablishmentEpoch)
	// projection only applies below the dense threshold
	assert.False(t, record.ProjectedYears.Valid)
}

func TestEvaluateProjectsGainingTransitionalLocation(t *testing.T) {
	cfg := DefaultConfig()

	// steady climb of 0.01 per year, still transitional today
	var series Series
	for year := 1990; year <= 2025; year++ {
		index := 0.15 + 0.01*float64(year-1990)
		series = append(series, julyObservation(year, index))
	}

	record := Evaluate(series, cfg)
	assert.Equal(t, TrendGaining, record.Trend)
	assert.Equal(t, StateTransitional, record.CurrentState)
	require.True(t, record.ProjectedYears.Valid)
	assert.Greater(t, record.ProjectedYears.Float, 0.0)
	assert.Less(t, record.ProjectedYears.Float, float64(cfg.MaxProjectionYears))
}

func TestEvaluateEmptySeriesIsAllNoData(t *testing.T) {
	record := Evaluate(nil, DefaultConfig())

	assert.False(t, record.BaselineComposite.Valid)
	assert.False(t, record.CurrentComposite.Valid)
	assert.Equal(t, StateNoData, record.BaselineState)
	assert.Equal(t, StateNoData, record.CurrentState)
	assert.False(t, record.Slope.Valid)
	assert.Equal(t, TrendNoData, record.Trend)
	assert.Equal(t, ChangeNoData, record.Change)
	assert.Nil(t, record.EstablishmentEpoch)
	assert.False(t, record.ProjectedYears.Valid)
}

func TestEvaluateMissingBaselineWindowIsNoData(t *testing.T) {
	cfg := DefaultConfig()

	// observations only in the current window: the change layer must be
	// no-data, never a defaulted class
	series := Series{
		julyObservation(2021, 0.65),
		julyObservation(2023, 0.66),
	}

	record := Evaluate(series, cfg)
	assert.Equal(t, StateNoData, record.BaselineState)
	assert.Equal(t, StateDense, record.CurrentState)
	assert.Equal(t, ChangeNoData, record.Change)
	assert.Nil(t, record.EstablishmentEpoch)
}
