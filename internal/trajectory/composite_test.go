package trajectory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obsAt(date time.Time, index float64) Observation {
	// nir+red == 1 so (nir-red)/(nir+red) == index
	return Observation{
		Date:  date,
		NIR:   (1 + index) / 2,
		Red:   (1 - index) / 2,
		Valid: true,
	}
}

func TestObservationIndex(t *testing.T) {
	july := time.Date(2020, time.July, 1, 0, 0, 0, 0, time.UTC)

	obs := Observation{Date: july, NIR: 0.8, Red: 0.2, Valid: true}
	index := obs.Index()
	require.True(t, index.Valid)
	assert.InDelta(t, 0.6, index.Float, 1e-9)

	masked := Observation{Date: july, NIR: 0.8, Red: 0.2, Valid: false}
	assert.False(t, masked.Index().Valid)

	degenerate := Observation{Date: july, NIR: 0, Red: 0, Valid: true}
	assert.False(t, degenerate.Index().Valid)
}

func TestCompositeMedian(t *testing.T) {
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC)

	series := Series{
		obsAt(time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC), 0.1),
		obsAt(time.Date(2020, time.July, 1, 0, 0, 0, 0, time.UTC), 0.5),
		obsAt(time.Date(2020, time.August, 1, 0, 0, 0, 0, time.UTC), 0.3),
	}

	composite := Composite(series, start, end, nil)
	require.True(t, composite.Valid)
	assert.InDelta(t, 0.3, composite.Float, 1e-9)

	// even count averages the two middle values
	series = append(series, obsAt(time.Date(2020, time.September, 1, 0, 0, 0, 0, time.UTC), 0.7))
	composite = Composite(series, start, end, nil)
	require.True(t, composite.Valid)
	assert.InDelta(t, 0.4, composite.Float, 1e-9)
}

func TestCompositeWindowAndMonthFilter(t *testing.T) {
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC)

	series := Series{
		obsAt(time.Date(2019, time.July, 1, 0, 0, 0, 0, time.UTC), 0.9), // before window
		obsAt(time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC), 0.9), // month filtered
		obsAt(time.Date(2020, time.July, 1, 0, 0, 0, 0, time.UTC), 0.2),
	}

	composite := Composite(series, start, end, []time.Month{time.June, time.July})
	require.True(t, composite.Valid)
	assert.InDelta(t, 0.2, composite.Float, 1e-9)
}

func TestCompositeEmptyWindowIsNoData(t *testing.T) {
	start := time.Date(1985, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(1989, time.December, 31, 0, 0, 0, 0, time.UTC)

	series := Series{
		obsAt(time.Date(2020, time.July, 1, 0, 0, 0, 0, time.UTC), 0.5),
	}
	assert.False(t, Composite(series, start, end, nil).Valid)
	assert.False(t, Composite(nil, start, end, nil).Valid)
}

func TestCompositeStableUnderDuplication(t *testing.T) {
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC)

	series := Series{
		obsAt(time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC), 0.1),
		obsAt(time.Date(2020, time.July, 1, 0, 0, 0, 0, time.UTC), 0.4),
		obsAt(time.Date(2020, time.August, 1, 0, 0, 0, 0, time.UTC), 0.8),
	}
	doubled := append(Series{}, series...)
	doubled = append(doubled, series...)

	original := Composite(series, start, end, nil)
	duplicated := Composite(doubled, start, end, nil)
	require.True(t, original.Valid)
	require.True(t, duplicated.Valid)
	assert.InDelta(t, original.Float, duplicated.Float, 1e-12)
}

func TestCompositeExcludesDegenerateObservations(t *testing.T) {
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC)

	series := Series{
		obsAt(time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC), 0.5),
		{Date: time.Date(2020, time.July, 1, 0, 0, 0, 0, time.UTC), NIR: 0, Red: 0, Valid: true},
		{Date: time.Date(2020, time.August, 1, 0, 0, 0, 0, time.UTC), NIR: 0.9, Red: 0.1, Valid: false},
	}

	composite := Composite(series, start, end, nil)
	require.True(t, composite.Valid)
	// zero must not leak into the median
	assert.InDelta(t, 0.5, composite.Float, 1e-9)
}
