package sentinel

import (
	"testing"

	"github.com/airbusgeo/godal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryDataset(t *testing.T) *godal.Dataset {
	t.Helper()
	godal.RegisterInternalDrivers()

	ds, err := godal.Create(godal.Memory, "", 1, godal.Float64, 10, 10)
	require.NoError(t, err)
	t.Cleanup(func() { ds.Close() })

	sr, err := godal.NewSpatialRefFromEPSG(4326)
	require.NoError(t, err)
	defer sr.Close()
	require.NoError(t, ds.SetSpatialRef(sr))
	require.NoError(t, ds.SetGeoTransform([6]float64{-47.0, 0.001, 0, -15.0, 0, -0.001}))

	return ds
}

func TestGeoreferencerMatchesSingleShotConversion(t *testing.T) {
	ds := memoryDataset(t)

	georeferencer, err := NewGeoreferencer(ds)
	require.NoError(t, err)
	defer georeferencer.Close()

	// a reused transform must give the same pixel centers as the
	// one-shot helper, on every call
	for _, pixel := range [][2]int{{0, 0}, {3, 4}, {9, 9}, {3, 4}} {
		wantLat, wantLon, err := XYToLatLon(ds, pixel[0], pixel[1])
		require.NoError(t, err)

		lat, lon, err := georeferencer.XYToLatLon(pixel[0], pixel[1])
		require.NoError(t, err)
		assert.InDelta(t, wantLat, lat, 1e-9)
		assert.InDelta(t, wantLon, lon, 1e-9)
	}
}

func TestGeoreferencerPixelCenter(t *testing.T) {
	ds := memoryDataset(t)

	georeferencer, err := NewGeoreferencer(ds)
	require.NoError(t, err)
	defer georeferencer.Close()

	lat, lon, err := georeferencer.XYToLatLon(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, -15.0005, lat, 1e-9)
	assert.InDelta(t, -46.9995, lon, 1e-9)
}

func TestLatLonToXYRoundTrip(t *testing.T) {
	ds := memoryDataset(t)

	lat, lon, err := XYToLatLon(ds, 3, 4)
	require.NoError(t, err)

	x, y, err := LatLonToXY(ds, lat, lon)
	require.NoError(t, err)
	assert.Equal(t, 3, x)
	assert.Equal(t, 4, y)
}

func TestLatLonToXYOutOfBounds(t *testing.T) {
	ds := memoryDataset(t)

	_, _, err := LatLonToXY(ds, 40.0, 3.0)
	assert.Error(t, err)
}
