package sentinel

import (
	"fmt"
	"math"

	"github.com/airbusgeo/godal"
)

// Georeferencer converts pixel coordinates of one dataset to WGS84 at
// the pixel center. It holds a single spatial-reference transform so
// grid-scale callers do not rebuild it per pixel.
type Georeferencer struct {
	geoTransform [6]float64
	transform    *godal.Transform
}

// NewGeoreferencer builds the WGS84 transform of a dataset. The caller
// must Close it.
func NewGeoreferencer(dataset *godal.Dataset) (*Georeferencer, error) {
	geoTransform, err := dataset.GeoTransform()
	if err != nil {
		return nil, fmt.Errorf("failed to get GeoTransform: %w", err)
	}

	srcSR := dataset.SpatialRef()
	defer srcSR.Close()
	dstSR, err := godal.NewSpatialRefFromEPSG(4326)
	if err != nil {
		return nil, fmt.Errorf("failed to create WGS84 spatial ref: %w", err)
	}
	defer dstSR.Close()
	tr, err := godal.NewTransform(srcSR, dstSR)
	if err != nil {
		return nil, fmt.Errorf("failed to create coordinate transform: %w", err)
	}

	return &Georeferencer{geoTransform: geoTransform, transform: tr}, nil
}

func (g *Georeferencer) Close() {
	g.transform.Close()
}

// XYToLatLon converts pixel coordinates to WGS84 latitude and longitude
// at the pixel center.
func (g *Georeferencer) XYToLatLon(x, y int) (float64, float64, error) {
	xCoord := g.geoTransform[0] + g.geoTransform[1]*(float64(x)+0.5) + g.geoTransform[2]*(float64(y)+0.5)
	yCoord := g.geoTransform[3] + g.geoTransform[4]*(float64(x)+0.5) + g.geoTransform[5]*(float64(y)+0.5)

	xs := []float64{xCoord}
	ys := []float64{yCoord}
	if err := g.transform.TransformEx(xs, ys, nil, nil); err != nil {
		return 0, 0, fmt.Errorf("transform error: %w", err)
	}

	return ys[0], xs[0], nil
}

// XYToLatLon converts a single pixel coordinate to WGS84. Loops over
// many pixels should build one Georeferencer instead.
func XYToLatLon(dataset *godal.Dataset, x, y int) (float64, float64, error) {
	georeferencer, err := NewGeoreferencer(dataset)
	if err != nil {
		return 0, 0, err
	}
	defer georeferencer.Close()
	return georeferencer.XYToLatLon(x, y)
}

// LatLonToXY converts a WGS84 coordinate to the pixel holding it.
func LatLonToXY(dataset *godal.Dataset, lat, lon float64) (int, int, error) {
	geoTransform, err := dataset.GeoTransform()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get GeoTransform: %w", err)
	}

	dstSR := dataset.SpatialRef()
	defer dstSR.Close()
	srcSR, err := godal.NewSpatialRefFromEPSG(4326)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create WGS84 spatial ref: %w", err)
	}
	defer srcSR.Close()
	tr, err := godal.NewTransform(srcSR, dstSR)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create coordinate transform: %w", err)
	}
	defer tr.Close()

	xs := []float64{lon}
	ys := []float64{lat}
	if err := tr.TransformEx(xs, ys, nil, nil); err != nil {
		return 0, 0, fmt.Errorf("transform error: %w", err)
	}

	col := int(math.Floor((xs[0] - geoTransform[0]) / geoTransform[1]))
	row := int(math.Floor((ys[0] - geoTransform[3]) / geoTransform[5]))

	width := dataset.Structure().SizeX
	height := dataset.Structure().SizeY
	if col < 0 || col >= width || row < 0 || row >= height {
		return 0, 0, fmt.Errorf("latitude %f and longitude %f are out of bounds for the image", lat, lon)
	}
	return col, row, nil
}
