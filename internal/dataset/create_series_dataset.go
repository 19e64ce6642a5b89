package dataset

import (
	"errors"
	"fmt"
	"time"

	"github.com/airbusgeo/godal"
	"github.com/paulmach/orb"
	"github.com/schollz/progressbar/v3"

	"github.com/forest-guardian/regrowth/internal/grid"
	"github.com/forest-guardian/regrowth/internal/sentinel"
	"github.com/forest-guardian/regrowth/internal/trajectory"
	"github.com/forest-guardian/regrowth/internal/utils"
)

// Coordinate is the WGS84 pixel center of a location.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SeriesDataset gathers the per-location observation series of every
// pixel inside the boundary, plus the geography needed by the output
// writers.
type SeriesDataset struct {
	Width       int
	Height      int
	Series      grid.Dataset
	Coordinates map[[2]int]Coordinate
}

// CreateSeriesDataset turns a harmonized image stack into one
// observation series per pixel inside the boundary. Masked and
// degenerate observations stay in the series flagged invalid so the
// engine can exclude them from every reduction.
func CreateSeriesDataset(region, boundaryID string, boundary orb.Geometry, images map[time.Time]*godal.Dataset) (*SeriesDataset, error) {
	sortedDates := utils.GetSortedKeys(images, true)
	if len(sortedDates) == 0 {
		return nil, fmt.Errorf("no images available to build the dataset for region: %s, boundary: %s", region, boundaryID)
	}

	reference := images[sortedDates[0]]
	width := reference.Structure().SizeX
	height := reference.Structure().SizeY

	coordinates, insideKeys, err := maskBoundary(reference, boundary, width, height)
	if err != nil {
		return nil, err
	}
	if len(insideKeys) == 0 {
		return nil, fmt.Errorf("boundary %s of region %s contains no pixels", boundaryID, region)
	}

	dataset := &SeriesDataset{
		Width:       width,
		Height:      height,
		Series:      make(grid.Dataset, len(insideKeys)),
		Coordinates: coordinates,
	}

	progressBar := progressbar.Default(int64(len(sortedDates)), "Building observation series")
	for _, date := range sortedDates {
		image := images[date]
		if image.Structure().SizeX != width || image.Structure().SizeY != height {
			return nil, errors.New("different image size in the harmonized stack")
		}

		bands, err := sentinel.ReadBands(image)
		if err != nil {
			return nil, fmt.Errorf("error reading image %s: %w", date.Format("2006-01-02"), err)
		}

		for _, key := range insideKeys {
			nir, red, valid := bands.At(key[0], key[1])
			dataset.Series[key] = append(dataset.Series[key], trajectory.Observation{
				Date:  date,
				NIR:   nir,
				Red:   red,
				Valid: valid,
			})
		}
		progressBar.Add(1)
	}
	progressBar.Finish()

	return dataset, nil
}

// maskBoundary resolves the WGS84 center of every pixel and keeps the
// ones falling inside the boundary geometry.
func maskBoundary(reference *godal.Dataset, boundary orb.Geometry, width, height int) (map[[2]int]Coordinate, [][2]int, error) {
	georeferencer, err := sentinel.NewGeoreferencer(reference)
	if err != nil {
		return nil, nil, err
	}
	defer georeferencer.Close()

	coordinates := make(map[[2]int]Coordinate)
	var insideKeys [][2]int

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			lat, lon, err := georeferencer.XYToLatLon(x, y)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to georeference pixel (%d,%d): %w", x, y, err)
			}
			if !sentinel.BoundaryContains(boundary, lon, lat) {
				continue
			}
			key := [2]int{x, y}
			coordinates[key] = Coordinate{Latitude: lat, Longitude: lon}
			insideKeys = append(insideKeys, key)
		}
	}

	return coordinates, insideKeys, nil
}

// CreateSeriesAtPixel reads a single pixel from every image of the
// stack, for the on-demand point inspector path.
func CreateSeriesAtPixel(images map[time.Time]*godal.Dataset, x, y int) (trajectory.Series, error) {
	var series trajectory.Series
	for _, date := range utils.GetSortedKeys(images, true) {
		image := images[date]
		width := image.Structure().SizeX
		height := image.Structure().SizeY
		if x < 0 || x >= width || y < 0 || y >= height {
			return nil, fmt.Errorf("pixel (%d,%d) is out of image bounds", x, y)
		}

		bands := image.Bands()
		if len(bands) < 3 {
			return nil, fmt.Errorf("expected 3 bands (nir, red, qa), image has %d", len(bands))
		}
		read := func(index int) (float64, error) {
			data := make([]float64, 1)
			if err := bands[index].Read(x, y, data, 1, 1); err != nil {
				return 0, fmt.Errorf("failed to read pixel (%d,%d): %v", x, y, err)
			}
			return data[0], nil
		}

		nir, err := read(0)
		if err != nil {
			return nil, err
		}
		red, err := read(1)
		if err != nil {
			return nil, err
		}
		qa, err := read(2)
		if err != nil {
			return nil, err
		}

		series = append(series, trajectory.Observation{
			Date:  date,
			NIR:   nir,
			Red:   red,
			Valid: qa == 0,
		})
	}
	return series, nil
}
