package delivery

import (
	"fmt"

	"github.com/forest-guardian/regrowth/internal/dataset"
	"github.com/forest-guardian/regrowth/internal/sentinel"
	"github.com/forest-guardian/regrowth/internal/trajectory"
	"github.com/forest-guardian/regrowth/internal/utils"
)

// InspectPoint computes the full derived record of the pixel holding a
// WGS84 coordinate. A warm cache from a previous AnalyzeRegion run is
// reused; otherwise only the requested pixel's series is read from the
// image stack, never the whole grid.
func InspectPoint(region, boundaryID string, cfg trajectory.Config, lat, lon float64) (*LocatedRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	images, err := sentinel.LoadImages(imageFolder(region, boundaryID))
	if err != nil {
		return nil, err
	}
	defer sentinel.CloseImages(images)

	dates := utils.GetSortedKeys(images, true)
	reference := images[dates[0]]
	x, y, err := sentinel.LatLonToXY(reference, lat, lon)
	if err != nil {
		return nil, err
	}

	cacheKey := resultCache.GenerateKey(region, boundaryID, configKey(cfg))
	if cached, ok := resultCache.Get(cacheKey); ok {
		for _, located := range cached.Records {
			if located.X == x && located.Y == y {
				return &located, nil
			}
		}
		return nil, fmt.Errorf("pixel (%d,%d) is outside the analyzed boundary", x, y)
	}

	series, err := dataset.CreateSeriesAtPixel(images, x, y)
	if err != nil {
		return nil, err
	}

	pixelLat, pixelLon, err := sentinel.XYToLatLon(reference, x, y)
	if err != nil {
		return nil, err
	}

	record := trajectory.Evaluate(series, cfg)
	return &LocatedRecord{
		X:         x,
		Y:         y,
		Latitude:  pixelLat,
		Longitude: pixelLon,
		Record:    record,
	}, nil
}
