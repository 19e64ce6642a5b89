package delivery

import (
	"fmt"
	"time"

	"github.com/forest-guardian/regrowth/internal/cache"
	"github.com/forest-guardian/regrowth/internal/dataset"
	"github.com/forest-guardian/regrowth/internal/grid"
	"github.com/forest-guardian/regrowth/internal/properties"
	"github.com/forest-guardian/regrowth/internal/sentinel"
	"github.com/forest-guardian/regrowth/internal/trajectory"
)

// LocatedRecord pairs one location's derived record with its pixel and
// WGS84 coordinates, the shape consumed by every output writer.
type LocatedRecord struct {
	X         int               `json:"x"`
	Y         int               `json:"y"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Record    trajectory.Record `json:"record"`
}

// RegionResult is the assembled output of one region analysis.
type RegionResult struct {
	Records []LocatedRecord `json:"records"`
	Width   int             `json:"width"`
	Height  int             `json:"height"`
}

var resultCache = cache.NewFileCache[RegionResult]("trajectory_cache")

func imageFolder(region, boundaryID string) string {
	return fmt.Sprintf("%s/data/images/%s_%s/", properties.RootPath(), region, boundaryID)
}

func configKey(cfg trajectory.Config) string {
	return resultCache.GenerateKey(
		cfg.SparseThreshold, cfg.TransitionalThreshold, cfg.DenseThreshold,
		cfg.GainingSlope, cfg.LosingSlope,
		cfg.BaselineWindow, cfg.CurrentWindow, cfg.TrendWindow,
		cfg.CompositeMonths, cfg.Epochs, cfg.MaxProjectionYears,
	)
}

// AnalyzeRegion classifies the vegetation trajectory of every pixel
// inside a region boundary. Results are cached on disk keyed by region,
// boundary and configuration so a warm analysis can be reopened by the
// point inspector without recomputing the grid.
func AnalyzeRegion(region, boundaryID string, cfg trajectory.Config) (*RegionResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cacheKey := resultCache.GenerateKey(region, boundaryID, configKey(cfg))
	if cached, ok := resultCache.Get(cacheKey); ok {
		return &cached, nil
	}

	boundary, err := sentinel.GetBoundaryFromGeoJSON(region, boundaryID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	images, err := sentinel.LoadImages(imageFolder(region, boundaryID))
	if err != nil {
		return nil, err
	}
	defer sentinel.CloseImages(images)
	fmt.Printf("Loaded %d harmonized images in %v\n", len(images), time.Since(start))

	seriesDataset, err := dataset.CreateSeriesDataset(region, boundaryID, boundary, images)
	if err != nil {
		return nil, err
	}

	records, err := grid.Evaluate(seriesDataset.Series, cfg)
	if err != nil {
		return nil, err
	}

	result := &RegionResult{Width: seriesDataset.Width, Height: seriesDataset.Height}
	for key, record := range records {
		coordinate := seriesDataset.Coordinates[key]
		result.Records = append(result.Records, LocatedRecord{
			X:         key[0],
			Y:         key[1],
			Latitude:  coordinate.Latitude,
			Longitude: coordinate.Longitude,
			Record:    record,
		})
	}

	if err := resultCache.Set(cacheKey, *result); err != nil {
		fmt.Printf("Warning: failed to cache analysis result: %s\n", err.Error())
	}

	return result, nil
}
