package sentinel

import (
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/forest-guardian/regrowth/internal/properties"
)

// GetBoundaryFromGeoJSON finds the boundary feature of a region. The
// region file lives at data/geojsons/<region>.geojson and features are
// identified by their boundary_id property.
func GetBoundaryFromGeoJSON(region, boundaryID string) (orb.Geometry, error) {
	filePath := fmt.Sprintf("%s/data/geojsons/%s.geojson", properties.RootPath(), region)
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read region file: %v", err)
	}

	collection, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse region GeoJSON %s: %v", filePath, err)
	}

	for _, feature := range collection.Features {
		id, ok := feature.Properties["boundary_id"].(string)
		if !ok {
			continue
		}
		if id == boundaryID {
			return feature.Geometry, nil
		}
	}

	return nil, fmt.Errorf("boundary %s not found in region %s", boundaryID, region)
}

// CentroidLatitudeLongitude computes the area-weighted centroid of a
// boundary geometry.
func CentroidLatitudeLongitude(geometry orb.Geometry) (float64, float64, error) {
	centroid, area := planar.CentroidArea(geometry)
	if area <= 0 {
		return 0, 0, errors.New("boundary geometry has no area")
	}
	return centroid.Y(), centroid.X(), nil
}

// BoundaryContains reports whether a WGS84 point falls inside the
// boundary geometry.
func BoundaryContains(geometry orb.Geometry, lon, lat float64) bool {
	point := orb.Point{lon, lat}
	switch g := geometry.(type) {
	case orb.Polygon:
		return planar.PolygonContains(g, point)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(g, point)
	default:
		return false
	}
}
