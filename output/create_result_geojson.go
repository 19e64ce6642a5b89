package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/forest-guardian/regrowth/internal/delivery"
)

// CreateResultGeoJSON writes the full derived record of every analyzed
// pixel as a point feature collection. No-data layers marshal as null
// properties, never as zero.
func CreateResultGeoJSON(result *delivery.RegionResult, outputPath string) error {
	if !strings.HasSuffix(outputPath, ".geojson") {
		outputPath += ".geojson"
	}

	collection := geojson.NewFeatureCollection()
	for _, located := range result.Records {
		feature := geojson.NewFeature(orb.Point{located.Longitude, located.Latitude})
		record := located.Record

		feature.Properties["x"] = located.X
		feature.Properties["y"] = located.Y
		feature.Properties["change_class"] = record.Change.String()
		feature.Properties["baseline_state"] = record.BaselineState.String()
		feature.Properties["current_state"] = record.CurrentState.String()
		feature.Properties["trend"] = record.Trend.String()

		if record.Slope.Valid {
			feature.Properties["slope"] = record.Slope.Float
			feature.Properties["intercept"] = record.Intercept.Float
		}
		if record.CurrentComposite.Valid {
			feature.Properties["current_composite"] = record.CurrentComposite.Float
		}
		if record.EstablishmentEpoch != nil {
			feature.Properties["establishment_epoch"] = *record.EstablishmentEpoch
		}
		if record.ProjectedYears.Valid {
			feature.Properties["projected_years"] = record.ProjectedYears.Float
		}

		collection.Append(feature)
	}

	raw, err := collection.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode GeoJSON: %v", err)
	}
	if err := os.WriteFile(outputPath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write GeoJSON file: %v", err)
	}

	fmt.Println("GeoJSON file created successfully at", outputPath)
	return nil
}
