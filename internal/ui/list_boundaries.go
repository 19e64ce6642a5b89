package ui

import (
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"

	"github.com/forest-guardian/regrowth/internal/properties"
)

// ListBoundaries handles the UI for viewing the boundaries of a region
func ListBoundaries(region string) {
	PrintWarning("To add a boundary to a region add the 'boundary_id' property at the '.geojson' file from the region of your choice.\nThe 'boundary_id' property should be located at 'features[N].properties.boundary_id'.")

	if region == "" {
		region = ReadString("Enter the region name: ")
	}

	filePath := fmt.Sprintf("%s/data/geojsons/%s.geojson", properties.RootPath(), region)
	raw, err := os.ReadFile(filePath)
	if err != nil {
		PrintError(fmt.Sprintf("Error reading region file: %s", err.Error()))
		return
	}

	collection, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		PrintError(fmt.Sprintf("Error decoding GeoJSON: %s", err.Error()))
		return
	}

	var boundaryIDs []string
	for _, feature := range collection.Features {
		if id, ok := feature.Properties["boundary_id"].(string); ok {
			boundaryIDs = append(boundaryIDs, id)
		}
	}

	if len(boundaryIDs) == 0 {
		PrintError("No boundary IDs found in the GeoJSON file.")
		return
	}

	fmt.Printf("\n%sAvailable boundaries:%s\n", ColorGreen, ColorReset)
	for _, id := range boundaryIDs {
		fmt.Printf("%s- %s%s\n", ColorGreen, id, ColorReset)
	}
}
