package ui

import (
	"fmt"

	"github.com/forest-guardian/regrowth/internal/dataset"
	"github.com/forest-guardian/regrowth/internal/delivery"
	"github.com/forest-guardian/regrowth/internal/notification"
	"github.com/forest-guardian/regrowth/internal/trajectory"
	"github.com/forest-guardian/regrowth/output"
)

// AnalyzeRegion handles the UI for classifying every vegetation
// trajectory inside a region boundary
func AnalyzeRegion(cfg trajectory.Config) {
	PrintWarning("- A '.geojson' file with the region name should be present in data/geojsons folder.\n- The '.geojson' file should contain the desired boundary in its features identified by boundary_id.\n- The harmonized image stack should be present in data/images/<region>_<boundary>.")

	region, boundary, err := ReadRegionAndBoundary()
	if err != nil {
		PrintError(err.Error())
		return
	}

	result, err := delivery.AnalyzeRegion(region, boundary, cfg)
	if err != nil {
		PrintError(fmt.Sprintf("Error analyzing region: %s", err.Error()))
		notification.SendDiscordErrorNotification(fmt.Sprintf("Regrowth CLI\n\nError analyzing region: %s", err.Error()))
		return
	}

	resultPath, err := CreateResultDirectory(region, boundary)
	if err != nil {
		PrintError(err.Error())
		return
	}

	outputFilePath := fmt.Sprintf("%s/%s_%s", resultPath, region, boundary)

	records := make(map[[2]int]trajectory.Record, len(result.Records))
	coordinates := make(map[[2]int]dataset.Coordinate, len(result.Records))
	for _, located := range result.Records {
		key := [2]int{located.X, located.Y}
		records[key] = located.Record
		coordinates[key] = dataset.Coordinate{Latitude: located.Latitude, Longitude: located.Longitude}
	}

	if err := dataset.ExportRecordsCSV(dataset.BuildRecordRows(records, coordinates), outputFilePath+".csv"); err != nil {
		PrintError(fmt.Sprintf("Error exporting records: %s", err.Error()))
		return
	}

	if err := output.CreateResultGeoJSON(result, outputFilePath); err != nil {
		PrintError(fmt.Sprintf("Error creating resultant geojson: %s", err.Error()))
		return
	}

	if err := output.CreateChangeClassImage(result, outputFilePath+"_change"); err != nil {
		PrintError(fmt.Sprintf("Error creating change-class image: %s", err.Error()))
		return
	}

	if err := output.CreateEpochImage(result, cfg, outputFilePath+"_epoch"); err != nil {
		PrintError(fmt.Sprintf("Error creating epoch image: %s", err.Error()))
		return
	}

	PrintSuccess(fmt.Sprintf("Successful analysis!\nResults located at: %s", resultPath))
	notification.SendDiscordSuccessNotification(fmt.Sprintf("Regrowth CLI\n\nSuccessful analysis!\nResults located at: %s", resultPath))
}
