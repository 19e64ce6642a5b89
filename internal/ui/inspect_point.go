package ui

import (
	"fmt"

	"github.com/forest-guardian/regrowth/internal/delivery"
	"github.com/forest-guardian/regrowth/internal/trajectory"
)

func formatValue(v trajectory.Value) string {
	if !v.Valid {
		return "no-data"
	}
	return fmt.Sprintf("%.4f", v.Float)
}

// InspectPoint handles the UI for looking up the full derived record of
// a single coordinate without recomputing the grid
func InspectPoint(cfg trajectory.Config) {
	region, boundary, err := ReadRegionAndBoundary()
	if err != nil {
		PrintError(err.Error())
		return
	}

	lat, err := ReadFloat("Enter the latitude: ")
	if err != nil {
		PrintError(err.Error())
		return
	}
	lon, err := ReadFloat("Enter the longitude: ")
	if err != nil {
		PrintError(err.Error())
		return
	}

	located, err := delivery.InspectPoint(region, boundary, cfg, lat, lon)
	if err != nil {
		PrintError(fmt.Sprintf("Error inspecting point: %s", err.Error()))
		return
	}

	record := located.Record
	fmt.Printf("\n%sPixel (%d,%d) at %.6f, %.6f%s\n", ColorGreen, located.X, located.Y, located.Latitude, located.Longitude, ColorReset)
	fmt.Printf("%s- change class:        %s%s\n", ColorGreen, record.Change, ColorReset)
	fmt.Printf("%s- baseline state:      %s%s\n", ColorGreen, record.BaselineState, ColorReset)
	fmt.Printf("%s- current state:       %s%s\n", ColorGreen, record.CurrentState, ColorReset)
	fmt.Printf("%s- trend:               %s%s\n", ColorGreen, record.Trend, ColorReset)
	fmt.Printf("%s- slope:               %s%s\n", ColorGreen, formatValue(record.Slope), ColorReset)
	fmt.Printf("%s- intercept:           %s%s\n", ColorGreen, formatValue(record.Intercept), ColorReset)
	fmt.Printf("%s- current composite:   %s%s\n", ColorGreen, formatValue(record.CurrentComposite), ColorReset)
	if record.EstablishmentEpoch != nil {
		fmt.Printf("%s- establishment epoch: %d%s\n", ColorGreen, *record.EstablishmentEpoch, ColorReset)
	} else {
		fmt.Printf("%s- establishment epoch: not applicable%s\n", ColorGreen, ColorReset)
	}
	fmt.Printf("%s- projected years:     %s%s\n", ColorGreen, formatValue(record.ProjectedYears), ColorReset)
}
