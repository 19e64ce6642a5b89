package dataset

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/forest-guardian/regrowth/internal/trajectory"
)

// RecordRow is the CSV projection of one location's derived record.
// Optional fields marshal empty when the layer is no-data so downstream
// consumers can tell no-data apart from a real zero.
type RecordRow struct {
	X                  int      `csv:"x"`
	Y                  int      `csv:"y"`
	Latitude           float64  `csv:"latitude"`
	Longitude          float64  `csv:"longitude"`
	BaselineState      string   `csv:"baseline_state"`
	CurrentState       string   `csv:"current_state"`
	Trend              string   `csv:"trend"`
	Slope              *float64 `csv:"slope"`
	Intercept          *float64 `csv:"intercept"`
	CurrentComposite   *float64 `csv:"current_composite"`
	ChangeClass        string   `csv:"change_class"`
	EstablishmentEpoch *int     `csv:"establishment_epoch"`
	ProjectedYears     *float64 `csv:"projected_years"`
}

func optionalFloat(v trajectory.Value) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float
	return &f
}

// BuildRecordRows flattens evaluated records into export rows ordered
// by pixel coordinates as they come from the map.
func BuildRecordRows(records map[[2]int]trajectory.Record, coordinates map[[2]int]Coordinate) []RecordRow {
	rows := make([]RecordRow, 0, len(records))
	for key, record := range records {
		coordinate := coordinates[key]
		rows = append(rows, RecordRow{
			X:                  key[0],
			Y:                  key[1],
			Latitude:           coordinate.Latitude,
			Longitude:          coordinate.Longitude,
			BaselineState:      record.BaselineState.String(),
			CurrentState:       record.CurrentState.String(),
			Trend:              record.Trend.String(),
			Slope:              optionalFloat(record.Slope),
			Intercept:          optionalFloat(record.Intercept),
			CurrentComposite:   optionalFloat(record.CurrentComposite),
			ChangeClass:        record.Change.String(),
			EstablishmentEpoch: record.EstablishmentEpoch,
			ProjectedYears:     optionalFloat(record.ProjectedYears),
		})
	}
	return rows
}

// ExportRecordsCSV writes the evaluated grid to a CSV file.
func ExportRecordsCSV(rows []RecordRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("failed to write CSV file: %v", err)
	}
	return nil
}
