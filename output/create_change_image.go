package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"github.com/forest-guardian/regrowth/internal/delivery"
	"github.com/forest-guardian/regrowth/internal/properties"
)

// CreateChangeClassImage renders the change-class layer as a PNG with
// the raster dimensions of the analyzed stack. Pixels outside the
// boundary stay transparent; no-data pixels get their own color so they
// never read as "no change".
func CreateChangeClassImage(result *delivery.RegionResult, outputImagePath string) error {
	if !strings.HasSuffix(outputImagePath, ".png") {
		outputImagePath += ".png"
	}

	newImage := image.NewRGBA(image.Rect(0, 0, result.Width, result.Height))
	for _, located := range result.Records {
		if located.X < 0 || located.X >= result.Width || located.Y < 0 || located.Y >= result.Height {
			continue
		}
		mapped := properties.ColorMap[located.Record.Change.String()]
		newImage.Set(located.X, located.Y, color.RGBA{R: mapped.R, G: mapped.G, B: mapped.B, A: 255})
	}

	outputFile, err := os.Create(outputImagePath)
	if err != nil {
		return fmt.Errorf("failed to create PNG file: %v", err)
	}
	defer outputFile.Close()

	if err := png.Encode(outputFile, newImage); err != nil {
		return fmt.Errorf("failed to encode PNG file: %v", err)
	}

	fmt.Println("Change-class image created successfully at", outputImagePath)
	return nil
}
