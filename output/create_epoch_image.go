package output

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"

	"github.com/forest-guardian/regrowth/internal/delivery"
	"github.com/forest-guardian/regrowth/internal/trajectory"
)

// CreateEpochImage renders the establishment-epoch layer as a PNG.
// Epochs are shaded from dark (earliest) to bright green (latest);
// qualifying pixels without a dated epoch are gray.
func CreateEpochImage(result *delivery.RegionResult, cfg trajectory.Config, outputImagePath string) error {
	if !strings.HasSuffix(outputImagePath, ".png") {
		outputImagePath += ".png"
	}
	if len(cfg.Epochs) == 0 {
		return fmt.Errorf("no epochs configured, nothing to render")
	}

	position := make(map[int]float64, len(cfg.Epochs))
	for i, epoch := range cfg.Epochs {
		if len(cfg.Epochs) == 1 {
			position[epoch.Label] = 1
			continue
		}
		position[epoch.Label] = float64(i) / float64(len(cfg.Epochs)-1)
	}

	dc := gg.NewContext(result.Width, result.Height)
	for _, located := range result.Records {
		if located.Record.EstablishmentEpoch == nil {
			if located.Record.Change == trajectory.ChangeEstablishment {
				// qualifying pixel whose crossing was missed by the
				// epoch windows
				dc.SetRGB255(120, 120, 120)
				dc.SetPixel(located.X, located.Y)
			}
			continue
		}
		t, ok := position[*located.Record.EstablishmentEpoch]
		if !ok {
			continue
		}
		dc.SetRGB(0.1, 0.25+0.65*t, 0.1)
		dc.SetPixel(located.X, located.Y)
	}

	if err := dc.SavePNG(outputImagePath); err != nil {
		return fmt.Errorf("failed to save epoch image: %v", err)
	}

	fmt.Println("Establishment-epoch image created successfully at", outputImagePath)
	return nil
}
