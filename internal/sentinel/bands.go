package sentinel

import (
	"fmt"

	"github.com/airbusgeo/godal"
)

// Band layout of the harmonized rasters: 1 = near infrared, 2 = red,
// 3 = QA mask where zero marks a usable pixel.
const (
	bandNIR = iota
	bandRed
	bandQA
)

// BandStack holds the full raster read of one harmonized image.
type BandStack struct {
	Width  int
	Height int
	NIR    []float64
	Red    []float64
	QA     []float64
}

// ReadBands reads the three harmonized bands of a dataset into memory.
func ReadBands(dataset *godal.Dataset) (*BandStack, error) {
	structure := dataset.Structure()
	width, height := structure.SizeX, structure.SizeY

	bands := dataset.Bands()
	if len(bands) < 3 {
		return nil, fmt.Errorf("expected 3 bands (nir, red, qa), image has %d", len(bands))
	}

	read := func(index int) ([]float64, error) {
		data := make([]float64, width*height)
		if err := bands[index].Read(0, 0, data, width, height); err != nil {
			return nil, fmt.Errorf("failed to read raster band %d: %v", index+1, err)
		}
		return data, nil
	}

	nir, err := read(bandNIR)
	if err != nil {
		return nil, err
	}
	red, err := read(bandRed)
	if err != nil {
		return nil, err
	}
	qa, err := read(bandQA)
	if err != nil {
		return nil, err
	}

	return &BandStack{Width: width, Height: height, NIR: nir, Red: red, QA: qa}, nil
}

// At returns the reflectance pair and validity flag of one pixel.
func (b *BandStack) At(x, y int) (nir, red float64, valid bool) {
	i := y*b.Width + x
	return b.NIR[i], b.Red[i], b.QA[i] == 0
}
