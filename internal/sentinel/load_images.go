package sentinel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/airbusgeo/godal"
	"golang.org/x/sync/errgroup"
)

// LoadImages opens every date-stamped GeoTIFF under dir. The
// harmonization service writes one raster per acquisition following the
// YYYY-MM-DD.tiff convention.
func LoadImages(dir string) (map[time.Time]*godal.Dataset, error) {
	godal.RegisterInternalDrivers()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image folder: %v", err)
	}

	var (
		mu     sync.Mutex
		images = make(map[time.Time]*godal.Dataset)
	)
	var group errgroup.Group
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tiff") {
			continue
		}
		name := entry.Name()
		group.Go(func() error {
			date, err := time.Parse("2006-01-02", strings.TrimSuffix(name, ".tiff"))
			if err != nil {
				return fmt.Errorf("image %s does not follow the YYYY-MM-DD.tiff convention: %v", name, err)
			}
			dataset, err := godal.Open(filepath.Join(dir, name))
			if err != nil {
				return fmt.Errorf("failed to open TIFF file %s: %v", name, err)
			}
			mu.Lock()
			images[date] = dataset
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	if len(images) == 0 {
		return nil, fmt.Errorf("no harmonized images found in %s", dir)
	}
	return images, nil
}

// CloseImages releases every dataset of a loaded stack.
func CloseImages(images map[time.Time]*godal.Dataset) {
	for _, dataset := range images {
		dataset.Close()
	}
}
