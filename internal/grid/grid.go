package grid

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/forest-guardian/regrowth/internal/trajectory"
	"github.com/gammazero/workerpool"
	"github.com/schollz/progressbar/v3"
)

// Dataset holds one observation series per raster location, keyed by
// pixel coordinates. Locations never share state, so the grid can be
// partitioned into tiles of any size.
type Dataset map[[2]int]trajectory.Series

var ErrEmptyGrid = errors.New("boundary contains no locations with observations")

// tileSize is the number of locations one worker claims per submission.
const tileSize = 256

// Evaluate classifies every location in the dataset on a worker pool
// sized to the available cores. Each location is a pure function of its
// own series and the shared read-only configuration, so workers need no
// coordination beyond the final merge. Per-location failures surface
// only as no-data fields in that location's record.
func Evaluate(dataset Dataset, cfg trajectory.Config) (map[[2]int]trajectory.Record, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if len(dataset) == 0 {
		return nil, ErrEmptyGrid
	}

	keys := make([][2]int, 0, len(dataset))
	for key := range dataset {
		keys = append(keys, key)
	}

	var (
		mu          sync.Mutex
		results     = make(map[[2]int]trajectory.Record, len(dataset))
		progressBar = progressbar.Default(int64(len(keys)), "Evaluating trajectories")
	)

	wp := workerpool.New(runtime.NumCPU())
	for start := 0; start < len(keys); start += tileSize {
		tile := keys[start:min(start+tileSize, len(keys))]
		wp.Submit(func() {
			tileResults := make(map[[2]int]trajectory.Record, len(tile))
			for _, key := range tile {
				tileResults[key] = trajectory.Evaluate(dataset[key], cfg)
			}

			mu.Lock()
			for key, record := range tileResults {
				results[key] = record
			}
			mu.Unlock()
			progressBar.Add(len(tile))
		})
	}
	wp.StopWait()
	progressBar.Finish()

	return results, nil
}

// EvaluatePoint computes the full derived record for a single location
// without touching the rest of the grid.
func EvaluatePoint(dataset Dataset, key [2]int, cfg trajectory.Config) (trajectory.Record, error) {
	if err := cfg.Validate(); err != nil {
		return trajectory.Record{}, fmt.Errorf("invalid configuration: %w", err)
	}
	series, ok := dataset[key]
	if !ok {
		return trajectory.Record{}, fmt.Errorf("no observations at pixel (%d,%d)", key[0], key[1])
	}
	return trajectory.Evaluate(series, cfg), nil
}
