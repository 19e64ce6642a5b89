package trajectory

import "time"

// ScanEstablishmentEpoch dates an establishment transition by finding
// the earliest configured epoch whose composite reaches the dense
// threshold. A single crossing is enough to assign the epoch even if a
// later epoch composite falls back below the threshold. Crossings that
// only show up in the unwindowed current composite return nil, a known
// undercount rather than an error.
//
// Callers gate this on the establishment qualifying set: baseline state
// bare or sparse, current state dense.
func ScanEstablishmentEpoch(series Series, cfg Config) *int {
	for _, epoch := range cfg.Epochs {
		start := time.Date(epoch.StartYear, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(epoch.EndYear, time.December, 31, 23, 59, 59, 0, time.UTC)
		composite := Composite(series, start, end, cfg.CompositeMonths)
		if composite.Valid && composite.Float >= cfg.DenseThreshold {
			label := epoch.Label
			return &label
		}
	}
	return nil
}
