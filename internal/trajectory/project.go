package trajectory

// ProjectYears extrapolates the years until the current composite would
// reach the dense threshold under the fitted slope. An already-dense
// composite projects to zero. A non-positive slope can never cross the
// threshold and yields no-data instead of a division fault, as does any
// projection at or past the configured horizon, which is reported as
// indeterminate rather than a precise number.
//
// Callers gate this on a gaining trend with the current state below
// dense.
func ProjectYears(current, slope Value, cfg Config) Value {
	if !current.Valid || !slope.Valid {
		return NoData
	}
	if current.Float >= cfg.DenseThreshold {
		return SomeValue(0)
	}
	if slope.Float <= 0 {
		return NoData
	}
	years := (cfg.DenseThreshold - current.Float) / slope.Float
	if years >= float64(cfg.MaxProjectionYears) {
		return NoData
	}
	return SomeValue(years)
}
