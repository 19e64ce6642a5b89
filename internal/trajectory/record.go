package trajectory

// Record is the full derived result for one location. It is immutable
// once returned; undefined inputs show up as no-data fields, never as a
// defaulted class.
type Record struct {
	BaselineComposite  Value       `json:"baseline_composite"`
	CurrentComposite   Value       `json:"current_composite"`
	BaselineState      StateClass  `json:"baseline_state"`
	CurrentState       StateClass  `json:"current_state"`
	Slope              Value       `json:"slope"`
	Intercept          Value       `json:"intercept"`
	Trend              TrendClass  `json:"trend"`
	Change             ChangeClass `json:"change"`
	EstablishmentEpoch *int        `json:"establishment_epoch,omitempty"`
	ProjectedYears     Value       `json:"projected_years"`
}

func establishmentQualifies(baseline, current StateClass) bool {
	return (baseline == StateBare || baseline == StateSparse) && current == StateDense
}

// Evaluate runs the full trajectory chain for one location: composites,
// state classification, trend fit, change rule table, and the gated
// epoch scan and projection. The record depends only on the series and
// the shared read-only configuration, so any number of locations can be
// evaluated concurrently without coordination.
func Evaluate(series Series, cfg Config) Record {
	var record Record

	record.BaselineComposite = Composite(series, cfg.BaselineWindow.Start, cfg.BaselineWindow.End, cfg.CompositeMonths)
	record.CurrentComposite = Composite(series, cfg.CurrentWindow.Start, cfg.CurrentWindow.End, cfg.CompositeMonths)
	record.BaselineState = ClassifyState(record.BaselineComposite, cfg)
	record.CurrentState = ClassifyState(record.CurrentComposite, cfg)

	// The fit always spans the full trend window, independent of the
	// baseline and current composite windows.
	fit := FitTrend(series, cfg.TrendWindow.Start, cfg.TrendWindow.End, cfg.CompositeMonths)
	record.Slope = fit.Slope
	record.Intercept = fit.Intercept
	record.Trend = ClassifyTrend(fit.Slope, cfg)

	if record.BaselineState == StateNoData || record.CurrentState == StateNoData || record.Trend == TrendNoData {
		record.Change = ChangeNoData
	} else {
		record.Change = ClassifyChange(record.BaselineState, record.CurrentState, record.Trend)
	}

	if establishmentQualifies(record.BaselineState, record.CurrentState) {
		record.EstablishmentEpoch = ScanEstablishmentEpoch(series, cfg)
	}

	if record.Trend == TrendGaining && record.CurrentState != StateNoData && record.CurrentState < StateDense {
		record.ProjectedYears = ProjectYears(record.CurrentComposite, record.Slope, cfg)
	}

	return record
}
