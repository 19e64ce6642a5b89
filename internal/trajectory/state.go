package trajectory

// StateClass is the ordinal cover ladder a composite maps onto. The
// ladder is total and disjoint: every valid composite lands in exactly
// one class, and the class never decreases as the composite grows.
type StateClass int

const (
	StateNoData StateClass = iota
	StateBare
	StateSparse
	StateTransitional
	StateDense
)

func (s StateClass) String() string {
	switch s {
	case StateBare:
		return "bare"
	case StateSparse:
		return "sparse"
	case StateTransitional:
		return "transitional"
	case StateDense:
		return "dense"
	default:
		return "no_data"
	}
}

// ClassifyState maps a composite onto the cover ladder using the
// configured thresholds. No-data propagates as no-data.
func ClassifyState(v Value, cfg Config) StateClass {
	if !v.Valid {
		return StateNoData
	}
	switch {
	case v.Float < cfg.SparseThreshold:
		return StateBare
	case v.Float < cfg.TransitionalThreshold:
		return StateSparse
	case v.Float < cfg.DenseThreshold:
		return StateTransitional
	default:
		return StateDense
	}
}
