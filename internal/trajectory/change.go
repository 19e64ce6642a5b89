package trajectory

// ChangeClass is the categorical transition a location went through
// between the baseline and current windows. ChangeNoData marks locations
// where an input layer was undefined, which renderers must keep apart
// from a legitimate ChangeNone.
type ChangeClass int

const (
	ChangeNoData ChangeClass = iota
	ChangeNone
	ChangeLoss
	ChangeThinning
	ChangeEmerging
	ChangeThickening
	ChangeDensification
	ChangeEstablishment
)

func (c ChangeClass) String() string {
	switch c {
	case ChangeNone:
		return "none"
	case ChangeLoss:
		return "loss"
	case ChangeThinning:
		return "thinning"
	case ChangeEmerging:
		return "emerging"
	case ChangeThickening:
		return "thickening"
	case ChangeDensification:
		return "densification"
	case ChangeEstablishment:
		return "establishment"
	default:
		return "no_data"
	}
}

// changeRule is one row of the transition decision table. An empty trend
// list matches any defined trend.
type changeRule struct {
	baseline []StateClass
	current  []StateClass
	trend    []TrendClass
	result   ChangeClass
}

// changeRules is walked in order and the first match wins. Rows 1-5 and
// row 6 cannot both match a triple because their (baseline, current)
// pairs are disjoint under the state partition.
var changeRules = []changeRule{
	{baseline: []StateClass{StateDense}, current: []StateClass{StateSparse, StateBare}, result: ChangeLoss},
	{baseline: []StateClass{StateDense}, current: []StateClass{StateTransitional}, trend: []TrendClass{TrendLosing}, result: ChangeThinning},
	{baseline: []StateClass{StateSparse}, current: []StateClass{StateTransitional}, trend: []TrendClass{TrendGaining}, result: ChangeEmerging},
	{baseline: []StateClass{StateTransitional}, current: []StateClass{StateDense}, trend: []TrendClass{TrendGaining}, result: ChangeThickening},
	{baseline: []StateClass{StateDense}, current: []StateClass{StateDense}, trend: []TrendClass{TrendGaining}, result: ChangeDensification},
	{baseline: []StateClass{StateSparse, StateBare}, current: []StateClass{StateDense}, result: ChangeEstablishment},
}

func containsState(states []StateClass, s StateClass) bool {
	for _, candidate := range states {
		if candidate == s {
			return true
		}
	}
	return false
}

func containsTrend(trends []TrendClass, t TrendClass) bool {
	for _, candidate := range trends {
		if candidate == t {
			return true
		}
	}
	return false
}

func (r changeRule) matches(baseline, current StateClass, trend TrendClass) bool {
	if !containsState(r.baseline, baseline) || !containsState(r.current, current) {
		return false
	}
	return len(r.trend) == 0 || containsTrend(r.trend, trend)
}

// ClassifyChange evaluates the transition table for one defined triple.
// Any no-data axis short-circuits to ChangeNone; Evaluate surfaces that
// case as ChangeNoData on the record so output layers can tell the two
// apart.
func ClassifyChange(baseline, current StateClass, trend TrendClass) ChangeClass {
	if baseline == StateNoData || current == StateNoData || trend == TrendNoData {
		return ChangeNone
	}
	for _, rule := range changeRules {
		if rule.matches(baseline, current, trend) {
			return rule.result
		}
	}
	return ChangeNone
}
