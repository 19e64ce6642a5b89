package trajectory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyChange(t *testing.T) {
	tests := []struct {
		name     string
		baseline StateClass
		current  StateClass
		trend    TrendClass
		expected ChangeClass
	}{
		{"loss dense to bare", StateDense, StateBare, TrendLosing, ChangeLoss},
		{"loss dense to sparse", StateDense, StateSparse, TrendLosing, ChangeLoss},
		{"loss is trend independent", StateDense, StateBare, TrendGaining, ChangeLoss},
		{"thinning", StateDense, StateTransitional, TrendLosing, ChangeThinning},
		{"dense to transitional without losing trend", StateDense, StateTransitional, TrendStable, ChangeNone},
		{"emerging", StateSparse, StateTransitional, TrendGaining, ChangeEmerging},
		{"sparse to transitional without gaining trend", StateSparse, StateTransitional, TrendStable, ChangeNone},
		{"thickening", StateTransitional, StateDense, TrendGaining, ChangeThickening},
		{"densification", StateDense, StateDense, TrendGaining, ChangeDensification},
		{"dense stable is none", StateDense, StateDense, TrendStable, ChangeNone},
		{"establishment from sparse", StateSparse, StateDense, TrendGaining, ChangeEstablishment},
		{"establishment from bare", StateBare, StateDense, TrendStable, ChangeEstablishment},
		{"establishment ignores losing trend", StateBare, StateDense, TrendLosing, ChangeEstablishment},
		{"no transition", StateSparse, StateSparse, TrendStable, ChangeNone},
		{"bare to transitional matches nothing", StateBare, StateTransitional, TrendGaining, ChangeNone},
		{"undefined baseline", StateNoData, StateDense, TrendGaining, ChangeNone},
		{"undefined current", StateDense, StateNoData, TrendGaining, ChangeNone},
		{"undefined trend", StateDense, StateBare, TrendNoData, ChangeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyChange(tt.baseline, tt.current, tt.trend))
		})
	}
}

// Every satisfiable (baseline, current, trend) triple may match at most
// one rule. The first-match walk then cannot hide an ordering bug.
func TestChangeRulesAreExclusive(t *testing.T) {
	states := []StateClass{StateBare, StateSparse, StateTransitional, StateDense}
	trends := []TrendClass{TrendLosing, TrendStable, TrendGaining}

	for _, baseline := range states {
		for _, current := range states {
			for _, trend := range trends {
				matches := 0
				for _, rule := range changeRules {
					if rule.matches(baseline, current, trend) {
						matches++
					}
				}
				assert.LessOrEqual(t, matches, 1,
					"triple (%s, %s, %s) matches %d rules", baseline, current, trend, matches)
			}
		}
	}
}
