package trajectory

import (
	"sort"
	"time"
)

func monthSelected(month time.Month, months []time.Month) bool {
	if len(months) == 0 {
		return true
	}
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}

// Composite reduces the observations inside [start,end] whose calendar
// month passes the filter to their median index. An empty window is
// no-data. Even counts average the two middle values so the composite is
// reproducible across runs.
func Composite(series Series, start, end time.Time, months []time.Month) Value {
	var values []float64
	for _, obs := range series {
		if obs.Date.Before(start) || obs.Date.After(end) {
			continue
		}
		if !monthSelected(obs.Date.Month(), months) {
			continue
		}
		index := obs.Index()
		if !index.Valid {
			continue
		}
		values = append(values, index.Float)
	}
	if len(values) == 0 {
		return NoData
	}

	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return SomeValue(values[mid])
	}
	return SomeValue((values[mid-1] + values[mid]) / 2)
}
