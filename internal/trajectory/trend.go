package trajectory

import "time"

// TrendFit is an ordinary least squares fit of index against time.
// Slope units are index per year.
type TrendFit struct {
	Slope     Value `json:"slope"`
	Intercept Value `json:"intercept"`
}

// yearFraction converts a timestamp to a continuous year coordinate so
// fitted slopes come out in index units per year.
func yearFraction(t time.Time) float64 {
	return float64(t.Year()) + float64(t.YearDay()-1)/365.25
}

// FitTrend fits index against time over every valid observation in the
// window and month filter. Observations sharing a timestamp stay in as
// independent points. Fewer than two distinct times is no-data.
func FitTrend(series Series, start, end time.Time, months []time.Month) TrendFit {
	var xs, ys []float64
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
		xs = append(xs, yearFraction(obs.Date))
		ys = append(ys, index.Float)
	}
	if len(xs) < 2 {
		return TrendFit{}
	}

	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var sxx, sxy float64
	for i := range xs {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
	}
	if sxx == 0 {
		// all observations share one timestamp
		return TrendFit{}
	}

	slope := sxy / sxx
	return TrendFit{
		Slope:     SomeValue(slope),
		Intercept: SomeValue(meanY - slope*meanX),
	}
}

type TrendClass int

const (
	TrendNoData TrendClass = iota
	TrendLosing
	TrendStable
	TrendGaining
)

func (t TrendClass) String() string {
	switch t {
	case TrendLosing:
		return "losing"
	case TrendStable:
		return "stable"
	case TrendGaining:
		return "gaining"
	default:
		return "no_data"
	}
}

// ClassifyTrend maps a fitted slope onto a categorical trend using the
// configured symmetric thresholds.
func ClassifyTrend(slope Value, cfg Config) TrendClass {
	if !slope.Valid {
		return TrendNoData
	}
	switch {
	case slope.Float > cfg.GainingSlope:
		return TrendGaining
	case slope.Float < cfg.LosingSlope:
		return TrendLosing
	default:
		return TrendStable
	}
}
