package trajectory

import "time"

// Observation is one cleaned reflectance sample for a location, as
// delivered by the harmonization service. Valid is false when the pixel
// was cloud or shadow masked upstream.
type Observation struct {
	Date  time.Time
	NIR   float64
	Red   float64
	Valid bool
}

// Index computes the normalized difference vegetation index of the
// observation. A masked observation or a zero band sum yields an invalid
// value rather than NaN.
func (o Observation) Index() Value {
	if !o.Valid {
		return NoData
	}
	denominator := o.NIR + o.Red
	if denominator == 0 {
		return NoData
	}
	return SomeValue((o.NIR - o.Red) / denominator)
}

// Series is the ordered observation record of a single location.
type Series []Observation
