package trajectory

// Value is an optional index value. Invalid values stand for no-data and
// are excluded from every composite and fit, never coerced to zero.
type Value struct {
	Float float64 `json:"float"`
	Valid bool    `json:"valid"`
}

func SomeValue(f float64) Value {
	return Value{Float: f, Valid: true}
}

var NoData = Value{}
