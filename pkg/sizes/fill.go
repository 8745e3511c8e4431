package sizes

// Override scales a default size. A nil Override keeps the default, a
// scalar applies one factor to every element and a slice scales elements
// individually.
type Override struct {
	Scalar *float64  `json:"scalar,omitempty" toml:"scalar,omitempty" validate:"omitempty,gte=0"`
	Values []float64 `json:"values,omitempty" toml:"values,omitempty" validate:"omitempty,dive,gte=0"`
}

// Scale returns an override applying f to every element.
func Scale(f float64) *Override { return &Override{Scalar: &f} }

// PerElement returns an override scaling element i by values[i].
func PerElement(values ...float64) *Override { return &Override{Values: values} }

// Fill expands def to n elements, applying o.
//
// A per-element override shorter than n leaves the remaining elements at
// def; a longer one is truncated.
func Fill(o *Override, def float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = def
	}

	switch {
	case o == nil:
	case o.Scalar != nil:
		for i := range out {
			out[i] = *o.Scalar * def
		}
	default:
		for i := 0; i < n && i < len(o.Values); i++ {
			out[i] = o.Values[i] * def
		}
	}
	return out
}
