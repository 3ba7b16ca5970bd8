package inference

import (
	"fmt"
	"math"

	"fuzzy-go/internal/membership"
)

// ErrInvalidInput is matched (errors.Is) by every rejected input.
var ErrInvalidInput = membership.ErrInvalidInput

// InputError describes a rejected input.
type InputError = membership.InputError

// Inputs resolves the crisp value of every variable from a named input map.
// Non-finite or missing values are rejected; finite values outside a variable's
// operating range are accepted and reported as warnings, since the membership
// functions saturate there.
func Inputs(vars []*membership.Variable, inputs map[string]float64) ([]float64, []string, error) {
	values := make([]float64, len(vars))
	var warnings []string
	for i, v := range vars {
		x, ok := inputs[v.Name]
		if !ok {
			return nil, nil, &InputError{Field: v.Name, Value: math.NaN(), Reason: "missing"}
		}
		if err := membership.CheckFinite(v.Name, x); err != nil {
			return nil, nil, err
		}
		if !v.InRange(x) {
			warnings = append(warnings, fmt.Sprintf("%s %g%s outside operating range [%g, %g]", v.Name, x, v.Unit, v.Min, v.Max))
		}
		values[i] = x
	}
	return values, warnings, nil
}

// ValidateRange rejects any input outside its variable's operating range.
// Callers that prefer hard failure over saturation use it before classifying.
func ValidateRange(vars []*membership.Variable, inputs map[string]float64) error {
	for _, v := range vars {
		x, ok := inputs[v.Name]
		if !ok {
			return &InputError{Field: v.Name, Value: math.NaN(), Reason: "missing"}
		}
		if err := v.CheckRange(x); err != nil {
			return err
		}
	}
	return nil
}

// Quantize rounds x to a tenth within the variable's operating range, the
// resolution of the interactive slider front-end.
func Quantize(v *membership.Variable, x float64) float64 {
	return math.Round(membership.Clamp(x, v.Min, v.Max)*10) / 10
}
