package membership

import (
	"fmt"
	"sort"
)

// Set is a named linguistic category of a variable.
type Set struct {
	Key   string   `json:"key"`
	Label string   `json:"label"`
	Fn    Function `json:"-"`
}

// Degree pairs a display label with a membership (or aggregated firing) degree.
type Degree struct {
	Label  string  `json:"set"`
	Degree float64 `json:"degree"`
}

// Variable is a crisp input together with its ordered linguistic sets.
// Package-level variables are shared read-only tables and must not be modified.
type Variable struct {
	Name string  `json:"name"`
	Unit string  `json:"unit"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Sets []Set   `json:"sets"`
}

// Degrees evaluates every set at x, in declaration order.
func (v *Variable) Degrees(x float64) []Degree {
	out := make([]Degree, len(v.Sets))
	for i, s := range v.Sets {
		out[i] = Degree{Label: s.Label, Degree: s.Fn.Degree(x)}
	}
	return out
}

// Values evaluates every set at x and returns the raw degrees in declaration order.
func (v *Variable) Values(x float64) []float64 {
	out := make([]float64, len(v.Sets))
	for i, s := range v.Sets {
		out[i] = s.Fn.Degree(x)
	}
	return out
}

// Index returns the position of the set with the given key.
func (v *Variable) Index(key string) (int, bool) {
	for i, s := range v.Sets {
		if s.Key == key {
			return i, true
		}
	}
	return -1, false
}

// Degree evaluates a single set by key.
func (v *Variable) Degree(key string, x float64) (float64, error) {
	i, ok := v.Index(key)
	if !ok {
		return 0, fmt.Errorf("variable %s has no set %q", v.Name, key)
	}
	return v.Sets[i].Fn.Degree(x), nil
}

// InRange reports whether x lies inside the documented operating range.
func (v *Variable) InRange(x float64) bool {
	return x >= v.Min && x <= v.Max
}

// CheckRange returns an InputError when x is outside the operating range.
func (v *Variable) CheckRange(x float64) error {
	if err := CheckFinite(v.Name, x); err != nil {
		return err
	}
	if !v.InRange(x) {
		return &InputError{
			Field:  v.Name,
			Value:  x,
			Reason: fmt.Sprintf("outside operating range [%g, %g]", v.Min, v.Max),
		}
	}
	return nil
}

// Breakpoints returns every distinct slope change of the variable's sets, ascending.
func (v *Variable) Breakpoints() []float64 {
	seen := make(map[float64]bool)
	var out []float64
	for _, s := range v.Sets {
		for _, b := range Breakpoints(s.Fn) {
			if !seen[b] {
				seen[b] = true
				out = append(out, b)
			}
		}
	}
	sort.Float64s(out)
	return out
}

var variables = map[string]*Variable{
	Temperature.Name: Temperature,
	Humidity.Name:    Humidity,
}

// Lookup finds a variable by name.
func Lookup(name string) (*Variable, bool) {
	v, ok := variables[name]
	return v, ok
}

// Names lists the known variable names, sorted.
func Names() []string {
	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
