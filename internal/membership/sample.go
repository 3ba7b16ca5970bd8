package membership

import (
	"encoding/json"
	"fmt"
	"math"
)

// MaxSamples bounds the number of points a single Sample call may produce.
const MaxSamples = 100000

// Sample is one point of a membership curve: x plus the degree of every set of the
// variable, aligned with Variable.Sets.
type Sample struct {
	X       float64
	Degrees []float64

	variable *Variable
}

// Degree returns the degree of the set with the given key at this point.
func (s Sample) Degree(key string) (float64, bool) {
	if s.variable == nil {
		return 0, false
	}
	i, ok := s.variable.Index(key)
	if !ok {
		return 0, false
	}
	return s.Degrees[i], true
}

// Record returns the point as a flat map keyed by variable name and set keys,
// e.g. {"temperature": 17.5, "dingin": 0.5, "sejuk": 0.5, ...}.
func (s Sample) Record() map[string]float64 {
	name := "x"
	record := make(map[string]float64, len(s.Degrees)+1)
	if s.variable != nil {
		name = s.variable.Name
		for i, set := range s.variable.Sets {
			record[set.Key] = s.Degrees[i]
		}
	}
	record[name] = s.X
	return record
}

func (s Sample) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Record())
}

// Sample evaluates every set from start to end inclusive, stepping by step.
// x is accumulated by repeated addition, so for steps that are not exactly
// representable the last point may fall short of end.
func (v *Variable) Sample(start, end, step float64) ([]Sample, error) {
	if err := CheckFinite("start", start); err != nil {
		return nil, err
	}
	if err := CheckFinite("end", end); err != nil {
		return nil, err
	}
	if err := CheckFinite("step", step); err != nil {
		return nil, err
	}
	if step <= 0 {
		return nil, &InputError{Field: "step", Value: step, Reason: "must be positive"}
	}
	if start > end {
		return nil, &InputError{Field: "start", Value: start, Reason: fmt.Sprintf("greater than end %v", end)}
	}
	n := math.Floor((end-start)/step) + 1
	if n > MaxSamples {
		return nil, &InputError{Field: "step", Value: step, Reason: fmt.Sprintf("would produce %.0f points, limit is %d", n, MaxSamples)}
	}

	samples := make([]Sample, 0, int(n)+1)
	for x := start; x <= end; {
		samples = append(samples, Sample{X: x, Degrees: v.Values(x), variable: v})
		next := x + step
		if next == x {
			// step is below the precision of x
			break
		}
		x = next
	}
	return samples, nil
}
