package inference

// Category is one Sugeno singleton consequent.
type Category struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// OutputTable is an engine's ordered consequent table.
// Fallback indexes the category reported when no strength is positive.
type OutputTable struct {
	Categories []Category
	Fallback   int
}

// Defuzzified is the crisp outcome of an output table applied to aggregated strengths.
type Defuzzified struct {
	Crisp  float64
	Winner int
	Degree float64
}

// Defuzzify computes the weighted average of the singleton values and picks the
// dominant category. strengths must be aligned with t.Categories.
//
// The dominant category is the first one, in declaration order, whose strength is
// strictly greater than every earlier one; ties keep the earlier category. When
// nothing fires the fallback category is reported with degree 0 and the crisp
// output is 0.
func (t OutputTable) Defuzzify(strengths []float64) Defuzzified {
	weightedSum := 0.0
	sumOfWeights := 0.0
	for i, s := range strengths {
		weightedSum += s * t.Categories[i].Value
		sumOfWeights += s
	}

	out := Defuzzified{Winner: t.Fallback}
	if sumOfWeights > 0 {
		out.Crisp = weightedSum / sumOfWeights
	}

	for i, s := range strengths {
		if s > out.Degree {
			out.Degree = s
			out.Winner = i
		}
	}
	return out
}

// Memberships pairs every category label with its strength.
func (t OutputTable) Memberships(strengths []float64) []Degree {
	out := make([]Degree, len(t.Categories))
	for i, c := range t.Categories {
		out[i] = Degree{Label: c.Label, Degree: strengths[i]}
	}
	return out
}
