package inference

import (
	"fuzzy-go/internal/membership"
)

// Degree is a labelled membership or firing degree.
type Degree = membership.Degree

// Result is the outcome of one classification. It is built fresh per call and has
// no identity beyond its inputs.
type Result struct {
	Engine      string             `json:"engine"`
	Inputs      map[string]float64 `json:"inputs"`
	CrispOutput float64            `json:"crispOutput"`
	Condition   string             `json:"condition"`
	Degree      float64            `json:"degree"`
	Memberships []Degree           `json:"memberships"`

	// Per-variable breakdowns, filled by multi-input engines.
	TempMemberships     []Degree `json:"tempMemberships,omitempty"`
	HumidityMemberships []Degree `json:"humidityMemberships,omitempty"`

	// Warnings lists inputs outside their documented operating range.
	Warnings []string `json:"warnings,omitempty"`
}

// NewResult defuzzifies strengths against table and fills the common fields.
func NewResult(engine string, inputs map[string]float64, table OutputTable, strengths []float64) *Result {
	d := table.Defuzzify(strengths)
	return &Result{
		Engine:      engine,
		Inputs:      inputs,
		CrispOutput: d.Crisp,
		Condition:   table.Categories[d.Winner].Label,
		Degree:      d.Degree,
		Memberships: table.Memberships(strengths),
	}
}

// Membership returns the strength reported for the category with the given label.
func (r *Result) Membership(label string) (float64, bool) {
	for _, m := range r.Memberships {
		if m.Label == label {
			return m.Degree, true
		}
	}
	return 0, false
}
