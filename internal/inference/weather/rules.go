package weather

import (
	"fmt"
	"math"

	"fuzzy-go/internal/membership"
)

// Rule is IF temperature IS Temperature AND humidity IS Humidity THEN Then.
type Rule struct {
	Temperature string
	Humidity    string
	Then        Condition
}

func (r Rule) String() string {
	return fmt.Sprintf("IF temperature IS %s AND humidity IS %s THEN %s",
		setLabel(membership.Temperature, r.Temperature),
		setLabel(membership.Humidity, r.Humidity),
		r.Then)
}

// Rules is the fixed rule base.
var Rules = []Rule{
	{membership.SetSangatPanas, membership.SetKering, Panas},
	{membership.SetPanas, membership.SetKering, Panas},
	{membership.SetSangatPanas, membership.SetSedang, Cerah},
	{membership.SetPanas, membership.SetSedang, Cerah},
	{membership.SetNormal, membership.SetKering, Cerah},
	{membership.SetNormal, membership.SetSedang, Berawan},
	{membership.SetSejuk, membership.SetSedang, Berawan},
	{membership.SetNormal, membership.SetLembab, Berawan},
	{membership.SetSejuk, membership.SetLembab, Gerimis},
	{membership.SetDingin, membership.SetSedang, Gerimis},
	{membership.SetDingin, membership.SetLembab, HujanLebat},
}

// compiledRule holds set indices resolved once at init.
type compiledRule struct {
	temp     int
	humidity int
	then     Condition
}

var compiled = compile(Rules)

func compile(rules []Rule) []compiledRule {
	out := make([]compiledRule, len(rules))
	for i, r := range rules {
		ti, ok := membership.Temperature.Index(r.Temperature)
		if !ok {
			panic(fmt.Sprintf("rule %d: unknown temperature set %q", i+1, r.Temperature))
		}
		hi, ok := membership.Humidity.Index(r.Humidity)
		if !ok {
			panic(fmt.Sprintf("rule %d: unknown humidity set %q", i+1, r.Humidity))
		}
		out[i] = compiledRule{temp: ti, humidity: hi, then: r.Then}
	}
	return out
}

// Aggregate fires every rule with min conjunction and accumulates the firing
// strengths per condition.
//
// Sugeno-additive aggregation: contributions to the same condition are SUMMED,
// not maxed as in classical max-min Mamdani. The sum may exceed 1 and is not
// clamped. Switching to max changes documented outputs.
func Aggregate(tempDegrees, humidityDegrees []float64) []float64 {
	strengths := make([]float64, len(Outputs.Categories))
	for _, r := range compiled {
		strengths[r.then] += math.Min(tempDegrees[r.temp], humidityDegrees[r.humidity])
	}
	return strengths
}

func setLabel(v *membership.Variable, key string) string {
	if i, ok := v.Index(key); ok {
		return v.Sets[i].Label
	}
	return key
}
