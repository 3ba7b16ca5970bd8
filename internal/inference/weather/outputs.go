package weather

import "fuzzy-go/internal/inference"

// Condition is a weather condition.
type Condition int

const (
	Panas Condition = iota
	Cerah
	Berawan
	Gerimis
	HujanLebat
)

var conditionLabels = [...]string{
	Panas:      "Panas",
	Cerah:      "Cerah",
	Berawan:    "Berawan",
	Gerimis:    "Gerimis",
	HujanLebat: "Hujan Lebat",
}

func (c Condition) String() string {
	if c < 0 || int(c) >= len(conditionLabels) {
		return "Unknown"
	}
	return conditionLabels[c]
}

// Sugeno singleton output values
const (
	ValuePanas      = 10.0
	ValueCerah      = 30.0
	ValueBerawan    = 50.0
	ValueGerimis    = 70.0
	ValueHujanLebat = 90.0
)

// FallbackCondition is reported when no rule fires.
const FallbackCondition = Berawan

// Outputs is the consequent table, in declaration order.
var Outputs = inference.OutputTable{
	Categories: []inference.Category{
		{Key: "panas", Label: Panas.String(), Value: ValuePanas},
		{Key: "cerah", Label: Cerah.String(), Value: ValueCerah},
		{Key: "berawan", Label: Berawan.String(), Value: ValueBerawan},
		{Key: "gerimis", Label: Gerimis.String(), Value: ValueGerimis},
		{Key: "hujanLebat", Label: HujanLebat.String(), Value: ValueHujanLebat},
	},
	Fallback: int(FallbackCondition),
}
