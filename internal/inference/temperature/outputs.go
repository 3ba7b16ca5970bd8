package temperature

import "fuzzy-go/internal/inference"

// Condition is a room thermal condition.
type Condition int

const (
	Dingin Condition = iota
	Sejuk
	Normal
	Panas
	SangatPanas
)

var conditionLabels = [...]string{
	Dingin:      "Dingin",
	Sejuk:       "Sejuk",
	Normal:      "Normal",
	Panas:       "Panas",
	SangatPanas: "Sangat Panas",
}

func (c Condition) String() string {
	if c < 0 || int(c) >= len(conditionLabels) {
		return "Unknown"
	}
	return conditionLabels[c]
}

// Sugeno singleton output values (°C)
const (
	ValueDingin      = 10.0
	ValueSejuk       = 17.5
	ValueNormal      = 25.0
	ValuePanas       = 32.5
	ValueSangatPanas = 40.0
)

// FallbackCondition is reported when no set fires.
const FallbackCondition = Normal

// Outputs is the consequent table, in declaration order.
var Outputs = inference.OutputTable{
	Categories: []inference.Category{
		{Key: "dingin", Label: Dingin.String(), Value: ValueDingin},
		{Key: "sejuk", Label: Sejuk.String(), Value: ValueSejuk},
		{Key: "normal", Label: Normal.String(), Value: ValueNormal},
		{Key: "panas", Label: Panas.String(), Value: ValuePanas},
		{Key: "sangatPanas", Label: SangatPanas.String(), Value: ValueSangatPanas},
	},
	Fallback: int(FallbackCondition),
}
