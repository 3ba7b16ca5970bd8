// Package temperature classifies a room temperature into one of five thermal
// conditions. Each temperature set maps directly onto the condition of the same
// name, so the aggregated strength of a condition is the set's membership degree.
package temperature

import (
	"context"

	"fuzzy-go/internal/inference"
	"fuzzy-go/internal/membership"
)

// EngineName identifies the engine in the registry.
const EngineName = "temperature"

// Engine is the single-input temperature classifier.
type Engine struct{}

// NewEngine creates a new temperature engine
func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Name() string {
	return EngineName
}

func (e *Engine) Variables() []*membership.Variable {
	return []*membership.Variable{membership.Temperature}
}

func (e *Engine) Outputs() inference.OutputTable {
	return Outputs
}

func (e *Engine) Classify(ctx context.Context, inputs map[string]float64) (*inference.Result, error) {
	values, warnings, err := inference.Inputs(e.Variables(), inputs)
	if err != nil {
		return nil, err
	}
	result := e.evaluate(values[0])
	result.Warnings = warnings
	return result, nil
}

// Evaluate classifies a single temperature in degrees Celsius.
func (e *Engine) Evaluate(celsius float64) (*inference.Result, error) {
	return e.Classify(context.Background(), map[string]float64{membership.Temperature.Name: celsius})
}

// Strengths returns the aggregated strength of every condition at celsius.
func Strengths(celsius float64) []float64 {
	// identity mapping: set i feeds condition i
	return membership.Temperature.Values(celsius)
}

func (e *Engine) evaluate(celsius float64) *inference.Result {
	inputs := map[string]float64{membership.Temperature.Name: celsius}
	return inference.NewResult(EngineName, inputs, Outputs, Strengths(celsius))
}
