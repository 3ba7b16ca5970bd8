// Package weather classifies a temperature and humidity pair into one of five
// weather conditions with an 11-rule base.
package weather

import (
	"context"

	"fuzzy-go/internal/inference"
	"fuzzy-go/internal/membership"
)

// EngineName identifies the engine in the registry.
const EngineName = "weather"

// Engine is the two-input weather classifier.
type Engine struct{}

// NewEngine creates a new weather engine
func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Name() string {
	return EngineName
}

func (e *Engine) Variables() []*membership.Variable {
	return []*membership.Variable{membership.Temperature, membership.Humidity}
}

func (e *Engine) Outputs() inference.OutputTable {
	return Outputs
}

func (e *Engine) RuleStrings() []string {
	out := make([]string, len(Rules))
	for i, r := range Rules {
		out[i] = r.String()
	}
	return out
}

func (e *Engine) Classify(ctx context.Context, inputs map[string]float64) (*inference.Result, error) {
	values, warnings, err := inference.Inputs(e.Variables(), inputs)
	if err != nil {
		return nil, err
	}
	result := e.evaluate(values[0], values[1])
	result.Warnings = warnings
	return result, nil
}

// Evaluate classifies a temperature (°C) and relative humidity (%) pair.
func (e *Engine) Evaluate(celsius, humidity float64) (*inference.Result, error) {
	return e.Classify(context.Background(), map[string]float64{
		membership.Temperature.Name: celsius,
		membership.Humidity.Name:    humidity,
	})
}

func (e *Engine) evaluate(celsius, humidity float64) *inference.Result {
	tempDegrees := membership.Temperature.Values(celsius)
	humidityDegrees := membership.Humidity.Values(humidity)

	inputs := map[string]float64{
		membership.Temperature.Name: celsius,
		membership.Humidity.Name:    humidity,
	}
	result := inference.NewResult(EngineName, inputs, Outputs, Aggregate(tempDegrees, humidityDegrees))
	result.TempMemberships = membership.Temperature.Degrees(celsius)
	result.HumidityMemberships = membership.Humidity.Degrees(humidity)
	return result
}
