// Package fuzzy is the entry point for callers that embed the classifier:
// Sugeno-style fuzzy inference of room thermal condition from temperature, and of
// weather condition from temperature and humidity.
package fuzzy

import (
	"fuzzy-go/internal/inference"
	"fuzzy-go/internal/inference/temperature"
	"fuzzy-go/internal/inference/weather"
	"fuzzy-go/internal/membership"

	"go.uber.org/zap"
)

var (
	temperatureEngine = temperature.NewEngine()
	weatherEngine     = weather.NewEngine()
)

// Result is the outcome of one classification.
type Result = inference.Result

// Sample is one point of a membership curve.
type Sample = membership.Sample

// ErrInvalidInput is matched by every rejected input.
var ErrInvalidInput = inference.ErrInvalidInput

// ClassifyTemperature classifies a room temperature in degrees Celsius.
// Non-finite input fails with ErrInvalidInput; values outside [10,40] saturate
// and are reported in Result.Warnings.
func ClassifyTemperature(celsius float64) (*Result, error) {
	return temperatureEngine.Evaluate(celsius)
}

// ClassifyWeather classifies a temperature (°C) and relative humidity (%) pair.
func ClassifyWeather(celsius, humidity float64) (*Result, error) {
	return weatherEngine.Evaluate(celsius, humidity)
}

// SampleTemperature returns the temperature membership curves from start to end.
func SampleTemperature(start, end, step float64) ([]Sample, error) {
	return membership.Temperature.Sample(start, end, step)
}

// SampleHumidity returns the humidity membership curves from start to end.
func SampleHumidity(start, end, step float64) ([]Sample, error) {
	return membership.Humidity.Sample(start, end, step)
}

// NewRegistry returns a registry holding both engines.
func NewRegistry(logger *zap.Logger) *inference.EngineRegistry {
	registry := inference.NewEngineRegistry(logger)
	registry.Register(temperatureEngine)
	registry.Register(weatherEngine)
	return registry
}
