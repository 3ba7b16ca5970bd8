package inference

import (
	"context"

	"fuzzy-go/internal/membership"
)

// Engine is the main interface for a fuzzy classifier
type Engine interface {
	// Name returns the unique identifier for this engine
	Name() string

	// Variables returns the crisp inputs the engine reads, in evaluation order
	Variables() []*membership.Variable

	// Outputs returns the engine's singleton consequent table
	Outputs() OutputTable

	// Classify evaluates the named inputs and returns the inference result
	Classify(ctx context.Context, inputs map[string]float64) (*Result, error)
}

// RuleDescriber is implemented by engines that evaluate an explicit rule base.
type RuleDescriber interface {
	RuleStrings() []string
}

// Descriptor summarizes an engine for listing endpoints.
type Descriptor struct {
	Name       string                 `json:"name"`
	Variables  []*membership.Variable `json:"variables"`
	Categories []Category             `json:"categories"`
	Fallback   string                 `json:"fallback"`
	Rules      []string               `json:"rules,omitempty"`
}

// Describe builds the descriptor of an engine.
func Describe(e Engine) Descriptor {
	table := e.Outputs()
	d := Descriptor{
		Name:       e.Name(),
		Variables:  e.Variables(),
		Categories: table.Categories,
		Fallback:   table.Categories[table.Fallback].Label,
	}
	if rd, ok := e.(RuleDescriber); ok {
		d.Rules = rd.RuleStrings()
	}
	return d
}
