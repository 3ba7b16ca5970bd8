package inference

import (
	"errors"
	"math"
	"testing"

	"fuzzy-go/internal/membership"
)

func TestInputsWarnsOutsideRange(t *testing.T) {
	vars := []*membership.Variable{membership.Temperature, membership.Humidity}
	values, warnings, err := Inputs(vars, map[string]float64{"temperature": 45, "humidity": 50})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if values[0] != 45 || values[1] != 50 {
		t.Fatalf("Expected values in variable order, got %v", values)
	}
	if len(warnings) != 1 {
		t.Fatalf("Expected one warning, got %v", warnings)
	}
}

func TestInputsRejects(t *testing.T) {
	vars := []*membership.Variable{membership.Temperature}
	tests := []map[string]float64{
		{},
		{"temperature": math.NaN()},
		{"temperature": math.Inf(-1)},
	}
	for _, in := range tests {
		_, _, err := Inputs(vars, in)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("Expected ErrInvalidInput for %v, got %v", in, err)
		}
	}
}

func TestValidateRange(t *testing.T) {
	vars := []*membership.Variable{membership.Humidity}
	if err := ValidateRange(vars, map[string]float64{"humidity": 100}); err != nil {
		t.Fatalf("Expected 100 to be valid, got %v", err)
	}
	err := ValidateRange(vars, map[string]float64{"humidity": -1})
	var inputErr *InputError
	if !errors.As(err, &inputErr) || inputErr.Field != "humidity" {
		t.Fatalf("Expected InputError for humidity, got %v", err)
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{22.34, 22.3},
		{22.36, 22.4},
		{5, 10},
		{41.2, 40},
	}
	for _, tt := range tests {
		if got := Quantize(membership.Temperature, tt.in); got != tt.want {
			t.Fatalf("Expected Quantize(%v) = %v, got %v", tt.in, tt.want, got)
		}
	}
}
