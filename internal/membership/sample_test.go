package membership

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestSampleTemperatureHalfStep(t *testing.T) {
	samples, err := Temperature.Sample(10, 40, 0.5)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if len(samples) != 61 {
		t.Fatalf("Expected 61 samples, got %d", len(samples))
	}
	if samples[0].X != 10 {
		t.Fatalf("Expected first x 10, got %v", samples[0].X)
	}
	if samples[60].X != 40 {
		t.Fatalf("Expected last x 40, got %v", samples[60].X)
	}

	// x = 17.5 is the 16th point
	mid := samples[15]
	if mid.X != 17.5 {
		t.Fatalf("Expected x 17.5, got %v", mid.X)
	}
	if d, _ := mid.Degree(SetDingin); d != 0.5 {
		t.Fatalf("Expected dingin 0.5, got %v", d)
	}
	if d, _ := mid.Degree(SetSejuk); d != 0.5 {
		t.Fatalf("Expected sejuk 0.5, got %v", d)
	}
}

func TestSampleHumidity(t *testing.T) {
	samples, err := Humidity.Sample(0, 100, 1)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if len(samples) != 101 {
		t.Fatalf("Expected 101 samples, got %d", len(samples))
	}
	if len(samples[0].Degrees) != 3 {
		t.Fatalf("Expected 3 degrees per sample, got %d", len(samples[0].Degrees))
	}
}

func TestSampleIsRecomputed(t *testing.T) {
	a, err := Temperature.Sample(10, 40, 0.1)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	b, err := Temperature.Sample(10, 40, 0.1)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("Expected equal lengths, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i].X != b[i].X {
			t.Fatalf("Expected identical x at %d, got %v and %v", i, a[i].X, b[i].X)
		}
		for j := range a[i].Degrees {
			if a[i].Degrees[j] != b[i].Degrees[j] {
				t.Fatalf("Expected identical degrees at %d", i)
			}
		}
	}
	a[0].Degrees[0] = 42
	if b[0].Degrees[0] == 42 {
		t.Fatalf("Expected samples not to share storage")
	}
}

func TestSampleSinglePoint(t *testing.T) {
	samples, err := Temperature.Sample(25, 25, 1)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if len(samples) != 1 || samples[0].X != 25 {
		t.Fatalf("Expected a single point at 25, got %v", samples)
	}
}

func TestSampleRejectsBadArguments(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step float64
	}{
		{"zero step", 10, 40, 0},
		{"negative step", 10, 40, -1},
		{"reversed", 40, 10, 1},
		{"nan start", math.NaN(), 40, 1},
		{"inf end", 10, math.Inf(1), 1},
		{"nan step", 10, 40, math.NaN()},
		{"too many points", 0, 100, 1e-6},
	}
	for _, tt := range tests {
		_, err := Temperature.Sample(tt.start, tt.end, tt.step)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tt.name, err)
		}
	}
}

func TestSampleJSON(t *testing.T) {
	samples, err := Temperature.Sample(17.5, 17.5, 1)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	raw, err := json.Marshal(samples[0])
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var record map[string]float64
	if err := json.Unmarshal(raw, &record); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if record["temperature"] != 17.5 {
		t.Fatalf("Expected temperature 17.5, got %v", record["temperature"])
	}
	if record["sejuk"] != 0.5 || record["sangatPanas"] != 0 {
		t.Fatalf("Unexpected record %v", record)
	}
	if len(record) != 6 {
		t.Fatalf("Expected 6 keys, got %d", len(record))
	}
}
