package mcp

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"fuzzy-go/internal/config"
	"fuzzy-go/internal/inference"
	"fuzzy-go/pkg/fuzzy"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

func ptr(v float64) *float64 { return &v }

func newTestServer() *FuzzyServer {
	logger := zap.NewNop()
	return NewFuzzyServer(fuzzy.NewRegistry(logger), config.Default(), logger)
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) != 1 {
		t.Fatalf("Expected one content item, got %+v", res)
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("Expected text content, got %T", res.Content[0])
	}
	return text.Text
}

func TestHandleClassifyTemperature(t *testing.T) {
	s := newTestServer()
	res, _, err := s.handleClassifyTemperature(context.Background(), nil, ClassifyTemperatureParams{Temperature: 17.5})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("Expected success, got %s", resultText(t, res))
	}

	var result inference.Result
	if err := json.Unmarshal([]byte(resultText(t, res)), &result); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}
	if result.Condition != "Dingin" || result.Degree != 0.5 || result.CrispOutput != 13.75 {
		t.Fatalf("Expected Dingin/0.5/13.75, got %s/%v/%v", result.Condition, result.Degree, result.CrispOutput)
	}
}

func TestHandleClassifyWeather(t *testing.T) {
	s := newTestServer()
	res, _, err := s.handleClassifyWeather(context.Background(), nil, ClassifyWeatherParams{Temperature: 10, Humidity: 90})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var result inference.Result
	if err := json.Unmarshal([]byte(resultText(t, res)), &result); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}
	if result.Condition != "Hujan Lebat" || result.CrispOutput != 90 {
		t.Fatalf("Expected Hujan Lebat/90, got %s/%v", result.Condition, result.CrispOutput)
	}
}

func TestHandleClassifyInvalid(t *testing.T) {
	s := newTestServer()
	res, _, err := s.handleClassifyTemperature(context.Background(), nil, ClassifyTemperatureParams{Temperature: math.Inf(1)})
	if err != nil {
		t.Fatalf("Expected tool error, not protocol error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("Expected IsError for infinite temperature")
	}
}

func TestHandleSampleMembership(t *testing.T) {
	s := newTestServer()
	res, _, err := s.handleSampleMembership(context.Background(), nil, SampleMembershipParams{Variable: "humidity", Step: ptr(25)})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var samples []map[string]float64
	if err := json.Unmarshal([]byte(resultText(t, res)), &samples); err != nil {
		t.Fatalf("Failed to decode samples: %v", err)
	}
	if len(samples) != 5 {
		t.Fatalf("Expected 5 samples, got %d", len(samples))
	}
	if samples[2]["humidity"] != 50 || samples[2]["sedang"] != 1 {
		t.Fatalf("Expected Sedang peak at 50, got %v", samples[2])
	}

	res, _, _ = s.handleSampleMembership(context.Background(), nil, SampleMembershipParams{Variable: "pressure"})
	if !res.IsError || !strings.Contains(resultText(t, res), "Unknown variable") {
		t.Fatalf("Expected unknown variable error")
	}
}

func TestHandleSampleMembershipOneSidedRange(t *testing.T) {
	s := newTestServer()

	res, _, err := s.handleSampleMembership(context.Background(), nil, SampleMembershipParams{Variable: "temperature", Start: ptr(25), Step: ptr(5)})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("Expected success with only start set, got %s", resultText(t, res))
	}
	var samples []map[string]float64
	if err := json.Unmarshal([]byte(resultText(t, res)), &samples); err != nil {
		t.Fatalf("Failed to decode samples: %v", err)
	}
	if len(samples) != 4 || samples[0]["temperature"] != 25 || samples[3]["temperature"] != 40 {
		t.Fatalf("Expected 25..40 by 5, got %v", samples)
	}

	res, _, _ = s.handleSampleMembership(context.Background(), nil, SampleMembershipParams{Variable: "temperature", End: ptr(20), Step: ptr(5)})
	var lower []map[string]float64
	if err := json.Unmarshal([]byte(resultText(t, res)), &lower); err != nil {
		t.Fatalf("Failed to decode samples: %v", err)
	}
	if len(lower) != 3 || lower[0]["temperature"] != 10 || lower[2]["temperature"] != 20 {
		t.Fatalf("Expected 10..20 by 5, got %v", lower)
	}
}
