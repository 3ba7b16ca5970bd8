package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"fuzzy-go/internal/chart"
	"fuzzy-go/internal/config"
	"fuzzy-go/internal/inference"
	"fuzzy-go/internal/inference/temperature"
	"fuzzy-go/internal/inference/weather"
	"fuzzy-go/internal/membership"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

type FuzzyServer struct {
	server   *mcp.Server
	registry *inference.EngineRegistry
	config   *config.Config
	logger   *zap.Logger
	handler  *mcp.StreamableHTTPHandler
}

type ClassifyTemperatureParams struct {
	Temperature float64 `json:"temperature" jsonschema:"room temperature in degrees Celsius, operating range 10 to 40"`
}

type ClassifyWeatherParams struct {
	Temperature float64 `json:"temperature" jsonschema:"air temperature in degrees Celsius, operating range 10 to 40"`
	Humidity    float64 `json:"humidity" jsonschema:"relative humidity in percent, operating range 0 to 100"`
}

type SampleMembershipParams struct {
	Variable string   `json:"variable" jsonschema:"linguistic variable to sample: temperature or humidity"`
	Start    *float64 `json:"start,omitempty" jsonschema:"first x value, defaults to the lower bound of the operating range"`
	End      *float64 `json:"end,omitempty" jsonschema:"last x value, defaults to the upper bound of the operating range"`
	Step     *float64 `json:"step,omitempty" jsonschema:"distance between samples, defaults to 0.5"`
}

func NewFuzzyServer(registry *inference.EngineRegistry, cfg *config.Config, logger *zap.Logger) *FuzzyServer {
	server := &FuzzyServer{
		registry: registry,
		config:   cfg,
		logger:   logger,
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "FuzzyInference",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "classifyTemperature",
		Description: "Classify a room temperature into Dingin, Sejuk, Normal, Panas or Sangat Panas. Returns the winning condition, its degree, the crisp output and every set membership",
	}, server.handleClassifyTemperature)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "classifyWeather",
		Description: "Classify a temperature and humidity pair into Panas, Cerah, Berawan, Gerimis or Hujan Lebat using the 11-rule weather base",
	}, server.handleClassifyWeather)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "sampleMembership",
		Description: "Sample the membership curves of a linguistic variable over a range. Returns one record per x with the degree of every set",
	}, server.handleSampleMembership)

	server.handler = mcp.NewStreamableHTTPHandler(func(req *http.Request) *mcp.Server {
		return mcpServer
	}, nil)

	server.server = mcpServer
	return server
}

// Start serves the MCP transport on its own listener.
func (s *FuzzyServer) Start() {
	go func() {
		address := s.config.Mcp.GetAddress()
		s.logger.Info("MCP Server going to listen", zap.String("address", address))
		if err := http.ListenAndServe(address, s.handler); err != nil {
			s.logger.Error("MCP Server failed", zap.Error(err))
		}
	}()
}

func (s *FuzzyServer) handleClassifyTemperature(ctx context.Context, req *mcp.CallToolRequest, args ClassifyTemperatureParams) (*mcp.CallToolResult, any, error) {
	s.logger.Info("Handling classifyTemperature request", zap.Float64("temperature", args.Temperature))

	inputs := map[string]float64{membership.Temperature.Name: args.Temperature}
	return s.classify(ctx, temperature.EngineName, inputs)
}

func (s *FuzzyServer) handleClassifyWeather(ctx context.Context, req *mcp.CallToolRequest, args ClassifyWeatherParams) (*mcp.CallToolResult, any, error) {
	s.logger.Info("Handling classifyWeather request",
		zap.Float64("temperature", args.Temperature),
		zap.Float64("humidity", args.Humidity))

	inputs := map[string]float64{
		membership.Temperature.Name: args.Temperature,
		membership.Humidity.Name:    args.Humidity,
	}
	return s.classify(ctx, weather.EngineName, inputs)
}

func (s *FuzzyServer) classify(ctx context.Context, engine string, inputs map[string]float64) (*mcp.CallToolResult, any, error) {
	result, err := s.registry.Classify(ctx, engine, inputs)
	if err != nil {
		s.logger.Error("Classification failed", zap.String("engine", engine), zap.Error(err))
		return errorResult(fmt.Sprintf("Classification failed: %v", err)), nil, nil
	}
	return jsonResult(result)
}

func (s *FuzzyServer) handleSampleMembership(ctx context.Context, req *mcp.CallToolRequest, args SampleMembershipParams) (*mcp.CallToolResult, any, error) {
	s.logger.Info("Handling sampleMembership request", zap.String("variable", args.Variable))

	v, ok := membership.Lookup(args.Variable)
	if !ok {
		return errorResult(fmt.Sprintf("Unknown variable: %s, expected one of %v", args.Variable, membership.Names())), nil, nil
	}

	r := chart.NewRequest(v)
	if args.Start != nil {
		r.Start = *args.Start
	}
	if args.End != nil {
		r.End = *args.End
	}
	if args.Step != nil {
		r.Step = *args.Step
	}
	samples, err := v.Sample(r.Start, r.End, r.Step)
	if err != nil {
		s.logger.Error("Sampling failed", zap.String("variable", args.Variable), zap.Error(err))
		return errorResult(fmt.Sprintf("Sampling failed: %v", err)), nil, nil
	}
	return jsonResult(samples)
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
