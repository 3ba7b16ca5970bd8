package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"fuzzy-go/internal/chart"
	"fuzzy-go/internal/config"
	"fuzzy-go/internal/controller"
	"fuzzy-go/internal/handler"
	"fuzzy-go/internal/metrics"
	"fuzzy-go/pkg/fuzzy"
	"fuzzy-go/pkg/mcp"

	"go.uber.org/zap"
)

func main() {
	var configPath = flag.String("config", "", "Path to app configuration file (.yaml or .toml)")
	var port = flag.Int("port", 0, "Server port, overrides app.port")
	var logLevel = flag.String("log-level", "", "Log level, overrides app.log_level")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Fatal("Failed to load configuration: ", err)
		}
		cfg = loaded
	}
	if *port != 0 {
		cfg.App.Port = *port
	}
	if *logLevel != "" {
		cfg.App.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	level, _ := cfg.App.ZapLevel()
	cfgZap := zap.NewProductionConfig()
	cfgZap.Level.SetLevel(level)
	cfgZap.OutputPaths = cfg.App.LogOutputs
	logger, err := cfgZap.Build()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	defer logger.Sync()

	logger.Info("Configuration loaded successfully", zap.Any("config", cfg))

	registry := fuzzy.NewRegistry(logger)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	renderer, err := chart.NewRenderer(cfg.Chart, m, logger)
	if err != nil {
		logger.Fatal("Failed to initialize chart renderer", zap.Error(err))
	}

	if cfg.Mcp.Enabled {
		mcpServer := mcp.NewFuzzyServer(registry, cfg, logger)
		mcpServer.Start()
	} else {
		logger.Info("MCP server is disabled in the configuration")
	}

	inferenceController := controller.NewInferenceController(registry, renderer, m, cfg.App.StrictRange, logger)
	router := handler.SetupRouter(inferenceController, m, cfg, logger)

	logger.Info("Starting server", zap.Int("port", cfg.App.Port))
	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), router); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
