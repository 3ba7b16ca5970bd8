package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"
)

type Config struct {
	App     AppConfig     `yaml:"app" toml:"app"`
	Mcp     McpConfig     `yaml:"mcp" toml:"mcp"`
	Chart   ChartConfig   `yaml:"chart" toml:"chart"`
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics"`
}

type AppConfig struct {
	Port       int      `yaml:"port" toml:"port"`
	LogLevel   string   `yaml:"log_level" toml:"log_level"`
	LogOutputs []string `yaml:"log_outputs" toml:"log_outputs"`
	// StrictRange rejects inputs outside the operating ranges instead of saturating
	StrictRange bool `yaml:"strict_range" toml:"strict_range"`
}

type McpConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Host    string `yaml:"host" toml:"host"`
	Port    int    `yaml:"port" toml:"port"`
}

// GetAddress returns the listen address of the MCP server
func (m *McpConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", m.Host, m.Port)
}

type ChartConfig struct {
	// Width and Height are in inches, rendered at 96 dpi
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	CacheSize int     `yaml:"cache_size" toml:"cache_size"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Path    string `yaml:"path" toml:"path"`
}

// Default returns a configuration that runs without any file
func Default() *Config {
	cfg := &Config{
		Mcp:     McpConfig{Enabled: true},
		Metrics: MetricsConfig{Enabled: true},
	}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads a YAML or TOML configuration file, chosen by extension
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := &Config{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Port == 0 {
		c.App.Port = 8080
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if len(c.App.LogOutputs) == 0 {
		c.App.LogOutputs = []string{"stdout"}
	}
	if c.Mcp.Host == "" {
		c.Mcp.Host = "localhost"
	}
	if c.Mcp.Port == 0 {
		c.Mcp.Port = 8081
	}
	if c.Chart.Width == 0 {
		c.Chart.Width = 8
	}
	if c.Chart.Height == 0 {
		c.Chart.Height = 4
	}
	if c.Chart.CacheSize == 0 {
		c.Chart.CacheSize = 64
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

// Validate checks value ranges after defaults are applied
func (c *Config) Validate() error {
	if c.App.Port < 1 || c.App.Port > 65535 {
		return fmt.Errorf("app.port %d out of range", c.App.Port)
	}
	if _, err := c.App.ZapLevel(); err != nil {
		return err
	}
	if c.Mcp.Enabled && (c.Mcp.Port < 1 || c.Mcp.Port > 65535) {
		return fmt.Errorf("mcp.port %d out of range", c.Mcp.Port)
	}
	if c.Mcp.Enabled && c.Mcp.Port == c.App.Port {
		return fmt.Errorf("mcp.port and app.port must differ (both %d)", c.App.Port)
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart size must be positive, got %gx%g", c.Chart.Width, c.Chart.Height)
	}
	if c.Chart.CacheSize < 0 {
		return fmt.Errorf("chart.cache_size must not be negative")
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/', got %q", c.Metrics.Path)
	}
	return nil
}

// ZapLevel parses the configured log level
func (a *AppConfig) ZapLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(a.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("app.log_level: %w", err)
	}
	return level, nil
}
