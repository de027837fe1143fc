package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fcltrace/tracing"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

var (
	// ErrInvalidLogLevel indicates a log_level other than debug, info, warn or error.
	ErrInvalidLogLevel = errors.New("config: invalid log level")

	// ErrInvalidLogFormat indicates a log_format other than text or json.
	ErrInvalidLogFormat = errors.New("config: invalid log format")
)

// Config is the CLI configuration. Fields map 1:1 to the YAML keys.
type Config struct {
	// CrossContTraceType names the tracing.CrossContTraceType to use.
	CrossContTraceType string `yaml:"cross_cont_trace_type"`

	// LogLevel is one of: debug | info | warn | error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is one of: text | json.
	LogFormat string `yaml:"log_format"`
}

// Default returns a Config pre-populated with default values.
func Default() *Config {
	return &Config{
		CrossContTraceType: tracing.DefaultSettings().CrossContTraceType.String(),
		LogLevel:           DefaultLogLevel,
		LogFormat:          DefaultLogFormat,
	}
}

// Load reads, parses and validates the YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	return Parse(data)
}

// Parse parses and validates YAML config data on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	if _, err := c.Settings(); err != nil {
		return fmt.Errorf("config: cross_cont_trace_type: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("config: log_format %q: %w", c.LogFormat, ErrInvalidLogFormat)
	}

	return nil
}

// Settings converts the config into tracing.Settings.
func (c *Config) Settings() (tracing.Settings, error) {
	t, err := tracing.ParseCrossContTraceType(c.CrossContTraceType)
	if err != nil {
		return tracing.Settings{}, err
	}

	return tracing.Settings{CrossContTraceType: t}, nil
}

// Level maps LogLevel to a slog.Level.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("config: log_level %q: %w", c.LogLevel, ErrInvalidLogLevel)
}

// NewLogger builds a slog.Logger writing to w in the configured format and
// level. Call Validate first; invalid values fall back to text at info.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := c.Level()
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
