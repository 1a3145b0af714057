// Package config provides configuration management for the preprocessing
// pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingRawDir       = errors.New("pipeline.raw_dir is required")
	ErrMissingProcessedDir = errors.New("pipeline.processed_dir is required")
	ErrEmptySplitName      = errors.New("pipeline.splits entries must be non-empty")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat    = errors.New("logging.format must be 'text' or 'json'")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// PipelineConfig contains the per-run settings.
type PipelineConfig struct {
	RawDir        string   `yaml:"raw_dir"`
	ProcessedDir  string   `yaml:"processed_dir"`
	Splits        []string `yaml:"splits"`
	DisableMetros bool     `yaml:"disable_metros"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the production defaults.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			RawDir:       "data/raw",
			ProcessedDir: "data/processed",
			Splits:       []string{"train", "eval", "holdout"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from a YAML file. Omitted fields keep the
// production defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Pipeline.RawDir == "" {
		return ErrMissingRawDir
	}

	if c.Pipeline.ProcessedDir == "" {
		return ErrMissingProcessedDir
	}

	for i, split := range c.Pipeline.Splits {
		if strings.TrimSpace(split) == "" {
			return fmt.Errorf("%w: splits[%d]", ErrEmptySplitName, i)
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return ErrInvalidLogFormat
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{RawDir: %s, ProcessedDir: %s, Splits: %d}",
		c.Pipeline.RawDir,
		c.Pipeline.ProcessedDir,
		len(c.Pipeline.Splits),
	)
}
