package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Helper to create a temp config file.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

// validConfigYAML is a minimal valid configuration.
const validConfigYAML = `
pipeline:
  raw_dir: "./raw"
  processed_dir: "./processed"
  splits:
    - train
    - holdout
logging:
  level: "debug"
  format: "json"
`

func TestLoadConfig_Valid(t *testing.T) {
	path := createTempConfigFile(t, validConfigYAML)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Pipeline.RawDir != "./raw" {
		t.Errorf("RawDir = %q, want ./raw", cfg.Pipeline.RawDir)
	}

	if len(cfg.Pipeline.Splits) != 2 || cfg.Pipeline.Splits[1] != "holdout" {
		t.Errorf("Splits = %v, want [train holdout]", cfg.Pipeline.Splits)
	}

	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want debug/json", cfg.Logging)
	}
}

func TestLoadConfig_OmittedFieldsKeepDefaults(t *testing.T) {
	path := createTempConfigFile(t, "pipeline:\n  raw_dir: \"./raw\"\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Pipeline.ProcessedDir != "data/processed" {
		t.Errorf("ProcessedDir = %q, want data/processed", cfg.Pipeline.ProcessedDir)
	}

	if len(cfg.Pipeline.Splits) != 3 {
		t.Errorf("Splits = %v, want the three default splits", cfg.Pipeline.Splits)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"missing raw dir", func(c *Config) { c.Pipeline.RawDir = "" }, ErrMissingRawDir},
		{"missing processed dir", func(c *Config) { c.Pipeline.ProcessedDir = "" }, ErrMissingProcessedDir},
		{"blank split name", func(c *Config) { c.Pipeline.Splits = []string{"train", "  "} }, ErrEmptySplitName},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, ErrInvalidLogLevel},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, ErrInvalidLogFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_String(t *testing.T) {
	got := Default().String()
	want := "Config{RawDir: data/raw, ProcessedDir: data/processed, Splits: 3}"

	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
