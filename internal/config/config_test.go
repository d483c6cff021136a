package config

import (
	"bytes"
	"errors"
	"testing"

	pgnerrors "github.com/lgbarn/pgn-tree-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.MaxLineLength != 0 {
		t.Errorf("MaxLineLength = %d, want 0", cfg.MaxLineLength)
	}
	if cfg.Newline != "\n" {
		t.Errorf("Newline = %q, want %q", cfg.Newline, "\n")
	}
	if cfg.ShowMoveCursor {
		t.Error("ShowMoveCursor should be false by default")
	}
	if !cfg.ShowHeaders {
		t.Error("ShowHeaders should be true by default")
	}
	if cfg.JSONFormat {
		t.Error("JSONFormat should be false by default")
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg := NewParseConfig()
	if cfg.MaxVariationDepth != DefaultMaxVariationDepth {
		t.Errorf("MaxVariationDepth = %d, want %d", cfg.MaxVariationDepth, DefaultMaxVariationDepth)
	}
}

func TestDuplicateConfig_Defaults(t *testing.T) {
	cfg := NewDuplicateConfig()
	if cfg.Suppress {
		t.Error("Suppress should be false by default")
	}
	if cfg.DuplicateFile != nil {
		t.Error("DuplicateFile should be nil by default")
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output streams should default to stdout and stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"no workers", func(c *Config) { c.Workers = 0 }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"empty newline", func(c *Config) { c.Output.Newline = "" }, true},
		{"html newline", func(c *Config) { c.Output.Newline = "<br />" }, false},
		{"zero depth", func(c *Config) { c.Parse.MaxVariationDepth = 0 }, true},
		{"depth of one", func(c *Config) { c.Parse.MaxVariationDepth = 1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, pgnerrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)
	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}

	logBuf := &bytes.Buffer{}
	cfg.SetLogFile(logBuf)
	if cfg.LogFile != logBuf {
		t.Error("SetLogFile did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithMaxLineLength(65).
		WithNewline("<br />").
		WithMoveCursor(true).
		WithHeaders(false).
		WithJSONOutput(true).
		WithStatus(true).
		WithMaxVariationDepth(8).
		WithDuplicateSuppression(true).
		WithWorkers(4).
		WithOutput(buf).
		WithLogFile(buf).
		WithVerbosity(2).
		Build()

	if cfg.Output.MaxLineLength != 65 {
		t.Errorf("MaxLineLength = %d, want 65", cfg.Output.MaxLineLength)
	}
	if cfg.Output.Newline != "<br />" {
		t.Errorf("Newline = %q, want %q", cfg.Output.Newline, "<br />")
	}
	if !cfg.Output.ShowMoveCursor || cfg.Output.ShowHeaders || !cfg.Output.JSONFormat || !cfg.Output.ShowStatus {
		t.Errorf("Output = %+v, want cursor, json and status without headers", *cfg.Output)
	}
	if cfg.Parse.MaxVariationDepth != 8 {
		t.Errorf("MaxVariationDepth = %d, want 8", cfg.Parse.MaxVariationDepth)
	}
	if !cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be true")
	}
	if cfg.Workers != 4 || cfg.Verbosity != 2 {
		t.Errorf("Workers, Verbosity = %d, %d, want 4, 2", cfg.Workers, cfg.Verbosity)
	}
	if cfg.OutputFile != buf || cfg.LogFile != buf {
		t.Error("builder did not set the output streams")
	}
}
