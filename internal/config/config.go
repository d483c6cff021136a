// Package config provides configuration for pgn-tree.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/pgn-tree-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game count, 2=running commentary

	// Workers is the number of goroutines parsing games concurrently.
	Workers int

	Output    *OutputConfig
	Parse     *ParseConfig
	Duplicate *DuplicateConfig

	// File handling
	CurrentInputFile string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    1,
		Output:     NewOutputConfig(),
		Parse:      NewParseConfig(),
		Duplicate:  NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput redirects game output.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile redirects diagnostics.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity (%d) must not be negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Parse.Validate()
}
