package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithNewline sets the line separator used when wrapping.
func (b *ConfigBuilder) WithNewline(newline string) *ConfigBuilder {
	b.cfg.Output.Newline = newline
	return b
}

// WithMoveCursor marks the selected move in the output.
func (b *ConfigBuilder) WithMoveCursor(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowMoveCursor = enabled
	return b
}

// WithHeaders controls whether tag pairs are written.
func (b *ConfigBuilder) WithHeaders(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowHeaders = enabled
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithStatus enables the final position report.
func (b *ConfigBuilder) WithStatus(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowStatus = enabled
	return b
}

// WithMaxVariationDepth sets the deepest permitted variation nesting.
func (b *ConfigBuilder) WithMaxVariationDepth(depth int) *ConfigBuilder {
	b.cfg.Parse.MaxVariationDepth = depth
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithWorkers sets the number of parsing goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
