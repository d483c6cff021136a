package config

import (
	"fmt"

	"github.com/lgbarn/pgn-tree-go/internal/errors"
)

// DefaultMaxVariationDepth bounds how deeply variations may nest.
const DefaultMaxVariationDepth = 256

// ParseConfig holds settings for reading PGN text.
type ParseConfig struct {
	// MaxVariationDepth is the deepest permitted nesting of ( ... ) groups
	MaxVariationDepth int
}

// NewParseConfig creates a ParseConfig with default values.
func NewParseConfig() *ParseConfig {
	return &ParseConfig{
		MaxVariationDepth: DefaultMaxVariationDepth,
	}
}

// Validate checks that the parse configuration is usable.
func (p *ParseConfig) Validate() error {
	if p.MaxVariationDepth < 1 {
		return fmt.Errorf("max variation depth (%d) must be at least 1: %w",
			p.MaxVariationDepth, errors.ErrInvalidConfig)
	}
	return nil
}
