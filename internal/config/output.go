package config

import (
	"fmt"

	"github.com/lgbarn/pgn-tree-go/internal/errors"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// MaxLineLength is the maximum line length for PGN movetext; 0 keeps
	// the movetext on one line
	MaxLineLength uint

	// Newline separates wrapped movetext lines
	Newline string

	// ShowMoveCursor marks the selected move with " ^"
	ShowMoveCursor bool

	// ShowHeaders writes the tag pairs before the movetext
	ShowHeaders bool

	// JSONFormat enables JSON output instead of PGN
	JSONFormat bool

	// ShowStatus reports check, mate and draw flags for the final position
	ShowStatus bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Newline:     "\n",
		ShowHeaders: true,
	}
}

// Validate checks that the output configuration is usable.
func (o *OutputConfig) Validate() error {
	if o.Newline == "" {
		return fmt.Errorf("newline must not be empty: %w", errors.ErrInvalidConfig)
	}
	return nil
}
