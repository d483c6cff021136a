package config

import "io"

// DuplicateConfig holds settings for duplicate game detection.
type DuplicateConfig struct {
	// Suppress drops games whose final position and length were already seen
	Suppress bool

	// DuplicateFile receives the suppressed games when set
	DuplicateFile io.Writer

	// Capacity bounds the number of recorded games, 0 for no bound
	Capacity int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
