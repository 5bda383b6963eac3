package config

import (
	"fmt"

	"github.com/lgbarn/rpgchess/internal/errors"
)

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// JSONLines writes one JSON document per position instead of one array
	JSONLines bool

	// Format selects square notation in text reports
	Format MoveFormat

	// MaxLineLength wraps long destination lists in text reports
	MaxLineLength uint

	// ShowBoard prints a board diagram above each text report
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        Coordinate,
		MaxLineLength: 80,
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength < 20 {
		return fmt.Errorf("line length %d below 20: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	if o.Format != Coordinate && o.Format != RowCol {
		return fmt.Errorf("move format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	return nil
}
