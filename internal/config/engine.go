package config

import (
	"fmt"

	"github.com/lgbarn/rpgchess/internal/engine"
	"github.com/lgbarn/rpgchess/internal/errors"
)

// MaxPerftDepth caps -perft; deeper trees take minutes per position.
const MaxPerftDepth = 6

// EngineConfig holds settings passed through to legal-move queries.
type EngineConfig struct {
	// StrictKing discards every move of a side that has no king
	StrictKing bool

	// PerftDepth is the perft depth reported per position (0 = none)
	PerftDepth int

	// Square restricts reports to the piece on this square ("" = all pieces)
	Square string
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{}
}

// MissingKingPolicy maps StrictKing onto the engine policy.
func (e *EngineConfig) MissingKingPolicy() engine.MissingKingPolicy {
	if e.StrictKing {
		return engine.KingAbsentUnsafe
	}
	return engine.KingAbsentSafe
}

// Validate checks the engine settings.
func (e *EngineConfig) Validate() error {
	if e.PerftDepth < 0 || e.PerftDepth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d not in [0,%d]: %w", e.PerftDepth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	return nil
}
