// Package config provides configuration for the movegen command and the
// layers it drives: engine options, output, caching and the worker pool.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/rpgchess/internal/errors"
)

// MoveFormat selects how squares are printed in text reports.
type MoveFormat int

const (
	Coordinate MoveFormat = iota // Algebraic square names (e2, e4)
	RowCol                       // Engine coordinates ((6,4), (4,4))
)

// String returns the flag spelling of a move format.
func (f MoveFormat) String() string {
	if f == RowCol {
		return "rowcol"
	}
	return "coord"
}

// ParseMoveFormat converts a flag value to a MoveFormat.
func ParseMoveFormat(s string) (MoveFormat, error) {
	switch s {
	case "coord", "":
		return Coordinate, nil
	case "rowcol":
		return RowCol, nil
	}
	return Coordinate, fmt.Errorf("move format %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=errors only, 1=summary, 2=per-position commentary

	Engine *EngineConfig
	Output *OutputConfig
	Cache  *CacheConfig
	Worker *WorkerConfig
	Filter *FilterConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Engine:     NewEngineConfig(),
		Output:     NewOutputConfig(),
		Cache:      NewCacheConfig(),
		Worker:     NewWorkerConfig(),
		Filter:     NewFilterConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every group and returns the first problem found,
// wrapping errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d not in [0,2]: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil {
		return fmt.Errorf("no output stream: %w", errors.ErrInvalidConfig)
	}
	for _, v := range []interface{ Validate() error }{c.Engine, c.Output, c.Cache, c.Worker} {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
