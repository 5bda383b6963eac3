package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/rpgchess/internal/errors"
)

// WorkerConfig holds settings for parallel position analysis.
type WorkerConfig struct {
	// Workers is the number of analysis goroutines (0 = one per CPU)
	Workers int

	// BufferSize is the capacity of the work and result channels
	BufferSize int
}

// NewWorkerConfig creates a WorkerConfig with default values.
func NewWorkerConfig() *WorkerConfig {
	return &WorkerConfig{BufferSize: 64}
}

// EffectiveWorkers resolves Workers=0 to the CPU count.
func (w *WorkerConfig) EffectiveWorkers() int {
	if w.Workers == 0 {
		return runtime.NumCPU()
	}
	return w.Workers
}

// Validate checks the worker settings.
func (w *WorkerConfig) Validate() error {
	if w.Workers < 0 {
		return fmt.Errorf("workers %d: %w", w.Workers, errors.ErrInvalidConfig)
	}
	if w.BufferSize < 1 {
		return fmt.Errorf("buffer size %d: %w", w.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
