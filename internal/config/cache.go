package config

import (
	"fmt"

	"github.com/lgbarn/rpgchess/internal/errors"
)

// CacheConfig holds settings for the legal-move cache.
type CacheConfig struct {
	// Dir is the on-disk badger directory ("" = no persistent cache)
	Dir string

	// InMemory runs badger without a directory
	InMemory bool

	// MemoCapacity bounds the in-process memo table (0 = unlimited)
	MemoCapacity int
}

// NewCacheConfig creates a CacheConfig with default values.
func NewCacheConfig() *CacheConfig {
	return &CacheConfig{MemoCapacity: 100000}
}

// Persistent reports whether a badger store should be opened.
func (c *CacheConfig) Persistent() bool {
	return c.Dir != "" || c.InMemory
}

// Validate checks the cache settings.
func (c *CacheConfig) Validate() error {
	if c.Dir != "" && c.InMemory {
		return fmt.Errorf("cache directory and in-memory cache are exclusive: %w", errors.ErrInvalidConfig)
	}
	if c.MemoCapacity < 0 {
		return fmt.Errorf("memo capacity %d: %w", c.MemoCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
