// Package matching selects which analysed positions are reported, by
// material and by game status.
package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/rpgchess/internal/engine"
)

// Matcher is the interface for all position matching implementations.
type Matcher interface {
	// Match returns true if the position matches the matcher's criteria.
	// status is the already computed engine.Status of s.
	Match(s *engine.State, status engine.GameStatus) bool

	// Name returns a descriptive name for this matcher.
	Name() string
}

// MatchMode specifies how multiple matchers are combined.
type MatchMode int

const (
	// MatchAll requires all matchers to match (AND logic).
	MatchAll MatchMode = iota

	// MatchAny requires at least one matcher to match (OR logic).
	MatchAny
)

// CompositeMatcher combines multiple Matchers with AND or OR logic.
type CompositeMatcher struct {
	matchers []Matcher
	mode     MatchMode
}

// NewCompositeMatcher creates a new CompositeMatcher with the given mode and matchers.
func NewCompositeMatcher(mode MatchMode, matchers ...Matcher) *CompositeMatcher {
	return &CompositeMatcher{
		matchers: matchers,
		mode:     mode,
	}
}

// Add appends a matcher.
func (c *CompositeMatcher) Add(m Matcher) {
	c.matchers = append(c.matchers, m)
}

// Len returns the number of matchers.
func (c *CompositeMatcher) Len() int {
	return len(c.matchers)
}

// Match implements Matcher.
func (c *CompositeMatcher) Match(s *engine.State, status engine.GameStatus) bool {
	if len(c.matchers) == 0 {
		// Empty composite: AND mode is vacuously true, OR mode has no conditions
		return c.mode == MatchAll
	}

	for _, m := range c.matchers {
		matched := m.Match(s, status)
		if c.mode == MatchAny && matched {
			return true
		}
		if c.mode == MatchAll && !matched {
			return false
		}
	}
	return c.mode == MatchAll
}

// Name implements Matcher.
func (c *CompositeMatcher) Name() string {
	names := make([]string, len(c.matchers))
	for i, m := range c.matchers {
		names[i] = m.Name()
	}
	op := " AND "
	if c.mode == MatchAny {
		op = " OR "
	}
	return fmt.Sprintf("(%s)", strings.Join(names, op))
}
