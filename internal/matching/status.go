package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lgbarn/rpgchess/internal/engine"
	"github.com/lgbarn/rpgchess/internal/errors"
)

var statusNames = map[string]engine.GameStatus{
	"ongoing":   engine.Ongoing,
	"check":     engine.Check,
	"checkmate": engine.Checkmate,
	"mate":      engine.Checkmate,
	"stalemate": engine.Stalemate,
}

// StatusMatcher matches positions whose status is in a set.
type StatusMatcher struct {
	statuses map[engine.GameStatus]bool
}

// NewStatusMatcher parses a comma-separated status list such as
// "check,checkmate".
func NewStatusMatcher(list string) (*StatusMatcher, error) {
	sm := &StatusMatcher{statuses: make(map[engine.GameStatus]bool)}
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		status, ok := statusNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown status %q: %w", name, errors.ErrInvalidConfig)
		}
		sm.statuses[status] = true
	}
	if len(sm.statuses) == 0 {
		return nil, fmt.Errorf("empty status list: %w", errors.ErrInvalidConfig)
	}
	return sm, nil
}

// Match implements Matcher.
func (sm *StatusMatcher) Match(_ *engine.State, status engine.GameStatus) bool {
	return sm.statuses[status]
}

// Name implements Matcher.
func (sm *StatusMatcher) Name() string {
	names := make([]string, 0, len(sm.statuses))
	for status := range sm.statuses {
		names = append(names, status.String())
	}
	sort.Strings(names)
	return "status=" + strings.Join(names, ",")
}
