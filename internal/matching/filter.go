package matching

import "github.com/lgbarn/rpgchess/internal/engine"

// PositionFilter combines material and status matching.
type PositionFilter struct {
	criteria *CompositeMatcher
	negate   bool // report positions that do NOT match
}

// NewPositionFilter creates a filter that matches every position.
func NewPositionFilter() *PositionFilter {
	return &PositionFilter{criteria: NewCompositeMatcher(MatchAll)}
}

// AddMaterialFilter adds a material pattern; see NewMaterialMatcher.
func (pf *PositionFilter) AddMaterialFilter(pattern string, exact bool) error {
	mm, err := NewMaterialMatcher(pattern, exact)
	if err != nil {
		return err
	}
	pf.criteria.Add(mm)
	return nil
}

// AddStatusFilter adds a comma-separated status list.
func (pf *PositionFilter) AddStatusFilter(list string) error {
	sm, err := NewStatusMatcher(list)
	if err != nil {
		return err
	}
	pf.criteria.Add(sm)
	return nil
}

// SetNegate inverts the filter.
func (pf *PositionFilter) SetNegate(negate bool) {
	pf.negate = negate
}

// HasCriteria returns true if any filter criteria are set.
func (pf *PositionFilter) HasCriteria() bool {
	return pf.criteria.Len() > 0
}

// Match checks whether a position should be reported. A nil filter
// matches everything.
func (pf *PositionFilter) Match(s *engine.State, status engine.GameStatus) bool {
	if pf == nil || !pf.HasCriteria() {
		return true
	}
	return pf.criteria.Match(s, status) != pf.negate
}

// Name describes the filter.
func (pf *PositionFilter) Name() string {
	if pf.negate {
		return "NOT " + pf.criteria.Name()
	}
	return pf.criteria.Name()
}
