package config

// FilterConfig selects which analysed positions are reported.
type FilterConfig struct {
	// Material is a pattern like "KQ:kr" (white : black)
	Material string

	// MaterialExact requires exactly the material named, not at least it
	MaterialExact bool

	// Statuses is a comma-separated list such as "check,checkmate"
	Statuses string

	// Negate reports positions that do NOT match
	Negate bool
}

// NewFilterConfig creates a FilterConfig that reports every position.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// HasCriteria returns true if any filter is set.
func (f *FilterConfig) HasCriteria() bool {
	return f.Material != "" || f.MaterialExact || f.Statuses != ""
}
