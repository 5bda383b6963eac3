package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// BuildValid returns the built Config after validating it.
func (b *ConfigBuilder) BuildValid() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithJSONLines writes one JSON document per position.
func (b *ConfigBuilder) WithJSONLines(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONLines = enabled
	return b
}

// WithMoveFormat sets the square notation of text reports.
func (b *ConfigBuilder) WithMoveFormat(format MoveFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithBoardDiagram enables board diagrams in text reports.
func (b *ConfigBuilder) WithBoardDiagram(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithStrictKing makes kingless sides have no legal moves.
func (b *ConfigBuilder) WithStrictKing(enabled bool) *ConfigBuilder {
	b.cfg.Engine.StrictKing = enabled
	return b
}

// WithPerft sets the perft depth reported per position.
func (b *ConfigBuilder) WithPerft(depth int) *ConfigBuilder {
	b.cfg.Engine.PerftDepth = depth
	return b
}

// WithSquare restricts reports to one source square.
func (b *ConfigBuilder) WithSquare(square string) *ConfigBuilder {
	b.cfg.Engine.Square = square
	return b
}

// WithCacheDir enables the on-disk cache in dir.
func (b *ConfigBuilder) WithCacheDir(dir string) *ConfigBuilder {
	b.cfg.Cache.Dir = dir
	return b
}

// WithInMemoryCache enables the in-memory badger cache.
func (b *ConfigBuilder) WithInMemoryCache(enabled bool) *ConfigBuilder {
	b.cfg.Cache.InMemory = enabled
	return b
}

// WithMemoCapacity bounds the in-process memo table.
func (b *ConfigBuilder) WithMemoCapacity(n int) *ConfigBuilder {
	b.cfg.Cache.MemoCapacity = n
	return b
}

// WithWorkers sets the number of analysis goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Worker.Workers = n
	return b
}

// WithMaterial reports only positions with the given material.
func (b *ConfigBuilder) WithMaterial(pattern string, exact bool) *ConfigBuilder {
	b.cfg.Filter.Material = pattern
	b.cfg.Filter.MaterialExact = exact
	return b
}

// WithStatuses reports only positions with one of the listed statuses.
func (b *ConfigBuilder) WithStatuses(list string) *ConfigBuilder {
	b.cfg.Filter.Statuses = list
	return b
}

// WithNegate inverts the position filter.
func (b *ConfigBuilder) WithNegate(enabled bool) *ConfigBuilder {
	b.cfg.Filter.Negate = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
