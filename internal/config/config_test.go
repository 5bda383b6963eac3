package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lgbarn/rpgchess/internal/engine"
	rpgerrors "github.com/lgbarn/rpgchess/internal/errors"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Output.JSONFormat {
		t.Error("JSONFormat should be false by default")
	}
	if cfg.Output.Format != Coordinate {
		t.Errorf("Format = %v, want Coordinate", cfg.Output.Format)
	}
	if cfg.Output.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.Output.MaxLineLength)
	}
	if cfg.Engine.StrictKing {
		t.Error("StrictKing should be false by default")
	}
	if cfg.Cache.Persistent() {
		t.Error("persistent cache should be off by default")
	}
	if cfg.Filter.HasCriteria() {
		t.Error("no filter by default")
	}
	if cfg.Worker.BufferSize != 64 {
		t.Errorf("BufferSize = %d, want 64", cfg.Worker.BufferSize)
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("default streams should be set")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestConfigBuilder(t *testing.T) {
	var buf, logBuf bytes.Buffer
	cfg := NewConfigBuilder().
		WithJSONOutput(true).
		WithJSONLines(true).
		WithMoveFormat(RowCol).
		WithMaxLineLength(100).
		WithBoardDiagram(true).
		WithStrictKing(true).
		WithPerft(3).
		WithSquare("e2").
		WithCacheDir("/tmp/cache").
		WithMemoCapacity(10).
		WithWorkers(4).
		WithMaterial("KQ:k", true).
		WithStatuses("checkmate").
		WithNegate(true).
		WithOutput(&buf).
		WithLogFile(&logBuf).
		WithVerbosity(2).
		Build()

	if !cfg.Output.JSONFormat || !cfg.Output.JSONLines || cfg.Output.Format != RowCol || cfg.Output.MaxLineLength != 100 || !cfg.Output.ShowBoard {
		t.Errorf("output settings not applied: %+v", cfg.Output)
	}
	if !cfg.Engine.StrictKing || cfg.Engine.PerftDepth != 3 || cfg.Engine.Square != "e2" {
		t.Errorf("engine settings not applied: %+v", cfg.Engine)
	}
	if cfg.Cache.Dir != "/tmp/cache" || cfg.Cache.MemoCapacity != 10 || !cfg.Cache.Persistent() {
		t.Errorf("cache settings not applied: %+v", cfg.Cache)
	}
	if cfg.Worker.Workers != 4 || cfg.Worker.EffectiveWorkers() != 4 {
		t.Errorf("worker settings not applied: %+v", cfg.Worker)
	}
	if !cfg.Filter.HasCriteria() || cfg.Filter.Material != "KQ:k" || !cfg.Filter.MaterialExact || cfg.Filter.Statuses != "checkmate" || !cfg.Filter.Negate {
		t.Errorf("filter settings not applied: %+v", cfg.Filter)
	}
	if cfg.OutputFile != &buf || cfg.LogFile != &logBuf || cfg.Verbosity != 2 {
		t.Error("streams or verbosity not applied")
	}
	if cfg.Engine.MissingKingPolicy() != engine.KingAbsentUnsafe {
		t.Error("StrictKing should map to KingAbsentUnsafe")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		builder *ConfigBuilder
	}{
		{"verbosity too high", NewConfigBuilder().WithVerbosity(3)},
		{"negative perft", NewConfigBuilder().WithPerft(-1)},
		{"perft too deep", NewConfigBuilder().WithPerft(MaxPerftDepth + 1)},
		{"short lines", NewConfigBuilder().WithMaxLineLength(5)},
		{"bad move format", NewConfigBuilder().WithMoveFormat(MoveFormat(9))},
		{"dir and memory", NewConfigBuilder().WithCacheDir("x").WithInMemoryCache(true)},
		{"negative memo", NewConfigBuilder().WithMemoCapacity(-1)},
		{"negative workers", NewConfigBuilder().WithWorkers(-2)},
		{"nil output", NewConfigBuilder().WithOutput(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.BuildValid()
			if !errors.Is(err, rpgerrors.ErrInvalidConfig) {
				t.Errorf("BuildValid() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestWorkerConfig_EffectiveWorkers(t *testing.T) {
	w := NewWorkerConfig()
	if w.EffectiveWorkers() < 1 {
		t.Errorf("EffectiveWorkers() = %d with Workers=0", w.EffectiveWorkers())
	}
	w.BufferSize = 0
	if err := w.Validate(); !errors.Is(err, rpgerrors.ErrInvalidConfig) {
		t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
	}
}

func TestParseMoveFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    MoveFormat
		wantErr bool
	}{
		{"coord", Coordinate, false},
		{"", Coordinate, false},
		{"rowcol", RowCol, false},
		{"san", Coordinate, true},
	}
	for _, tt := range tests {
		got, err := ParseMoveFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMoveFormat(%q) = %v, %v", tt.in, got, err)
		}
		if err == nil && got.String() != map[MoveFormat]string{Coordinate: "coord", RowCol: "rowcol"}[got] {
			t.Errorf("String() = %q", got.String())
		}
	}
}

func TestEngineConfig_MissingKingPolicy(t *testing.T) {
	e := NewEngineConfig()
	if e.MissingKingPolicy() != engine.KingAbsentSafe {
		t.Error("default policy should be KingAbsentSafe")
	}
}
