package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/rpgchess/internal/config"
	"github.com/lgbarn/rpgchess/internal/engine"
	"github.com/lgbarn/rpgchess/internal/output"
	"github.com/lgbarn/rpgchess/internal/processing"
	"github.com/lgbarn/rpgchess/internal/worker"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestReadPositions(t *testing.T) {
	input := `# opening positions
` + engine.InitialFEN + `

  ` + kiwipeteFEN + `  
# done
`
	items, err := readPositions(strings.NewReader(input), "test.fen", 5)
	if err != nil {
		t.Fatalf("readPositions() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d; want 2", len(items))
	}

	want := []worker.WorkItem{
		{Index: 5, Source: "test.fen:2", Line: engine.InitialFEN},
		{Index: 6, Source: "test.fen:4", Line: kiwipeteFEN},
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("items[%d] = %+v; want %+v", i, items[i], want[i])
		}
	}
}

func TestCollectInputs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fen")
	b := filepath.Join(dir, "b.fen")
	if err := os.WriteFile(a, []byte(engine.InitialFEN+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("# none\n"+kiwipeteFEN+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		fen     string
		args    []string
		stdin   string
		wantSrc []string
	}{
		{"stdin fallback", "", nil, engine.InitialFEN + "\n", []string{"stdin:1"}},
		{"fen flag only", engine.InitialFEN, nil, "ignored\n", []string{"-fen"}},
		{"files", "", []string{a, b}, "", []string{a + ":1", b + ":2"}},
		{"fen then files", kiwipeteFEN, []string{a}, "", []string{"-fen", a + ":1"}},
		{"missing file skipped", "", []string{filepath.Join(dir, "nope"), a}, "", []string{a + ":1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := collectInputs(tt.fen, tt.args, strings.NewReader(tt.stdin), zerolog.Nop())
			if err != nil {
				t.Fatalf("collectInputs() error = %v", err)
			}
			if len(items) != len(tt.wantSrc) {
				t.Fatalf("items = %d; want %d", len(items), len(tt.wantSrc))
			}
			for i, item := range items {
				if item.Source != tt.wantSrc[i] || item.Index != i {
					t.Errorf("items[%d] = %+v; want source %s index %d", i, item, tt.wantSrc[i], i)
				}
			}
		})
	}
}

func testConfig(buf *bytes.Buffer) *config.Config {
	return config.NewConfigBuilder().
		WithOutput(buf).
		WithWorkers(3).
		Build()
}

func TestProcessItems_Text(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(&buf)
	analyzer := processing.NewAnalyzer(cfg.Engine, nil, zerolog.Nop())

	items := []worker.WorkItem{
		{Index: 0, Source: "a:1", Line: engine.InitialFEN},
		{Index: 1, Source: "a:2", Line: "garbage"},
		{Index: 2, Source: "a:3", Line: kiwipeteFEN},
	}
	stats, err := processItems(context.Background(), cfg, analyzer, items, zerolog.Nop())
	if err != nil {
		t.Fatalf("processItems() error = %v", err)
	}
	if stats.Total != 3 || stats.Failed != 1 || stats.Moves != 68 {
		t.Errorf("stats = %+v; want 3 total, 1 failed, 68 moves", stats)
	}

	out := buf.String()
	first := strings.Index(out, "# 0 a:1")
	second := strings.Index(out, "# 1 a:2")
	third := strings.Index(out, "# 2 a:3")
	if first < 0 || second < first || third < second {
		t.Errorf("reports missing or out of order:\n%s", out)
	}
	if !strings.Contains(out, "Moves: 48\n") {
		t.Error("kiwipete report should list 48 moves")
	}
}

func TestProcessItems_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(&buf)
	cfg.Output.JSONFormat = true
	cfg.Engine.PerftDepth = 2
	analyzer := processing.NewAnalyzer(cfg.Engine, nil, zerolog.Nop())

	items := []worker.WorkItem{
		{Index: 0, Line: engine.InitialFEN},
		{Index: 1, Line: engine.InitialFEN + " moves e2e4"},
	}
	if _, err := processItems(context.Background(), cfg, analyzer, items, zerolog.Nop()); err != nil {
		t.Fatal(err)
	}

	var doc output.JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(doc.Positions) != 2 {
		t.Fatalf("positions = %d; want 2", len(doc.Positions))
	}
	// e2e4 accounts for 600 of the 8902 depth-3 nodes.
	if doc.Positions[0].Perft != 400 || doc.Positions[1].Perft != 600 {
		t.Errorf("perft = %d, %d; want 400, 600", doc.Positions[0].Perft, doc.Positions[1].Perft)
	}
	if doc.Positions[1].ToMove != "black" || doc.Positions[1].Plies != 1 {
		t.Errorf("second position = %+v", doc.Positions[1])
	}
}

func TestProcessItems_Filter(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(&buf)
	analyzer := processing.NewAnalyzer(cfg.Engine, nil, zerolog.Nop())
	filter, err := processing.BuildFilter(&config.FilterConfig{Material: "KRR:k", MaterialExact: true})
	if err != nil {
		t.Fatal(err)
	}
	analyzer.SetFilter(filter)

	items := []worker.WorkItem{
		{Index: 0, Source: "a:1", Line: engine.InitialFEN},
		{Index: 1, Source: "a:2", Line: "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1"},
		{Index: 2, Source: "a:3", Line: "bad"},
	}
	stats, err := processItems(context.Background(), cfg, analyzer, items, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Total != 3 || stats.Skipped != 1 || stats.Failed != 1 {
		t.Errorf("stats = %+v; want 3 total, 1 skipped, 1 failed", stats)
	}
	out := buf.String()
	if strings.Contains(out, "# 0 a:1") || !strings.Contains(out, "# 1 a:2") || !strings.Contains(out, "# 2 a:3") {
		t.Errorf("wrong reports written:\n%s", out)
	}
}

func TestProcessItems_Cancelled(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(&buf)
	analyzer := processing.NewAnalyzer(cfg.Engine, nil, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := processItems(ctx, cfg, analyzer, []worker.WorkItem{{Index: 0, Line: engine.InitialFEN}}, zerolog.Nop())
	if err != context.Canceled {
		t.Errorf("err = %v; want context.Canceled", err)
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.ErrorLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
	}
	for _, tt := range tests {
		log := newLogger(&bytes.Buffer{}, tt.verbosity, false)
		if log.GetLevel() != tt.want {
			t.Errorf("verbosity %d: level = %v; want %v", tt.verbosity, log.GetLevel(), tt.want)
		}
	}

	var buf bytes.Buffer
	logger := newLogger(&buf, 1, false)
	logger.Info().Str("k", "v").Msg("hello")
	if !strings.Contains(buf.String(), `"message":"hello"`) || !strings.Contains(buf.String(), `"k":"v"`) {
		t.Errorf("log line = %q", buf.String())
	}
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		t.Errorf("default flags give invalid config: %v", err)
	}
	if cfg.Output.JSONFormat || cfg.Output.Format != config.Coordinate {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Cache.Persistent() || cfg.Cache.MemoCapacity != 100000 {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d; want 1", cfg.Verbosity)
	}
}
