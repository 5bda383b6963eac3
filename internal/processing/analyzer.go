// Package processing turns input lines into position reports: it parses the
// FEN, replays any trailing moves and queries legal moves through the cache.
package processing

import (
	"context"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"github.com/lgbarn/rpgchess/internal/cache"
	"github.com/lgbarn/rpgchess/internal/chess"
	"github.com/lgbarn/rpgchess/internal/config"
	"github.com/lgbarn/rpgchess/internal/engine"
	"github.com/lgbarn/rpgchess/internal/errors"
	"github.com/lgbarn/rpgchess/internal/matching"
	"github.com/lgbarn/rpgchess/internal/output"
	"github.com/lgbarn/rpgchess/internal/worker"
)

// movesKeyword separates the FEN from the moves to replay on an input line.
const movesKeyword = "moves"

// LineAnalysis holds the results of replaying an input line.
type LineAnalysis struct {
	Final             *engine.State
	Plies             int
	HasFiftyMoveRule  bool
	HasRepetition     bool
	HasUnderpromotion bool
	Positions         []uint64 // position keys for repetition detection
}

// Flags lists the detected features by name.
func (la *LineAnalysis) Flags() []string {
	var flags []string
	if la.HasFiftyMoveRule {
		flags = append(flags, "fifty-move")
	}
	if la.HasRepetition {
		flags = append(flags, "repetition")
	}
	if la.HasUnderpromotion {
		flags = append(flags, "underpromotion")
	}
	return flags
}

// SplitLine separates "FEN [moves m1 m2 ...]" into its parts.
func SplitLine(line string) (fen string, moves []string) {
	fields := strings.Fields(line)
	for i, f := range fields {
		if f == movesKeyword {
			return strings.Join(fields[:i], " "), fields[i+1:]
		}
	}
	return strings.Join(fields, " "), nil
}

// positionKey identifies a position for repetition: placement, side to
// move, castling rights and en passant square. The clocks are ignored.
func positionKey(s *engine.State) uint64 {
	fields := strings.Fields(engine.FormatFEN(s))
	return xxhash.Sum64String(strings.Join(fields[:4], " "))
}

// ReplayLine parses the FEN on line and applies the moves after it.
func ReplayLine(line string, policy engine.MissingKingPolicy) (*LineAnalysis, error) {
	fen, moves := SplitLine(line)
	state, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	state.MissingKing = policy

	analysis := &LineAnalysis{}
	key := positionKey(state)
	analysis.Positions = append(analysis.Positions, key)
	positionCount := map[uint64]int{key: 1}

	for i, text := range moves {
		m, err := chess.ParseMove(text, state.Board.Size())
		if err == nil {
			var next *engine.State
			next, err = engine.ApplyMove(state, m)
			if err == nil {
				state = next
			}
		}
		if err != nil {
			var me *errors.MoveError
			if errors.As(err, &me) {
				me.PlyNum = i + 1
				return nil, me
			}
			return nil, &errors.MoveError{Err: err, PlyNum: i + 1, MoveText: text, FEN: engine.FormatFEN(state)}
		}
		analysis.Plies++

		// 50-move rule (100 half-moves)
		if state.HalfmoveClock >= 100 {
			analysis.HasFiftyMoveRule = true
		}
		if m.Promotion != chess.NoPiece && m.Promotion != chess.Queen {
			analysis.HasUnderpromotion = true
		}

		key = positionKey(state)
		analysis.Positions = append(analysis.Positions, key)
		positionCount[key]++
		if positionCount[key] >= 3 {
			analysis.HasRepetition = true
		}
	}

	analysis.Final = state
	return analysis, nil
}

// Analyzer produces reports for work items. It is safe for concurrent use
// when its cache is.
type Analyzer struct {
	engineCfg *config.EngineConfig
	cache     *cache.Cache
	filter    *matching.PositionFilter // nil reports everything
	log       zerolog.Logger
}

// NewAnalyzer creates an analyzer. A nil cache gets an unbounded memo-only
// one.
func NewAnalyzer(cfg *config.EngineConfig, c *cache.Cache, log zerolog.Logger) *Analyzer {
	if c == nil {
		c = cache.NewMemoOnly(0, log)
	}
	return &Analyzer{engineCfg: cfg, cache: c, log: log}
}

// BuildFilter turns filter settings into a position filter, or nil when
// no criteria are set.
func BuildFilter(cfg *config.FilterConfig) (*matching.PositionFilter, error) {
	if !cfg.HasCriteria() {
		return nil, nil
	}
	pf := matching.NewPositionFilter()
	if cfg.Material != "" || cfg.MaterialExact {
		if err := pf.AddMaterialFilter(cfg.Material, cfg.MaterialExact); err != nil {
			return nil, err
		}
	}
	if cfg.Statuses != "" {
		if err := pf.AddStatusFilter(cfg.Statuses); err != nil {
			return nil, err
		}
	}
	pf.SetNegate(cfg.Negate)
	return pf, nil
}

// SetFilter restricts which positions Process marks as matched.
func (a *Analyzer) SetFilter(f *matching.PositionFilter) {
	a.filter = f
}

// Process is a worker.ProcessFunc. Rejected positions always count as
// matched so that their errors are reported.
func (a *Analyzer) Process(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
	report, s, status, err := a.analyze(ctx, item.Index, item.Source, item.Line)
	matched := err != nil || a.filter.Match(s, status)
	return worker.ProcessResult{Index: item.Index, Report: report, Matched: matched, Err: err}
}

// Analyze builds the report for one input line. On error the returned
// report describes the failure.
func (a *Analyzer) Analyze(ctx context.Context, index int, source, line string) (*output.PositionReport, error) {
	report, _, _, err := a.analyze(ctx, index, source, line)
	return report, err
}

func (a *Analyzer) analyze(ctx context.Context, index int, source, line string) (*output.PositionReport, *engine.State, engine.GameStatus, error) {
	fen, _ := SplitLine(line)
	fail := func(err error) (*output.PositionReport, *engine.State, engine.GameStatus, error) {
		a.log.Debug().Err(err).Int("index", index).Str("source", source).Msg("position rejected")
		return output.NewErrorReport(index, source, fen, err), nil, engine.Ongoing, err
	}

	la, err := ReplayLine(line, a.engineCfg.MissingKingPolicy())
	if err != nil {
		return fail(err)
	}
	s := la.Final

	var moves []engine.PieceMoves
	if a.engineCfg.Square != "" {
		from, err := chess.ParseSquare(a.engineCfg.Square, s.Board.Size())
		if err != nil {
			return fail(err)
		}
		if to := a.cache.LegalMoves(s.Board, from, s.ToMove, s.Options()); len(to) > 0 {
			moves = []engine.PieceMoves{{From: from, Piece: s.Board.Get(from), To: to}}
		}
	} else {
		moves = a.cache.AllLegalMoves(s.Board, s.ToMove, s.Options())
	}

	status := engine.Status(s)
	report := output.NewPositionReport(index, source, s, moves, status)
	report.Plies = la.Plies
	report.Flags = la.Flags()

	if depth := a.engineCfg.PerftDepth; depth > 0 {
		nodes, err := engine.PerftContext(ctx, s, depth)
		if err != nil {
			return fail(err)
		}
		report.WithPerft(depth, nodes)
	}

	a.log.Debug().
		Int("index", index).
		Str("fen", report.FEN).
		Int("moves", report.MoveCount).
		Str("status", report.Status).
		Msg("position analysed")
	return report, s, status, nil
}
