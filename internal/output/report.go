// Package output formats position reports as text or JSON.
package output

import (
	"strings"

	"github.com/lgbarn/rpgchess/internal/chess"
	"github.com/lgbarn/rpgchess/internal/engine"
)

// PositionReport is everything movegen prints about one position.
type PositionReport struct {
	Index      int           `json:"index"`
	Source     string        `json:"source,omitempty"`
	FEN        string        `json:"fen"`
	Size       int           `json:"size,omitempty"`
	ToMove     string        `json:"toMove,omitempty"`
	Status     string        `json:"status,omitempty"`
	InCheck    bool          `json:"inCheck"`
	Plies      int           `json:"plies,omitempty"` // moves replayed after the input FEN
	Flags      []string      `json:"flags,omitempty"`
	Moves      []PieceReport `json:"moves,omitempty"`
	MoveCount  int           `json:"moveCount"`
	PerftDepth int           `json:"perftDepth,omitempty"`
	Perft      uint64        `json:"perft,omitempty"`
	Board      string        `json:"-"`
	Error      string        `json:"error,omitempty"`
}

// PieceReport lists the legal destinations of one piece.
type PieceReport struct {
	Piece     string           `json:"piece"`
	From      string           `json:"from"`
	To        []string         `json:"to"`
	FromRC    chess.Position   `json:"fromRowCol"`
	ToRC      []chess.Position `json:"toRowCol"`
	pieceCode byte
}

// NewPositionReport builds a report for s from the given move lists.
func NewPositionReport(index int, source string, s *engine.State, moves []engine.PieceMoves, status engine.GameStatus) *PositionReport {
	size := s.Board.Size()
	r := &PositionReport{
		Index:   index,
		Source:  source,
		FEN:     engine.FormatFEN(s),
		Size:    size,
		ToMove:  strings.ToLower(s.ToMove.String()),
		Status:  status.String(),
		InCheck: status == engine.Check || status == engine.Checkmate,
		Board:   s.Board.String(),
	}
	for _, pm := range moves {
		pr := PieceReport{
			Piece:     strings.ToLower(pm.Piece.Type.String()),
			From:      chess.SquareName(pm.From, size),
			FromRC:    pm.From,
			ToRC:      pm.To,
			To:        make([]string, len(pm.To)),
			pieceCode: pm.Piece.Letter(),
		}
		for i, to := range pm.To {
			pr.To[i] = chess.SquareName(to, size)
		}
		r.Moves = append(r.Moves, pr)
		r.MoveCount += len(pm.To)
	}
	return r
}

// NewErrorReport records a position that could not be analysed.
func NewErrorReport(index int, source, fen string, err error) *PositionReport {
	return &PositionReport{Index: index, Source: source, FEN: fen, Error: err.Error()}
}

// WithPerft attaches a perft count.
func (r *PositionReport) WithPerft(depth int, nodes uint64) *PositionReport {
	r.PerftDepth = depth
	r.Perft = nodes
	return r
}

// Failed reports whether the report carries an error.
func (r *PositionReport) Failed() bool {
	return r.Error != ""
}
