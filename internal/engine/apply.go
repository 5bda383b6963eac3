package engine

import (
	"github.com/lgbarn/rpgchess/internal/chess"
	"github.com/lgbarn/rpgchess/internal/errors"
)

// ClassifyMove works out what kind of move m is in the given state. It does
// not check legality.
func ClassifyMove(s *State, m chess.Move) chess.MoveClass {
	board := s.Board
	piece := board.Get(m.From)
	size := board.Size()

	switch piece.Type {
	case chess.King:
		if side, ok := CastleSideOf(m.From, m.To); ok {
			if side == chess.Queenside {
				return chess.QueensideCastle
			}
			return chess.KingsideCastle
		}
	case chess.Pawn:
		switch {
		case m.To.Row == chess.PromotionRow(piece.Colour, size):
			return chess.PawnMoveWithPromotion
		case m.From.Col != m.To.Col && board.IsEmpty(m.To) &&
			s.EnPassant != nil && *s.EnPassant == m.To:
			return chess.EnPassantPawnMove
		case abs(m.To.Row-m.From.Row) == 2:
			return chess.PawnDoubleStep
		}
		return chess.PawnMove
	}
	return chess.PieceMove
}

// ApplyMove checks m against the legal moves of the side to move and returns
// the resulting state; s is left untouched.
//
// This is the bookkeeping the engine leaves to its callers: moved flags,
// the castling rook, the en passant victim, promotion (queen unless m names
// another piece), the next en passant target and the clocks.
func ApplyMove(s *State, m chess.Move) (*State, error) {
	piece := s.Board.Get(m.From)
	if piece.IsEmpty() || piece.Colour != s.ToMove {
		return nil, moveError(s, m, "no %s piece on the source square", s.ToMove)
	}
	if !containsPosition(s.LegalMoves(m.From), m.To) {
		return nil, moveError(s, m, "%s cannot reach the destination", piece)
	}

	class := ClassifyMove(s, m)
	if m.Promotion != chess.NoPiece {
		if class != chess.PawnMoveWithPromotion {
			return nil, moveError(s, m, "promotion on a non-promoting move")
		}
		switch m.Promotion {
		case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		default:
			return nil, moveError(s, m, "cannot promote to %s", m.Promotion)
		}
	}
	return applyClassified(s, m, class), nil
}

// applyClassified performs a move already known to be legal.
func applyClassified(s *State, m chess.Move, class chess.MoveClass) *State {
	next := s.Copy()
	board := next.Board
	size := board.Size()
	piece := board.Get(m.From)
	captured := board.Get(m.To)

	board.Remove(m.From)
	placed := piece.Moved()

	switch class {
	case chess.EnPassantPawnMove:
		victimPos := chess.Pos(m.From.Row, m.To.Col)
		if victim := board.Get(victimPos); victim.Is(piece.Colour.Opposite(), chess.Pawn) {
			captured = victim
			board.Remove(victimPos)
		}
	case chess.KingsideCastle, chess.QueensideCastle:
		side, _ := CastleSideOf(m.From, m.To)
		rookFrom := CastlingRookSquare(m.From.Row, side, size)
		rook := board.Get(rookFrom)
		board.Remove(rookFrom)
		board.Set(m.From.Offset(0, side.Direction()), rook.Moved())
	case chess.PawnMoveWithPromotion:
		placed.Type = chess.Queen
		if m.Promotion != chess.NoPiece {
			placed.Type = m.Promotion
		}
	}
	board.Set(m.To, placed)

	next.EnPassant = nil
	if class == chess.PawnDoubleStep {
		ep := m.From.Offset(piece.Colour.Forward(), 0)
		next.EnPassant = &ep
	}

	if piece.Type == chess.Pawn || !captured.IsEmpty() {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if s.ToMove == chess.Black {
		next.MoveNumber++
	}
	next.ToMove = s.ToMove.Opposite()
	return next
}

// ApplyMoves applies a sequence of coordinate-notation moves.
func ApplyMoves(s *State, moves ...string) (*State, error) {
	for i, text := range moves {
		m, err := chess.ParseMove(text, s.Board.Size())
		if err != nil {
			return nil, &errors.MoveError{Err: err, PlyNum: i + 1, MoveText: text, FEN: FormatFEN(s)}
		}
		next, err := ApplyMove(s, m)
		if err != nil {
			var me *errors.MoveError
			if errors.As(err, &me) {
				me.PlyNum = i + 1
			}
			return nil, err
		}
		s = next
	}
	return s, nil
}

func moveError(s *State, m chess.Move, format string, args ...interface{}) error {
	return &errors.MoveError{
		Err:      errors.Wrapf(errors.ErrIllegalMove, format, args...),
		MoveText: m.Notation(s.Board.Size()),
		FEN:      FormatFEN(s),
	}
}

func containsPosition(list []chess.Position, p chess.Position) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}

