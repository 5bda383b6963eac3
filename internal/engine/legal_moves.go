package engine

import "github.com/lgbarn/rpgchess/internal/chess"

// FilterSelfCheck drops every candidate that would leave mover's king
// attacked.
//
// Each candidate is tried on one scratch copy of the board that is mutated
// and restored in place; the caller's board is never written. The move is a
// plain relocation: no promotion, no en passant victim removal and no rook
// hop when castling. If the mover has no king on the scratch board the
// outcome follows opts.MissingKing.
func FilterSelfCheck(from chess.Position, candidates []chess.Position, board *chess.Board, mover chess.Colour, opts Options) []chess.Position {
	if len(candidates) == 0 {
		return nil
	}
	return filterSelfCheck(from, candidates, board.Get(from), board.Copy(), mover, opts)
}

// filterSelfCheck runs the filter on scratch, which must hold the same
// position as the caller's board. scratch is restored before returning.
func filterSelfCheck(from chess.Position, candidates []chess.Position, piece chess.Piece, scratch *chess.Board, mover chess.Colour, opts Options) []chess.Position {
	legal := make([]chess.Position, 0, len(candidates))

	for _, to := range candidates {
		captured := scratch.Get(to)
		scratch.Remove(from)
		scratch.Set(to, piece)

		if !leavesKingAttacked(scratch, mover, opts.MissingKing) {
			legal = append(legal, to)
		}

		scratch.Set(to, captured)
		scratch.Set(from, piece)
	}
	return legal
}

// leavesKingAttacked reports whether mover's king is attacked on board.
func leavesKingAttacked(board *chess.Board, mover chess.Colour, policy MissingKingPolicy) bool {
	king, ok := FindKing(board, mover)
	if !ok {
		return policy == KingAbsentUnsafe
	}
	return IsSquareAttacked(king, board, mover.Opposite())
}

// LegalMoves returns the destinations of the piece at pos. Candidates are
// passed through FilterSelfCheck when opts.CheckForCheck is set.
func LegalMoves(pos chess.Position, board *chess.Board, mover chess.Colour, opts Options) []chess.Position {
	var scratch *chess.Board
	return legalMoves(pos, board, &scratch, mover, opts)
}

// legalMoves is LegalMoves with a reusable scratch board. *scratch is
// refilled from board with CopyInto, allocating only on first use.
func legalMoves(pos chess.Position, board *chess.Board, scratch **chess.Board, mover chess.Colour, opts Options) []chess.Position {
	candidates := GenerateCandidates(pos, board, mover, opts)
	if !opts.CheckForCheck || len(candidates) == 0 {
		return candidates
	}
	*scratch = board.CopyInto(*scratch)
	return filterSelfCheck(pos, candidates, board.Get(pos), *scratch, mover, opts)
}

// PieceMoves groups the destinations of one piece.
type PieceMoves struct {
	From  chess.Position
	Piece chess.Piece
	To    []chess.Position
}

// AllLegalMoves returns the moves of every mover piece that has at least one,
// in row-major order of the source square.
func AllLegalMoves(board *chess.Board, mover chess.Colour, opts Options) []PieceMoves {
	var out []PieceMoves
	var scratch *chess.Board
	for _, from := range board.PiecesOf(mover) {
		if to := legalMoves(from, board, &scratch, mover, opts); len(to) > 0 {
			out = append(out, PieceMoves{From: from, Piece: board.Get(from), To: to})
		}
	}
	return out
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, mover chess.Colour, opts Options) bool {
	var scratch *chess.Board
	for _, from := range board.PiecesOf(mover) {
		if len(legalMoves(from, board, &scratch, mover, opts)) > 0 {
			return true
		}
	}
	return false
}

// CountMoves returns the total number of destinations across all pieces.
func CountMoves(moves []PieceMoves) int {
	n := 0
	for _, pm := range moves {
		n += len(pm.To)
	}
	return n
}
