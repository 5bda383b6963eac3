package engine

import "github.com/lgbarn/rpgchess/internal/chess"

// IsSquareAttacked returns true if at least one piece of the attacker colour
// has square as a capture target.
//
// Each attacker's moves are generated with castling suppressed and without
// self-check filtering. Pawns count their two diagonal squares whether or not
// anything stands there, and never their forward pushes.
func IsSquareAttacked(square chess.Position, board *chess.Board, attacker chess.Colour) bool {
	if !board.InBounds(square) {
		return false
	}
	size := board.Size()
	hit := func(to chess.Position) bool { return to == square }
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			from := chess.Pos(row, col)
			piece := board.Get(from)
			if piece.IsEmpty() || piece.Colour != attacker {
				continue
			}
			if walkMoves(board, from, piece, attackOptions, true, hit) {
				return true
			}
		}
	}
	return false
}

// FindKing finds the first king of the given colour in row-major order.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Position, bool) {
	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			p := chess.Pos(row, col)
			if board.Get(p).Is(colour, chess.King) {
				return p, true
			}
		}
	}
	return chess.Position{}, false
}

// IsInCheck returns true if the given colour's king is attacked.
// A side without a king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := FindKing(board, colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(king, board, colour.Opposite())
}

// AttackedSquares returns every square the attacker colour attacks, in
// row-major order.
func AttackedSquares(board *chess.Board, attacker chess.Colour) []chess.Position {
	size := board.Size()
	seen := make([]bool, size*size)
	board.Each(func(from chess.Position, piece chess.Piece) {
		if piece.Colour != attacker {
			return
		}
		walkMoves(board, from, piece, attackOptions, true, func(to chess.Position) bool {
			seen[to.Row*size+to.Col] = true
			return false
		})
	})

	var out []chess.Position
	for i, attacked := range seen {
		if attacked {
			out = append(out, chess.Pos(i/size, i%size))
		}
	}
	return out
}
