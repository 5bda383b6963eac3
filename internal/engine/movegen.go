package engine

import "github.com/lgbarn/rpgchess/internal/chess"

// Offsets are (row, col) deltas. The order of every table is fixed so that
// generation is order-stable.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs     = append(append([][2]int{}, straightDirs...), diagonalDirs...)
)

// visitFunc receives each destination; returning true stops the walk.
type visitFunc func(to chess.Position) bool

// GenerateCandidates returns the squares the piece at pos may move to under
// piece-movement rules alone. An empty square or a piece not belonging to
// mover yields no candidates.
func GenerateCandidates(pos chess.Position, board *chess.Board, mover chess.Colour, opts Options) []chess.Position {
	piece := board.Get(pos)
	if piece.IsEmpty() || piece.Colour != mover {
		return nil
	}
	var out []chess.Position
	walkMoves(board, pos, piece, opts, false, func(to chess.Position) bool {
		out = append(out, to)
		return false
	})
	return out
}

// walkMoves feeds every candidate of piece at from to visit and reports
// whether visit stopped the walk. In attack mode pawns yield their capture
// diagonals only and kings never castle.
func walkMoves(board *chess.Board, from chess.Position, piece chess.Piece, opts Options, attacks bool, visit visitFunc) bool {
	switch piece.Type {
	case chess.Pawn:
		return walkPawn(board, from, piece, opts, attacks, visit)
	case chess.Knight:
		return walkOffsets(board, from, piece.Colour, knightOffsets, visit)
	case chess.King:
		if walkOffsets(board, from, piece.Colour, kingOffsets, visit) {
			return true
		}
		if attacks || opts.SkipCastling || piece.HasMoved {
			return false
		}
		return walkCastling(board, from, piece.Colour, visit)
	case chess.Bishop:
		return walkRays(board, from, piece.Colour, diagonalDirs, visit)
	case chess.Rook:
		return walkRays(board, from, piece.Colour, straightDirs, visit)
	case chess.Queen:
		return walkRays(board, from, piece.Colour, queenDirs, visit)
	}
	return false
}

// walkPawn generates pawn pushes and captures.
func walkPawn(board *chess.Board, from chess.Position, piece chess.Piece, opts Options, attacks bool, visit visitFunc) bool {
	dir := piece.Colour.Forward()

	if !attacks {
		one := from.Offset(dir, 0)
		if board.IsEmpty(one) {
			if visit(one) {
				return true
			}
			// Double step depends on HasMoved only, never on the row.
			two := from.Offset(2*dir, 0)
			if !piece.HasMoved && board.IsEmpty(two) {
				if visit(two) {
					return true
				}
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to := from.Offset(dir, dc)
		if !board.InBounds(to) {
			continue
		}
		if attacks {
			if visit(to) {
				return true
			}
			continue
		}
		target := board.Get(to)
		capture := !target.IsEmpty() && target.Colour != piece.Colour
		enPassant := target.IsEmpty() && opts.EnPassant != nil && *opts.EnPassant == to
		if capture || enPassant {
			if visit(to) {
				return true
			}
		}
	}
	return false
}

// walkOffsets handles the fixed-offset leapers (knight, king steps).
func walkOffsets(board *chess.Board, from chess.Position, colour chess.Colour, offsets [][2]int, visit visitFunc) bool {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !board.InBounds(to) {
			continue
		}
		target := board.Get(to)
		if target.IsEmpty() || target.Colour != colour {
			if visit(to) {
				return true
			}
		}
	}
	return false
}

// walkRays steps outward along each direction until blocked.
func walkRays(board *chess.Board, from chess.Position, colour chess.Colour, dirs [][2]int, visit visitFunc) bool {
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for board.InBounds(to) {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Colour != colour && visit(to) {
					return true
				}
				break // Blocked
			}
			if visit(to) {
				return true
			}
			to = to.Offset(dir[0], dir[1])
		}
	}
	return false
}

// walkCastling yields the king's castling destinations, kingside first.
func walkCastling(board *chess.Board, from chess.Position, colour chess.Colour, visit visitFunc) bool {
	for _, side := range [2]chess.CastleSide{chess.Kingside, chess.Queenside} {
		if CanCastle(board, from, colour, side) {
			if visit(from.Offset(0, 2*side.Direction())) {
				return true
			}
		}
	}
	return false
}
