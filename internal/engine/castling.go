package engine

import "github.com/lgbarn/rpgchess/internal/chess"

// CanCastle reports whether the king at kingPos may castle towards side.
// Conditions are checked in order and the first failure returns false:
//
//   - an unmoved king of colour stands on its home row at kingPos
//   - the king is not attacked
//   - an unmoved rook of colour stands in the corner of that side
//   - every square strictly between king and rook is empty
//   - the king's transit and destination squares lie between king and rook
//     and neither is attacked
//
// Castling rights are never stored; they follow from the moved flags and the
// live board on every call.
func CanCastle(board *chess.Board, kingPos chess.Position, colour chess.Colour, side chess.CastleSide) bool {
	size := board.Size()
	king := board.Get(kingPos)
	if !king.Is(colour, chess.King) || king.HasMoved || kingPos.Row != chess.HomeRow(colour, size) {
		return false
	}

	enemy := colour.Opposite()
	if IsSquareAttacked(kingPos, board, enemy) {
		return false
	}

	rookPos := CastlingRookSquare(kingPos.Row, side, size)
	rook := board.Get(rookPos)
	if !rook.Is(colour, chess.Rook) || rook.HasMoved {
		return false
	}

	if !isLineClear(board, kingPos, rookPos) {
		return false
	}

	dir := side.Direction()
	transit := kingPos.Offset(0, dir)
	dest := kingPos.Offset(0, 2*dir)
	if !between(dest.Col, kingPos.Col, rookPos.Col) {
		return false
	}
	return !IsSquareAttacked(transit, board, enemy) && !IsSquareAttacked(dest, board, enemy)
}

// CastlingRookSquare returns the corner a castling rook starts from.
func CastlingRookSquare(row int, side chess.CastleSide, size int) chess.Position {
	if side == chess.Queenside {
		return chess.Pos(row, 0)
	}
	return chess.Pos(row, size-1)
}

// CastleSideOf returns the side a two-column king move castles towards.
func CastleSideOf(from, to chess.Position) (chess.CastleSide, bool) {
	if from.Row != to.Row {
		return chess.Kingside, false
	}
	switch to.Col - from.Col {
	case 2:
		return chess.Kingside, true
	case -2:
		return chess.Queenside, true
	}
	return chess.Kingside, false
}
