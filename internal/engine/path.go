package engine

import "github.com/lgbarn/rpgchess/internal/chess"

// isLineClear checks that every square strictly between from and to is empty.
// from and to must share a row, a column or a diagonal.
func isLineClear(board *chess.Board, from, to chess.Position) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)
	if rowDir != 0 && colDir != 0 && abs(to.Row-from.Row) != abs(to.Col-from.Col) {
		return false
	}

	p := from.Offset(rowDir, colDir)
	for p != to {
		if !board.IsEmpty(p) {
			return false
		}
		p = p.Offset(rowDir, colDir)
	}
	return true
}

// between reports whether x lies strictly between a and b.
func between(x, a, b int) bool {
	if a > b {
		a, b = b, a
	}
	return x > a && x < b
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
