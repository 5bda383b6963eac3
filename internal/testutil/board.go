package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/rpgchess/internal/chess"
)

// BoardFromDiagram builds a board from one string per row, top row first.
// Letters follow FEN case rules, '.' is an empty square and spaces are
// ignored. Every piece is placed unmoved.
func BoardFromDiagram(t testing.TB, rows ...string) *chess.Board {
	t.Helper()
	if err := chess.ValidateSize(len(rows)); err != nil {
		t.Fatalf("BoardFromDiagram: %v", err)
	}
	board := chess.NewBoard(len(rows))
	for row, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != len(rows) {
			t.Fatalf("BoardFromDiagram: row %d has %d squares, want %d", row, len(line), len(rows))
		}
		for col := 0; col < len(line); col++ {
			c := line[col]
			if c == '.' {
				continue
			}
			pt := chess.PieceTypeFromLetter(c)
			if pt == chess.NoPiece {
				t.Fatalf("BoardFromDiagram: bad piece %q at row %d col %d", c, row, col)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			board.Set(chess.Pos(row, col), chess.NewPiece(colour, pt))
		}
	}
	return board
}

// EmptyBoard returns an empty board with the given pieces placed on it.
func EmptyBoard(size int, pieces map[chess.Position]chess.Piece) *chess.Board {
	board := chess.NewBoard(size)
	for pos, piece := range pieces {
		board.Set(pos, piece)
	}
	return board
}
