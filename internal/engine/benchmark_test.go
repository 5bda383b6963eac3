package engine

import (
	"testing"

	"github.com/lgbarn/rpgchess/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":   InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   kiwipeteFEN,
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
	"Wide":      "r10k/12/12/4q7/12/12/12/12/12/12/PPPPPPPPPPPP/R4K5R w Q - 0 1",
}

func BenchmarkParseFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				ParseFEN(fen)
			}
		})
	}
}

func BenchmarkAllLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			s := MustParseFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.AllLegalMoves()
			}
		})
	}
}

func BenchmarkIsSquareAttacked(b *testing.B) {
	s := MustParseFEN(kiwipeteFEN)
	king, _ := FindKing(s.Board, chess.White)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		IsSquareAttacked(king, s.Board, chess.Black)
	}
}

func BenchmarkCanCastle(b *testing.B) {
	s := MustParseFEN(benchFENs["Castling"])
	king := chess.Pos(7, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CanCastle(s.Board, king, chess.White, chess.Kingside)
	}
}

func BenchmarkPerft(b *testing.B) {
	s := MustParseFEN(kiwipeteFEN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Perft(s, 2)
	}
}
