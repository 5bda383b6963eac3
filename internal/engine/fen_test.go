package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/rpgchess/internal/chess"
	rpgerrors "github.com/lgbarn/rpgchess/internal/errors"
	"github.com/lgbarn/rpgchess/internal/testutil"
)

func TestParseFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*State) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(s *State) bool {
				b := s.Board
				return b.Size() == 8 &&
					b.Get(chess.Pos(7, 4)) == chess.W(chess.King) &&
					b.Get(chess.Pos(0, 4)) == chess.B(chess.King) &&
					b.Get(chess.Pos(6, 4)) == chess.W(chess.Pawn) &&
					b.Get(chess.Pos(1, 4)) == chess.B(chess.Pawn) &&
					s.ToMove == chess.White &&
					s.EnPassant == nil &&
					s.MoveNumber == 1
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(s *State) bool {
				return s.Board.Get(chess.Pos(4, 4)) == chess.W(chess.Pawn).Moved() &&
					s.Board.IsEmpty(chess.Pos(6, 4)) &&
					s.ToMove == chess.Black &&
					s.EnPassant != nil && *s.EnPassant == chess.Pos(5, 4)
			},
		},
		{
			name: "partial castling rights",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 3 10",
			checkFn: func(s *State) bool {
				b := s.Board
				return !b.Get(chess.Pos(7, 4)).HasMoved &&
					!b.Get(chess.Pos(7, 7)).HasMoved &&
					b.Get(chess.Pos(7, 0)).HasMoved &&
					!b.Get(chess.Pos(0, 4)).HasMoved &&
					!b.Get(chess.Pos(0, 0)).HasMoved &&
					b.Get(chess.Pos(0, 7)).HasMoved &&
					s.HalfmoveClock == 3 && s.MoveNumber == 10
			},
		},
		{
			name: "no castling rights marks kings moved",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			checkFn: func(s *State) bool {
				return s.Board.Get(chess.Pos(7, 4)).HasMoved && s.Board.Get(chess.Pos(0, 4)).HasMoved
			},
		},
		{
			name: "placement only",
			fen:  "8/8/8/8/8/8/8/8",
			checkFn: func(s *State) bool {
				return s.ToMove == chess.White && s.MoveNumber == 1 && s.HalfmoveClock == 0
			},
		},
		{
			name: "10x10 board",
			fen:  "4k5/10/10/10/10/10/10/10/PPPPPPPPPP/4K5 w - - 0 1",
			checkFn: func(s *State) bool {
				return s.Board.Size() == 10 &&
					s.Board.Get(chess.Pos(9, 4)).Is(chess.White, chess.King) &&
					!s.Board.Get(chess.Pos(8, 9)).HasMoved
			},
		},
		{
			name: "1x1 board",
			fen:  "K w - - 0 1",
			checkFn: func(s *State) bool {
				return s.Board.Size() == 1 && s.Board.Get(chess.Pos(0, 0)).Is(chess.White, chess.King)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q) error = %v", tt.fen, err)
			}
			if !tt.checkFn(s) {
				t.Errorf("ParseFEN(%q) produced unexpected state:\n%s", tt.fen, s.Board)
			}
		})
	}
}

func TestParseFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"bad piece", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"rank too long", "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"rank too short", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"run too long", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"run overflowing int", "rnbqkbnr/pppppppp/" + strings.Repeat("9", 40) + "/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"leading zero", "rnbqkbnr/pppppppp/08/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"ranks of wrong width", "rnbqkbnr/pppppppp/8/8/8/8/RNBQKBNR w KQkq - 0 1"},
		{"too many ranks", "1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1 w - - 0 1"},
		{"bad side", "8/8/8/8/8/8/8/8 x - - 0 1"},
		{"bad castling", "8/8/8/8/8/8/8/8 w X - 0 1"},
		{"bad en passant", "8/8/8/8/8/8/8/8 w - z9 0 1"},
		{"bad halfmove", "8/8/8/8/8/8/8/8 w - - x 1"},
		{"negative halfmove", "8/8/8/8/8/8/8/8 w - - -1 1"},
		{"zero move number", "8/8/8/8/8/8/8/8 w - - 0 0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := ParseFEN(tt.fen)
			if err == nil {
				t.Fatalf("ParseFEN(%q) = %v; want error", tt.fen, s)
			}
			if !errors.Is(err, rpgerrors.ErrInvalidFEN) {
				t.Errorf("error %v does not wrap ErrInvalidFEN", err)
			}
		})
	}
}

func TestParseFEN_ErrorDetail(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	var pe *rpgerrors.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error %v is not a ParseError", err)
	}
	if pe.Column != 14 {
		t.Errorf("Column = %d; want 14", pe.Column)
	}
	testutil.AssertContains(t, err.Error(), "piece letter")

	_, err = ParseFEN("rnbqkbnr/pppppppp/" + strings.Repeat("1", 30) + "/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if !errors.As(err, &pe) {
		t.Fatalf("error %v is not a ParseError", err)
	}
	if pe.Column != 20 {
		t.Errorf("Column = %d; want 20 (second digit of the run)", pe.Column)
	}

	_, err = ParseFEN("1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1/1 w - - 0 1")
	testutil.AssertErrorIs(t, err, rpgerrors.ErrInvalidBoardSize)
}

func TestFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 3 10",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k5/10/10/10/10/10/10/10/10/4K5 w - - 0 1",
		"r10k/12/12/12/12/12/12/12/12/12/12/R4K5R b Q - 12 40",
	}

	for _, fen := range fens {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			s, err := ParseFEN(fen)
			if err != nil {
				t.Fatalf("ParseFEN() error = %v", err)
			}
			if got := FormatFEN(s); got != fen {
				t.Errorf("FormatFEN() = %q; want %q", got, fen)
			}
		})
	}
}

func TestMustParseFEN_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseFEN did not panic on a bad FEN")
		}
	}()
	MustParseFEN("not a fen")
}
