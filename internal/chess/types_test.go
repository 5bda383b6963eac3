package chess

import (
	"errors"
	"testing"

	rpgerrors "github.com/lgbarn/rpgchess/internal/errors"
)

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
	if White.Forward() != -1 || Black.Forward() != 1 {
		t.Errorf("Forward() = %d/%d; want -1/1", White.Forward(), Black.Forward())
	}
	if White.String() != "White" || Black.String() != "Black" {
		t.Error("unexpected colour names")
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		in      string
		want    Colour
		wantErr bool
	}{
		{"white", White, false},
		{"White", White, false},
		{" w ", White, false},
		{"BLACK", Black, false},
		{"b", Black, false},
		{"red", Black, true},
		{"", Black, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColour(tt.in)
			if tt.wantErr {
				if !errors.Is(err, rpgerrors.ErrUnknownColour) {
					t.Errorf("ParseColour(%q) error = %v; want ErrUnknownColour", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseColour(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestParsePieceType(t *testing.T) {
	tests := []struct {
		in      string
		want    PieceType
		wantErr bool
	}{
		{"king", King, false},
		{"Knight", Knight, false},
		{"n", Knight, false},
		{"Q", Queen, false},
		{" pawn ", Pawn, false},
		{"bishop", Bishop, false},
		{"rook", Rook, false},
		{"archer", NoPiece, true},
		{"none", NoPiece, true},
		{"", NoPiece, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePieceType(tt.in)
			if tt.wantErr {
				if !errors.Is(err, rpgerrors.ErrUnknownPiece) {
					t.Errorf("ParsePieceType(%q) error = %v; want ErrUnknownPiece", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParsePieceType(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestPieceTypeLetters(t *testing.T) {
	for pt := Pawn; pt < NumPieceTypes; pt++ {
		l := pt.Letter()
		if got := PieceTypeFromLetter(l); got != pt {
			t.Errorf("PieceTypeFromLetter(%q) = %v; want %v", l, got, pt)
		}
		if got := PieceTypeFromLetter(l + 'a' - 'A'); got != pt {
			t.Errorf("lowercase %q does not map to %v", l+'a'-'A', pt)
		}
	}
	if PieceTypeFromLetter('x') != NoPiece {
		t.Error("'x' should map to NoPiece")
	}
	if PieceType(42).String() != "Unknown" || PieceType(42).Letter() != '?' {
		t.Error("out-of-range piece type not reported as unknown")
	}
}

func TestIsSlider(t *testing.T) {
	sliders := map[PieceType]bool{Bishop: true, Rook: true, Queen: true}
	for pt := Pawn; pt < NumPieceTypes; pt++ {
		if pt.IsSlider() != sliders[pt] {
			t.Errorf("%v.IsSlider() = %v", pt, pt.IsSlider())
		}
	}
}

func TestPiece(t *testing.T) {
	var empty Piece
	if !empty.IsEmpty() || empty.Letter() != '.' || empty.String() != "Empty" {
		t.Error("zero Piece is not an empty square")
	}
	if empty.Is(Black, NoPiece) {
		t.Error("empty square matched Is(Black, NoPiece)")
	}

	n := B(Knight)
	if !n.Is(Black, Knight) || n.Is(White, Knight) || n.Is(Black, Bishop) {
		t.Error("Is() mismatch for black knight")
	}
	if n.Letter() != 'n' || W(Knight).Letter() != 'N' {
		t.Errorf("letters = %q/%q", n.Letter(), W(Knight).Letter())
	}
	if n.String() != "Black Knight" {
		t.Errorf("String() = %q", n.String())
	}

	m := n.Moved()
	if !m.HasMoved || n.HasMoved {
		t.Error("Moved() must return a modified copy")
	}
}

func TestPosition(t *testing.T) {
	p := Pos(2, 3)
	if got := p.Offset(-1, 2); got != Pos(1, 5) {
		t.Errorf("Offset = %v", got)
	}
	if p.String() != "(2,3)" {
		t.Errorf("String() = %q", p.String())
	}

	tests := []struct {
		p    Position
		size int
		want bool
	}{
		{Pos(0, 0), 8, true},
		{Pos(7, 7), 8, true},
		{Pos(8, 0), 8, false},
		{Pos(0, -1), 8, false},
		{Pos(9, 9), 10, true},
	}
	for _, tt := range tests {
		if got := tt.p.InBounds(tt.size); got != tt.want {
			t.Errorf("%v.InBounds(%d) = %v; want %v", tt.p, tt.size, got, tt.want)
		}
	}
}

func TestRows(t *testing.T) {
	tests := []struct {
		colour    Colour
		size      int
		home      int
		pawn      int
		promotion int
	}{
		{White, 8, 7, 6, 0},
		{Black, 8, 0, 1, 7},
		{White, 12, 11, 10, 0},
		{Black, 12, 0, 1, 11},
	}
	for _, tt := range tests {
		if got := HomeRow(tt.colour, tt.size); got != tt.home {
			t.Errorf("HomeRow(%v,%d) = %d; want %d", tt.colour, tt.size, got, tt.home)
		}
		if got := PawnStartRow(tt.colour, tt.size); got != tt.pawn {
			t.Errorf("PawnStartRow(%v,%d) = %d; want %d", tt.colour, tt.size, got, tt.pawn)
		}
		if got := PromotionRow(tt.colour, tt.size); got != tt.promotion {
			t.Errorf("PromotionRow(%v,%d) = %d; want %d", tt.colour, tt.size, got, tt.promotion)
		}
	}
}

func TestCastleSide(t *testing.T) {
	if Kingside.Direction() != 1 || Queenside.Direction() != -1 {
		t.Error("castle directions wrong")
	}
	if Kingside.String() != "Kingside" || Queenside.String() != "Queenside" {
		t.Error("castle side names wrong")
	}
}

func TestMoveClassString(t *testing.T) {
	if EnPassantPawnMove.String() != "EnPassantPawnMove" {
		t.Errorf("String() = %q", EnPassantPawnMove.String())
	}
	if MoveClass(99).String() != "UnknownMove" {
		t.Error("out-of-range class not reported as unknown")
	}
}
