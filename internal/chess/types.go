// Package chess provides the value types shared by the move-legality engine
// and its callers: colours, piece types, pieces, positions and boards.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/rpgchess/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta of a pawn step: -1 for White, +1 for Black.
// Row 0 is the top of the board, which is Black's home row.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// ParseColour normalises a colour name ("white", "b", "Black", ...).
func ParseColour(s string) (Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return Black, fmt.Errorf("%q: %w", s, errors.ErrUnknownColour)
}

// PieceType is the closed set of piece kinds.
type PieceType int

const (
	NoPiece PieceType = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

var pieceTypeNames = [...]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	if t >= 0 && int(t) < len(pieceTypeNames) {
		return pieceTypeNames[t]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (t PieceType) Letter() byte {
	letters := [...]byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if t >= 0 && int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// PieceTypeFromLetter converts a FEN/SAN letter (either case) to a piece type.
// NoPiece is returned for anything else.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	}
	return NoPiece
}

// ParsePieceType normalises a piece name as sent by the game frontend
// ("king", "Knight", "n", ...).
func ParsePieceType(s string) (PieceType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if len(name) == 1 {
		if t := PieceTypeFromLetter(name[0]); t != NoPiece {
			return t, nil
		}
	}
	for t := Pawn; t < NumPieceTypes; t++ {
		if strings.ToLower(t.String()) == name {
			return t, nil
		}
	}
	return NoPiece, fmt.Errorf("%q: %w", s, errors.ErrUnknownPiece)
}

// IsSlider reports whether the piece type moves along rays.
func (t PieceType) IsSlider() bool {
	return t == Bishop || t == Rook || t == Queen
}

// Piece is an immutable-per-query piece value. The zero value is an empty square.
type Piece struct {
	Type     PieceType
	Colour   Colour
	HasMoved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, t PieceType) Piece {
	return Piece{Type: t, Colour: colour}
}

// W creates an unmoved white piece.
func W(t PieceType) Piece {
	return NewPiece(White, t)
}

// B creates an unmoved black piece.
func B(t PieceType) Piece {
	return NewPiece(Black, t)
}

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPiece
}

// Is reports whether p is a piece of the given colour and type.
func (p Piece) Is(colour Colour, t PieceType) bool {
	return p.Type == t && p.Type != NoPiece && p.Colour == colour
}

// Moved returns a copy of p with HasMoved set.
func (p Piece) Moved() Piece {
	p.HasMoved = true
	return p
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black,
// '.' for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Type.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight" or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// Position is a (row, col) pair, row-major with the origin at the top-left.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// InBounds reports whether the position lies on a board of the given size.
func (p Position) InBounds(size int) bool {
	return p.Row >= 0 && p.Row < size && p.Col >= 0 && p.Col < size
}

// Offset returns the position shifted by (dr, dc).
func (p Position) Offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String returns "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// CastleSide selects the rook a king castles with.
type CastleSide int

const (
	Kingside  CastleSide = iota // towards the last column
	Queenside                   // towards column 0
)

// String returns the string representation of a castle side.
func (s CastleSide) String() string {
	if s == Queenside {
		return "Queenside"
	}
	return "Kingside"
}

// Direction returns the column delta of the king when castling on this side.
func (s CastleSide) Direction() int {
	if s == Queenside {
		return -1
	}
	return 1
}

// HomeRow returns the back row for a colour on a board of the given size.
func HomeRow(colour Colour, size int) int {
	if colour == White {
		return size - 1
	}
	return 0
}

// PawnStartRow returns the row a colour's pawns start on.
func PawnStartRow(colour Colour, size int) int {
	if colour == White {
		return size - 2
	}
	return 1
}

// PromotionRow returns the row on which a colour's pawns promote.
func PromotionRow(colour Colour, size int) int {
	return HomeRow(colour.Opposite(), size)
}
