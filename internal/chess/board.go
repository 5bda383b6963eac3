package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/rpgchess/internal/errors"
)

// ClassicSize is the size of an orthodox chess board.
const ClassicSize = 8

// MaxSize bounds the board size so that squares keep single-letter file names.
const MaxSize = 26

// Board is a square grid of pieces. The size is a runtime property so the
// same engine serves classic chess and the larger RPG battlefields, up to
// MaxSize files and ranks (file letters run a to z). NewBoard panics past
// that limit.
// Squares are stored row-major; row 0 is the top (Black's home row).
type Board struct {
	size    int
	squares []Piece
}

// NewBoard creates an empty board of the given size.
// It panics if size is outside [1, MaxSize]; use ValidateSize on untrusted input.
func NewBoard(size int) *Board {
	if err := ValidateSize(size); err != nil {
		panic(err)
	}
	return &Board{
		size:    size,
		squares: make([]Piece, size*size),
	}
}

// ValidateSize checks that size is a usable board size.
func ValidateSize(size int) error {
	if size < 1 || size > MaxSize {
		return fmt.Errorf("size %d not in [1,%d]: %w", size, MaxSize, errors.ErrInvalidBoardSize)
	}
	return nil
}

// NewClassicBoard creates an 8x8 board with the standard starting position.
func NewClassicBoard() *Board {
	b := NewBoard(ClassicSize)
	if err := b.SetupInitialPosition(); err != nil {
		panic(err)
	}
	return b
}

// SetupInitialPosition clears the board and places the standard starting
// army. The back rank is centred on wider boards; boards narrower than 8
// are rejected.
func (b *Board) SetupInitialPosition() error {
	if b.size < ClassicSize {
		return fmt.Errorf("initial position needs %d columns, board has %d: %w",
			ClassicSize, b.size, errors.ErrInvalidBoardSize)
	}
	b.Clear()

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	start := (b.size - ClassicSize) / 2
	for i, t := range backRank {
		col := start + i
		b.Set(Pos(HomeRow(White, b.size), col), W(t))
		b.Set(Pos(HomeRow(Black, b.size), col), B(t))
	}
	for col := 0; col < b.size; col++ {
		b.Set(Pos(PawnStartRow(White, b.size), col), W(Pawn))
		b.Set(Pos(PawnStartRow(Black, b.size), col), B(Pawn))
	}
	return nil
}

// Size returns the number of rows (and columns).
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Position) bool {
	return p.InBounds(b.size)
}

// Get returns the piece at p, or the empty piece if p is off the board.
func (b *Board) Get(p Position) Piece {
	if !p.InBounds(b.size) {
		return Piece{}
	}
	return b.squares[p.Row*b.size+p.Col]
}

// Set places a piece at p. Off-board positions are ignored.
func (b *Board) Set(p Position, piece Piece) {
	if p.InBounds(b.size) {
		b.squares[p.Row*b.size+p.Col] = piece
	}
}

// Remove empties the square at p.
func (b *Board) Remove(p Position) {
	b.Set(p, Piece{})
}

// IsEmpty reports whether p is on the board and unoccupied.
func (b *Board) IsEmpty(p Position) bool {
	return p.InBounds(b.size) && b.squares[p.Row*b.size+p.Col].IsEmpty()
}

// Clear removes every piece.
func (b *Board) Clear() {
	for i := range b.squares {
		b.squares[i] = Piece{}
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := &Board{size: b.size, squares: make([]Piece, len(b.squares))}
	copy(nb.squares, b.squares)
	return nb
}

// CopyInto overwrites dst with the contents of b, reusing dst's storage
// when the sizes match. It returns the board that now holds the copy.
func (b *Board) CopyInto(dst *Board) *Board {
	if dst == nil || dst.size != b.size {
		return b.Copy()
	}
	copy(dst.squares, b.squares)
	return dst
}

// Equal reports whether two boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i := range b.squares {
		if b.squares[i] != other.squares[i] {
			return false
		}
	}
	return true
}

// Each calls fn for every occupied square in row-major order.
func (b *Board) Each(fn func(Position, Piece)) {
	for i, piece := range b.squares {
		if piece.IsEmpty() {
			continue
		}
		fn(Pos(i/b.size, i%b.size), piece)
	}
}

// PiecesOf returns the positions of all pieces of a colour in row-major order.
func (b *Board) PiecesOf(colour Colour) []Position {
	var out []Position
	b.Each(func(p Position, piece Piece) {
		if piece.Colour == colour {
			out = append(out, p)
		}
	})
	return out
}

// String renders the board as a text diagram, rank numbers on the left and
// file letters underneath.
func (b *Board) String() string {
	var sb strings.Builder
	width := len(fmt.Sprint(b.size))
	for row := 0; row < b.size; row++ {
		fmt.Fprintf(&sb, "%*d ", width, b.size-row)
		for col := 0; col < b.size; col++ {
			sb.WriteByte(b.Get(Pos(row, col)).Letter())
			if col < b.size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat(" ", width+1))
	for col := 0; col < b.size; col++ {
		sb.WriteByte(byte('a' + col))
		if col < b.size-1 {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}
