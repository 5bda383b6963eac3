// Package hashing fingerprints legal-move queries and memoises their
// results in memory.
package hashing

import (
	"github.com/cespare/xxhash/v2"

	"github.com/lgbarn/rpgchess/internal/chess"
	"github.com/lgbarn/rpgchess/internal/engine"
)

const noSquare = 0xFF

// Fingerprint digests everything a legal-move query reads: the board size,
// every square (type, colour, moved flag), the mover and the options. Equal
// inputs give equal fingerprints regardless of board identity.
func Fingerprint(board *chess.Board, mover chess.Colour, opts engine.Options) uint64 {
	size := board.Size()
	buf := make([]byte, 0, size*size+6)

	buf = append(buf, byte(size))
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			buf = append(buf, squareCode(board.Get(chess.Pos(row, col))))
		}
	}

	buf = append(buf, byte(mover))
	if opts.EnPassant != nil {
		buf = append(buf, byte(opts.EnPassant.Row), byte(opts.EnPassant.Col))
	} else {
		buf = append(buf, noSquare, noSquare)
	}

	var flags byte
	if opts.SkipCastling {
		flags |= 1
	}
	if opts.CheckForCheck {
		flags |= 2
	}
	if opts.MissingKing == engine.KingAbsentUnsafe {
		flags |= 4
	}
	buf = append(buf, flags)

	return xxhash.Sum64(buf)
}

// FingerprintState is Fingerprint for the side to move of s.
func FingerprintState(s *engine.State) uint64 {
	return Fingerprint(s.Board, s.ToMove, s.Options())
}

// squareCode packs a piece into one byte: type in the high bits, then
// colour, then the moved flag. The empty square is 0.
func squareCode(p chess.Piece) byte {
	if p.IsEmpty() {
		return 0
	}
	code := byte(p.Type) << 2
	if p.Colour == chess.White {
		code |= 2
	}
	if p.HasMoved {
		code |= 1
	}
	return code
}

// Key identifies one memoised query: a position fingerprint and the source
// square asked about.
type Key struct {
	Fingerprint uint64
	From        chess.Position
}

// MoveSetTable memoises legal destination lists by Key.
type MoveSetTable struct {
	// entries stores the memoised destination lists
	entries map[Key][]chess.Position
	// maxCapacity limits entries (0 = unlimited)
	maxCapacity int
	hits        int
	misses      int
}

// NewMoveSetTable creates a table holding at most maxCapacity entries.
// maxCapacity of 0 means unlimited capacity.
func NewMoveSetTable(maxCapacity int) *MoveSetTable {
	return &MoveSetTable{
		entries:     make(map[Key][]chess.Position),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns a copy of the memoised list for key and counts the hit or
// miss.
func (t *MoveSetTable) Lookup(key Key) ([]chess.Position, bool) {
	moves, ok := t.entries[key]
	if !ok {
		t.misses++
		return nil, false
	}
	t.hits++
	return clonePositions(moves), true
}

// Store memoises moves for key. It returns false, storing nothing, when
// the table is full and key is new.
func (t *MoveSetTable) Store(key Key, moves []chess.Position) bool {
	if _, exists := t.entries[key]; !exists && t.IsFull() {
		return false
	}
	t.entries[key] = clonePositions(moves)
	return true
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *MoveSetTable) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Len returns the number of memoised entries.
func (t *MoveSetTable) Len() int {
	return len(t.entries)
}

// Hits returns the number of successful lookups.
func (t *MoveSetTable) Hits() int {
	return t.hits
}

// Misses returns the number of failed lookups.
func (t *MoveSetTable) Misses() int {
	return t.misses
}

// Reset clears the table and its counters.
func (t *MoveSetTable) Reset() {
	t.entries = make(map[Key][]chess.Position)
	t.hits = 0
	t.misses = 0
}

func clonePositions(in []chess.Position) []chess.Position {
	out := make([]chess.Position, len(in))
	copy(out, in)
	return out
}
