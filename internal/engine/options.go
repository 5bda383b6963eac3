// Package engine is the move-legality engine: attack detection, per-piece
// candidate generation, self-check filtering and castling validation over a
// caller-owned board of any size. Every function is pure; callers may share
// a board between goroutines as long as nobody writes to it.
package engine

import "github.com/lgbarn/rpgchess/internal/chess"

// MissingKingPolicy decides how the legality filter treats a side with no
// king on the board.
type MissingKingPolicy int

const (
	// KingAbsentSafe keeps every candidate when the mover has no king.
	// Kingless RPG armies rely on this.
	KingAbsentSafe MissingKingPolicy = iota
	// KingAbsentUnsafe discards every candidate when the mover has no king.
	KingAbsentUnsafe
)

// String returns the string representation of a policy.
func (p MissingKingPolicy) String() string {
	if p == KingAbsentUnsafe {
		return "unsafe"
	}
	return "safe"
}

// Options carries the per-call switches of the engine.
//
// SkipCastling and CheckForCheck exist to break the recursion between move
// generation and attack detection: attack queries always run with castling
// suppressed and without self-check filtering.
type Options struct {
	// EnPassant is the square a pawn may capture into this half-move, or nil.
	EnPassant *chess.Position

	// SkipCastling suppresses castling destinations for kings.
	SkipCastling bool

	// CheckForCheck enables the self-check filter in LegalMoves.
	CheckForCheck bool

	// MissingKing selects the filter's behaviour when the mover has no king.
	MissingKing MissingKingPolicy
}

// DefaultOptions returns options for ordinary legal-move queries.
func DefaultOptions() Options {
	return Options{CheckForCheck: true}
}

// WithEnPassant returns a copy of o with the en passant target set.
func (o Options) WithEnPassant(target *chess.Position) Options {
	o.EnPassant = target
	return o
}

// attackOptions are the options every attack query generates with.
var attackOptions = Options{SkipCastling: true}
