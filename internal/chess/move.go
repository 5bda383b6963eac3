package chess

// MoveClass categorizes the different kinds of moves a caller may apply.
type MoveClass int

const (
	PieceMove MoveClass = iota
	PawnMove
	PawnDoubleStep
	PawnMoveWithPromotion
	EnPassantPawnMove
	KingsideCastle
	QueensideCastle
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	names := [...]string{"PieceMove", "PawnMove", "PawnDoubleStep", "PawnMoveWithPromotion",
		"EnPassantPawnMove", "KingsideCastle", "QueensideCastle"}
	if c >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "UnknownMove"
}

// Move is a source/destination pair with an optional promotion piece.
type Move struct {
	From      Position
	To        Position
	Promotion PieceType // NoPiece unless the mover chose a promotion piece
}

// NewMove creates a move without a promotion choice.
func NewMove(from, to Position) Move {
	return Move{From: from, To: to}
}

// Notation renders the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) Notation(size int) string {
	s := SquareName(m.From, size) + SquareName(m.To, size)
	if m.Promotion != NoPiece {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}
