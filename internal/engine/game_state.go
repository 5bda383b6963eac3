package engine

import "github.com/lgbarn/rpgchess/internal/chess"

// State is a board plus the per-half-move facts a caller has to carry
// between engine calls.
type State struct {
	Board         *chess.Board
	ToMove        chess.Colour
	EnPassant     *chess.Position
	HalfmoveClock int
	MoveNumber    int

	// MissingKing is the policy applied to every query made from this state.
	MissingKing MissingKingPolicy
}

// NewState wraps a board with White to move at move 1.
func NewState(board *chess.Board) *State {
	return &State{Board: board, ToMove: chess.White, MoveNumber: 1}
}

// NewInitialState returns the classic starting position.
func NewInitialState() *State {
	return NewState(chess.NewClassicBoard())
}

// Copy returns a deep copy of the state.
func (s *State) Copy() *State {
	ns := *s
	ns.Board = s.Board.Copy()
	if s.EnPassant != nil {
		ep := *s.EnPassant
		ns.EnPassant = &ep
	}
	return &ns
}

// Options returns the legal-move options for the side to move.
func (s *State) Options() Options {
	return Options{
		EnPassant:     s.EnPassant,
		CheckForCheck: true,
		MissingKing:   s.MissingKing,
	}
}

// LegalMoves returns the legal destinations of the piece at pos for the side
// to move.
func (s *State) LegalMoves(pos chess.Position) []chess.Position {
	return LegalMoves(pos, s.Board, s.ToMove, s.Options())
}

// AllLegalMoves returns every legal move of the side to move.
func (s *State) AllLegalMoves() []PieceMoves {
	return AllLegalMoves(s.Board, s.ToMove, s.Options())
}

// GameStatus summarises the position for the side to move.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (g GameStatus) String() string {
	switch g {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// Status classifies the position: mate and stalemate are "no legal move
// for any piece of the side to move", with and without check.
func Status(s *State) GameStatus {
	inCheck := IsInCheck(s.Board, s.ToMove)
	hasMoves := HasLegalMoves(s.Board, s.ToMove, s.Options())
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case inCheck:
		return Check
	}
	return Ongoing
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(s *State) bool {
	return Status(s) == Checkmate
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(s *State) bool {
	return Status(s) == Stalemate
}
