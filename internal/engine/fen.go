package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/rpgchess/internal/chess"
	"github.com/lgbarn/rpgchess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN creates a state from a FEN string. The number of ranks sets the
// board size and every rank must cover exactly that many files; runs of
// empty squares may take more than one digit on wide boards.
//
// Moved flags are derived from the record: kings and rooks are unmoved only
// where a castling right names them, pawns are unmoved on their start row.
func ParseFEN(fen string) (*State, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board, err := parsePiecePositions(fen, parts[0])
	if err != nil {
		return nil, err
	}
	state := NewState(board)

	if err := parseSideToMove(state, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(state, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(state, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(state, parts); err != nil {
		return nil, err
	}
	return state, nil
}

// MustParseFEN is ParseFEN for trusted literals; it panics on error.
func MustParseFEN(fen string) *State {
	s, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return s
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(fen, placement string) (*chess.Board, error) {
	ranks := strings.Split(placement, "/")
	size := len(ranks)
	if err := chess.ValidateSize(size); err != nil {
		return nil, fmt.Errorf("%d ranks: %w: %w", size, errors.ErrInvalidFEN, err)
	}

	board := chess.NewBoard(size)
	offset := 0 // column of ranks[row] within the FEN, for error reports
	for row, rank := range ranks {
		col := 0
		run := 0
		flush := func() {
			col += run
			run = 0
		}
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '0' && c <= '9' {
				if run == 0 && c == '0' {
					return nil, fenError(fen, offset+i, "digit 1-9", "'0'")
				}
				run = run*10 + int(c-'0')
				if col+run > size {
					return nil, fenError(fen, offset+i, fmt.Sprintf("at most %d files", size), "empty run past the edge")
				}
				continue
			}
			flush()
			t := chess.PieceTypeFromLetter(c)
			if t == chess.NoPiece {
				return nil, fenError(fen, offset+i, "piece letter", fmt.Sprintf("%q", c))
			}
			if col >= size {
				return nil, fenError(fen, offset+i, fmt.Sprintf("at most %d files", size), "extra piece")
			}
			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}
			piece := chess.NewPiece(colour, t)
			if t == chess.Pawn {
				piece.HasMoved = row != chess.PawnStartRow(colour, size)
			}
			if t == chess.King || t == chess.Rook {
				piece.HasMoved = true // cleared again by the castling field
			}
			board.Set(chess.Pos(row, col), piece)
			col++
		}
		flush()
		if col != size {
			return nil, fenError(fen, offset+len(rank), fmt.Sprintf("%d files", size), fmt.Sprintf("%d", col))
		}
		offset += len(rank) + 1
	}
	return board, nil
}

func fenError(fen string, index int, expected, got string) error {
	return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Column: index + 1, Expected: expected, Got: got}
}

// parseSideToMove parses the side to move field.
func parseSideToMove(state *State, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		state.ToMove = chess.White
	case "b":
		state.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights clears the moved flag of each king and rook a
// castling right refers to. Rights naming a missing piece are ignored.
func parseCastlingRights(state *State, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}
	board := state.Board
	size := board.Size()

	for _, c := range parts[2] {
		var colour chess.Colour
		var side chess.CastleSide
		switch c {
		case 'K':
			colour, side = chess.White, chess.Kingside
		case 'Q':
			colour, side = chess.White, chess.Queenside
		case 'k':
			colour, side = chess.Black, chess.Kingside
		case 'q':
			colour, side = chess.Black, chess.Queenside
		default:
			return fmt.Errorf("invalid castling right %q: %w", c, errors.ErrInvalidFEN)
		}

		home := chess.HomeRow(colour, size)
		kingPos, ok := FindKing(board, colour)
		if !ok || kingPos.Row != home {
			continue
		}
		rookPos := CastlingRookSquare(home, side, size)
		if rook := board.Get(rookPos); rook.Is(colour, chess.Rook) {
			board.Set(rookPos, chess.NewPiece(colour, chess.Rook))
			board.Set(kingPos, chess.NewPiece(colour, chess.King))
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(state *State, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3], state.Board.Size())
	if err != nil {
		return fmt.Errorf("en passant square: %w: %w", errors.ErrInvalidFEN, err)
	}
	state.EnPassant = &sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(state *State, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		state.HalfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("move number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		state.MoveNumber = n
	}
	return nil
}

// FormatFEN converts a state to a FEN string.
func FormatFEN(state *State) string {
	var sb strings.Builder

	writePiecePositions(&sb, state.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, state)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, state.Board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, state)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", state.HalfmoveClock, state.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	size := board.Size()
	for row := 0; row < size; row++ {
		emptyCount := 0
		for col := 0; col < size; col++ {
			piece := board.Get(chess.Pos(row, col))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if row < size-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, state *State) {
	if state.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the rights implied by the moved flags.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	rights := []struct {
		letter byte
		colour chess.Colour
		side   chess.CastleSide
	}{
		{'K', chess.White, chess.Kingside},
		{'Q', chess.White, chess.Queenside},
		{'k', chess.Black, chess.Kingside},
		{'q', chess.Black, chess.Queenside},
	}

	size := board.Size()
	hasCastling := false
	for _, r := range rights {
		home := chess.HomeRow(r.colour, size)
		kingPos, ok := FindKing(board, r.colour)
		if !ok || kingPos.Row != home || board.Get(kingPos).HasMoved {
			continue
		}
		rook := board.Get(CastlingRookSquare(home, r.side, size))
		if rook.Is(r.colour, chess.Rook) && !rook.HasMoved {
			sb.WriteByte(r.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, state *State) {
	if state.EnPassant != nil {
		sb.WriteString(chess.SquareName(*state.EnPassant, state.Board.Size()))
	} else {
		sb.WriteByte('-')
	}
}
