package chess

import (
	"github.com/lgbarn/rpgchess/internal/errors"
)

// SquareName returns the algebraic name of p on a board of the given size:
// file letter 'a'+col, rank number size-row. Boards above 9 ranks use
// two-digit rank numbers ("a10").
func SquareName(p Position, size int) string {
	rank := size - p.Row
	name := []byte{byte('a' + p.Col)}
	if rank >= 10 {
		name = append(name, byte('0'+rank/10))
	}
	return string(append(name, byte('0'+rank%10)))
}

// ParseSquare converts an algebraic square name to a position on a board
// of the given size.
func ParseSquare(s string, size int) (Position, error) {
	p, n, err := scanSquare(s, 0, size)
	if err != nil {
		return Position{}, err
	}
	if n != len(s) {
		return Position{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: s, Column: n + 1, Got: "trailing text"}
	}
	return p, nil
}

// ParseMove parses coordinate notation such as "e2e4", "a10a12" or "e7e8q".
func ParseMove(s string, size int) (Move, error) {
	from, n, err := scanSquare(s, 0, size)
	if err != nil {
		return Move{}, err
	}
	to, m, err := scanSquare(s, n, size)
	if err != nil {
		return Move{}, err
	}
	move := Move{From: from, To: to}

	switch rest := s[m:]; len(rest) {
	case 0:
	case 1:
		promo := PieceTypeFromLetter(rest[0])
		if promo == NoPiece || promo == King || promo == Pawn {
			return Move{}, &errors.ParseError{Err: errors.ErrUnknownPiece, Input: s, Column: m + 1,
				Expected: "promotion piece q, r, b or n", Got: "'" + rest + "'"}
		}
		move.Promotion = promo
	default:
		return Move{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: s, Column: m + 1, Got: "trailing text"}
	}
	return move, nil
}

// scanSquare reads one square name starting at s[i] and returns the
// position and the index just after it.
func scanSquare(s string, i, size int) (Position, int, error) {
	if i >= len(s) {
		return Position{}, i, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: s, Column: i + 1, Expected: "file letter", Got: "end of input"}
	}
	file := s[i]
	if file < 'a' || int(file-'a') >= size {
		return Position{}, i, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: s, Column: i + 1,
			Expected: "file letter", Got: "'" + string(file) + "'"}
	}
	j := i + 1
	rank := 0
	for j < len(s) && s[j] >= '0' && s[j] <= '9' && j-i <= 2 {
		rank = rank*10 + int(s[j]-'0')
		j++
	}
	if j == i+1 || rank < 1 || rank > size {
		return Position{}, i, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: s, Column: i + 2, Expected: "rank number"}
	}
	return Pos(size-rank, int(file-'a')), j, nil
}
