package matching

import (
	"strings"

	"github.com/lgbarn/rpgchess/internal/chess"
	"github.com/lgbarn/rpgchess/internal/engine"
	"github.com/lgbarn/rpgchess/internal/errors"
)

// pieceCounts is indexed by chess.PieceType.
type pieceCounts [chess.King + 1]int

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern    string
	exactMatch bool
	counts     [2]pieceCounts // indexed by chess.Colour
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces).
// Letters are K, Q, R, B, N, P in either case; the side of the colon picks
// the colour. Without exact, the pattern is a minimum.
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{pattern: pattern, exactMatch: exact}

	parts := strings.Split(pattern, ":")
	if len(parts) > 2 {
		return nil, &errors.ParseError{Err: errors.ErrInvalidConfig, Input: pattern, Expected: "WHITE:black", Got: "extra ':'"}
	}
	colours := []chess.Colour{chess.White, chess.Black}
	column := 1
	for i, part := range parts {
		for j := 0; j < len(part); j++ {
			t := chess.PieceTypeFromLetter(part[j])
			if t == chess.NoPiece {
				return nil, &errors.ParseError{Err: errors.ErrUnknownPiece, Input: pattern, Column: column + j, Got: "'" + part[j:j+1] + "'"}
			}
			mm.counts[colours[i]][t]++
		}
		column += len(part) + 1
	}
	return mm, nil
}

// countMaterial counts the pieces of each colour on the board.
func countMaterial(board *chess.Board) [2]pieceCounts {
	var counts [2]pieceCounts
	board.Each(func(_ chess.Position, p chess.Piece) {
		if !p.IsEmpty() {
			counts[p.Colour][p.Type]++
		}
	})
	return counts
}

// MatchBoard checks if the board matches the material pattern.
func (mm *MaterialMatcher) MatchBoard(board *chess.Board) bool {
	have := countMaterial(board)
	for colour := range mm.counts {
		for t := chess.Pawn; t <= chess.King; t++ {
			want, got := mm.counts[colour][t], have[colour][t]
			if got < want || (mm.exactMatch && got != want) {
				return false
			}
		}
	}
	return true
}

// Match implements Matcher.
func (mm *MaterialMatcher) Match(s *engine.State, _ engine.GameStatus) bool {
	return mm.MatchBoard(s.Board)
}

// Name implements Matcher.
func (mm *MaterialMatcher) Name() string {
	if mm.exactMatch {
		return "material=" + mm.pattern
	}
	return "material>=" + mm.pattern
}
