package engine

import (
	"context"

	"github.com/lgbarn/rpgchess/internal/chess"
)

var promotionPieces = [...]chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Each promotion counts once per promotion piece.
func Perft(s *State, depth int) uint64 {
	nodes, _ := perft(context.Background(), s, depth)
	return nodes
}

// PerftContext is Perft with cancellation. The context is checked at every
// interior node, so a cancelled count stops within one leaf batch and
// returns ctx.Err() with the nodes counted so far.
func PerftContext(ctx context.Context, s *State, depth int) (uint64, error) {
	return perft(ctx, s, depth)
}

func perft(ctx context.Context, s *State, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var nodes uint64
	for _, pm := range s.AllLegalMoves() {
		for _, to := range pm.To {
			m := chess.NewMove(pm.From, to)
			class := ClassifyMove(s, m)

			if class == chess.PawnMoveWithPromotion {
				if depth == 1 {
					nodes += uint64(len(promotionPieces))
					continue
				}
				for _, promo := range promotionPieces {
					m.Promotion = promo
					n, err := perft(ctx, applyClassified(s, m, class), depth-1)
					nodes += n
					if err != nil {
						return nodes, err
					}
				}
				continue
			}

			if depth == 1 {
				nodes++
				continue
			}
			n, err := perft(ctx, applyClassified(s, m, class), depth-1)
			nodes += n
			if err != nil {
				return nodes, err
			}
		}
	}
	return nodes, nil
}

// Divide returns the perft count below each root move, keyed by coordinate
// notation. Useful for locating generator disagreements.
func Divide(s *State, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	size := s.Board.Size()
	for _, pm := range s.AllLegalMoves() {
		for _, to := range pm.To {
			m := chess.NewMove(pm.From, to)
			class := ClassifyMove(s, m)
			if class == chess.PawnMoveWithPromotion {
				for _, promo := range promotionPieces {
					m.Promotion = promo
					out[m.Notation(size)] = Perft(applyClassified(s, m, class), depth-1)
				}
				continue
			}
			out[m.Notation(size)] = Perft(applyClassified(s, m, class), depth-1)
		}
	}
	return out
}
