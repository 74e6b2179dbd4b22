package model

import "math/rand"

// LegalMoves enumerates every legal move for the given color by testing all
// (origin, destination) pairs. 64x64 pairs is cheap on an 8x8 board and the
// position changes every call, so nothing is memoized.
func (b Board) LegalMoves(color Color) []Move {
	moves := []Move{}
	for fromRow := 0; fromRow < 8; fromRow++ {
		for fromCol := 0; fromCol < 8; fromCol++ {
			from := Square{Row: fromRow, Col: fromCol}
			piece := b.PieceAt(from)
			if piece == nil || piece.Color != color {
				continue
			}
			for toRow := 0; toRow < 8; toRow++ {
				for toCol := 0; toCol < 8; toCol++ {
					to := Square{Row: toRow, Col: toCol}
					if ok, _ := b.IsLegalMove(from, to); ok {
						moves = append(moves, Move{From: from, To: to})
					}
				}
			}
		}
	}
	return moves
}

// MoveSelector picks a move for a color. The second return is false when
// the color has no legal moves; the turn controller decides what that
// terminal condition means. Any policy over the legal-move enumeration
// (weighted, minimax) satisfies the same contract.
type MoveSelector interface {
	ChooseMove(b Board, color Color) (Move, bool)
}

// RandomSelector picks uniformly at random among the legal moves. The RNG
// is injected so games can be replayed deterministically.
type RandomSelector struct {
	rng *rand.Rand
}

func NewRandomSelector(rng *rand.Rand) *RandomSelector {
	return &RandomSelector{rng: rng}
}

func (s *RandomSelector) ChooseMove(b Board, color Color) (Move, bool) {
	moves := b.LegalMoves(color)
	if len(moves) == 0 {
		return Move{}, false
	}
	return moves[s.rng.Intn(len(moves))], true
}
