package searcher

import (
	"golang.org/x/exp/rand"

	"ataxx/game"
)

// Random picks uniformly among the legal moves of its color. It is the
// baseline opponent for exercising the engine and for eyeballing that the
// minimax agent actually beats something.
type Random struct {
	color game.Cell
	rng   *rand.Rand
}

// NewRandom returns a random agent for color drawing from the given seed.
func NewRandom(color game.Cell, seed uint64) *Random {
	return &Random{color: color, rng: rand.New(rand.NewSource(seed))}
}

// Seed reseeds the agent's generator.
func (r *Random) Seed(seed uint64) {
	r.rng.Seed(seed)
}

// FindMove returns a uniformly chosen legal move, a pass when the color is
// stuck with pieces, or (zero, false) when it has none.
func (r *Random) FindMove(b *game.Board) (game.Move, bool) {
	var moves []game.Move
	for _, from := range b.PiecePositions(r.color) {
		for _, to := range b.EmptyNeighbors(from, 2) {
			moves = append(moves, game.NewMove(from, to))
		}
	}
	if len(moves) == 0 {
		if b.NumPieces(r.color) > 0 {
			return game.PassMove(), true
		}
		return game.Move{}, false
	}
	return moves[r.rng.Intn(len(moves))], true
}
