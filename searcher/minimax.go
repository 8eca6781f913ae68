package searcher

import (
	"github.com/rs/zerolog/log"

	"ataxx/game"
)

// MaxDepth is the default search depth.
const MaxDepth = 4

// An Agent produces a move for its side. The second result is false when no
// action at all is available (the side has no pieces left).
type Agent interface {
	FindMove(b *game.Board) (game.Move, bool)
}

// Minimax is a fixed-depth alpha-beta searcher. It never touches the board
// it is given: FindMove clones it once and the whole tree walk mutates and
// undoes moves on that single private clone.
type Minimax struct {
	color game.Cell
	depth int
	best  game.Move
}

// NewMinimax returns a searcher playing color to the given depth; depth <= 0
// selects MaxDepth.
func NewMinimax(color game.Cell, depth int) *Minimax {
	if depth <= 0 {
		depth = MaxDepth
	}
	return &Minimax{color: color, depth: depth}
}

// FindMove picks a move for the searcher's color on the given position. A
// side with pieces but no legal move passes; a side with no pieces has no
// action and gets (zero, false).
func (m *Minimax) FindMove(b *game.Board) (game.Move, bool) {
	if !b.CanMove(m.color) {
		if b.NumPieces(m.color) > 0 {
			return game.PassMove(), true
		}
		return game.Move{}, false
	}

	m.best = game.Move{}
	value := m.search(b.Copy(), m.depth, 1, -Infinity, Infinity, true)
	log.Debug().
		Stringer("color", m.color).
		Stringer("move", m.best).
		Int("value", value).
		Int("depth", m.depth).
		Msg("search complete")
	return m.best, true
}

// search returns the alpha-beta value of the position for the root color.
// sense is +1 at nodes where the root color moves and -1 where the opponent
// does; root marks the top ply, the only one that records the best move.
// Every applied move is undone before the next sibling, so the one clone
// serves the entire tree.
func (m *Minimax) search(b *game.Board, depth, sense, alpha, beta int, root bool) int {
	if depth == 0 || b.GameOver() {
		return Score(b, m.color)
	}

	mover := m.color
	if sense < 0 {
		mover = m.color.Opposite()
	}

	best := -Infinity * sense
	moved := false
	for _, from := range b.PiecePositions(mover) {
		for _, to := range b.EmptyNeighbors(from, 2) {
			mv := game.NewMove(from, to)
			if !b.LegalMove(mv) {
				continue
			}
			b.MakeMove(mv)
			moved = true
			value := m.search(b, depth-1, -sense, alpha, beta, false)
			b.Undo()

			if sense > 0 {
				// A later move of equal value replaces an earlier one.
				if value >= best {
					best = value
					if root {
						m.best = mv
					}
				}
				if value > alpha {
					alpha = value
				}
			} else {
				if value <= best {
					best = value
				}
				if value < beta {
					beta = value
				}
			}
			if beta <= alpha {
				return best
			}
		}
	}
	if !moved {
		// The side to move is stuck; fall back to the static estimate.
		return Score(b, m.color)
	}
	return best
}
