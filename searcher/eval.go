package searcher

import (
	"math"

	"ataxx/game"
)

// Infinity bounds every reachable score; terminal positions evaluate to the
// full magnitude so that a guaranteed win outranks any material advantage.
const Infinity = math.MaxInt32

// Score statically evaluates the board for the given color. A finished game
// is worth plus or minus Infinity by strict piece-count comparison (zero for
// a draw); anything else is the piece differential.
func Score(b *game.Board, color game.Cell) int {
	mine := b.NumPieces(color)
	theirs := b.NumPieces(color.Opposite())
	if b.GameOver() {
		switch {
		case mine > theirs:
			return Infinity
		case mine < theirs:
			return -Infinity
		default:
			return 0
		}
	}
	return mine - theirs
}
