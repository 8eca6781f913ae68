package game

import (
	"fmt"
	"regexp"
)

// Squares are addressed by column 'a'..'g' and row '1'..'7', or by a single
// linearized index into the extended grid (row-major, counting from 0).
// Columns outside 'a'..'g' and rows outside '1'..'7' land in the two-deep
// border region, which is permanently blocked. The border means neighbor
// arithmetic never has to test for the edge of the board: a step off the
// playable area reads as Blocked and fails the usual emptiness checks.
const (
	// Side is the number of squares on a side of the playable board.
	Side = 7
	// ExtendedSide is Side plus the two-deep blocked border on each edge.
	ExtendedSide = Side + 4
	// JumpLimit is the number of consecutive jumps, with no intervening
	// clone, after which the game ends.
	JumpLimit = 25
)

// Index returns the linearized index of square (col, row).
func Index(col, row byte) int {
	return int(row-'1'+2)*ExtendedSide + int(col-'a'+2)
}

// Col returns the column letter of the square at index sq.
func Col(sq int) byte {
	return byte(sq%ExtendedSide) - 2 + 'a'
}

// Row returns the row digit of the square at index sq.
func Row(sq int) byte {
	return byte(sq/ExtendedSide) - 2 + '1'
}

// Neighbor returns the index dc columns and dr rows away from sq.
func Neighbor(sq, dc, dr int) int {
	return sq + dc + dr*ExtendedSide
}

// InBounds reports whether sq lies inside the 7x7 playable region.
func InBounds(sq int) bool {
	c, r := Col(sq), Row(sq)
	return c >= 'a' && c <= 'g' && r >= '1' && r <= '7'
}

// chebyshev is the king-move distance between two squares.
func chebyshev(a, b int) int {
	dc := int(Col(a)) - int(Col(b))
	if dc < 0 {
		dc = -dc
	}
	dr := int(Row(a)) - int(Row(b))
	if dr < 0 {
		dr = -dr
	}
	if dc > dr {
		return dc
	}
	return dr
}

// A Move is either a pass or an ordered (from, to) pair of playable squares.
// Its kind is derived from the Chebyshev distance between the endpoints:
// distance 1 is a clone (the origin keeps its piece and the destination
// gains a new one), distance 2 is a jump (the piece relocates and the origin
// becomes empty). The zero Move is not valid; construct moves with NewMove,
// PassMove or ParseMove.
type Move struct {
	from, to int
	pass     bool
}

// NewMove returns the move from one square index to another.
func NewMove(from, to int) Move {
	return Move{from: from, to: to}
}

// PassMove returns the pass move.
func PassMove() Move {
	return Move{pass: true}
}

var movePattern = regexp.MustCompile(`^([a-g])([1-7])-([a-g])([1-7])$`)

// ParseMove converts text in the form "a7-b7" (or "-" for a pass) into a
// Move. It only validates the notation; legality is the board's business.
func ParseMove(s string) (Move, error) {
	if s == "-" {
		return PassMove(), nil
	}
	m := movePattern.FindStringSubmatch(s)
	if m == nil {
		return Move{}, fmt.Errorf("invalid move %q", s)
	}
	return NewMove(Index(m[1][0], m[2][0]), Index(m[3][0], m[4][0])), nil
}

// IsPass reports whether the move is a pass.
func (m Move) IsPass() bool { return m.pass }

// From returns the origin square index of a non-pass move.
func (m Move) From() int { return m.from }

// To returns the destination square index of a non-pass move.
func (m Move) To() int { return m.to }

// Distance is the Chebyshev distance between origin and destination.
func (m Move) Distance() int {
	return chebyshev(m.from, m.to)
}

// IsJump reports whether the move relocates its piece (distance 2).
func (m Move) IsJump() bool {
	return !m.pass && m.Distance() == 2
}

// IsClone reports whether the move duplicates its piece (distance 1).
func (m Move) IsClone() bool {
	return !m.pass && m.Distance() == 1
}

func (m Move) String() string {
	if m.pass {
		return "-"
	}
	return fmt.Sprintf("%c%c-%c%c", Col(m.from), Row(m.from), Col(m.to), Row(m.to))
}
