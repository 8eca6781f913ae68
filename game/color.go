package game

// Cell is the contents of a single board square. Red and Blue double as
// player identifiers: the cell a piece occupies and the side it belongs to
// are the same value.
type Cell uint8

const (
	Empty Cell = iota
	Red
	Blue
	Blocked
)

// Opposite returns the other player's color. It is only meaningful for Red
// and Blue; Empty and Blocked map to themselves.
func (c Cell) Opposite() Cell {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return c
	}
}

// IsPiece reports whether the cell holds a piece of either color.
func (c Cell) IsPiece() bool {
	return c == Red || c == Blue
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	case Blocked:
		return "Blocked"
	default:
		return "Unknown"
	}
}
