package game

import (
	"strings"
)

// String renders the playable area as text, row 7 first, one character per
// square: r and b for pieces, X for a block, - for an empty square. The
// border region is never printed.
func (b *Board) String() string {
	var sb strings.Builder
	for r := byte('7'); r >= '1'; r-- {
		sb.WriteString(" ")
		for c := byte('a'); c <= 'g'; c++ {
			sb.WriteByte(' ')
			switch b.cells[Index(c, r)] {
			case Red:
				sb.WriteByte('r')
			case Blue:
				sb.WriteByte('b')
			case Blocked:
				sb.WriteByte('X')
			default:
				sb.WriteByte('-')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Dump returns the board between "===" fences, the format used by the dump
// command.
func (b *Board) Dump() string {
	return "===\n" + b.String() + "===\n"
}
