package game

import (
	"fmt"
)

// The four starting corners never take a block.
var protectedCorners = [...]int{
	Index('a', '1'),
	Index('a', '7'),
	Index('g', '1'),
	Index('g', '7'),
}

func reflectCol(col byte) byte { return 'a' + 'g' - col }
func reflectRow(row byte) byte { return '1' + '7' - row }

// SetBlock places a block at (col, row) and at its reflections across the
// board's vertical, horizontal and both-axes symmetry, keeping the starting
// position fair for both sides. Reflected squares that are occupied or
// already blocked are skipped silently, as is the whole request when the
// target is a protected corner. Asking for a square that is not empty is a
// domain error.
func (b *Board) SetBlock(col, row byte) error {
	sq := Index(col, row)
	if b.cells[sq] != Empty {
		return fmt.Errorf("illegal block placement at %c%c", col, row)
	}
	for _, corner := range protectedCorners {
		if sq == corner {
			b.notify()
			return nil
		}
	}

	b.set(sq, Blocked)
	rc, rr := reflectCol(col), reflectRow(row)
	for _, mirror := range []int{Index(rc, row), Index(col, rr), Index(rc, rr)} {
		if b.cells[mirror] == Empty {
			b.set(mirror, Blocked)
		}
	}
	b.notify()
	return nil
}
