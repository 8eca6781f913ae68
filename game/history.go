package game

// pushSnapshot records the mover's position list and the jump counter after
// a completed move. Undo restores from these full snapshots; at this board
// size a copy per ply costs nothing and keeps undo independent of what kind
// of move is being reversed.
func (b *Board) pushSnapshot(mover Cell) {
	stack := b.stackOf(mover)
	*stack = append(*stack, copyInts(*b.piecesOf(mover)))
	b.jumpStack = append(b.jumpStack, b.jumps)
}

// Undo reverses the most recent piece move, restoring the grid, both
// position lists, the jump counter, the move counter, the turn and the move
// log to the prior ply. Passes are not recorded and so are not undone.
// Undoing with no moves made is a no-op.
//
// The mover's stack is popped and its new top repainted; the other color is
// repainted from its current top, which is exactly its piece set before the
// undone move and so puts back anything the move captured. The mover's
// snapshot is one ply older than the other color's, so squares the other
// color captured in between appear in both; the later snapshot wins, on the
// grid by repaint order and in the lists by the filter at the end.
func (b *Board) Undo() {
	mover := b.lastMover
	if !mover.IsPiece() {
		return
	}
	stack := b.stackOf(mover)
	if len(*stack) <= 1 {
		return
	}

	b.jumpStack = b.jumpStack[:len(b.jumpStack)-1]
	b.jumps = b.jumpStack[len(b.jumpStack)-1]

	// Wipe the pieces; interior blocks stay where they are.
	for c := byte('a'); c <= 'g'; c++ {
		for r := byte('1'); r <= '7'; r++ {
			sq := Index(c, r)
			if b.cells[sq].IsPiece() {
				b.set(sq, Empty)
			}
		}
	}

	*stack = (*stack)[:len(*stack)-1]
	b.repaint(mover, (*stack)[len(*stack)-1])

	other := mover.Opposite()
	otherStack := *b.stackOf(other)
	b.repaint(other, otherStack[len(otherStack)-1])
	b.dropCaptured(mover)

	b.moves--
	b.moveLog = b.moveLog[:len(b.moveLog)-1]
	b.whoseMove = mover
	b.lastMover = other
	b.notify()
}

// dropCaptured removes from a color's position list every square the grid no
// longer assigns to it, keeping the list in lock step with the cells.
func (b *Board) dropCaptured(color Cell) {
	pieces := b.piecesOf(color)
	kept := (*pieces)[:0]
	for _, sq := range *pieces {
		if b.cells[sq] == color {
			kept = append(kept, sq)
		}
	}
	*pieces = kept
}

// repaint replaces a color's live position list with the given snapshot and
// writes its pieces back onto the grid.
func (b *Board) repaint(color Cell, snapshot []int) {
	*b.piecesOf(color) = copyInts(snapshot)
	for _, sq := range snapshot {
		b.set(sq, color)
	}
}
