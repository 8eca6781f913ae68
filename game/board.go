package game

import (
	"fmt"
)

// A Listener is called after every operation that mutates a Board. The
// display layer registers one to repaint; nothing in this package depends on
// what listeners do.
type Listener func(*Board)

// Board is the complete, single mutable aggregate for one game: the extended
// grid, whose turn it is, the per-color piece position lists, the undo
// stacks, the jump counter and the chronological move log.
//
// The position lists are kept in lock step with the grid: a square holds Red
// iff its index appears in the red list and not in the blue one. Every grid
// write goes through set so that invariant has a single place to go wrong.
type Board struct {
	cells     [ExtendedSide * ExtendedSide]Cell
	whoseMove Cell

	redPieces  []int
	bluePieces []int

	// Snapshot stacks for undo: one full copy of a color's position list is
	// pushed after each of that color's moves, on top of a base entry for
	// the starting layout. The jump stack records the jump counter at the
	// same points.
	redStack  [][]int
	blueStack [][]int
	jumpStack []int
	lastMover Cell

	jumps  int
	moves  int
	passes int

	moveLog   []Move
	listeners []Listener
}

// New returns a board cleared to the starting layout: red on a7 and g1, blue
// on a1 and g7, red to move.
func New() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// Copy returns a deep copy of the board suitable for speculative play: the
// grid, both position lists, both undo stacks and the jump stack are all
// duplicated. The move log and the listeners stay behind; a search clone has
// no use for either.
func (b *Board) Copy() *Board {
	c := &Board{
		cells:      b.cells,
		whoseMove:  b.whoseMove,
		redPieces:  copyInts(b.redPieces),
		bluePieces: copyInts(b.bluePieces),
		redStack:   copyStack(b.redStack),
		blueStack:  copyStack(b.blueStack),
		jumpStack:  copyInts(b.jumpStack),
		lastMover:  b.lastMover,
		jumps:      b.jumps,
		moves:      b.moves,
		passes:     b.passes,
	}
	return c
}

func copyInts(s []int) []int {
	c := make([]int, len(s))
	copy(c, s)
	return c
}

func copyStack(s [][]int) [][]int {
	c := make([][]int, len(s))
	for i, snap := range s {
		c[i] = copyInts(snap)
	}
	return c
}

// Clear resets the board to the starting layout and truncates all history
// back to a single base snapshot per stack.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Blocked
	}
	for c := byte('a'); c <= 'g'; c++ {
		for r := byte('1'); r <= '7'; r++ {
			b.cells[Index(c, r)] = Empty
		}
	}

	b.whoseMove = Red
	b.cells[Index('a', '7')] = Red
	b.cells[Index('g', '1')] = Red
	b.cells[Index('a', '1')] = Blue
	b.cells[Index('g', '7')] = Blue
	b.redPieces = []int{Index('a', '7'), Index('g', '1')}
	b.bluePieces = []int{Index('a', '1'), Index('g', '7')}

	b.jumps = 0
	b.moves = 0
	b.passes = 0
	b.lastMover = Empty
	b.moveLog = nil

	b.redStack = [][]int{copyInts(b.redPieces)}
	b.blueStack = [][]int{copyInts(b.bluePieces)}
	b.jumpStack = []int{0}

	b.notify()
}

// Get returns the contents of the square at index sq.
func (b *Board) Get(sq int) Cell {
	return b.cells[sq]
}

// GetAt returns the contents of square (col, row), border included.
func (b *Board) GetAt(col, row byte) Cell {
	return b.cells[Index(col, row)]
}

// set is the single mutation path for cells.
func (b *Board) set(sq int, v Cell) {
	b.cells[sq] = v
}

// WhoseMove returns the color with the next move. The value is arbitrary
// once GameOver is true.
func (b *Board) WhoseMove() Cell {
	return b.whoseMove
}

// NumPieces returns the number of pieces of the given color on the board.
func (b *Board) NumPieces(color Cell) int {
	n := 0
	for _, c := range b.cells {
		if c == color {
			n++
		}
	}
	return n
}

// Jumps returns the number of consecutive jumps since the last clone move.
func (b *Board) Jumps() int {
	return b.jumps
}

// NumMoves returns the total number of moves and passes since the last
// clear.
func (b *Board) NumMoves() int {
	return b.moves + b.passes
}

// PiecePositions returns a copy of the position list for the given color, in
// insertion order. Callers may hold it across moves; it will not see later
// mutations.
func (b *Board) PiecePositions(color Cell) []int {
	return copyInts(*b.piecesOf(color))
}

// MoveLog returns the moves made since the last clear, oldest first.
func (b *Board) MoveLog() []Move {
	log := make([]Move, len(b.moveLog))
	copy(log, b.moveLog)
	return log
}

func (b *Board) piecesOf(color Cell) *[]int {
	if color == Red {
		return &b.redPieces
	}
	return &b.bluePieces
}

func (b *Board) stackOf(color Cell) *[][]int {
	if color == Red {
		return &b.redStack
	}
	return &b.blueStack
}

// LegalMove reports whether the move is legal on the current board. A pass
// is always legal here; whether passing is permitted (no other move exists)
// is the turn loop's check. A non-pass move is legal iff its origin holds
// the color to move, its destination is empty, and the two squares are a
// clone or jump apart.
func (b *Board) LegalMove(m Move) bool {
	if m.IsPass() {
		return true
	}
	if b.cells[m.From()] != b.whoseMove {
		return false
	}
	if b.cells[m.To()] != Empty {
		return false
	}
	d := m.Distance()
	return d == 1 || d == 2
}

// EmptyNeighbors returns the indices of all empty squares within Chebyshev
// distance radius of sq, excluding sq itself. Radius 2 enumerates move
// destinations; radius 1 is the capture ring.
func (b *Board) EmptyNeighbors(sq, radius int) []int {
	var empty []int
	for dc := -radius; dc <= radius; dc++ {
		for dr := -radius; dr <= radius; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			n := Neighbor(sq, dc, dr)
			if b.cells[n] == Empty {
				empty = append(empty, n)
			}
		}
	}
	return empty
}

// CanMove reports whether the given color has any legal move, ignoring
// whose turn it is.
func (b *Board) CanMove(color Cell) bool {
	for _, sq := range *b.piecesOf(color) {
		for dc := -2; dc <= 2; dc++ {
			for dr := -2; dr <= 2; dr++ {
				if dc == 0 && dr == 0 {
					continue
				}
				if b.cells[Neighbor(sq, dc, dr)] == Empty {
					return true
				}
			}
		}
	}
	return false
}

// GameOver reports whether the game has ended: the jump limit has been
// reached, one side has no pieces, or neither side can move.
func (b *Board) GameOver() bool {
	if b.jumps >= JumpLimit {
		return true
	}
	if b.NumPieces(Red) == 0 || b.NumPieces(Blue) == 0 {
		return true
	}
	return !b.CanMove(Red) && !b.CanMove(Blue)
}

// Winner returns the color with more pieces, or Empty for a draw. Only
// meaningful once GameOver is true.
func (b *Board) Winner() Cell {
	red, blue := b.NumPieces(Red), b.NumPieces(Blue)
	switch {
	case red > blue:
		return Red
	case blue > red:
		return Blue
	default:
		return Empty
	}
}

// MakeMove applies the move for the color on move. The caller is expected to
// have validated it with LegalMove (and, for a pass, CanMove); an illegal
// move here is a logic error and panics.
//
// A clone leaves the origin in place and resets the jump counter; a jump
// vacates the origin and increments it. Either way the destination gains a
// piece of the moving color, every opposing piece adjacent to the
// destination flips to the mover, a snapshot of the mover's position list
// and the jump counter are pushed, and the turn changes.
func (b *Board) MakeMove(m Move) {
	if m.IsPass() {
		b.Pass()
		return
	}
	if !b.LegalMove(m) {
		panic(fmt.Sprintf("illegal move %s for %s", m, b.whoseMove))
	}

	mover := b.whoseMove
	b.moveLog = append(b.moveLog, m)
	b.moves++

	if m.IsJump() {
		b.set(m.From(), Empty)
		b.removePiece(mover, m.From())
		b.jumps++
	} else {
		b.jumps = 0
	}

	b.set(m.To(), mover)
	b.addPiece(mover, m.To())

	opponent := mover.Opposite()
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			sq := Neighbor(m.To(), dc, dr)
			if b.cells[sq] == opponent {
				b.set(sq, mover)
				b.removePiece(opponent, sq)
				b.addPiece(mover, sq)
			}
		}
	}

	b.pushSnapshot(mover)
	b.lastMover = mover
	b.whoseMove = opponent
	b.notify()
}

// Pass gives up the turn. It is only permitted when the color on move has no
// legal move; passing with moves available is a caller error. A pass pushes
// no undo snapshot.
func (b *Board) Pass() {
	if b.CanMove(b.whoseMove) {
		panic(fmt.Sprintf("%s passed with moves available", b.whoseMove))
	}
	b.passes++
	b.whoseMove = b.whoseMove.Opposite()
	b.notify()
}

func (b *Board) addPiece(color Cell, sq int) {
	pieces := b.piecesOf(color)
	for _, p := range *pieces {
		if p == sq {
			return
		}
	}
	*pieces = append(*pieces, sq)
}

func (b *Board) removePiece(color Cell, sq int) {
	pieces := b.piecesOf(color)
	for i, p := range *pieces {
		if p == sq {
			*pieces = append((*pieces)[:i], (*pieces)[i+1:]...)
			return
		}
	}
}

// Equal reports whether two boards show the same position: identical cells
// and the same color to move.
func (b *Board) Equal(o *Board) bool {
	return b.cells == o.cells && b.whoseMove == o.whoseMove
}

// AddListener registers fn to be called after every mutating operation.
func (b *Board) AddListener(fn Listener) {
	b.listeners = append(b.listeners, fn)
}

func (b *Board) notify() {
	for _, fn := range b.listeners {
		fn(b)
	}
}
