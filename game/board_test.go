package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A short opening of clone moves; the last one captures red's a5 piece.
var game1 = []string{
	"a7-b7", "a1-a2",
	"a7-a6", "a2-a3",
	"a6-a5", "a3-a4",
}

// Two jumps each, then a clone that flips the blue piece next to it.
var game2 = []string{
	"a7-a5", "a1-a3", "a5-a4",
}

func makeMoves(t *testing.T, b *Board, moves []string) {
	t.Helper()
	for _, s := range moves {
		m, err := ParseMove(s)
		require.NoError(t, err)
		require.True(t, b.LegalMove(m), "move %s should be legal", s)
		b.MakeMove(m)
	}
}

// piecesMatchGrid checks that each color's position list agrees square for
// square with what the grid shows.
func piecesMatchGrid(t *testing.T, b *Board) {
	t.Helper()
	for _, color := range []Cell{Red, Blue} {
		var want []int
		for c := byte('a'); c <= 'g'; c++ {
			for r := byte('1'); r <= '7'; r++ {
				if b.GetAt(c, r) == color {
					want = append(want, Index(c, r))
				}
			}
		}
		require.ElementsMatch(t, want, b.PiecePositions(color),
			"%s position list out of step with the grid", color)
	}
}

func TestClearLayout(t *testing.T) {
	b := New()
	require.Equal(t, Red, b.GetAt('a', '7'))
	require.Equal(t, Red, b.GetAt('g', '1'))
	require.Equal(t, Blue, b.GetAt('a', '1'))
	require.Equal(t, Blue, b.GetAt('g', '7'))
	require.Equal(t, Red, b.WhoseMove())
	require.Equal(t, 2, b.NumPieces(Red))
	require.Equal(t, 2, b.NumPieces(Blue))
	require.Equal(t, 0, b.Jumps())
	require.Equal(t, Blocked, b.GetAt('a'-1, '4'))
	require.Equal(t, Blocked, b.GetAt('d', '7'+2))
	require.False(t, b.GameOver())
}

func TestLegalMove(t *testing.T) {
	b := New()
	require.True(t, b.LegalMove(PassMove()))
	require.True(t, b.LegalMove(NewMove(Index('a', '7'), Index('b', '7'))))
	require.True(t, b.LegalMove(NewMove(Index('a', '7'), Index('c', '5'))))
	// Blue is not on move.
	require.False(t, b.LegalMove(NewMove(Index('a', '1'), Index('a', '2'))))
	// Origin empty, destination occupied, distance out of range.
	require.False(t, b.LegalMove(NewMove(Index('d', '4'), Index('d', '5'))))
	require.False(t, b.LegalMove(NewMove(Index('a', '7'), Index('a', '1'))))
	require.False(t, b.LegalMove(NewMove(Index('a', '7'), Index('d', '7'))))
}

func TestCloneMove(t *testing.T) {
	b := New()
	b.MakeMove(NewMove(Index('a', '7'), Index('b', '7')))

	require.Equal(t, Red, b.GetAt('a', '7'), "clone origin keeps its piece")
	require.Equal(t, Red, b.GetAt('b', '7'))
	require.Equal(t, 3, b.NumPieces(Red))
	require.Equal(t, 0, b.Jumps())
	require.Equal(t, Blue, b.WhoseMove())
	require.ElementsMatch(t,
		[]int{Index('a', '7'), Index('g', '1'), Index('b', '7')},
		b.PiecePositions(Red))
}

func TestJumpMove(t *testing.T) {
	b := New()
	b.MakeMove(NewMove(Index('a', '7'), Index('c', '7')))

	require.Equal(t, Empty, b.GetAt('a', '7'), "jump vacates its origin")
	require.Equal(t, Red, b.GetAt('c', '7'))
	require.Equal(t, 2, b.NumPieces(Red))
	require.Equal(t, 1, b.Jumps())
	require.Equal(t, Blue, b.WhoseMove())
}

func TestCapturePropagation(t *testing.T) {
	b := New()
	makeMoves(t, b, game2)

	// Red's clone to a4 flips the blue piece on a3.
	require.Equal(t, Red, b.GetAt('a', '3'))
	require.Equal(t, Red, b.GetAt('a', '4'))
	require.Equal(t, Red, b.GetAt('a', '5'))
	require.Equal(t, 4, b.NumPieces(Red))
	require.Equal(t, 1, b.NumPieces(Blue))
	require.Contains(t, b.PiecePositions(Red), Index('a', '3'))
	require.NotContains(t, b.PiecePositions(Blue), Index('a', '3'))
	require.Equal(t, 0, b.Jumps(), "clone resets the jump counter")
	require.Equal(t, Blue, b.WhoseMove())
}

func TestUndoRoundTrip(t *testing.T) {
	b := New()
	start := b.Copy()
	makeMoves(t, b, game1)
	end := b.Copy()

	for range game1 {
		b.Undo()
	}
	require.True(t, b.Equal(start), "undoing every move must restore the start")
	require.Equal(t, 2, b.NumPieces(Red))
	require.Equal(t, 2, b.NumPieces(Blue))
	require.Equal(t, 0, b.NumMoves())
	require.Empty(t, b.MoveLog())

	makeMoves(t, b, game1)
	require.True(t, b.Equal(end), "replaying must reach the same position")
}

func TestUndoRestoresCaptures(t *testing.T) {
	b := New()
	makeMoves(t, b, game2)
	b.Undo()

	// Back to the position after blue's a1-a3 jump.
	require.Equal(t, Blue, b.GetAt('a', '3'))
	require.Equal(t, Empty, b.GetAt('a', '4'))
	require.Equal(t, Red, b.GetAt('a', '5'))
	require.Equal(t, Red, b.WhoseMove())
	require.Equal(t, 2, b.Jumps(), "jump counter restored from the stack")
	require.ElementsMatch(t,
		[]int{Index('a', '3'), Index('g', '7')},
		b.PiecePositions(Blue))
	require.Len(t, b.MoveLog(), 2)
	require.Equal(t, 2, b.NumMoves())
	piecesMatchGrid(t, b)
}

func TestUndoEveryPly(t *testing.T) {
	// At every ply the board must rewind one step exactly, not just after a
	// full rewind.
	b := New()
	snapshots := []*Board{b.Copy()}
	for _, s := range game1 {
		m, err := ParseMove(s)
		require.NoError(t, err)
		b.MakeMove(m)
		snapshots = append(snapshots, b.Copy())
	}
	for i := len(snapshots) - 2; i >= 0; i-- {
		b.Undo()
		require.True(t, b.Equal(snapshots[i]), "undo to ply %d", i)
		require.Equal(t, i, b.NumMoves())
		piecesMatchGrid(t, b)
	}
}

func TestUndoAfterOpposingCapture(t *testing.T) {
	// The snapshot restored for the mover predates the opponent's reply, so
	// a capture by that reply appears in both colors' snapshots. The undone
	// board must side with the capture, in the lists as well as the grid.
	b := New()
	makeMoves(t, b, game2) // red's a5-a4 flips blue's a3
	saved := b.Copy()

	makeMoves(t, b, []string{"g7-g6"})
	b.Undo()
	require.True(t, b.Equal(saved))
	require.NotContains(t, b.PiecePositions(Blue), Index('a', '3'))
	piecesMatchGrid(t, b)

	// Trying one move, undoing it and trying another is how the search
	// walks siblings; each make/undo pair must stay the identity.
	makeMoves(t, b, []string{"g7-g6"})
	after := b.Copy()
	makeMoves(t, b, []string{"g1-g2"})
	b.Undo()
	require.True(t, b.Equal(after))
	require.Equal(t, Red, b.GetAt('a', '3'))
	piecesMatchGrid(t, b)
}

func TestUndoOnFreshBoardIsNoop(t *testing.T) {
	b := New()
	start := b.Copy()
	b.Undo()
	require.True(t, b.Equal(start))
}

func TestReplayDeterminism(t *testing.T) {
	a, b := New(), New()
	makeMoves(t, a, game1)
	makeMoves(t, b, game1)
	require.True(t, a.Equal(b))
	require.Equal(t, a.MoveLog(), b.MoveLog())
}

func TestCopyIsIndependent(t *testing.T) {
	b := New()
	makeMoves(t, b, game2)
	c := b.Copy()

	c.MakeMove(NewMove(Index('g', '7'), Index('f', '7')))
	require.Equal(t, Empty, b.GetAt('f', '7'))
	require.Equal(t, Blue, b.WhoseMove())

	c.Undo()
	require.True(t, c.Equal(b), "clone undo must restore the cloned position")
	require.Empty(t, c.MoveLog(), "clone does not carry the move log")
}

func TestJumpLimitEndsGame(t *testing.T) {
	b := New()
	cycle := []string{"a7-c7", "a1-c1", "c7-a7", "c1-a1"}
	for i := 0; i < 6; i++ {
		makeMoves(t, b, cycle)
	}
	require.Equal(t, 24, b.Jumps())
	require.False(t, b.GameOver())

	b.MakeMove(NewMove(Index('a', '7'), Index('c', '7')))
	require.Equal(t, 25, b.Jumps())
	require.True(t, b.GameOver(), "25 consecutive jumps end the game")
	require.Equal(t, 2, b.NumPieces(Red), "piece counts are irrelevant to the jump limit")
	require.Equal(t, Empty, b.Winner())
}

// blockOut blocks every empty square reachable from all four corners, which
// by reflection seals in every starting piece.
func blockOut(t *testing.T, b *Board) {
	t.Helper()
	for _, cr := range []string{"a5", "a6", "b5", "b6", "b7", "c5", "c6", "c7"} {
		require.NoError(t, b.SetBlock(cr[0], cr[1]))
	}
}

func TestStalemateEndsGame(t *testing.T) {
	b := New()
	blockOut(t, b)
	require.False(t, b.CanMove(Red))
	require.False(t, b.CanMove(Blue))
	require.True(t, b.GameOver())
	require.Equal(t, Empty, b.Winner(), "2-2 stalemate is a draw")
}

func TestPass(t *testing.T) {
	b := New()
	require.Panics(t, func() { b.Pass() }, "passing with moves available is a caller error")

	b = New()
	blockOut(t, b)
	require.NotPanics(t, func() { b.Pass() })
	require.Equal(t, Blue, b.WhoseMove())
	require.Equal(t, 1, b.NumMoves())
}

func TestSetBlockReflections(t *testing.T) {
	b := New()
	require.NoError(t, b.SetBlock('c', '2'))
	for _, cr := range []string{"c2", "e2", "c6", "e6"} {
		require.Equal(t, Blocked, b.GetAt(cr[0], cr[1]), "expected a block at %s", cr)
	}

	// The center is its own reflection.
	require.NoError(t, b.SetBlock('d', '4'))
	require.Equal(t, Blocked, b.GetAt('d', '4'))

	// A protected corner is silently skipped, even once its piece has left.
	b = New()
	makeMoves(t, b, []string{"a7-c7"})
	require.NoError(t, b.SetBlock('a', '7'))
	require.Equal(t, Empty, b.GetAt('a', '7'))

	// A block on a piece is a domain error.
	require.Error(t, b.SetBlock('c', '7'))

	// A reflection landing on a piece is skipped, not an error: g4 mirrors
	// onto a4, which we occupy first.
	b = New()
	makeMoves(t, b, []string{"a7-a5", "a1-b1", "a5-a4"})
	require.NoError(t, b.SetBlock('g', '4'))
	require.Equal(t, Blocked, b.GetAt('g', '4'))
	require.Equal(t, Red, b.GetAt('a', '4'))
}

func TestClearRemovesBlocks(t *testing.T) {
	b := New()
	require.NoError(t, b.SetBlock('d', '4'))
	makeMoves(t, b, []string{"a7-b7"})
	b.Clear()
	require.Equal(t, Empty, b.GetAt('d', '4'))
	require.Equal(t, Red, b.WhoseMove())
	require.Empty(t, b.MoveLog())
	require.True(t, b.Equal(New()))
}

func TestEmptyNeighbors(t *testing.T) {
	b := New()
	corner := Index('a', '7')
	within1 := b.EmptyNeighbors(corner, 1)
	require.ElementsMatch(t, []int{Index('a', '6'), Index('b', '6'), Index('b', '7')}, within1)
	require.Len(t, b.EmptyNeighbors(corner, 2), 8)
}

func TestListeners(t *testing.T) {
	b := New()
	calls := 0
	b.AddListener(func(*Board) { calls++ })

	b.MakeMove(NewMove(Index('a', '7'), Index('b', '7')))
	require.Equal(t, 1, calls)
	b.Undo()
	require.Equal(t, 2, calls)
	require.NoError(t, b.SetBlock('d', '4'))
	require.Equal(t, 3, calls)
	b.Clear()
	require.Equal(t, 4, calls)
}

func TestIllegalMovePanics(t *testing.T) {
	b := New()
	require.Panics(t, func() { b.MakeMove(NewMove(Index('a', '1'), Index('a', '2'))) })
}

func TestDumpFormat(t *testing.T) {
	b := New()
	require.Equal(t,
		"===\n"+
			"  r - - - - - b\n"+
			"  - - - - - - -\n"+
			"  - - - - - - -\n"+
			"  - - - - - - -\n"+
			"  - - - - - - -\n"+
			"  - - - - - - -\n"+
			"  b - - - - - r\n"+
			"===\n",
		b.Dump())
}
