package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(seed uint64) *Engine {
	cfg := DefaultConfig()
	cfg.Rand = rand.New(rand.NewPCG(seed, seed+1))
	return New(cfg)
}

func place(e *Engine, shape Shape, x, y int) {
	e.piece = Piece{Kind: ShapeI, Shape: shape, X: x, Y: y}
}

var verticalI = NewShape([]int{1}, []int{1}, []int{1}, []int{1})

func TestNewEngine(t *testing.T) {
	e := newTestEngine(1)

	assert.Equal(t, DefaultCols, e.Cols())
	assert.Equal(t, DefaultRows, e.Rows())
	assert.Equal(t, 0, e.Score())
	assert.True(t, e.Grid().Empty())

	p := e.Piece()
	assert.Equal(t, DefaultSpawnX, p.X)
	assert.Equal(t, DefaultSpawnY, p.Y)
	assert.True(t, ShapeOf(p.Kind).Equal(p.Shape))
	assert.Equal(t, 1, e.Stats().Spawned(p.Kind))

	assert.Panics(t, func() { New(Config{Cols: 0, Rows: 20}) })
}

func TestNewRejectsSpawnOutsideGrid(t *testing.T) {
	assert.Panics(t, func() { New(Config{Cols: 3, Rows: 20, SpawnX: 3}) })
	assert.Panics(t, func() { New(Config{Cols: 10, Rows: 20, SpawnX: -1}) })
	assert.Panics(t, func() { New(Config{Cols: 10, Rows: 20, SpawnX: 7}) })
	assert.Panics(t, func() { New(Config{Cols: 10, Rows: 20, SpawnY: 19}) })

	assert.NotPanics(t, func() { New(Config{Cols: 4, Rows: 2}) })
	assert.NotPanics(t, func() { New(Config{Cols: 10, Rows: 20, SpawnX: 6, SpawnY: -1}) })
}

func TestSpawnSizeCoversCatalog(t *testing.T) {
	for _, kind := range ShapeKinds {
		s := ShapeOf(kind)
		assert.LessOrEqual(t, s.Cols(), SpawnWidth, kind.String())
		assert.LessOrEqual(t, s.Rows(), SpawnHeight, kind.String())
	}
}

func TestValid(t *testing.T) {
	e := newTestEngine(1)
	place(e, ShapeOf(ShapeO), 0, -1)

	assert.True(t, e.Valid(0, 0), "rows above the grid are allowed")
	assert.False(t, e.Valid(-1, 0), "left wall")
	assert.True(t, e.Valid(8, 0))
	assert.False(t, e.Valid(9, 0), "right wall")
	assert.True(t, e.Valid(0, 19))
	assert.False(t, e.Valid(0, 20), "floor")

	e.grid.Set(1, 0, true)
	assert.False(t, e.Valid(0, 0), "overlaps a locked cell")
	assert.True(t, e.Valid(0, -1), "locked cells only block rows inside the grid")
}

func TestMoveLeftAtWallIsNoop(t *testing.T) {
	e := newTestEngine(1)
	place(e, ShapeOf(ShapeT), 0, 5)

	assert.False(t, e.MoveLeft())
	assert.Equal(t, 0, e.Piece().X)

	assert.True(t, e.MoveRight())
	assert.Equal(t, 1, e.Piece().X)
	assert.True(t, e.MoveLeft())
	assert.Equal(t, 0, e.Piece().X)
}

func TestMoveBlockedByLockedCell(t *testing.T) {
	e := newTestEngine(1)
	place(e, ShapeOf(ShapeO), 4, 10)
	e.grid.Set(6, 11, true)

	assert.False(t, e.MoveRight())
	assert.Equal(t, 4, e.Piece().X)
	assert.False(t, e.Move(2), "only single column moves")
}

func TestRotate(t *testing.T) {
	t.Run("four rotations restore the shape", func(t *testing.T) {
		for _, kind := range ShapeKinds {
			e := newTestEngine(1)
			e.piece = Piece{Kind: kind, Shape: ShapeOf(kind), X: 3, Y: 5}
			for range 4 {
				require.True(t, e.Rotate())
			}
			assert.True(t, ShapeOf(kind).Equal(e.Piece().Shape), kind.String())
		}
	})

	t.Run("blocked rotation is a no-op", func(t *testing.T) {
		e := newTestEngine(1)
		place(e, verticalI, 9, 5)

		assert.False(t, e.Rotate())
		assert.True(t, verticalI.Equal(e.Piece().Shape))
		assert.Equal(t, 9, e.Piece().X)
	})
}

func TestTickFalls(t *testing.T) {
	e := newTestEngine(1)
	y := e.Piece().Y

	res := e.Tick()
	assert.True(t, res.Moved)
	assert.False(t, res.Locked)
	assert.Equal(t, y+1, e.Piece().Y)
}

func TestLockMergesPiece(t *testing.T) {
	e := newTestEngine(1)
	place(e, ShapeOf(ShapeO), 0, 18)

	res := e.Tick()
	require.True(t, res.Locked)
	assert.Equal(t, 0, res.Cleared)
	assert.False(t, res.GameOver)

	g := e.Grid()
	assert.True(t, g.Filled(0, 18))
	assert.True(t, g.Filled(1, 19))
	assert.Equal(t, DefaultSpawnY, e.Piece().Y, "a new piece spawns")
	assert.Equal(t, 1, e.Stats().Locks())
}

func TestLockDropsCellsAboveGrid(t *testing.T) {
	e := newTestEngine(1)
	fillRow(e.grid, 2, 9)
	place(e, verticalI, 0, -2)

	res := e.Tick()
	require.True(t, res.Locked)
	g := e.Grid()
	assert.True(t, g.Filled(0, 0))
	assert.True(t, g.Filled(0, 1))
	assert.False(t, res.GameOver)
}

func TestSingleLineClear(t *testing.T) {
	e := newTestEngine(1)
	fillRow(e.grid, 19, 3)
	place(e, verticalI, 3, 16)

	res := e.Tick()
	require.True(t, res.Locked)
	assert.Equal(t, 1, res.Cleared)
	assert.Equal(t, 1, e.Score())

	g := e.Grid()
	for x := range g.Cols() {
		assert.False(t, g.Filled(x, 0), "new empty row at the top")
		assert.Equal(t, x == 3, g.Filled(x, 19), "column %d of bottom row", x)
	}
	assert.True(t, g.Filled(3, 17))
	assert.False(t, g.Filled(3, 16))
}

func TestDoubleLineClearHasNoBonus(t *testing.T) {
	e := newTestEngine(1)
	fillRow(e.grid, 18, 3)
	fillRow(e.grid, 19, 3)
	place(e, verticalI, 3, 16)

	res := e.Tick()
	assert.Equal(t, 2, res.Cleared)
	assert.Equal(t, 2, e.Score())
	assert.Equal(t, 1, e.Stats().LocksClearing(2))
}

func TestTetrisScoresFour(t *testing.T) {
	e := newTestEngine(1)
	for y := 16; y < 20; y++ {
		fillRow(e.grid, y, 0)
	}
	place(e, verticalI, 0, 0)

	res := e.HardDrop()
	assert.Equal(t, 16, res.Dropped)
	assert.Equal(t, 4, res.Cleared)
	assert.Equal(t, 4, e.Score())
	assert.True(t, e.Grid().Empty())
}

func TestHardDropMatchesRepeatedSoftDrop(t *testing.T) {
	hard := newTestEngine(7)
	soft := newTestEngine(7)

	for range 30 {
		want := hard.DropDistance()
		res := hard.HardDrop()
		require.True(t, res.Locked)
		assert.Equal(t, want, res.Dropped)

		falls := 0
		for {
			r := soft.SoftDrop()
			if r.Locked {
				break
			}
			falls++
		}
		assert.Equal(t, want, falls)

		assert.Equal(t, hard.Snapshot(), soft.Snapshot())
		assert.Equal(t, hard.Score(), soft.Score())
		assert.Equal(t, hard.Piece(), soft.Piece())
	}
}

func TestGameOverResets(t *testing.T) {
	e := newTestEngine(1)
	for y := range e.rows {
		fillRow(e.grid, y, 9)
	}
	e.score = 7
	place(e, ShapeOf(ShapeO), 3, -2)

	calls := 0
	final := -1
	e.OnGameOver(func(score int) {
		calls++
		final = score
	})

	res := e.Tick()
	require.True(t, res.Locked)
	assert.True(t, res.GameOver)
	assert.Equal(t, 7, res.FinalScore)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 7, final)

	assert.True(t, e.Grid().Empty())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, DefaultSpawnX, e.Piece().X)
	assert.True(t, e.Valid(0, 0), "the spawned piece fits the emptied board")
	assert.Equal(t, 1, e.Stats().GamesOver())
	assert.Equal(t, 7, e.Stats().BestScore())

	res = e.Tick()
	assert.False(t, res.GameOver)
	assert.Equal(t, 1, calls)
}

func TestReset(t *testing.T) {
	e := newTestEngine(1)
	fillRow(e.grid, 19, 0)
	e.score = 3

	e.Reset()
	assert.True(t, e.Grid().Empty())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, DefaultSpawnY, e.Piece().Y)
}

func TestSnapshot(t *testing.T) {
	e := newTestEngine(1)
	e.grid.Set(0, 19, true)
	place(e, verticalI, 5, -2)

	snap := e.Snapshot()
	require.Len(t, snap, DefaultRows)
	require.Len(t, snap[0], DefaultCols)

	assert.True(t, snap[19][0])
	assert.True(t, snap[0][5])
	assert.True(t, snap[1][5])
	assert.False(t, snap[2][5])

	snap[10][4] = true
	assert.False(t, e.grid.Filled(4, 10), "snapshot must not alias the grid")
	assert.False(t, e.grid.Filled(5, 0), "snapshot must not merge the piece")
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	e := newTestEngine(99)
	r := rand.New(rand.NewPCG(3, 4))

	for step := range 20000 {
		if r.IntN(4) == 0 {
			e.Tick()
		} else {
			e.Apply(Commands[r.IntN(len(Commands))])
		}

		g := e.grid
		require.Equal(t, DefaultCols, g.Cols())
		require.Equal(t, DefaultRows, g.Rows())

		p := e.Piece()
		for cx, cy := range p.Shape.Cells() {
			x, y := p.X+cx, p.Y+cy
			require.True(t, x >= 0 && x < DefaultCols, "step %d: column %d out of bounds", step, x)
			require.Less(t, y, DefaultRows, "step %d", step)
			if y >= 0 {
				require.False(t, g.Filled(x, y), "step %d: piece overlaps grid at (%d,%d)", step, x, y)
			}
		}
		require.GreaterOrEqual(t, e.Score(), 0)
	}

	stats := e.Stats().Summary()
	spawned := 0
	for _, n := range stats.Spawns {
		spawned += n
	}
	assert.Equal(t, stats.Locks+1, spawned)
	assert.Greater(t, stats.Locks, 0)
}
