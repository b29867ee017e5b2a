// Package engine implements the rules of a single-player falling-block
// puzzle: a fixed grid, one active piece under player control, gravity,
// locking, line clears and scoring.
//
// An Engine is not safe for concurrent use. Callers serialize timer ticks and
// player commands, for example through the loop package's Scheduler.
package engine

import (
	"math/rand/v2"
)

const (
	DefaultCols   = 10
	DefaultRows   = 20
	DefaultSpawnX = 3
	DefaultSpawnY = 0
)

// Widest and tallest catalog shapes in spawn orientation.
const (
	SpawnWidth  = 4
	SpawnHeight = 2
)

// SpawnFits reports whether every catalog shape placed at (x, y) lies inside
// a cols×rows grid. Rows above the grid are allowed.
func SpawnFits(cols, rows, x, y int) bool {
	return x >= 0 && x+SpawnWidth <= cols && y+SpawnHeight <= rows
}

// Config describes the board geometry and the randomness source.
type Config struct {
	Cols   int
	Rows   int
	SpawnX int
	SpawnY int

	// Rand picks spawned shapes. A randomly seeded source is used when nil.
	Rand *rand.Rand
}

// DefaultConfig returns the reference 10×20 board spawning at (3, 0).
func DefaultConfig() Config {
	return Config{
		Cols:   DefaultCols,
		Rows:   DefaultRows,
		SpawnX: DefaultSpawnX,
		SpawnY: DefaultSpawnY,
	}
}

// Piece is the currently falling tetromino. X and Y locate the top-left of
// its bounding box; Y is negative while the piece sticks out above the grid.
type Piece struct {
	Kind  ShapeKind
	Shape Shape
	X, Y  int
}

// StepResult describes what a gravity step or command did.
type StepResult struct {
	// Moved is set when the piece changed position or orientation.
	Moved bool
	// Dropped is the number of rows a hard drop fell before locking.
	Dropped int
	// Locked is set when the piece was merged into the grid.
	Locked bool
	// Cleared is the number of rows removed by the lock.
	Cleared int
	// GameOver is set when the next piece could not be placed. FinalScore
	// holds the score reached before the board was reset.
	GameOver   bool
	FinalScore int
}

// Engine owns the grid, the active piece and the score.
type Engine struct {
	cols   int
	rows   int
	spawnX int
	spawnY int

	grid  *Grid
	piece Piece
	score int

	rng        *rand.Rand
	stats      *Stats
	onGameOver func(finalScore int)
}

// New creates an engine with an empty grid, a freshly spawned piece and a
// zero score.
func New(cfg Config) *Engine {
	if cfg.Cols <= 0 || cfg.Rows <= 0 {
		panic("engine: grid dimensions must be positive")
	}
	if !SpawnFits(cfg.Cols, cfg.Rows, cfg.SpawnX, cfg.SpawnY) {
		panic("engine: spawn position does not fit the grid")
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	e := &Engine{
		cols:   cfg.Cols,
		rows:   cfg.Rows,
		spawnX: cfg.SpawnX,
		spawnY: cfg.SpawnY,
		grid:   NewGrid(cfg.Cols, cfg.Rows),
		rng:    rng,
		stats:  newStats(),
	}
	e.spawn()
	return e
}

// OnGameOver registers fn to be called from inside the lock step when the
// next piece cannot be placed, before the board and score are reset.
func (e *Engine) OnGameOver(fn func(finalScore int)) {
	e.onGameOver = fn
}

func (e *Engine) Cols() int     { return e.cols }
func (e *Engine) Rows() int     { return e.rows }
func (e *Engine) Score() int    { return e.score }
func (e *Engine) Stats() *Stats { return e.stats }

// Piece returns the active piece. Its shape must not be modified.
func (e *Engine) Piece() Piece {
	return e.piece
}

// Grid returns a copy of the locked cells.
func (e *Engine) Grid() *Grid {
	return e.grid.Clone()
}

// Valid reports whether the active piece, offset by (dx, dy), stays inside
// the side and bottom walls without overlapping a locked cell. Rows above the
// grid are always allowed.
func (e *Engine) Valid(dx, dy int) bool {
	return e.ValidShape(e.piece.Shape, dx, dy)
}

// ValidShape is Valid for an arbitrary shape placed at the active piece's
// position.
func (e *Engine) ValidShape(shape Shape, dx, dy int) bool {
	for cx, cy := range shape.Cells() {
		x := e.piece.X + cx + dx
		y := e.piece.Y + cy + dy

		if x < 0 || x >= e.cols || y >= e.rows {
			return false
		}
		if y >= 0 && e.grid.Filled(x, y) {
			return false
		}
	}
	return true
}

// Move shifts the piece one column; dir is -1 for left and +1 for right.
// Illegal moves are ignored.
func (e *Engine) Move(dir int) bool {
	if dir != -1 && dir != 1 {
		return false
	}
	if !e.Valid(dir, 0) {
		return false
	}
	e.piece.X += dir
	return true
}

func (e *Engine) MoveLeft() bool  { return e.Move(-1) }
func (e *Engine) MoveRight() bool { return e.Move(1) }

// Rotate turns the piece clockwise in place. There are no wall kicks: if the
// rotated shape does not fit, nothing happens.
func (e *Engine) Rotate() bool {
	rotated := e.piece.Shape.Rotate()
	if !e.ValidShape(rotated, 0, 0) {
		return false
	}
	e.piece.Shape = rotated
	return true
}

// Tick applies one gravity step: the piece falls a row, or locks when it
// cannot.
func (e *Engine) Tick() StepResult {
	if e.Valid(0, 1) {
		e.piece.Y++
		return StepResult{Moved: true}
	}
	return e.lock()
}

// SoftDrop is a manual gravity step.
func (e *Engine) SoftDrop() StepResult {
	return e.Tick()
}

// DropDistance returns how many rows the piece can fall before it rests.
func (e *Engine) DropDistance() int {
	offset := 0
	for e.Valid(0, offset+1) {
		offset++
	}
	return offset
}

// HardDrop drops the piece as far as it goes and locks it.
func (e *Engine) HardDrop() StepResult {
	offset := e.DropDistance()
	e.piece.Y += offset

	res := e.Tick()
	res.Dropped = offset
	res.Moved = offset > 0
	return res
}

// Reset clears the board and score and spawns a new piece.
func (e *Engine) Reset() {
	e.grid = NewGrid(e.cols, e.rows)
	e.score = 0
	e.spawn()
}

// Snapshot returns the grid with the active piece drawn over it, indexed
// [row][col]. Piece cells above the grid are omitted.
func (e *Engine) Snapshot() [][]bool {
	cells := e.grid.Cells()
	for cx, cy := range e.piece.Shape.Cells() {
		x, y := e.piece.X+cx, e.piece.Y+cy
		if y < 0 || y >= e.rows || x < 0 || x >= e.cols {
			continue
		}
		cells[y][x] = true
	}
	return cells
}

func (e *Engine) lock() StepResult {
	next := e.grid.Clone()
	for cx, cy := range e.piece.Shape.Cells() {
		y := e.piece.Y + cy
		if y < 0 {
			continue
		}
		next.Set(e.piece.X+cx, y, true)
	}

	cleared := next.ClearLines()
	e.score += cleared
	e.grid = next
	e.stats.recordLock(cleared)

	res := StepResult{Locked: true, Cleared: cleared}

	e.spawn()
	if e.Valid(0, 0) {
		return res
	}

	// The colliding piece stays active; it fits the emptied board.
	res.GameOver = true
	res.FinalScore = e.score
	e.stats.recordGameOver(e.score)
	if e.onGameOver != nil {
		e.onGameOver(e.score)
	}
	e.grid = NewGrid(e.cols, e.rows)
	e.score = 0
	return res
}

func (e *Engine) spawn() {
	kind := ShapeKinds[e.rng.IntN(len(ShapeKinds))]
	e.piece = Piece{
		Kind:  kind,
		Shape: ShapeOf(kind),
		X:     e.spawnX,
		Y:     e.spawnY,
	}
	e.stats.recordSpawn(kind)
}
