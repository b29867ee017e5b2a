package engine

// Grid is the fixed-size field of locked cells, indexed [row][col] with row 0
// at the top.
type Grid struct {
	cols  int
	rows  int
	cells [][]bool
}

// NewGrid allocates an empty grid. Both dimensions must be positive.
func NewGrid(cols, rows int) *Grid {
	if cols <= 0 || rows <= 0 {
		panic("grid dimensions must be positive")
	}

	cells := make([][]bool, rows)
	for y := range cells {
		cells[y] = make([]bool, cols)
	}
	return &Grid{cols: cols, rows: rows, cells: cells}
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Filled reports whether the cell at (x, y) is locked. Out-of-bounds cells
// read as empty.
func (g *Grid) Filled(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y][x]
}

// Set marks the cell at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, filled bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y][x] = filled
}

// RowFull reports whether every cell of row y is filled.
func (g *Grid) RowFull(y int) bool {
	for _, c := range g.cells[y] {
		if !c {
			return false
		}
	}
	return true
}

// Empty reports whether no cell is filled.
func (g *Grid) Empty() bool {
	for y := range g.cells {
		for _, c := range g.cells[y] {
			if c {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{cols: g.cols, rows: g.rows, cells: make([][]bool, g.rows)}
	for y := range g.cells {
		out.cells[y] = make([]bool, g.cols)
		copy(out.cells[y], g.cells[y])
	}
	return out
}

// ClearLines removes every full row, inserting an empty row at the top for
// each, and returns how many were removed. Rows are scanned bottom-up and a
// row index is re-tested after a removal since the rows above shift into it.
func (g *Grid) ClearLines() int {
	cleared := 0
	for y := g.rows - 1; y >= 0; {
		if !g.RowFull(y) {
			y--
			continue
		}
		g.removeRow(y)
		cleared++
	}
	return cleared
}

func (g *Grid) removeRow(y int) {
	removed := g.cells[y]
	copy(g.cells[1:y+1], g.cells[:y])
	clear(removed)
	g.cells[0] = removed
}

// Cells returns a copy of the cell matrix.
func (g *Grid) Cells() [][]bool {
	return g.Clone().cells
}
