package engine

import (
	"fmt"
	"iter"
)

// ShapeKind identifies one of the seven canonical tetrominoes.
type ShapeKind int

const (
	ShapeI ShapeKind = iota
	ShapeZ
	ShapeS
	ShapeT
	ShapeL
	ShapeJ
	ShapeO
)

// ShapeKinds lists every kind in catalog order.
var ShapeKinds = []ShapeKind{ShapeI, ShapeZ, ShapeS, ShapeT, ShapeL, ShapeJ, ShapeO}

func (k ShapeKind) String() string {
	switch k {
	case ShapeI:
		return "I"
	case ShapeZ:
		return "Z"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeL:
		return "L"
	case ShapeJ:
		return "J"
	case ShapeO:
		return "O"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// Shape is a rectangular occupancy matrix indexed [row][col].
// Shapes are treated as immutable; Rotate returns a new matrix.
type Shape [][]bool

var catalog = map[ShapeKind]Shape{
	ShapeI: {
		{true, true, true, true},
	},
	ShapeZ: {
		{true, true, false},
		{false, true, true},
	},
	ShapeS: {
		{false, true, true},
		{true, true, false},
	},
	ShapeT: {
		{true, true, true},
		{false, true, false},
	},
	ShapeL: {
		{true, true, true},
		{true, false, false},
	},
	ShapeJ: {
		{true, true, true},
		{false, false, true},
	},
	ShapeO: {
		{true, true},
		{true, true},
	},
}

// ShapeOf returns a fresh copy of the catalog shape for kind.
func ShapeOf(kind ShapeKind) Shape {
	s, ok := catalog[kind]
	if !ok {
		panic("unknown shape kind " + kind.String())
	}
	return s.clone()
}

// NewShape builds a shape from a 0/1 matrix. Every row must have the same
// non-zero length.
func NewShape(rows ...[]int) Shape {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("shape must have at least one row and one column")
	}

	s := make(Shape, len(rows))
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			panic("shape rows must have equal length")
		}
		s[i] = make([]bool, len(row))
		for j, v := range row {
			s[i][j] = v != 0
		}
	}
	return s
}

func (s Shape) Rows() int {
	return len(s)
}

func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Rotate returns the shape turned 90 degrees clockwise. For an R×C input the
// result is C×R with out[i][j] = in[R-1-j][i].
func (s Shape) Rotate() Shape {
	rows, cols := s.Rows(), s.Cols()
	rotated := make(Shape, cols)
	for i := range cols {
		rotated[i] = make([]bool, rows)
		for j := range rows {
			rotated[i][j] = s[rows-1-j][i]
		}
	}
	return rotated
}

// Equal reports whether both shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for i := range s {
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Cells iterates the occupied cells as (col, row) offsets within the
// bounding box.
func (s Shape) Cells() iter.Seq2[int, int] {
	return func(yield func(x, y int) bool) {
		for y, row := range s {
			for x, filled := range row {
				if !filled {
					continue
				}
				if !yield(x, y) {
					return
				}
			}
		}
	}
}

func (s Shape) clone() Shape {
	out := make(Shape, len(s))
	for i := range s {
		out[i] = make([]bool, len(s[i]))
		copy(out[i], s[i])
	}
	return out
}
