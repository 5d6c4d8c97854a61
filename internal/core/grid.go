package core

import "math"

// DefaultCellSize is the target cell edge used when none is configured.
const DefaultCellSize = 120.0

// Grid describes how a viewport is tiled into square cells, row-major.
type Grid struct {
	Cols, Rows int
	CellSize   float64
}

// Layout computes a grid that covers a width*height viewport. Columns tile the
// width exactly; the last row may extend past the bottom edge.
func Layout(width, height, target float64) Grid {
	if target <= 0 {
		target = DefaultCellSize
	}
	cols := int(math.Ceil(width / target))
	if cols < 1 {
		cols = 1
	}
	size := width / float64(cols)
	if size <= 0 {
		size = target
	}
	rows := int(math.Ceil(height / size))
	if rows < 1 {
		rows = 1
	}
	return Grid{Cols: cols, Rows: rows, CellSize: size}
}

// Total returns the number of cells in the grid.
func (g Grid) Total() int { return g.Cols * g.Rows }

// Index returns the linear index for column c and row r.
func (g Grid) Index(c, r int) int { return r*g.Cols + c }

// Coords is the inverse of Index.
func (g Grid) Coords(idx int) (int, int) {
	if g.Cols <= 0 {
		return 0, 0
	}
	return idx % g.Cols, idx / g.Cols
}

// Rect returns the pixel bounds of cell idx as x0, y0, x1, y1.
func (g Grid) Rect(idx int) (float64, float64, float64, float64) {
	c, r := g.Coords(idx)
	x0 := float64(c) * g.CellSize
	y0 := float64(r) * g.CellSize
	return x0, y0, x0 + g.CellSize, y0 + g.CellSize
}

// CellAt maps a viewport position to a cell index, or -1 when the position
// falls outside the grid.
func (g Grid) CellAt(x, y float64) int {
	if g.CellSize <= 0 || x < 0 || y < 0 {
		return -1
	}
	c := int(x / g.CellSize)
	r := int(y / g.CellSize)
	if c >= g.Cols || r >= g.Rows {
		return -1
	}
	return g.Index(c, r)
}
