package term

import (
	"testing"

	"letter-grid/internal/cells"
	"letter-grid/internal/core"
)

func TestViewportIsSquareInRows(t *testing.T) {
	w, h := Viewport(80, 24)
	if w != 80 || h != 48 {
		t.Fatalf("viewport = %vx%v, expected 80x48", w, h)
	}
	x, y := ToViewport(3, 2)
	if x != 3.5 || y != 5 {
		t.Fatalf("ToViewport(3,2) = (%v,%v)", x, y)
	}
}

func TestCellContentOneLetterPerCell(t *testing.T) {
	const cols, rows = 80, 24
	w, h := Viewport(cols, rows)
	grid := core.Layout(w, h, 12)
	gen := cells.NewGenerator(core.NewRNG(1), nil)
	cs := gen.Fill(grid.Total())

	letters := map[int]int{}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r, bg, _, ok := CellContent(grid, cs, x, y)
			if !ok {
				t.Fatalf("(%d,%d) not covered by the grid", x, y)
			}
			idx := grid.CellAt(ToViewport(x, y))
			if bg != cs[idx].Background {
				t.Fatalf("(%d,%d) background does not match cell %d", x, y, idx)
			}
			if r != ' ' {
				if r != cs[idx].Letter {
					t.Fatalf("(%d,%d) shows %q, cell %d holds %q", x, y, r, idx, cs[idx].Letter)
				}
				letters[idx]++
			}
		}
	}
	for idx, n := range letters {
		if n != 1 {
			t.Fatalf("cell %d drawn %d times", idx, n)
		}
	}
	if len(letters) == 0 {
		t.Fatal("no letters drawn")
	}
}
