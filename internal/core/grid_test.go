package core

import (
	"math"
	"testing"
)

func TestLayoutExample(t *testing.T) {
	g := Layout(1100, 800, 110)
	if g.Cols != 10 || g.Rows != 8 {
		t.Fatalf("grid = %dx%d, expected 10x8", g.Cols, g.Rows)
	}
	if g.CellSize != 110 {
		t.Fatalf("cell size = %v, expected 110", g.CellSize)
	}
	if g.Total() != 80 {
		t.Fatalf("total = %d, expected 80", g.Total())
	}
}

func TestLayoutTilesWidth(t *testing.T) {
	targets := []float64{100, 110, 120, 137.5, 160}
	for w := 1.0; w <= 3000; w += 37 {
		for _, target := range targets {
			g := Layout(w, 900, target)
			want := int(math.Ceil(w / target))
			if want < 1 {
				want = 1
			}
			if g.Cols != want {
				t.Fatalf("w=%v target=%v: cols=%d, expected %d", w, target, g.Cols, want)
			}
			if diff := math.Abs(g.CellSize*float64(g.Cols) - w); diff > 1e-9 {
				t.Fatalf("w=%v target=%v: columns cover %v", w, target, g.CellSize*float64(g.Cols))
			}
			if float64(g.Rows)*g.CellSize < 900-1e-9 {
				t.Fatalf("w=%v target=%v: rows do not cover height", w, target)
			}
		}
	}
}

func TestLayoutDegenerateInputs(t *testing.T) {
	g := Layout(0, 0, 110)
	if g.Cols != 1 || g.Rows != 1 {
		t.Fatalf("empty viewport grid = %dx%d, expected 1x1", g.Cols, g.Rows)
	}
	g = Layout(600, 600, 0)
	if g.Cols != 5 {
		t.Fatalf("default target cols = %d, expected 5", g.Cols)
	}
}

func TestCellAt(t *testing.T) {
	g := Layout(1100, 800, 110)
	cases := []struct {
		x, y float64
		want int
	}{
		{0, 0, 0},
		{109.9, 0, 0},
		{110, 0, 1},
		{1099, 0, 9},
		{0, 110, 10},
		{555, 445, g.Index(5, 4)},
		{-1, 10, -1},
		{10, 880, -1},
		{1100, 10, -1},
	}
	for _, c := range cases {
		if got := g.CellAt(c.x, c.y); got != c.want {
			t.Fatalf("CellAt(%v,%v) = %d, expected %d", c.x, c.y, got, c.want)
		}
	}
}

func TestCoordsRoundTrip(t *testing.T) {
	g := Grid{Cols: 7, Rows: 3, CellSize: 10}
	for i := 0; i < g.Total(); i++ {
		c, r := g.Coords(i)
		if g.Index(c, r) != i {
			t.Fatalf("index %d -> (%d,%d) -> %d", i, c, r, g.Index(c, r))
		}
	}
	x0, y0, x1, y1 := g.Rect(g.Index(2, 1))
	if x0 != 20 || y0 != 10 || x1 != 30 || y1 != 20 {
		t.Fatalf("rect = (%v,%v,%v,%v)", x0, y0, x1, y1)
	}
}
