package render

import (
	"image/color"
	"testing"

	"letter-grid/internal/cells"
	"letter-grid/internal/core"
)

func pixelAt(buf []byte, w, x, y int) color.RGBA {
	base := (y*w + x) * 4
	return color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
}

func TestFillCellsRGBA(t *testing.T) {
	const w, h = 30, 25
	grid := core.Layout(w, h, 10)
	cs := make([]cells.Cell, grid.Total())
	for i := range cs {
		cs[i].Background = color.RGBA{R: uint8(i * 10), G: uint8(i), B: 200, A: 255}
	}
	buf := make([]byte, 4*w*h)
	fillCellsRGBA(buf, w, h, grid, cs)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := grid.CellAt(float64(x)+0.5, float64(y)+0.5)
			if got, want := pixelAt(buf, w, x, y), cs[idx].Background; got != want {
				t.Fatalf("pixel (%d,%d) = %v, expected cell %d color %v", x, y, got, idx, want)
			}
		}
	}
}

func TestFillCellsFractionalSize(t *testing.T) {
	const w, h = 101, 40
	grid := core.Layout(w, h, 30)
	cs := make([]cells.Cell, grid.Total())
	for i := range cs {
		cs[i].Background = color.RGBA{R: 1, G: 2, B: 3, A: 255}
	}
	buf := make([]byte, 4*w*h)
	fillCellsRGBA(buf, w, h, grid, cs)
	for i := 3; i < len(buf); i += 4 {
		if buf[i] != 255 {
			t.Fatalf("pixel %d left uncovered", i/4)
		}
	}
}

func TestFacesCacheAndCentering(t *testing.T) {
	faces, err := NewFaces()
	if err != nil {
		t.Fatalf("NewFaces: %v", err)
	}
	a, err := faces.ForCell(110)
	if err != nil {
		t.Fatalf("ForCell: %v", err)
	}
	b, _ := faces.ForCell(110.4)
	if a != b {
		t.Fatal("faces of the same pixel size should be cached")
	}

	x, y := GlyphOrigin(a, 'W', 220, 110, 110)
	if x < 220 || x > 330 {
		t.Fatalf("glyph x %d outside cell", x)
	}
	if y < 110 || y > 220 {
		t.Fatalf("glyph baseline %d outside cell", y)
	}
}
