//go:build ebiten

package render

import (
	"letter-grid/internal/cells"
	"letter-grid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// GridPainter uploads cell backgrounds into one image and draws the letters
// on top of it.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	faces *Faces
}

// NewGridPainter allocates a painter. Glyph faces are built on demand.
func NewGridPainter(faces *Faces) *GridPainter {
	return &GridPainter{faces: faces}
}

func (gp *GridPainter) ensure(w, h int) {
	if gp.img != nil && gp.w == w && gp.h == h {
		return
	}
	if gp.img != nil {
		gp.img.Deallocate()
	}
	gp.w, gp.h = w, h
	gp.img = ebiten.NewImage(w, h)
	gp.buf = make([]byte, 4*w*h)
}

// Draw paints the grid onto dst at its full size.
func (gp *GridPainter) Draw(dst *ebiten.Image, grid core.Grid, cs []cells.Cell) {
	b := dst.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return
	}
	gp.ensure(b.Dx(), b.Dy())
	fillCellsRGBA(gp.buf, gp.w, gp.h, grid, cs)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, nil)

	if gp.faces == nil {
		return
	}
	face, err := gp.faces.ForCell(grid.CellSize)
	if err != nil {
		return
	}
	for i, c := range cs {
		x0, y0, _, _ := grid.Rect(i)
		x, y := GlyphOrigin(face, c.Letter, x0, y0, grid.CellSize)
		text.Draw(dst, string(c.Letter), face, x, y, c.Foreground)
	}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
