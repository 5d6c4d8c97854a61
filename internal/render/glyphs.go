package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// GlyphScale is the letter height relative to the cell edge.
const GlyphScale = 0.6

// Faces caches bold font faces by pixel size.
type Faces struct {
	font  *opentype.Font
	cache map[int]font.Face
}

// NewFaces parses the embedded Go Bold font.
func NewFaces() (*Faces, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse gobold: %w", err)
	}
	return &Faces{font: f, cache: map[int]font.Face{}}, nil
}

// ForCell returns a face sized for cells with the given edge length.
func (f *Faces) ForCell(cellSize float64) (font.Face, error) {
	size := int(cellSize * GlyphScale)
	if size < 1 {
		size = 1
	}
	if face, ok := f.cache[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face size %d: %w", size, err)
	}
	f.cache[size] = face
	return face, nil
}

// GlyphOrigin returns the dot position that centers r inside the square cell
// whose top-left corner is (x0, y0).
func GlyphOrigin(face font.Face, r rune, x0, y0, cell float64) (int, int) {
	b, _ := font.BoundString(face, string(r))
	w := (b.Max.X - b.Min.X).Ceil()
	h := (b.Max.Y - b.Min.Y).Ceil()
	x := int(x0+(cell-float64(w))/2) - b.Min.X.Floor()
	y := int(y0+(cell-float64(h))/2) - b.Min.Y.Floor()
	return x, y
}
