//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 200}
	buttonColor = color.RGBA{R: 16, G: 16, B: 20, A: 220}
	borderColor = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	textColor   = color.RGBA{R: 235, G: 235, B: 235, A: 255}
)

const lineHeight = 15

// Overlay draws the control buttons and the optional status panel on top of
// the grid.
type Overlay struct {
	ShowHUD bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay { return &Overlay{} }

// Draw renders the buttons and, when enabled, the status lines.
func (o *Overlay) Draw(screen *ebiten.Image, buttons []Button, lines []string) {
	face := basicfont.Face7x13
	for _, b := range buttons {
		x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)
		vector.DrawFilledRect(screen, x, y, w, h, buttonColor, false)
		vector.StrokeRect(screen, x, y, w, h, 1, borderColor, false)
		tx := b.X + (b.W-len(b.Label)*7)/2
		ty := b.Y + (b.H+10)/2
		text.Draw(screen, b.Label, face, tx, ty, textColor)
	}

	if !o.ShowHUD || len(lines) == 0 {
		return
	}
	width := 0
	for _, l := range lines {
		if n := len(l) * 7; n > width {
			width = n
		}
	}
	height := len(lines)*lineHeight + 12
	vector.DrawFilledRect(screen, 12, 12, float32(width+16), float32(height), panelColor, false)
	for i, l := range lines {
		text.Draw(screen, l, face, 20, 12+lineHeight*(i+1), textColor)
	}
}
