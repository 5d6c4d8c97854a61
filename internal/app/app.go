//go:build ebiten

package app

import (
	"log"

	"letter-grid/internal/render"
	"letter-grid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	buttons []ui.Button

	fullscreen bool
}

// New constructs a Game for the provided session.
func New(session *Session, faces *render.Faces) *Game {
	return &Game{
		session:    session,
		painter:    render.NewGridPainter(faces),
		overlay:    ui.NewOverlay(),
		fullscreen: ebiten.IsFullscreen(),
	}
}

// Update handles input and advances the animation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.toggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.overlay.ShowHUD = !g.overlay.ShowHUD
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.click(x, y)
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.click(x, y)
	}

	g.session.Update()
	return nil
}

func (g *Game) click(x, y int) {
	switch ui.HitTest(g.buttons, x, y) {
	case ui.ActionRegenerate:
		g.session.Regenerate()
	case ui.ActionFullscreen:
		g.toggleFullscreen()
	default:
		g.session.ClickAt(float64(x), float64(y))
	}
}

// toggleFullscreen only flips the recorded state once the window reports it.
func (g *Game) toggleFullscreen() {
	want := !g.fullscreen
	ebiten.SetFullscreen(want)
	g.fullscreen = ebiten.IsFullscreen()
	if g.fullscreen != want {
		log.Printf("fullscreen request (%v) not honoured", want)
	}
}

// Draw renders the grid and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	anim := g.session.Animator()
	g.painter.Draw(screen, anim.Grid(), anim.Cells())
	g.overlay.Draw(screen, g.buttons, g.session.Parameters().Lines())
}

// Layout uses the window size as the logical screen and regenerates the grid
// whenever it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return 1, 1
	}
	g.session.Resize(float64(outsideWidth), float64(outsideHeight))
	g.buttons = ui.LayoutButtons(outsideWidth, g.fullscreen)
	return outsideWidth, outsideHeight
}
