package term

import (
	"image/color"
	"time"

	"letter-grid/internal/app"
	"letter-grid/internal/cells"
	"letter-grid/internal/core"

	"github.com/gdamore/tcell/v2"
)

// RowAspect is how many horizontal units one terminal row spans. Terminal
// character cells are about twice as tall as wide.
const RowAspect = 2.0

// FrameInterval is how often the event loop wakes up to advance timers.
const FrameInterval = 16 * time.Millisecond

// UI runs a Session inside a tcell screen.
type UI struct {
	screen  tcell.Screen
	session *app.Session
	pressed bool
}

// New wraps an initialised screen.
func New(screen tcell.Screen, session *app.Session) *UI {
	return &UI{screen: screen, session: session}
}

// Viewport converts a terminal size into session units.
func Viewport(cols, rows int) (float64, float64) {
	return float64(cols), float64(rows) * RowAspect
}

// ToViewport maps the center of terminal cell (x, y) into session units.
func ToViewport(x, y int) (float64, float64) {
	return float64(x) + 0.5, (float64(y) + 0.5) * RowAspect
}

// Run processes events until the user quits or the screen is finalised.
// All session calls happen on the calling goroutine.
func (u *UI) Run() error {
	u.screen.EnableMouse()
	u.resize()

	done := make(chan struct{})
	defer close(done)
	go u.pump(done)

	for {
		switch ev := u.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			u.screen.Sync()
			u.resize()
		case *tcell.EventKey:
			if quit := u.handleKey(ev); quit {
				u.session.Close()
				return nil
			}
		case *tcell.EventMouse:
			u.handleMouse(ev)
		case *tcell.EventInterrupt:
			u.session.Update()
		}
		u.draw()
	}
}

func (u *UI) pump(done <-chan struct{}) {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			_ = u.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}

func (u *UI) resize() {
	cols, rows := u.screen.Size()
	u.session.Resize(Viewport(cols, rows))
}

func (u *UI) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'r', 'R', ' ':
			u.session.Regenerate()
		}
	}
	return false
}

func (u *UI) handleMouse(ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	if down && !u.pressed {
		u.session.ClickAt(ToViewport(ev.Position()))
	}
	u.pressed = down
}

func (u *UI) draw() {
	anim := u.session.Animator()
	grid, cs := anim.Grid(), anim.Cells()
	cols, rows := u.screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r, bg, fg, ok := CellContent(grid, cs, x, y)
			if !ok {
				u.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
				continue
			}
			style := tcell.StyleDefault.Background(tcellColor(bg)).Foreground(tcellColor(fg)).Bold(true)
			u.screen.SetContent(x, y, r, nil, style)
		}
	}
	u.screen.Show()
}

// CellContent returns what terminal position (x, y) shows: the letter at the
// center of its grid cell, blank elsewhere, in the cell's colors.
func CellContent(grid core.Grid, cs []cells.Cell, x, y int) (rune, color.RGBA, color.RGBA, bool) {
	idx := grid.CellAt(ToViewport(x, y))
	if idx < 0 || idx >= len(cs) {
		return ' ', color.RGBA{}, color.RGBA{}, false
	}
	c := cs[idx]
	x0, y0, x1, y1 := grid.Rect(idx)
	cx := int((x0 + x1) / 2)
	cy := int((y0 + y1) / 2 / RowAspect)
	r := ' '
	if x == cx && y == cy {
		r = c.Letter
	}
	return r, c.Background, c.Foreground, true
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
