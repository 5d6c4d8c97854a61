package app

import (
	"letter-grid/internal/animate"
	"letter-grid/internal/cells"
	"letter-grid/internal/core"
)

// Session ties an animator to a viewport. Frontends feed it sizes, clicks and
// frame ticks; it regenerates whenever the viewport changes.
type Session struct {
	cfg   Config
	clock core.Clock
	anim  *animate.Animator

	width, height float64
}

// NewSession validates cfg and builds an idle session. The first Resize
// generates the grid.
func NewSession(cfg Config, clock core.Clock) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = core.SystemClock{}
	}
	strategy := core.Strategies()[cfg.Colors](nil)
	rng := core.NewRNG(cfg.EffectiveSeed(clock.Now()))
	gen := cells.NewGenerator(rng, strategy)
	return &Session{
		cfg:   cfg,
		clock: clock,
		anim:  animate.New(cfg.Animation(), gen),
	}, nil
}

// Resize records the viewport size and regenerates when it changed. It
// reports whether a regeneration happened.
func (s *Session) Resize(width, height float64) bool {
	if width == s.width && height == s.height && s.anim.Generation() > 0 {
		return false
	}
	s.width, s.height = width, height
	s.Regenerate()
	return true
}

// Regenerate rebuilds the grid for the current viewport.
func (s *Session) Regenerate() {
	grid := core.Layout(s.width, s.height, s.cfg.CellSize)
	s.anim.Regenerate(grid, s.clock.Now())
}

// Update fires due animation timers.
func (s *Session) Update() int {
	return s.anim.Update(s.clock.Now())
}

// ClickAt freezes the cell under the viewport position (x, y).
func (s *Session) ClickAt(x, y float64) bool {
	return s.anim.Click(s.anim.Grid().CellAt(x, y))
}

// Close cancels all timers.
func (s *Session) Close() { s.anim.Stop() }

// Animator exposes the underlying animator for rendering.
func (s *Session) Animator() *animate.Animator { return s.anim }

// Viewport returns the last recorded viewport size.
func (s *Session) Viewport() (float64, float64) { return s.width, s.height }

// Parameters describes the session for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot { return s.anim.Parameters() }
