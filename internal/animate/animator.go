package animate

import (
	"strconv"
	"time"

	"letter-grid/internal/cells"
	"letter-grid/internal/core"

	"github.com/zyedidia/generic/mapset"
)

// Config holds the timing of the scramble and reveal sequence.
type Config struct {
	Tick          time.Duration
	RevealDelay   time.Duration
	RevealBudget  time.Duration
	MinRevealStep time.Duration

	// Animate disables scrambling entirely when false; regenerated grids are
	// settled immediately.
	Animate bool
}

// DefaultConfig returns the standard animation timing.
func DefaultConfig() Config {
	return Config{
		Tick:          50 * time.Millisecond,
		RevealDelay:   800 * time.Millisecond,
		RevealBudget:  2000 * time.Millisecond,
		MinRevealStep: 10 * time.Millisecond,
		Animate:       true,
	}
}

// StepDelay returns the pause between two reveal steps for a grid of total
// cells: the reveal budget spread over all cells, floored at MinRevealStep.
func (c Config) StepDelay(total int) time.Duration {
	if total <= 0 {
		return c.MinRevealStep
	}
	d := c.RevealBudget / time.Duration(total)
	if d < c.MinRevealStep {
		return c.MinRevealStep
	}
	return d
}

// Animator owns the cells of one grid together with the timers that scramble
// and reveal them. It is not safe for concurrent use; the owning loop calls
// every method from one goroutine.
type Animator struct {
	cfg   Config
	gen   *cells.Generator
	sched core.Scheduler

	grid  core.Grid
	cells []cells.Cell
	fixed mapset.Set[int]
	phase Phase

	order []int
	next  int

	generation int
	ticks      int
}

// New returns an idle animator. Call Regenerate to populate it.
func New(cfg Config, gen *cells.Generator) *Animator {
	return &Animator{cfg: cfg, gen: gen, fixed: mapset.New[int]()}
}

// Regenerate replaces every cell for grid and restarts the cycle. Timers from
// the previous cycle are cancelled before anything is armed.
func (a *Animator) Regenerate(grid core.Grid, now time.Time) {
	a.Stop()

	a.grid = grid
	a.cells = a.gen.Fill(grid.Total())
	a.fixed = mapset.New[int]()
	a.order = nil
	a.next = 0
	a.generation++

	if !a.cfg.Animate {
		a.phase = PhaseSettled
		return
	}
	a.phase = Transition(a.phase, EventRegenerate)
	a.sched.Every(now, a.cfg.Tick, a.scramble)
	a.sched.After(now, a.cfg.RevealDelay, a.beginReveal)
}

// Update fires every timer due at now and returns how many fired.
func (a *Animator) Update(now time.Time) int {
	return a.sched.Advance(now)
}

// Stop cancels the scramble interval and any pending reveal step.
func (a *Animator) Stop() {
	a.sched.Stop()
}

// Click rerolls the cell at idx and freezes it, whatever the current phase.
// It reports false for indices outside the grid.
func (a *Animator) Click(idx int) bool {
	if idx < 0 || idx >= len(a.cells) {
		return false
	}
	a.gen.Reroll(&a.cells[idx])
	a.fixed.Put(idx)
	return true
}

func (a *Animator) scramble(time.Time) {
	for i := range a.cells {
		if a.fixed.Has(i) {
			continue
		}
		a.gen.Reroll(&a.cells[i])
	}
	a.ticks++
}

func (a *Animator) beginReveal(at time.Time) {
	a.phase = Transition(a.phase, EventRevealStart)
	a.order = a.gen.RNG().Permutation(len(a.cells))
	a.next = 0
	a.revealStep(at)
}

func (a *Animator) revealStep(at time.Time) {
	if a.next < len(a.order) {
		a.fixed.Put(a.order[a.next])
		a.next++
	}
	if a.next >= len(a.order) {
		a.settle()
		return
	}
	a.sched.After(at, a.cfg.StepDelay(len(a.cells)), a.revealStep)
}

func (a *Animator) settle() {
	a.Stop()
	a.phase = Transition(a.phase, EventRevealDone)
}

// Cells exposes the current cells in row-major order.
func (a *Animator) Cells() []cells.Cell { return a.cells }

// Grid returns the layout the cells were generated for.
func (a *Animator) Grid() core.Grid { return a.grid }

// Phase returns the current phase of the cycle.
func (a *Animator) Phase() Phase { return a.phase }

// Fixed reports whether the cell at idx is frozen.
func (a *Animator) Fixed(idx int) bool { return a.fixed.Has(idx) }

// FixedCount returns the number of frozen cells.
func (a *Animator) FixedCount() int { return a.fixed.Size() }

// Generation counts regenerations since construction.
func (a *Animator) Generation() int { return a.generation }

// Ticks counts scramble ticks since construction.
func (a *Animator) Ticks() int { return a.ticks }

// ActiveTimers reports the armed interval and timeout counts.
func (a *Animator) ActiveTimers() (intervals, timeouts int) { return a.sched.Active() }

// Config returns the animation timing.
func (a *Animator) Config() Config { return a.cfg }

// Parameters describes the animator state for the HUD.
func (a *Animator) Parameters() core.ParameterSnapshot {
	total := len(a.cells)
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				{Key: "cols", Label: "Columns", Value: strconv.Itoa(a.grid.Cols)},
				{Key: "rows", Label: "Rows", Value: strconv.Itoa(a.grid.Rows)},
				{Key: "cell", Label: "Cell size", Value: strconv.FormatFloat(a.grid.CellSize, 'f', 1, 64)},
				{Key: "colors", Label: "Colors", Value: a.gen.Strategy().Name()},
			},
		},
		{
			Name: "Animation",
			Params: []core.Parameter{
				{Key: "phase", Label: "Phase", Value: a.phase.String()},
				{Key: "fixed", Label: "Fixed", Value: strconv.Itoa(a.FixedCount()) + "/" + strconv.Itoa(total)},
				{Key: "step", Label: "Reveal step", Value: a.cfg.StepDelay(total).String()},
				{Key: "generation", Label: "Generation", Value: strconv.Itoa(a.generation)},
			},
		},
	}}
}
