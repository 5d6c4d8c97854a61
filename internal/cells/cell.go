package cells

import (
	"image/color"

	"letter-grid/internal/core"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
)

// Cell is one grid entry: a letter drawn over a background color.
type Cell struct {
	ID         uuid.UUID
	Letter     rune
	Background color.RGBA
	Foreground color.RGBA
}

// BackgroundHex returns the background as a #rrggbb string.
func (c Cell) BackgroundHex() string { return hexOf(c.Background) }

// ForegroundHex returns the foreground as a #rrggbb string.
func (c Cell) ForegroundHex() string { return hexOf(c.Foreground) }

func hexOf(c color.RGBA) string {
	cf, _ := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	return cf.Hex()
}

// Generator creates and rerolls cells from a seeded RNG.
type Generator struct {
	rng      *core.RNG
	strategy core.ColorStrategy
}

// NewGenerator returns a generator using the given RNG and color strategy.
func NewGenerator(rng *core.RNG, strategy core.ColorStrategy) *Generator {
	if strategy == nil {
		strategy = NewComplementary(DefaultComplementaryConfig())
	}
	return &Generator{rng: rng, strategy: strategy}
}

// Strategy returns the active color strategy.
func (g *Generator) Strategy() core.ColorStrategy { return g.strategy }

// RNG exposes the random source shared with the generator.
func (g *Generator) RNG() *core.RNG { return g.rng }

// New returns a cell with a fresh identifier, letter and colors.
func (g *Generator) New() Cell {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// unreachable: core.RNG.Read never fails
		id = uuid.New()
	}
	c := Cell{ID: id}
	g.Reroll(&c)
	return c
}

// Fill returns n freshly generated cells.
func (g *Generator) Fill(n int) []Cell {
	if n < 0 {
		n = 0
	}
	out := make([]Cell, n)
	for i := range out {
		out[i] = g.New()
	}
	return out
}

// Reroll assigns a new letter and color pair to c, keeping its identifier.
func (g *Generator) Reroll(c *Cell) {
	c.Letter = g.rng.Letter()
	c.Background, c.Foreground = g.strategy.Pair(g.rng)
}
