package cells

import (
	"fmt"
	"image/color"
	"strconv"

	"letter-grid/internal/core"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	StrategyComplementary = "complementary"
	StrategyPalette       = "palette"
)

// DefaultPalette is the fixed five-color palette used by the palette strategy.
var DefaultPalette = []string{"#264653", "#2a9d8f", "#e9c46a", "#f4a261", "#e76f51"}

// Brightness returns the perceptual brightness of c in [0, 255].
func Brightness(c color.RGBA) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// ComplementaryConfig tunes the contrast correction of the complementary strategy.
type ComplementaryConfig struct {
	Threshold float64
	Offset    int
}

// DefaultComplementaryConfig returns the standard contrast settings.
func DefaultComplementaryConfig() ComplementaryConfig {
	return ComplementaryConfig{Threshold: 50, Offset: 150}
}

// ComplementaryFromMap populates the config from a string map.
func ComplementaryFromMap(cfg map[string]string) ComplementaryConfig {
	c := DefaultComplementaryConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Threshold = parsed
		}
	}
	if v, ok := cfg["offset"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Offset = parsed
		}
	}
	return c
}

// Complementary draws a uniform random background and derives a contrasting
// foreground from it.
type Complementary struct {
	cfg ComplementaryConfig
}

// NewComplementary returns the full-random strategy.
func NewComplementary(cfg ComplementaryConfig) *Complementary {
	return &Complementary{cfg: cfg}
}

// Name returns the strategy identifier.
func (c *Complementary) Name() string { return StrategyComplementary }

// Config returns the contrast settings.
func (c *Complementary) Config() ComplementaryConfig { return c.cfg }

// Pair returns a random background and its complement.
func (c *Complementary) Pair(r *core.RNG) (color.RGBA, color.RGBA) {
	v := r.IntN(1 << 24)
	bg := color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	return bg, c.Complement(bg)
}

// Complement inverts every channel of bg. When the inverse is too close in
// brightness, it is pushed toward black for bright backgrounds and toward
// white for dark ones.
func (c *Complementary) Complement(bg color.RGBA) color.RGBA {
	comp := color.RGBA{R: 255 - bg.R, G: 255 - bg.G, B: 255 - bg.B, A: 255}
	bright := Brightness(bg)
	diff := bright - Brightness(comp)
	if diff < 0 {
		diff = -diff
	}
	if diff >= c.cfg.Threshold {
		return comp
	}
	shift := c.cfg.Offset
	if bright >= 128 {
		shift = -shift
	}
	comp.R = clampChannel(int(comp.R) + shift)
	comp.G = clampChannel(int(comp.G) + shift)
	comp.B = clampChannel(int(comp.B) + shift)
	return comp
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Palette draws both colors from a fixed palette, never the same entry twice
// for one cell.
type Palette struct {
	colors []color.RGBA
}

// NewPalette parses hex colors into a palette strategy. It needs at least two
// distinct colors so that a differing foreground always exists.
func NewPalette(hexes []string) (*Palette, error) {
	p := &Palette{}
	seen := map[color.RGBA]bool{}
	for _, h := range hexes {
		cf, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette color %q: %w", h, err)
		}
		r, g, b := cf.RGB255()
		col := color.RGBA{R: r, G: g, B: b, A: 255}
		p.colors = append(p.colors, col)
		seen[col] = true
	}
	if len(seen) < 2 {
		return nil, fmt.Errorf("palette needs at least two distinct colors, got %d", len(seen))
	}
	return p, nil
}

// Name returns the strategy identifier.
func (p *Palette) Name() string { return StrategyPalette }

// Colors returns the palette entries.
func (p *Palette) Colors() []color.RGBA { return p.colors }

// Pair draws a background and resamples the foreground until it differs.
func (p *Palette) Pair(r *core.RNG) (color.RGBA, color.RGBA) {
	bg := p.colors[r.IntN(len(p.colors))]
	fg := p.colors[r.IntN(len(p.colors))]
	for fg == bg {
		fg = p.colors[r.IntN(len(p.colors))]
	}
	return bg, fg
}

func init() {
	core.RegisterStrategy(StrategyComplementary, func(cfg map[string]string) core.ColorStrategy {
		return NewComplementary(ComplementaryFromMap(cfg))
	})
	core.RegisterStrategy(StrategyPalette, func(map[string]string) core.ColorStrategy {
		p, err := NewPalette(DefaultPalette)
		if err != nil {
			panic(err)
		}
		return p
	})
}
