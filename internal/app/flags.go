package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"letter-grid/internal/animate"
	"letter-grid/internal/core"
)

// ErrUnknownStrategy is returned for a color strategy name nobody registered.
var ErrUnknownStrategy = errors.New("unknown color strategy")

// Config represents the command-line parameters for the application.
type Config struct {
	CellSize    float64
	Colors      string
	Seed        int64
	Tick        time.Duration
	RevealDelay time.Duration
	Static      bool
	Fullscreen  bool
	TPS         int
	Width       int
	Height      int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	anim := animate.DefaultConfig()
	return &Config{
		CellSize:    core.DefaultCellSize,
		Colors:      "complementary",
		Tick:        anim.Tick,
		RevealDelay: anim.RevealDelay,
		TPS:         60,
		Width:       1100,
		Height:      800,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Float64Var(&c.CellSize, "cell", c.CellSize, "target cell edge in pixels")
	fs.StringVar(&c.Colors, "colors", c.Colors, "color strategy ("+strings.Join(core.StrategyNames(), ", ")+")")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "scramble tick interval")
	fs.DurationVar(&c.RevealDelay, "reveal-delay", c.RevealDelay, "delay before cells start settling")
	fs.BoolVar(&c.Static, "static", c.Static, "disable the scramble animation")
	fs.BoolVar(&c.Fullscreen, "fullscreen", c.Fullscreen, "start in fullscreen")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
}

// Validate checks the configuration for values the app cannot run with.
func (c *Config) Validate() error {
	if _, ok := core.Strategies()[c.Colors]; !ok {
		return fmt.Errorf("%w %q (have %s)", ErrUnknownStrategy, c.Colors, strings.Join(core.StrategyNames(), ", "))
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %v", c.CellSize)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %v", c.Tick)
	}
	if c.RevealDelay < 0 {
		return fmt.Errorf("reveal delay must not be negative, got %v", c.RevealDelay)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}

// Animation returns the animator timing derived from the flags.
func (c *Config) Animation() animate.Config {
	cfg := animate.DefaultConfig()
	cfg.Tick = c.Tick
	cfg.RevealDelay = c.RevealDelay
	cfg.Animate = !c.Static
	return cfg
}

// EffectiveSeed resolves a zero seed against the current time.
func (c *Config) EffectiveSeed(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}
