package core

import (
	"image/color"
	"sort"
)

// ColorStrategy produces a background/foreground pair for one cell.
type ColorStrategy interface {
	Name() string
	Pair(r *RNG) (bg, fg color.RGBA)
}

// StrategyFactory constructs a ColorStrategy using an optional configuration map.
type StrategyFactory func(cfg map[string]string) ColorStrategy

var strategies = map[string]StrategyFactory{}

// RegisterStrategy adds a color strategy factory under the provided name.
func RegisterStrategy(name string, f StrategyFactory) {
	if name == "" || f == nil {
		return
	}
	strategies[name] = f
}

// Strategies exposes the registry of available color strategies.
func Strategies() map[string]StrategyFactory {
	return strategies
}

// StrategyNames returns the registered strategy names in sorted order.
func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
