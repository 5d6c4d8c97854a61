package render

import (
	"math"

	"letter-grid/internal/cells"
	"letter-grid/internal/core"
)

// fillCellsRGBA paints every cell background into buf, an RGBA image of w*h
// pixels. Cell edges are rounded to whole pixels so neighbours never overlap
// or leave gaps.
func fillCellsRGBA(buf []byte, w, h int, grid core.Grid, cs []cells.Cell) {
	if len(buf) < 4*w*h {
		return
	}
	for i, c := range cs {
		if i >= grid.Total() {
			break
		}
		fx0, fy0, fx1, fy1 := grid.Rect(i)
		x0, x1 := clampInt(round(fx0), 0, w), clampInt(round(fx1), 0, w)
		y0, y1 := clampInt(round(fy0), 0, h), clampInt(round(fy1), 0, h)
		col := c.Background
		for y := y0; y < y1; y++ {
			row := y * w * 4
			for x := x0; x < x1; x++ {
				base := row + x*4
				buf[base+0] = col.R
				buf[base+1] = col.G
				buf[base+2] = col.B
				buf[base+3] = 255
			}
		}
	}
}

func round(v float64) int { return int(math.Round(v)) }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
