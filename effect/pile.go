package effect

import "github.com/lixenwraith/flurry/core"

// Pile tracks per-column accumulated snow along a base row. Heights only
// ever grow; a column at the cap discards further arrivals.
type Pile struct {
	baseRow int
	cap     int

	// step is the row delta per stacked flake: +1 stacks away from the
	// floor in bottom-origin coordinates, -1 stacks the other way. Both
	// directions are in live use by different effects.
	step int

	heights map[int]int
}

// NewPile creates an empty pile. step must be +1 or -1.
func NewPile(baseRow, capHeight, step int) *Pile {
	return &Pile{
		baseRow: baseRow,
		cap:     capHeight,
		step:    step,
		heights: make(map[int]int),
	}
}

// Height returns the stacked height at col.
func (p *Pile) Height(col int) int {
	return p.heights[col]
}

// Settle stacks a flake that landed at col. It returns the flake's rest
// coordinate and true, or false when the column is at the cap and the
// flake should be removed instead.
func (p *Pile) Settle(col int) (core.Coord, bool) {
	h := p.heights[col]
	if h >= p.cap {
		return core.Coord{}, false
	}
	p.heights[col] = h + 1
	return core.Coord{Column: col, Row: p.baseRow + p.step*h}, true
}
