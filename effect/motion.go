package effect

import (
	"math/rand"

	"github.com/lixenwraith/flurry/core"
	"github.com/lixenwraith/flurry/engine"
	"github.com/lixenwraith/flurry/parameter"
)

// FallSpec describes one randomized fall from a start coordinate down to a
// target row.
type FallSpec struct {
	Start     core.Coord
	EndRow    int
	BaseSpeed float64

	// SpeedMult scales the jittered speed; zero means 1.
	SpeedMult float64

	// FixedEndColumn pins the final waypoint to the start column instead
	// of the swayed column, used when a flake must land exactly on its
	// input position.
	FixedEndColumn bool

	Ease engine.Ease
}

// NewFallPath builds a swaying fall path. The sway count is drawn from
// [SwayCountMin, SwayCountMax]; each intermediate waypoint interpolates the
// row linearly and accumulates a lateral offset of alternating sign,
// clamped to the canvas columns. The final waypoint lands exactly on
// EndRow, at the clamped swayed column unless FixedEndColumn is set.
func NewFallPath(rng *rand.Rand, canvas core.Canvas, spec FallSpec) *engine.Path {
	mult := spec.SpeedMult
	if mult == 0 {
		mult = 1
	}
	jitter := parameter.SpeedJitterMin + rng.Float64()*(parameter.SpeedJitterMax-parameter.SpeedJitterMin)
	path := engine.NewPath(spec.BaseSpeed*jitter*mult, spec.Ease)

	sways := parameter.SwayCountMin + rng.Intn(parameter.SwayCountMax-parameter.SwayCountMin+1)
	for _, wp := range swayWaypoints(rng, canvas, spec, sways) {
		path.AddWaypoint(wp)
	}
	return path
}

// swayWaypoints produces the sways-1 intermediate waypoints plus the final
// landing waypoint. With sways == 1 the loop body never runs and only the
// landing waypoint is emitted.
func swayWaypoints(rng *rand.Rand, canvas core.Canvas, spec FallSpec, sways int) []core.Coord {
	fallDistance := spec.Start.Row - spec.EndRow
	col := spec.Start.Column

	pts := make([]core.Coord, 0, sways)
	for i := 1; i < sways; i++ {
		progress := float64(i) / float64(sways)
		row := spec.Start.Row - int(float64(fallDistance)*progress)
		amount := parameter.SwayAmountMin + rng.Intn(parameter.SwayAmountMax-parameter.SwayAmountMin+1)
		if i%2 != 0 {
			amount = -amount
		}
		// col accumulates unclamped; only emitted waypoints are clamped
		col += amount
		pts = append(pts, core.Coord{Column: canvas.ClampColumn(col), Row: row})
	}

	endCol := canvas.ClampColumn(col)
	if spec.FixedEndColumn {
		endCol = spec.Start.Column
	}
	return append(pts, core.Coord{Column: endCol, Row: spec.EndRow})
}

// NewFastFallPath builds the direct-to-floor path used when a phase
// transition fast-forwards an in-flight flake: a single waypoint straight
// down from the flake's current column, at accelerated speed with ease-in.
func NewFastFallPath(baseSpeed float64, from core.Coord, floorRow int) *engine.Path {
	path := engine.NewPath(baseSpeed*parameter.FastForwardSpeedMult, engine.EaseInQuad)
	path.AddWaypoint(core.Coord{Column: from.Column, Row: floorRow})
	return path
}
