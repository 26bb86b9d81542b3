package effect

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flurry/config"
	"github.com/lixenwraith/flurry/core"
	"github.com/lixenwraith/flurry/engine"
	"github.com/lixenwraith/flurry/parameter"
)

// moreSnowLandedColor is the tint a text flake takes when it lands.
var moreSnowLandedColor = tcell.NewRGBColor(0xff, 0x66, 0x66)

// NewMoreSnow builds the accumulating-snow effect: text flakes fall singly
// in front of continuous background snow that stacks into a height-capped
// pile along the canvas floor. The run lasts a fixed duration.
func NewMoreSnow(stage *engine.Stage, rng *rand.Rand, opts config.Options) *Sequencer {
	symbols := opts.Symbols()
	colors := opts.Colors()
	text := textSymbols(symbols)

	var pending []*engine.Character
	for _, ch := range stage.Characters() {
		ch.Tag = TagText
		ch.Layer = 2

		sym := pickRune(rng, text)
		falling := engine.NewScene(sym, styleFg(pickColor(rng, colors)))
		landed := engine.NewScene(sym, styleFg(moreSnowLandedColor))
		ch.ActivateScene(falling)

		start := core.Coord{Column: ch.Input.Column, Row: stage.Canvas.Top}
		ch.Motion.SetCoordinate(start)
		path := NewFallPath(rng, stage.Canvas, FallSpec{
			Start:          start,
			EndRow:         ch.Input.Row,
			BaseSpeed:      opts.MovementSpeed,
			FixedEndColumn: true,
			Ease:           engine.EaseInOutSine,
		})
		c := ch
		path.OnComplete(func() { c.ActivateScene(landed) })
		ch.Motion.ActivatePath(path)
		pending = append(pending, ch)
	}

	steady := SpawnPolicy{
		Interval: parameter.SteadySpawnInterval,
		MinCount: parameter.SteadySpawnMin,
		MaxCount: parameter.SteadySpawnMax,
	}
	cfg := Config{
		BaseSpeed: opts.MovementSpeed,
		Drain: DrainPolicy{
			MinPerTick:  1,
			MaxPerTick:  1,
			Interval:    parameter.TextReleaseInterval,
			RandomOrder: true,
		},
		BuildSpawn:    steady,
		RevealedSpawn: steady,
		PileCap:       parameter.PileCap,
		PileStep:      1,
		Terminate:     TerminateAfterMaxTicks,
		MaxTicks:      parameter.SteadyDurationTicks,
	}
	hooks := Hooks{
		SpawnBackground: newBackgroundSpawner(stage, rng, opts.MovementSpeed, symbols, colors),
	}
	return NewSequencer(stage, rng, cfg, hooks, pending, nil)
}
