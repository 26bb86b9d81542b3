package effect

import (
	"math/rand"

	"github.com/lixenwraith/flurry/config"
	"github.com/lixenwraith/flurry/core"
	"github.com/lixenwraith/flurry/engine"
	"github.com/lixenwraith/flurry/parameter"
)

// NewSnow builds the plain falling-snow effect: every input character
// becomes a snowflake falling from the canvas top to its input position
// with sway, released a few at a time in random order. The run ends when
// the last flake lands.
func NewSnow(stage *engine.Stage, rng *rand.Rand, opts config.Options) *Sequencer {
	symbols := opts.Symbols()
	colors := opts.Colors()

	var pending []*engine.Character
	for _, ch := range stage.Characters() {
		ch.Tag = TagText
		ch.ActivateScene(engine.NewScene(pickRune(rng, symbols), styleFg(pickColor(rng, colors))))

		start := core.Coord{Column: ch.Input.Column, Row: stage.Canvas.Top}
		ch.Motion.SetCoordinate(start)
		path := NewFallPath(rng, stage.Canvas, FallSpec{
			Start:          start,
			EndRow:         ch.Input.Row,
			BaseSpeed:      opts.MovementSpeed,
			FixedEndColumn: true,
			Ease:           engine.EaseInOutSine,
		})
		ch.Motion.ActivatePath(path)
		pending = append(pending, ch)
	}

	cfg := Config{
		BaseSpeed: opts.MovementSpeed,
		Drain: DrainPolicy{
			MinPerTick:  parameter.SnowReleaseMin,
			MaxPerTick:  parameter.SnowReleaseMax,
			RandomOrder: true,
		},
		Terminate: TerminateOnBuildComplete,
	}
	return NewSequencer(stage, rng, cfg, Hooks{}, pending, nil)
}
