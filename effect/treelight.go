package effect

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flurry/config"
	"github.com/lixenwraith/flurry/core"
	"github.com/lixenwraith/flurry/engine"
	"github.com/lixenwraith/flurry/parameter"
)

// treeDimColor is what star and ornament glyphs show before they light up.
var treeDimColor = tcell.NewRGBColor(0x88, 0x88, 0x88)

// NewTreeLight builds the staged tree-reveal effect: tree characters fall
// into place bottom-up, the star and ornaments light one at a time once
// the tree settles, then the input text slides in from the nearest canvas
// edge. Background snow runs through three regimes and piles on the
// floor; after a hold period spawning stops and the run drains.
func NewTreeLight(stage *engine.Stage, rng *rand.Rand, opts config.Options) *Sequencer {
	canvas := stage.Canvas
	textChars := append([]*engine.Character(nil), stage.Characters()...)

	lit := make(map[*engine.Character]*engine.Scene)
	var pending []*engine.Character
	for _, g := range treeLayout(canvas, rng) {
		ch := stage.AddCharacter(g.r, g.at)
		ch.Layer = 2
		if g.highlight {
			ch.Tag = TagOrnament
			ch.ActivateScene(engine.NewScene(g.r, styleFg(treeDimColor)))
			lit[ch] = engine.NewScene(g.r, styleFg(g.color).Bold(true))
		} else {
			ch.Tag = TagText
			ch.ActivateScene(engine.NewScene(g.r, styleFg(g.color)))
		}

		start := core.Coord{Column: g.at.Column, Row: canvas.Top}
		ch.Motion.SetCoordinate(start)
		path := NewFallPath(rng, canvas, FallSpec{
			Start:          start,
			EndRow:         g.at.Row,
			BaseSpeed:      opts.MovementSpeed,
			FixedEndColumn: true,
			Ease:           engine.EaseInOutSine,
		})
		ch.Motion.ActivatePath(path)
		pending = append(pending, ch)
	}
	sortPendingBottomUp(pending)

	hooks := Hooks{
		SpawnBackground: newBackgroundSpawner(stage, rng, opts.MovementSpeed, opts.Symbols(), opts.Colors()),
		IsHighlight: func(ch *engine.Character) bool {
			return ch.Tag == TagOrnament
		},
		Highlight: func(ch *engine.Character) {
			if scene, ok := lit[ch]; ok {
				ch.ActivateScene(scene)
			}
		},
		RevealSecondary: func() []*engine.Character {
			center := canvas.Left + canvas.Width()/2
			for _, ch := range textChars {
				ch.Layer = 3
				ch.ActivateScene(engine.NewScene(ch.Rune, styleFg(treeStarColor).Bold(true)))
				edge := canvas.Left
				if ch.Input.Column >= center {
					edge = canvas.Right
				}
				ch.Motion.SetCoordinate(core.Coord{Column: edge, Row: ch.Input.Row})
				path := engine.NewPath(opts.MovementSpeed*parameter.SlideInSpeedMult, engine.EaseInOutSine)
				path.AddWaypoint(ch.Input)
				ch.Motion.ActivatePath(path)
				stage.SetVisibility(ch, true)
			}
			return textChars
		},
	}

	cfg := Config{
		BaseSpeed: opts.MovementSpeed,
		Drain: DrainPolicy{
			MinPerTick: parameter.TreeReleaseMin,
			MaxPerTick: parameter.TreeReleaseMax,
		},
		BuildSpawn: SpawnPolicy{
			Interval: parameter.BuildSpawnInterval,
			Chance:   parameter.TreeBuildSpawnChance,
		},
		RevealedSpawn: SpawnPolicy{
			Interval: parameter.RevealedSpawnInterval,
			Chance:   parameter.RevealedSpawnChance,
		},
		FinaleSpawn: SpawnPolicy{
			Interval: parameter.RevealedSpawnInterval,
			Chance:   parameter.RevealedSpawnChance,
		},
		FinaleSpeedMult:      parameter.FinaleSpeedMult,
		PileCap:              parameter.PileCap,
		PileStep:             1,
		Settle:               true,
		RevealInterval:       parameter.RevealIntervalTicks,
		HoldTicks:            parameter.FadeHoldTicks,
		Terminate:            TerminateWhenDrained,
		AccelerateOnComplete: true,
	}
	return NewSequencer(stage, rng, cfg, hooks, pending, nil)
}
