// Package effect implements the particle-accumulation simulation behind
// the snow and tree-reveal terminal animations: randomized fall paths,
// height-capped bottom piles, timer-gated background spawning, and the
// phase machine sequencing one run from build to fade-out.
package effect

import (
	"math/rand"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flurry/config"
	"github.com/lixenwraith/flurry/core"
	"github.com/lixenwraith/flurry/engine"
)

// Character tags: which part of an effect owns a particle.
const (
	// TagText marks text-forming characters
	TagText = iota
	// TagBackground marks filler snow destined for the bottom pile
	TagBackground
	// TagOrnament marks decorative highlights lit during the reveal
	TagOrnament
)

// New constructs the named effect over a stage already holding the input
// text characters.
func New(name string, stage *engine.Stage, rng *rand.Rand, opts config.Options) (*Sequencer, bool) {
	switch name {
	case "snow":
		return NewSnow(stage, rng, opts), true
	case "moresnow":
		return NewMoreSnow(stage, rng, opts), true
	case "christmas":
		return NewChristmas(stage, rng, opts), true
	case "treelight":
		return NewTreeLight(stage, rng, opts), true
	default:
		return nil, false
	}
}

// Names lists the available effects.
func Names() []string {
	return []string{"snow", "moresnow", "christmas", "treelight"}
}

func styleFg(c tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(c)
}

func pickRune(rng *rand.Rand, set []rune) rune {
	return set[rng.Intn(len(set))]
}

func pickColor(rng *rand.Rand, set []tcell.Color) tcell.Color {
	return set[rng.Intn(len(set))]
}

// newBackgroundSpawner returns the sequencer hook that introduces one
// background flake: a random column on the canvas top edge, a snow scene,
// and a swaying fall to the floor.
func newBackgroundSpawner(stage *engine.Stage, rng *rand.Rand, speed float64, symbols []rune, colors []tcell.Color) func(speedMult float64) *engine.Character {
	return func(speedMult float64) *engine.Character {
		canvas := stage.Canvas
		col := canvas.Left + rng.Intn(canvas.Width())
		ch := stage.AddCharacter(' ', core.Coord{Column: col, Row: canvas.Top})
		ch.Layer = 1
		ch.Tag = TagBackground
		ch.ActivateScene(engine.NewScene(pickRune(rng, symbols), styleFg(pickColor(rng, colors))))

		path := NewFallPath(rng, canvas, FallSpec{
			Start:     core.Coord{Column: col, Row: canvas.Top},
			EndRow:    canvas.Bottom,
			BaseSpeed: speed,
			SpeedMult: speedMult,
			Ease:      engine.EaseInOutSine,
		})
		ch.Motion.ActivatePath(path)
		stage.SetVisibility(ch, true)
		return ch
	}
}

// sortPendingBottomUp orders pending characters so lower rows release
// first during the build.
func sortPendingBottomUp(pending []*engine.Character) {
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Input.Row < pending[j].Input.Row
	})
}

// textSymbols filters '.' out of the snowflake symbol set for text-forming
// flakes, falling back to the full set when nothing else remains.
func textSymbols(symbols []rune) []rune {
	filtered := make([]rune, 0, len(symbols))
	for _, r := range symbols {
		if r != '.' {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return symbols
	}
	return filtered
}
