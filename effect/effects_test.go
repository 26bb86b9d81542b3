package effect

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/flurry/config"
	"github.com/lixenwraith/flurry/core"
	"github.com/lixenwraith/flurry/engine"
	"github.com/lixenwraith/flurry/parameter"
)

func newTextStage(t *testing.T, lines []string) *engine.Stage {
	t.Helper()
	stage := engine.NewStage(core.Canvas{Left: 0, Right: 79, Top: 39, Bottom: 0})
	stage.AddText(lines, 15)
	return stage
}

func TestNewKnowsAllNames(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			stage := newTextStage(t, []string{"hi"})
			seq, ok := New(name, stage, rand.New(rand.NewSource(1)), config.Default())
			if !ok || seq == nil {
				t.Fatalf("New(%q) failed", name)
			}
		})
	}
	if _, ok := New("blizzard", newTextStage(t, []string{"hi"}), rand.New(rand.NewSource(1)), config.Default()); ok {
		t.Error("unknown effect name accepted")
	}
}

func TestTextSymbolsFiltersDot(t *testing.T) {
	tests := []struct {
		name string
		in   []rune
		want []rune
	}{
		{"Drops dot", []rune{'*', '.', 'o'}, []rune{'*', 'o'}},
		{"Keeps full set without dot", []rune{'*', '+'}, []rune{'*', '+'}},
		{"Falls back when only dot", []rune{'.'}, []rune{'.'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textSymbols(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("got %q, want %q", string(got), string(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %q, want %q", string(got), string(tt.want))
				}
			}
		})
	}
}

func TestTreeLayout(t *testing.T) {
	canvas := core.Canvas{Left: 0, Right: 79, Top: 39, Bottom: 0}
	glyphs := treeLayout(canvas, rand.New(rand.NewSource(2)))
	if len(glyphs) == 0 {
		t.Fatal("empty tree layout")
	}

	height := len(treeArt)
	highlights := 0
	trunkSeen := false
	for _, g := range glyphs {
		if g.r == ' ' {
			t.Error("space glyph placed")
		}
		if g.at.Row < canvas.Bottom || g.at.Row > canvas.Bottom+height-1 {
			t.Errorf("glyph row %d outside tree band", g.at.Row)
		}
		if g.highlight {
			highlights++
		}
		if g.at.Row == canvas.Bottom && g.color == treeTrunkColor {
			trunkSeen = true
		}
	}
	if highlights == 0 {
		t.Error("no star or ornament highlights in layout")
	}
	if !trunkSeen {
		t.Error("no trunk glyph seated on the canvas floor")
	}

	// Star lines sit at the top of the band and come out gold
	for _, g := range glyphs {
		if g.at.Row > canvas.Bottom+height-1-starLines && g.color != treeStarColor {
			t.Errorf("glyph %q at row %d not gold in star band", g.r, g.at.Row)
		}
	}
}

func TestChristmasStartsComplete(t *testing.T) {
	stage := newTextStage(t, []string{"noel"})
	seq := NewChristmas(stage, rand.New(rand.NewSource(3)), config.Default())

	if seq.Phase() != PhaseFading {
		t.Errorf("initial phase %v, want fading for an instant build", seq.Phase())
	}
	visible := 0
	for _, ch := range seq.build {
		if ch.Visible {
			visible++
		}
		if ch.Motion.ActivePath() != nil {
			t.Error("prebuilt tree character has an in-flight path")
		}
	}
	if visible != len(seq.build) || visible == 0 {
		t.Errorf("%d of %d tree characters visible at start", visible, len(seq.build))
	}
	if seq.pile == nil {
		t.Fatal("christmas effect has no pile")
	}
}

func TestMoreSnowRunsFixedDuration(t *testing.T) {
	stage := newTextStage(t, []string{"yo"})
	seq := NewMoreSnow(stage, rand.New(rand.NewSource(4)), config.Default())

	for i := 0; seq.Tick(); i++ {
		if i > parameter.SteadyDurationTicks+1 {
			t.Fatal("fixed-duration run did not stop")
		}
	}
	if seq.Ticks() != parameter.SteadyDurationTicks {
		t.Errorf("ran %d ticks, want %d", seq.Ticks(), parameter.SteadyDurationTicks)
	}
}

func TestMoreSnowTextLandsRecolored(t *testing.T) {
	stage := newTextStage(t, []string{"a"})
	textChar := stage.Characters()[0]
	seq := NewMoreSnow(stage, rand.New(rand.NewSource(5)), config.Default())

	for i := 0; seq.Tick(); i++ {
		if !textChar.Visible || textChar.Motion.ActivePath() != nil {
			continue
		}
		break
	}
	if textChar.Motion.ActivePath() != nil {
		t.Fatal("text flake never landed within the run")
	}
	if textChar.Motion.CurrentCoord() != textChar.Input {
		t.Errorf("text flake rests at %+v, want input %+v",
			textChar.Motion.CurrentCoord(), textChar.Input)
	}
	fg, _, _ := textChar.ActiveScene().Style.Decompose()
	if fg != moreSnowLandedColor {
		t.Error("landed text flake did not switch to the landed scene")
	}
}

func TestSnowEndToEnd(t *testing.T) {
	stage := newTextStage(t, []string{"hey", "you"})
	chars := append([]*engine.Character(nil), stage.Characters()...)
	seq := NewSnow(stage, rand.New(rand.NewSource(6)), config.Default())

	for i := 0; seq.Tick(); i++ {
		if i > 20000 {
			t.Fatal("snow effect did not terminate")
		}
	}
	for _, ch := range chars {
		if !ch.Visible {
			t.Error("text character invisible after completion")
		}
		if ch.Motion.CurrentCoord() != ch.Input {
			t.Errorf("character %q at %+v, want input %+v",
				ch.Rune, ch.Motion.CurrentCoord(), ch.Input)
		}
	}
}

func TestTreeLightEndToEnd(t *testing.T) {
	stage := newTextStage(t, []string{"joy"})
	textChars := append([]*engine.Character(nil), stage.Characters()...)
	seq := NewTreeLight(stage, rand.New(rand.NewSource(7)), config.Default())

	seen := map[Phase]bool{seq.Phase(): true}
	for i := 0; seq.Tick(); i++ {
		if i > 50000 {
			t.Fatal("treelight effect did not terminate")
		}
		seen[seq.Phase()] = true
	}

	for _, ph := range []Phase{PhaseBuilding, PhaseSettling, PhaseRevealing, PhaseFading, PhaseDone} {
		if !seen[ph] {
			t.Errorf("phase %v never reached", ph)
		}
	}
	for _, ch := range textChars {
		if !ch.Visible {
			t.Error("secondary text character never revealed")
		}
		if ch.Motion.CurrentCoord() != ch.Input {
			t.Errorf("secondary character %q at %+v, want input %+v",
				ch.Rune, ch.Motion.CurrentCoord(), ch.Input)
		}
	}
}
