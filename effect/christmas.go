package effect

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flurry/config"
	"github.com/lixenwraith/flurry/core"
	"github.com/lixenwraith/flurry/engine"
	"github.com/lixenwraith/flurry/parameter"
)

// treeArt is the Christmas tree, trunk on the last line.
var treeArt = []string{
	"            ,",
	"          _/^\\_",
	"         <     >",
	"          /.-.\\",
	"          `/&\\`",
	"         ,@.*;@,",
	"        /_o.I %_\\",
	"       (`'--:o(_@;",
	"      /`;--.,__ `')",
	"     ;@`o % O,*`'`&\\",
	"    (`'--)_@ ;o %'()\\",
	"    /`;--._`''--._O'@;",
	"   /&*,()~o`;-.,_ `\"\"\")",
	"   /`,@ ;+& () o*`;-';\\",
	"  (`\"\"--.,_0 +% @' &()\\",
	"  /-.,_    ``''--....-'`)  *",
	"  /@%;o`:;'--,.__   __.'\\",
	" ;*,&(); @ % &^;~`\"`o;@();",
	" /(); o^~; & ().o@*&`;&%O\\",
	" `\"=\"==\"\"==,,,.,=\"==\"===\"`",
	"__.----.---''#####---...___...-----._",
	"'`            `\"\"\"\"\"`",
}

// starLines counts the leading art lines treated as the star.
const starLines = 3

var (
	treeStarColor  = tcell.NewRGBColor(0xff, 0xd7, 0x00)
	treeTrunkColor = tcell.NewRGBColor(0x8b, 0x45, 0x13)
	treeBodyColor  = tcell.NewRGBColor(0x22, 0x8b, 0x22)

	ornamentColors = []tcell.Color{
		tcell.NewRGBColor(0xff, 0x00, 0x00),
		tcell.NewRGBColor(0xff, 0x69, 0xb4),
		tcell.NewRGBColor(0xff, 0xd7, 0x00),
		tcell.NewRGBColor(0x00, 0xff, 0xff),
		tcell.NewRGBColor(0xff, 0x00, 0xff),
		tcell.NewRGBColor(0xff, 0x8c, 0x00),
	}
)

func isOrnamentRune(r rune) bool {
	switch r {
	case '*', '@', '&', '%', 'O', 'o', '+':
		return true
	}
	return false
}

// treeGlyph is one placed, colored glyph of the tree art.
type treeGlyph struct {
	r         rune
	at        core.Coord
	color     tcell.Color
	highlight bool
}

// treeLayout centers the tree art horizontally and seats the trunk on the
// canvas floor. Star lines come out gold, trunk lines and '#' brown,
// ornament symbols a random ornament color, everything else green. Star
// and ornament glyphs are flagged as reveal highlights.
func treeLayout(canvas core.Canvas, rng *rand.Rand) []treeGlyph {
	height := len(treeArt)
	maxWidth := 0
	for _, line := range treeArt {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}
	centerCol := canvas.Left + canvas.Width()/2
	startCol := centerCol - maxWidth/2

	var glyphs []treeGlyph
	for i, line := range treeArt {
		row := canvas.Bottom + (height - 1 - i)
		for off, r := range line {
			if r == ' ' {
				continue
			}
			g := treeGlyph{
				r:  r,
				at: core.Coord{Column: startCol + off, Row: row},
			}
			switch {
			case i < starLines:
				g.color = treeStarColor
				g.highlight = true
			case i >= height-2 || r == '#':
				g.color = treeTrunkColor
			case isOrnamentRune(r):
				g.color = pickColor(rng, ornamentColors)
				g.highlight = true
			default:
				g.color = treeBodyColor
			}
			glyphs = append(glyphs, g)
		}
	}
	return glyphs
}

// NewChristmas builds the instant-tree effect: the full tree appears on
// the first frame while gentle background snow falls and piles. After a
// hold period spawning stops and the run ends once the last flake lands.
func NewChristmas(stage *engine.Stage, rng *rand.Rand, opts config.Options) *Sequencer {
	var prebuilt []*engine.Character
	for _, g := range treeLayout(stage.Canvas, rng) {
		ch := stage.AddCharacter(g.r, g.at)
		ch.Tag = TagText
		if g.highlight {
			ch.Tag = TagOrnament
		}
		ch.ActivateScene(engine.NewScene(g.r, styleFg(g.color)))
		stage.SetVisibility(ch, true)
		prebuilt = append(prebuilt, ch)
	}

	cfg := Config{
		BaseSpeed: opts.MovementSpeed,
		BuildSpawn: SpawnPolicy{
			Interval: parameter.BuildSpawnInterval,
			Chance:   parameter.BuildSpawnChance,
		},
		RevealedSpawn: SpawnPolicy{
			Interval: parameter.RevealedSpawnInterval,
			Chance:   parameter.RevealedSpawnChance,
		},
		PileCap:              parameter.PileCap,
		PileStep:             -1,
		HoldTicks:            parameter.FadeHoldTicks,
		Terminate:            TerminateWhenDrained,
		AccelerateOnComplete: true,
	}
	hooks := Hooks{
		SpawnBackground: newBackgroundSpawner(stage, rng, opts.MovementSpeed, opts.Symbols(), opts.Colors()),
	}
	return NewSequencer(stage, rng, cfg, hooks, nil, prebuilt)
}
