package engine

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/flurry/core"
)

// Cell is one rendered glyph of a frame.
type Cell struct {
	Coord core.Coord
	Rune  rune
	Style tcell.Style
}

// Stage owns every character in one animation run: the input text
// characters plus any the effect adds. It lays out text, tracks
// visibility, advances motion, and composes frames.
type Stage struct {
	Canvas core.Canvas

	chars []*Character

	// input coordinate occupancy, used for outline detection
	inputAt map[core.Coord]*Character
}

// NewStage creates an empty stage over the given canvas.
func NewStage(canvas core.Canvas) *Stage {
	return &Stage{
		Canvas:  canvas,
		inputAt: make(map[core.Coord]*Character),
	}
}

// AddText lays out lines of text onto the canvas, centered horizontally,
// with the last line sitting on baseRow and earlier lines stacked above it.
// Spaces produce no character. Wide runes advance two columns. The created
// characters are invisible until the effect reveals them.
func (s *Stage) AddText(lines []string, baseRow int) []*Character {
	maxWidth := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	startCol := s.Canvas.Left + (s.Canvas.Width()-maxWidth)/2

	var created []*Character
	for i, line := range lines {
		row := baseRow + (len(lines) - 1 - i)
		col := startCol
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if r != ' ' {
				created = append(created, s.AddCharacter(r, core.Coord{Column: col, Row: row}))
			}
			col += w
		}
	}
	return created
}

// AddCharacter creates an invisible character whose input coordinate and
// current coordinate are both at.
func (s *Stage) AddCharacter(r rune, at core.Coord) *Character {
	ch := &Character{Rune: r, Input: at}
	ch.Motion.SetCoordinate(at)
	s.chars = append(s.chars, ch)
	if _, taken := s.inputAt[at]; !taken {
		s.inputAt[at] = ch
	}
	return ch
}

// SetVisibility shows or hides a character.
func (s *Stage) SetVisibility(ch *Character, visible bool) {
	ch.Visible = visible
}

// Characters returns every character on the stage in creation order.
func (s *Stage) Characters() []*Character {
	return s.chars
}

// IsOutline reports whether ch sits on the outline of the input text: at
// least one of its four neighbouring input coordinates is unoccupied.
func (s *Stage) IsOutline(ch *Character) bool {
	at := ch.Input
	neighbours := [4]core.Coord{
		{Column: at.Column, Row: at.Row + 1},
		{Column: at.Column, Row: at.Row - 1},
		{Column: at.Column - 1, Row: at.Row},
		{Column: at.Column + 1, Row: at.Row},
	}
	for _, n := range neighbours {
		if _, ok := s.inputAt[n]; !ok {
			return true
		}
	}
	return false
}

// Tick advances motion for every visible character with an in-flight path.
func (s *Stage) Tick() {
	for _, ch := range s.chars {
		if ch.Visible && ch.Motion.ActivePath() != nil {
			ch.Motion.Step()
		}
	}
}

// Frame composes the current visible cells, painted in ascending layer
// order so higher layers cover lower ones at shared coordinates. Cells are
// returned sorted by row descending then column ascending, the order a
// top-down renderer consumes them in.
func (s *Stage) Frame() []Cell {
	painted := make(map[core.Coord]Cell)
	order := make([]*Character, len(s.chars))
	copy(order, s.chars)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Layer < order[j].Layer
	})

	for _, ch := range order {
		if !ch.Visible || ch.scene == nil {
			continue
		}
		at := ch.Motion.CurrentCoord()
		if !s.Canvas.Contains(at) {
			continue
		}
		painted[at] = Cell{Coord: at, Rune: ch.scene.Rune, Style: ch.scene.Style}
	}

	cells := make([]Cell, 0, len(painted))
	for _, c := range painted {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Coord.Row != cells[j].Coord.Row {
			return cells[i].Coord.Row > cells[j].Coord.Row
		}
		return cells[i].Coord.Column < cells[j].Coord.Column
	})
	return cells
}
