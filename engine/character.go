package engine

import "github.com/lixenwraith/flurry/core"

// Character is one animated glyph owned by a Stage. Input is the coordinate
// the character ultimately belongs at (its position in the source text or
// art); Motion tracks where it currently is.
type Character struct {
	Rune  rune
	Input core.Coord

	// Layer orders characters during frame compositing; higher layers
	// paint over lower ones.
	Layer int

	// Tag marks which part of an effect owns the character. The engine
	// never interprets it.
	Tag int

	Visible bool
	Motion  Motion

	scene *Scene
}

// ActivateScene switches the character's visual state.
func (ch *Character) ActivateScene(s *Scene) {
	ch.scene = s
}

// ActiveScene returns the character's current visual state, or nil when no
// scene has been activated yet.
func (ch *Character) ActiveScene() *Scene {
	return ch.scene
}
