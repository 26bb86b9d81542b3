package engine

import "github.com/gdamore/tcell/v2"

// Scene is an opaque visual state for a character: the glyph it shows and
// the style it shows it in. Effects build scenes up front and activate them
// at phase transitions; nothing downstream interprets their content.
type Scene struct {
	Rune  rune
	Style tcell.Style
}

// NewScene builds a single-frame scene.
func NewScene(r rune, style tcell.Style) *Scene {
	return &Scene{Rune: r, Style: style}
}
