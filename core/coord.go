package core

// Coord is a discrete canvas coordinate. Rows grow upward: Row 0 is the
// canvas floor, larger rows are higher on screen.
type Coord struct {
	Column int
	Row    int
}

// Canvas is the rectangular bounds of the simulation space. Top > Bottom.
type Canvas struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// Width returns the number of columns, inclusive of both edges.
func (c Canvas) Width() int {
	return c.Right - c.Left + 1
}

// Height returns the number of rows, inclusive of both edges.
func (c Canvas) Height() int {
	return c.Top - c.Bottom + 1
}

// ClampColumn bounds col to [Left, Right].
func (c Canvas) ClampColumn(col int) int {
	if col < c.Left {
		return c.Left
	}
	if col > c.Right {
		return c.Right
	}
	return col
}

// Contains reports whether p lies within the canvas bounds.
func (c Canvas) Contains(p Coord) bool {
	return p.Column >= c.Left && p.Column <= c.Right &&
		p.Row >= c.Bottom && p.Row <= c.Top
}
