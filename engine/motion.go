package engine

import (
	"math"

	"github.com/lixenwraith/flurry/core"
)

// Path is an ordered waypoint sequence traversed at a fixed speed in cells
// per tick, with an easing curve applied over total path progress.
type Path struct {
	speed     float64
	ease      Ease
	waypoints []core.Coord

	onComplete func()
}

// NewPath creates an empty path. Speed must be positive; values at or
// below zero are coerced to a minimal crawl rather than rejected, since
// path construction has no error channel.
func NewPath(speed float64, ease Ease) *Path {
	if speed <= 0 {
		speed = 0.01
	}
	return &Path{speed: speed, ease: ease}
}

// AddWaypoint appends a waypoint to the path.
func (p *Path) AddWaypoint(c core.Coord) {
	p.waypoints = append(p.waypoints, c)
}

// Waypoints returns the waypoint sequence in traversal order.
func (p *Path) Waypoints() []core.Coord {
	return p.waypoints
}

// Speed returns the path's speed in cells per tick.
func (p *Path) Speed() float64 {
	return p.speed
}

// OnComplete registers fn to run once when the final waypoint is reached.
func (p *Path) OnComplete(fn func()) {
	p.onComplete = fn
}

// Motion tracks one character's coordinate and in-flight path.
type Motion struct {
	coord core.Coord

	path       *Path
	origin     core.Coord
	step       int
	totalSteps int
	totalDist  float64
}

// SetCoordinate teleports the character, leaving any active path intact.
func (m *Motion) SetCoordinate(c core.Coord) {
	m.coord = c
}

// CurrentCoord returns the character's current coordinate.
func (m *Motion) CurrentCoord() core.Coord {
	return m.coord
}

// ActivePath returns the in-flight path, or nil when the character is at
// rest.
func (m *Motion) ActivePath() *Path {
	return m.path
}

// ActivatePath starts traversal of p from the current coordinate. Any
// previously active path is discarded without firing its completion hook.
func (m *Motion) ActivatePath(p *Path) {
	m.path = p
	m.origin = m.coord
	m.step = 0
	m.totalDist = polylineLength(m.origin, p.waypoints)
	m.totalSteps = int(math.Ceil(m.totalDist / p.speed))
	if m.totalSteps < 1 {
		m.totalSteps = 1
	}
}

// Step advances the path by one tick. On arrival at the final waypoint the
// path is deactivated and its completion hook fires.
func (m *Motion) Step() {
	if m.path == nil {
		return
	}
	m.step++
	if m.step >= m.totalSteps {
		if n := len(m.path.waypoints); n > 0 {
			m.coord = m.path.waypoints[n-1]
		}
		done := m.path
		m.path = nil
		if done.onComplete != nil {
			done.onComplete()
		}
		return
	}
	t := m.path.ease.Apply(float64(m.step) / float64(m.totalSteps))
	m.coord = polylinePoint(m.origin, m.path.waypoints, t*m.totalDist)
}

func polylineLength(origin core.Coord, pts []core.Coord) float64 {
	total := 0.0
	prev := origin
	for _, p := range pts {
		total += segmentLength(prev, p)
		prev = p
	}
	return total
}

// polylinePoint returns the coordinate at distance d along the polyline,
// rounded to the nearest cell.
func polylinePoint(origin core.Coord, pts []core.Coord, d float64) core.Coord {
	prev := origin
	for _, p := range pts {
		seg := segmentLength(prev, p)
		if d <= seg && seg > 0 {
			f := d / seg
			return core.Coord{
				Column: int(math.Round(float64(prev.Column) + f*float64(p.Column-prev.Column))),
				Row:    int(math.Round(float64(prev.Row) + f*float64(p.Row-prev.Row))),
			}
		}
		d -= seg
		prev = p
	}
	return prev
}

func segmentLength(a, b core.Coord) float64 {
	dx := float64(b.Column - a.Column)
	dy := float64(b.Row - a.Row)
	return math.Sqrt(dx*dx + dy*dy)
}
