package engine

import (
	"testing"

	"github.com/lixenwraith/flurry/core"
)

func TestEaseApply(t *testing.T) {
	tests := []struct {
		name string
		ease Ease
		in   float64
		want float64
	}{
		{"Linear midpoint", EaseLinear, 0.5, 0.5},
		{"InOutSine midpoint", EaseInOutSine, 0.5, 0.5},
		{"InQuad midpoint", EaseInQuad, 0.5, 0.25},
		{"Clamped below", EaseInOutSine, -0.2, 0},
		{"Clamped above", EaseInQuad, 1.7, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.ease.Apply(tt.in)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEaseMonotone(t *testing.T) {
	for _, e := range []Ease{EaseLinear, EaseInOutSine, EaseInQuad} {
		prev := -1.0
		for i := 0; i <= 100; i++ {
			v := e.Apply(float64(i) / 100)
			if v < prev {
				t.Fatalf("ease %v not monotone at %d", e, i)
			}
			prev = v
		}
	}
}

func TestMotionArrivesAtFinalWaypoint(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		ease  Ease
	}{
		{"Slow in-out", 0.1, EaseInOutSine},
		{"Fast linear", 5, EaseLinear},
		{"Accelerating", 0.5, EaseInQuad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath(tt.speed, tt.ease)
			p.AddWaypoint(core.Coord{Column: 8, Row: 10})
			p.AddWaypoint(core.Coord{Column: 6, Row: 0})

			var m Motion
			m.SetCoordinate(core.Coord{Column: 10, Row: 20})
			m.ActivatePath(p)

			steps := 0
			for m.ActivePath() != nil {
				m.Step()
				steps++
				if steps > 10000 {
					t.Fatal("path never completed")
				}
			}
			if got := m.CurrentCoord(); got != (core.Coord{Column: 6, Row: 0}) {
				t.Errorf("rest coord %+v, want (6,0)", got)
			}
		})
	}
}

func TestMotionCompletionHookFiresOnce(t *testing.T) {
	p := NewPath(100, EaseLinear)
	p.AddWaypoint(core.Coord{Column: 0, Row: 0})
	fired := 0
	p.OnComplete(func() { fired++ })

	var m Motion
	m.SetCoordinate(core.Coord{Column: 0, Row: 5})
	m.ActivatePath(p)
	m.Step()
	m.Step() // at rest, no-op
	if fired != 1 {
		t.Errorf("completion hook fired %d times, want 1", fired)
	}
	if m.ActivePath() != nil {
		t.Error("path still active after arrival")
	}
}

func TestActivatePathReplacesWithoutFiring(t *testing.T) {
	old := NewPath(0.1, EaseInOutSine)
	old.AddWaypoint(core.Coord{Column: 0, Row: 0})
	fired := false
	old.OnComplete(func() { fired = true })

	var m Motion
	m.SetCoordinate(core.Coord{Column: 0, Row: 20})
	m.ActivatePath(old)
	m.Step()

	fresh := NewPath(100, EaseLinear)
	fresh.AddWaypoint(core.Coord{Column: 3, Row: 0})
	m.ActivatePath(fresh)
	m.Step()

	if fired {
		t.Error("replaced path fired its completion hook")
	}
	if got := m.CurrentCoord(); got != (core.Coord{Column: 3, Row: 0}) {
		t.Errorf("rest coord %+v, want (3,0)", got)
	}
}

func TestMotionProgressStaysOnPolyline(t *testing.T) {
	p := NewPath(0.5, EaseLinear)
	p.AddWaypoint(core.Coord{Column: 10, Row: 10})
	p.AddWaypoint(core.Coord{Column: 10, Row: 0})

	var m Motion
	m.SetCoordinate(core.Coord{Column: 10, Row: 20})
	m.ActivatePath(p)

	prevRow := 20
	for m.ActivePath() != nil {
		m.Step()
		c := m.CurrentCoord()
		if c.Column != 10 {
			t.Fatalf("drifted off the vertical polyline to column %d", c.Column)
		}
		if c.Row > prevRow {
			t.Fatalf("row climbed from %d to %d on a descending path", prevRow, c.Row)
		}
		prevRow = c.Row
	}
}

func TestZeroDistancePathCompletesImmediately(t *testing.T) {
	p := NewPath(1, EaseLinear)
	p.AddWaypoint(core.Coord{Column: 2, Row: 2})

	var m Motion
	m.SetCoordinate(core.Coord{Column: 2, Row: 2})
	m.ActivatePath(p)
	m.Step()
	if m.ActivePath() != nil {
		t.Error("zero-distance path still active after one step")
	}
}
