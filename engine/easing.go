package engine

import "math"

// Ease selects the curve mapping linear path progress to eased progress.
type Ease int

const (
	EaseLinear Ease = iota
	// EaseInOutSine accelerates then decelerates, used for normal falls
	EaseInOutSine
	// EaseInQuad starts slow and accelerates, used for fast-forward falls
	EaseInQuad
)

// Apply maps t in [0,1] to eased progress in [0,1]. Inputs outside the
// range are clamped.
func (e Ease) Apply(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch e {
	case EaseInOutSine:
		return -(math.Cos(math.Pi*t) - 1) / 2
	case EaseInQuad:
		return t * t
	default:
		return t
	}
}
