package aster

import (
	"github.com/tanema/gween/ease"
)

// Interpolation selects how a keyframe blends toward its successor.
type Interpolation uint8

const (
	InterpolationLinear Interpolation = iota
	InterpolationStep
	InterpolationCubic
	InterpolationBezier
)

// String returns the lowercase name of the interpolation kind.
func (i Interpolation) String() string {
	switch i {
	case InterpolationLinear:
		return "linear"
	case InterpolationStep:
		return "step"
	case InterpolationCubic:
		return "cubic"
	case InterpolationBezier:
		return "bezier"
	default:
		return "unknown"
	}
}

// Keyframe is a (time, value) sample on a track. Interp and Easing belong to
// the segment that starts at this keyframe: easing reshapes the normalized
// segment time before the interpolation kind blends toward the next keyframe.
type Keyframe struct {
	Time   float64
	Value  float64
	Interp Interpolation
	Easing ease.TweenFunc
}

// applyEase runs the normalized time t through a gween easing function.
// A nil function leaves t unchanged.
func applyEase(fn ease.TweenFunc, t float64) float64 {
	if fn == nil {
		return t
	}
	return float64(fn(float32(t), 0, 1, 1))
}

// blendKeyframes produces the value between from and to at normalized time t,
// dispatching on from's interpolation kind. Cubic and bezier currently
// evaluate with the same linear blend as linear; distinct curve shapes have
// not been implemented yet and authored files relying on them get the linear
// approximation.
func blendKeyframes(from, to Keyframe, t float64) float64 {
	switch from.Interp {
	case InterpolationStep:
		return from.Value
	default: // linear, cubic, bezier
		return from.Value + (to.Value-from.Value)*t
	}
}
