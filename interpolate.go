package aster

import (
	"reflect"

	"github.com/tanema/gween/ease"
)

// InterpolatorFunc blends between two values of one concrete type at
// normalized time t in [0, 1]. from and to are guaranteed to share the
// registered type.
type InterpolatorFunc func(from, to any, t float64) any

// Interpolators is a registry of type-specific interpolators for procedural
// blending outside the track apply step. Float64, Vec2, and Color are
// registered by default; values of any other type (or mismatched types) fall
// back to a hard step at t = 0.5.
type Interpolators struct {
	funcs map[reflect.Type]InterpolatorFunc
}

// NewInterpolators creates a registry with the default float64, Vec2, and
// Color interpolators installed.
func NewInterpolators() *Interpolators {
	in := &Interpolators{funcs: make(map[reflect.Type]InterpolatorFunc)}
	in.Register(float64(0), func(from, to any, t float64) any {
		return Lerp(from.(float64), to.(float64), t)
	})
	in.Register(Vec2{}, func(from, to any, t float64) any {
		a, b := from.(Vec2), to.(Vec2)
		return Vec2{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)}
	})
	in.Register(Color{}, func(from, to any, t float64) any {
		a, b := from.(Color), to.(Color)
		return Color{
			R: Lerp(a.R, b.R, t),
			G: Lerp(a.G, b.G, t),
			B: Lerp(a.B, b.B, t),
			A: Lerp(a.A, b.A, t),
		}
	})
	return in
}

// Register installs fn for the concrete type of example, replacing any
// existing registration.
func (in *Interpolators) Register(example any, fn InterpolatorFunc) {
	in.funcs[reflect.TypeOf(example)] = fn
}

// Interpolate blends from toward to at normalized time t, applying the easing
// function (nil for linear) before dispatching on type. Unregistered or
// mismatched types step from from to to at t = 0.5.
func (in *Interpolators) Interpolate(from, to any, t float64, fn ease.TweenFunc) any {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	t = applyEase(fn, t)

	ft := reflect.TypeOf(from)
	if ft == reflect.TypeOf(to) {
		if blend, ok := in.funcs[ft]; ok {
			return blend(from, to, t)
		}
	}
	if t < 0.5 {
		return from
	}
	return to
}

// Lerp returns the linear blend of a and b at t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
