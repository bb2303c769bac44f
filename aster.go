package aster

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent is fully transparent black.
var ColorTransparent = Color{}

// toRGBA converts to a premultiplied 8-bit color for submission to the backend.
func (c Color) toRGBA() color.RGBA {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	a := clamp(c.A)
	return color.RGBA{
		R: uint8(clamp(c.R) * a * 255),
		G: uint8(clamp(c.G) * a * 255),
		B: uint8(clamp(c.B) * a * 255),
		A: uint8(a * 255),
	}
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	x0 := min(r.X, other.X)
	y0 := min(r.Y, other.Y)
	x1 := max(r.X+r.Width, other.X+other.Width)
	y1 := max(r.Y+r.Height, other.Y+other.Height)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Area returns the rectangle's area. Degenerate rectangles have area 0.
func (r Rect) Area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Expand returns r grown by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{r.X - d, r.Y - d, r.Width + 2*d, r.Height + 2*d}
}

// NodeType distinguishes the behavior and local bounds contract of a Node.
type NodeType uint8

const (
	NodeTypeArtboard NodeType = iota // root container with fixed dimensions and background color
	NodeTypeGroup                    // container with no visual output
	NodeTypeShape                    // renders a filled and/or stroked vector path
	NodeTypeImage                    // renders an image asset
)

// String returns the lowercase name of the node type.
func (t NodeType) String() string {
	switch t {
	case NodeTypeArtboard:
		return "artboard"
	case NodeTypeGroup:
		return "group"
	case NodeTypeShape:
		return "shape"
	case NodeTypeImage:
		return "image"
	default:
		return "unknown"
	}
}

// LoopMode selects what happens when playback reaches a timeline boundary.
type LoopMode uint8

const (
	LoopNone     LoopMode = iota // clamp at the boundary and stop
	LoopRepeat                   // wrap around to the opposite boundary
	LoopPingPong                 // reverse direction at each boundary
)

// PlaybackState is the orchestrator's lifecycle state.
type PlaybackState uint8

const (
	PlaybackIdle    PlaybackState = iota // nothing loaded
	PlaybackStopped                      // loaded, time at 0
	PlaybackPlaying                      // advancing every tick
	PlaybackPaused                       // frozen at the current time
)

// String returns the lowercase name of the playback state.
func (s PlaybackState) String() string {
	switch s {
	case PlaybackIdle:
		return "idle"
	case PlaybackStopped:
		return "stopped"
	case PlaybackPlaying:
		return "playing"
	case PlaybackPaused:
		return "paused"
	default:
		return "unknown"
	}
}
