package aster

import "math"

// pathOp is a single path-building command.
type pathOp uint8

const (
	opMoveTo pathOp = iota // starts a new subpath; consumes one point
	opLineTo               // extends the current subpath; consumes one point
	opClose                // closes the current subpath; consumes no points
)

// Path is a vector outline built from move/line/close commands. Curves are
// expected to arrive pre-flattened from the deserializer; the engine only
// needs bounds, containment, and replay into a renderer.
type Path struct {
	ops []pathOp
	pts []Vec2

	bounds      Rect
	boundsValid bool
	hasBounds   bool
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// NewRectPath returns a closed rectangular path with its origin at (0, 0).
func NewRectPath(width, height float64) *Path {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(width, 0)
	p.LineTo(width, height)
	p.LineTo(0, height)
	p.Close()
	return p
}

// NewPolygonPath returns a closed path through the given points.
// Returns an empty path if fewer than three points are given.
func NewPolygonPath(points []Vec2) *Path {
	p := NewPath()
	if len(points) < 3 {
		return p
	}
	p.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
	return p
}

// NewEllipsePath returns a closed path approximating an ellipse centered at
// (cx, cy), flattened to the given number of segments (minimum 8).
func NewEllipsePath(cx, cy, rx, ry float64, segments int) *Path {
	if segments < 8 {
		segments = 8
	}
	p := NewPath()
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		x := cx + rx*math.Cos(a)
		y := cy + ry*math.Sin(a)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return p
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.ops = append(p.ops, opMoveTo)
	p.pts = append(p.pts, Vec2{x, y})
	p.boundsValid = false
}

// LineTo extends the current subpath to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.ops = append(p.ops, opLineTo)
	p.pts = append(p.pts, Vec2{x, y})
	p.boundsValid = false
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.ops = append(p.ops, opClose)
}

// IsEmpty reports whether the path contains no points.
func (p *Path) IsEmpty() bool {
	return len(p.pts) == 0
}

// Bounds returns the axis-aligned bounding rectangle of all path points.
// ok is false for an empty path.
func (p *Path) Bounds() (bounds Rect, ok bool) {
	if len(p.pts) == 0 {
		return Rect{}, false
	}
	if !p.boundsValid {
		minX, minY := p.pts[0].X, p.pts[0].Y
		maxX, maxY := minX, minY
		for _, pt := range p.pts[1:] {
			minX = min(minX, pt.X)
			minY = min(minY, pt.Y)
			maxX = max(maxX, pt.X)
			maxY = max(maxY, pt.Y)
		}
		p.bounds = Rect{minX, minY, maxX - minX, maxY - minY}
		p.boundsValid = true
	}
	return p.bounds, true
}

// Contains reports whether the point (x, y) lies inside the path, using the
// even-odd rule over all subpaths. Open subpaths are treated as closed.
func (p *Path) Contains(x, y float64) bool {
	inside := false
	var start, prev Vec2
	hasPrev := false

	crossing := func(a, b Vec2) {
		if (a.Y > y) != (b.Y > y) {
			xi := a.X + (y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if x < xi {
				inside = !inside
			}
		}
	}

	pi := 0
	for _, op := range p.ops {
		switch op {
		case opMoveTo:
			// Implicitly close the previous subpath.
			if hasPrev {
				crossing(prev, start)
			}
			start = p.pts[pi]
			prev = start
			hasPrev = true
			pi++
		case opLineTo:
			pt := p.pts[pi]
			crossing(prev, pt)
			prev = pt
			pi++
		case opClose:
			if hasPrev {
				crossing(prev, start)
				prev = start
			}
		}
	}
	if hasPrev && prev != start {
		crossing(prev, start)
	}
	return inside
}

// visit replays the path commands into the given callbacks. Used by renderer
// backends to rebuild a backend-native path.
func (p *Path) visit(moveTo, lineTo func(x, y float64), closePath func()) {
	pi := 0
	for _, op := range p.ops {
		switch op {
		case opMoveTo:
			moveTo(p.pts[pi].X, p.pts[pi].Y)
			pi++
		case opLineTo:
			lineTo(p.pts[pi].X, p.pts[pi].Y)
			pi++
		case opClose:
			closePath()
		}
	}
}
