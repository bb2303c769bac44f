package aster

import "fmt"

// Property identifies an animatable scalar on a Node. Tracks bind to a
// Property once, at construction, instead of walking a dotted path string on
// every evaluation; a misspelled path fails the bind instead of silently
// doing nothing every frame.
type Property uint8

const (
	PropertyPositionX Property = iota
	PropertyPositionY
	PropertyRotation
	PropertyScaleX
	PropertyScaleY
	PropertyPivotX
	PropertyPivotY
	PropertyOpacity
	PropertyFillR
	PropertyFillG
	PropertyFillB
	PropertyFillA
	PropertyStrokeWidth
)

// propertyPaths maps the loader's dotted path strings onto Property values.
// The paths mirror the authoring format's object layout.
var propertyPaths = map[string]Property{
	"transform.position.x": PropertyPositionX,
	"transform.position.y": PropertyPositionY,
	"transform.rotation":   PropertyRotation,
	"transform.scale.x":    PropertyScaleX,
	"transform.scale.y":    PropertyScaleY,
	"transform.pivot.x":    PropertyPivotX,
	"transform.pivot.y":    PropertyPivotY,
	"opacity":              PropertyOpacity,
	"fill.r":               PropertyFillR,
	"fill.g":               PropertyFillG,
	"fill.b":               PropertyFillB,
	"fill.a":               PropertyFillA,
	"strokeWidth":          PropertyStrokeWidth,
}

// ParseProperty resolves a dotted property path (e.g. "transform.position.x")
// to a Property. Returns an error for unknown paths.
func ParseProperty(path string) (Property, error) {
	p, ok := propertyPaths[path]
	if !ok {
		return 0, fmt.Errorf("aster: unknown property path %q", path)
	}
	return p, nil
}

// String returns the dotted path form of the property.
func (p Property) String() string {
	for path, prop := range propertyPaths {
		if prop == p {
			return path
		}
	}
	return "unknown"
}

// propertyAccessor is a typed getter/setter pair for one Property. Setters
// route through the Node's mutating setters so cache invalidation and dirty
// propagation happen exactly as for direct mutation.
type propertyAccessor struct {
	get func(*Node) float64
	set func(*Node, float64)
}

var propertyTable = map[Property]propertyAccessor{
	PropertyPositionX: {
		get: func(n *Node) float64 { return n.X },
		set: func(n *Node, v float64) { n.SetPosition(v, n.Y) },
	},
	PropertyPositionY: {
		get: func(n *Node) float64 { return n.Y },
		set: func(n *Node, v float64) { n.SetPosition(n.X, v) },
	},
	PropertyRotation: {
		get: func(n *Node) float64 { return n.Rotation },
		set: (*Node).SetRotation,
	},
	PropertyScaleX: {
		get: func(n *Node) float64 { return n.ScaleX },
		set: func(n *Node, v float64) { n.SetScale(v, n.ScaleY) },
	},
	PropertyScaleY: {
		get: func(n *Node) float64 { return n.ScaleY },
		set: func(n *Node, v float64) { n.SetScale(n.ScaleX, v) },
	},
	PropertyPivotX: {
		get: func(n *Node) float64 { return n.PivotX },
		set: func(n *Node, v float64) { n.SetPivot(v, n.PivotY) },
	},
	PropertyPivotY: {
		get: func(n *Node) float64 { return n.PivotY },
		set: func(n *Node, v float64) { n.SetPivot(n.PivotX, v) },
	},
	PropertyOpacity: {
		get: func(n *Node) float64 { return n.Opacity },
		set: (*Node).SetOpacity,
	},
	PropertyFillR: {
		get: func(n *Node) float64 { return n.Fill.R },
		set: func(n *Node, v float64) { c := n.Fill; c.R = v; n.SetFill(c) },
	},
	PropertyFillG: {
		get: func(n *Node) float64 { return n.Fill.G },
		set: func(n *Node, v float64) { c := n.Fill; c.G = v; n.SetFill(c) },
	},
	PropertyFillB: {
		get: func(n *Node) float64 { return n.Fill.B },
		set: func(n *Node, v float64) { c := n.Fill; c.B = v; n.SetFill(c) },
	},
	PropertyFillA: {
		get: func(n *Node) float64 { return n.Fill.A },
		set: func(n *Node, v float64) { c := n.Fill; c.A = v; n.SetFill(c) },
	},
	PropertyStrokeWidth: {
		get: func(n *Node) float64 { return n.StrokeWidth },
		set: (*Node).SetStrokeWidth,
	},
}

// shapeOnlyProperties are bindable only on shape nodes.
var shapeOnlyProperties = map[Property]bool{
	PropertyFillR:       true,
	PropertyFillG:       true,
	PropertyFillB:       true,
	PropertyFillA:       true,
	PropertyStrokeWidth: true,
}

// bindProperty resolves a Property against a node kind, returning its
// accessor or an error if the node kind does not carry the property.
func bindProperty(node *Node, prop Property) (propertyAccessor, error) {
	acc, ok := propertyTable[prop]
	if !ok {
		return propertyAccessor{}, fmt.Errorf("aster: unknown property %d", prop)
	}
	if shapeOnlyProperties[prop] && node.Type != NodeTypeShape {
		return propertyAccessor{}, fmt.Errorf(
			"aster: property %q not animatable on %s node %q", prop, node.Type, node.Name)
	}
	return acc, nil
}
