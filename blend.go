package aster

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Blend animates a set of node properties toward target values procedurally,
// outside any timeline, for example to ease a node into place after an
// interactive drag. Create one with NewBlend, add properties, and call
// Update(dt) each tick. Values are written through the same typed accessors
// tracks use, so dirty propagation is identical. If the target node is
// disposed, the blend stops immediately.
//
// There is no global blend manager; callers drive Update themselves.
type Blend struct {
	node      *Node
	tweens    []*gween.Tween
	accessors []propertyAccessor
	Done      bool
}

// NewBlend creates an empty blend targeting node.
func NewBlend(node *Node) *Blend {
	if node == nil {
		panic("aster: blend requires a target node")
	}
	return &Blend{node: node}
}

// Add animates one property from its current value to the target over the
// given duration. Returns an error if the property cannot be bound to the
// node's kind.
func (b *Blend) Add(prop Property, to float64, duration float32, fn ease.TweenFunc) error {
	acc, err := bindProperty(b.node, prop)
	if err != nil {
		return err
	}
	b.tweens = append(b.tweens, gween.New(float32(acc.get(b.node)), float32(to), duration, fn))
	b.accessors = append(b.accessors, acc)
	return nil
}

// Update advances all tweens by dt seconds and writes values to the bound
// properties. Done is set once every tween has finished or the node has been
// disposed.
func (b *Blend) Update(dt float32) {
	if b.Done {
		return
	}
	if b.node.IsDisposed() {
		b.Done = true
		return
	}
	allDone := true
	for i, tw := range b.tweens {
		val, finished := tw.Update(dt)
		b.accessors[i].set(b.node, float64(val))
		if !finished {
			allDone = false
		}
	}
	b.Done = allDone
}

// BlendPosition creates a blend that eases node's X and Y to the target
// coordinates.
func BlendPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *Blend {
	b := NewBlend(node)
	b.Add(PropertyPositionX, toX, duration, fn)
	b.Add(PropertyPositionY, toY, duration, fn)
	return b
}

// BlendScale creates a blend that eases node's ScaleX and ScaleY to the
// target values.
func BlendScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *Blend {
	b := NewBlend(node)
	b.Add(PropertyScaleX, toSX, duration, fn)
	b.Add(PropertyScaleY, toSY, duration, fn)
	return b
}

// BlendOpacity creates a blend that eases node's opacity to the target value.
func BlendOpacity(node *Node, to float64, duration float32, fn ease.TweenFunc) *Blend {
	b := NewBlend(node)
	b.Add(PropertyOpacity, to, duration, fn)
	return b
}
