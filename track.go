package aster

import "fmt"

// Track binds an ordered keyframe sequence to one animatable property on one
// scene node. The node reference is non-owning; the timeline owns the track.
type Track struct {
	node      *Node
	prop      Property
	accessor  propertyAccessor
	keyframes []Keyframe
}

// NewTrack creates a track bound to the given property of node. The binding
// is resolved once, here; an unknown or inapplicable property is an error.
func NewTrack(node *Node, prop Property) (*Track, error) {
	if node == nil {
		return nil, fmt.Errorf("aster: track requires a target node")
	}
	acc, err := bindProperty(node, prop)
	if err != nil {
		return nil, err
	}
	return &Track{node: node, prop: prop, accessor: acc}, nil
}

// NewTrackPath creates a track from a dotted property path string, the form
// the deserializer produces (e.g. "transform.position.x").
func NewTrackPath(node *Node, path string) (*Track, error) {
	prop, err := ParseProperty(path)
	if err != nil {
		return nil, err
	}
	return NewTrack(node, prop)
}

// Node returns the track's target node.
func (tr *Track) Node() *Node {
	return tr.node
}

// Property returns the bound property.
func (tr *Track) Property() Property {
	return tr.prop
}

// Keyframes returns the keyframes in ascending time order.
// The returned slice MUST NOT be mutated by the caller.
func (tr *Track) Keyframes() []Keyframe {
	return tr.keyframes
}

// AddKeyframe inserts a keyframe, keeping the sequence sorted ascending by
// time. Equal-time keyframes keep insertion order.
func (tr *Track) AddKeyframe(kf Keyframe) {
	i := len(tr.keyframes)
	for i > 0 && tr.keyframes[i-1].Time > kf.Time {
		i--
	}
	tr.keyframes = append(tr.keyframes, Keyframe{})
	copy(tr.keyframes[i+1:], tr.keyframes[i:])
	tr.keyframes[i] = kf
}

// Evaluate writes the track's value at the given time onto the bound
// property. Times at or before the first keyframe hold the first value; at or
// after the last, the last value. In between, the bracketing pair is found by
// linear scan and blended per the leading keyframe's interpolation kind, with
// its easing applied to the normalized segment time. A track with no
// keyframes is a no-op.
func (tr *Track) Evaluate(time float64) {
	if len(tr.keyframes) == 0 {
		return
	}
	first := tr.keyframes[0]
	if time <= first.Time {
		tr.accessor.set(tr.node, first.Value)
		return
	}
	last := tr.keyframes[len(tr.keyframes)-1]
	if time >= last.Time {
		tr.accessor.set(tr.node, last.Value)
		return
	}
	for i := 0; i < len(tr.keyframes)-1; i++ {
		from := tr.keyframes[i]
		to := tr.keyframes[i+1]
		if time < from.Time || time > to.Time {
			continue
		}
		t := 0.0
		if span := to.Time - from.Time; span > 0 {
			t = (time - from.Time) / span
		}
		t = applyEase(from.Easing, t)
		tr.accessor.set(tr.node, blendKeyframes(from, to, t))
		return
	}
}

// Value returns the current value of the bound property.
func (tr *Track) Value() float64 {
	return tr.accessor.get(tr.node)
}
