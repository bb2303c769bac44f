package aster

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func newXTrack(t *testing.T, node *Node) *Track {
	t.Helper()
	tr, err := NewTrack(node, PropertyPositionX)
	if err != nil {
		t.Fatalf("NewTrack: %v", err)
	}
	return tr
}

// --- Binding ---

func TestNewTrackPath(t *testing.T) {
	node := NewGroup("n")
	tr, err := NewTrackPath(node, "transform.position.x")
	if err != nil {
		t.Fatalf("NewTrackPath: %v", err)
	}
	if tr.Property() != PropertyPositionX {
		t.Errorf("Property = %v, want position x", tr.Property())
	}
}

func TestNewTrackPathUnknown(t *testing.T) {
	if _, err := NewTrackPath(NewGroup("n"), "transform.positoin.x"); err == nil {
		t.Error("misspelled path should fail at bind time")
	}
}

func TestNewTrackShapeOnlyProperty(t *testing.T) {
	if _, err := NewTrack(NewGroup("n"), PropertyFillR); err == nil {
		t.Error("fill property should not bind on a group")
	}
	if _, err := NewTrack(NewShape("s", NewRectPath(1, 1)), PropertyFillR); err != nil {
		t.Errorf("fill property should bind on a shape: %v", err)
	}
}

func TestNewTrackNilNode(t *testing.T) {
	if _, err := NewTrack(nil, PropertyPositionX); err == nil {
		t.Error("nil node should fail")
	}
}

// --- Keyframe ordering ---

func TestAddKeyframeSortsOnInsert(t *testing.T) {
	tr := newXTrack(t, NewGroup("n"))
	tr.AddKeyframe(Keyframe{Time: 2, Value: 20})
	tr.AddKeyframe(Keyframe{Time: 0, Value: 0})
	tr.AddKeyframe(Keyframe{Time: 1, Value: 10})

	kfs := tr.Keyframes()
	if kfs[0].Time != 0 || kfs[1].Time != 1 || kfs[2].Time != 2 {
		t.Errorf("keyframes not sorted: %v, %v, %v", kfs[0].Time, kfs[1].Time, kfs[2].Time)
	}
}

func TestAddKeyframeEqualTimesKeepOrder(t *testing.T) {
	tr := newXTrack(t, NewGroup("n"))
	tr.AddKeyframe(Keyframe{Time: 1, Value: 1})
	tr.AddKeyframe(Keyframe{Time: 1, Value: 2})
	kfs := tr.Keyframes()
	if kfs[0].Value != 1 || kfs[1].Value != 2 {
		t.Error("equal-time keyframes should keep insertion order")
	}
}

// --- Evaluation ---

func TestEvaluateClampsToEndpoints(t *testing.T) {
	node := NewGroup("n")
	tr := newXTrack(t, node)
	tr.AddKeyframe(Keyframe{Time: 1, Value: 10})
	tr.AddKeyframe(Keyframe{Time: 3, Value: 30})

	tr.Evaluate(0)
	if node.X != 10 {
		t.Errorf("before first keyframe: X = %v, want 10", node.X)
	}
	tr.Evaluate(5)
	if node.X != 30 {
		t.Errorf("after last keyframe: X = %v, want 30", node.X)
	}
}

func TestEvaluateLinearMidpoint(t *testing.T) {
	node := NewGroup("n")
	tr := newXTrack(t, node)
	tr.AddKeyframe(Keyframe{Time: 0, Value: 0})
	tr.AddKeyframe(Keyframe{Time: 2, Value: 1})

	tr.Evaluate(1)
	if !almostEqual(node.X, 0.5) {
		t.Errorf("X = %v, want 0.5", node.X)
	}
}

func TestEvaluateStep(t *testing.T) {
	node := NewGroup("n")
	tr := newXTrack(t, node)
	tr.AddKeyframe(Keyframe{Time: 0, Value: 0, Interp: InterpolationStep})
	tr.AddKeyframe(Keyframe{Time: 2, Value: 100})

	tr.Evaluate(1.9)
	if node.X != 0 {
		t.Errorf("step should hold the from value, got %v", node.X)
	}
	tr.Evaluate(2)
	if node.X != 100 {
		t.Errorf("at the to keyframe the value switches, got %v", node.X)
	}
}

func TestEvaluateCubicFallsBackToLinear(t *testing.T) {
	linear := NewGroup("a")
	cubic := NewGroup("b")
	for node, kind := range map[*Node]Interpolation{linear: InterpolationLinear, cubic: InterpolationCubic} {
		tr := newXTrack(t, node)
		tr.AddKeyframe(Keyframe{Time: 0, Value: 0, Interp: kind})
		tr.AddKeyframe(Keyframe{Time: 4, Value: 8})
		tr.Evaluate(1)
	}
	if linear.X != cubic.X {
		t.Errorf("cubic (%v) should currently match linear (%v)", cubic.X, linear.X)
	}
}

func TestEvaluateEasing(t *testing.T) {
	node := NewGroup("n")
	tr := newXTrack(t, node)
	tr.AddKeyframe(Keyframe{Time: 0, Value: 0, Easing: ease.InQuad})
	tr.AddKeyframe(Keyframe{Time: 2, Value: 100})

	// InQuad at t=0.5 is 0.25.
	tr.Evaluate(1)
	if node.X < 24 || node.X > 26 {
		t.Errorf("eased X = %v, want ~25", node.X)
	}
}

func TestEvaluateEmptyTrackNoOp(t *testing.T) {
	node := NewGroup("n")
	node.SetPosition(42, 0)
	tr := newXTrack(t, node)
	tr.Evaluate(1)
	if node.X != 42 {
		t.Error("empty track should not touch the property")
	}
}

func TestEvaluateWritesThroughSetters(t *testing.T) {
	root := NewGroup("root")
	node := NewGroup("n")
	root.AddChild(node)
	tr := newXTrack(t, node)
	tr.AddKeyframe(Keyframe{Time: 0, Value: 0})
	tr.AddKeyframe(Keyframe{Time: 1, Value: 10})
	root.ClearDirty()

	tr.Evaluate(0.5)

	if !root.IsDirty() {
		t.Error("track writes should propagate dirty flags like direct setters")
	}
}

// --- Timeline ---

func TestNewTimelineValidation(t *testing.T) {
	assertPanic(t, func() { NewTimeline(-1, 60) })
	assertPanic(t, func() { NewTimeline(5, 0) })
}

func TestTimelineEvaluateClamps(t *testing.T) {
	node := NewGroup("n")
	tl := NewTimeline(2, 60)
	tr := newXTrack(t, node)
	tr.AddKeyframe(Keyframe{Time: 0, Value: 0})
	tr.AddKeyframe(Keyframe{Time: 2, Value: 20})
	tl.AddTrack(tr)

	tl.Evaluate(-5)
	if node.X != 0 {
		t.Errorf("X = %v, want 0", node.X)
	}
	tl.Evaluate(99)
	if node.X != 20 {
		t.Errorf("X = %v, want 20", node.X)
	}
}

func TestTimelineFrameConversion(t *testing.T) {
	tl := NewTimeline(5, 60)
	if got := tl.TimeToFrame(1); got != 60 {
		t.Errorf("TimeToFrame(1) = %d, want 60", got)
	}
	if got := tl.FrameToTime(30); !almostEqual(got, 0.5) {
		t.Errorf("FrameToTime(30) = %v, want 0.5", got)
	}
}

func assertPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic, got none")
		}
	}()
	fn()
}
