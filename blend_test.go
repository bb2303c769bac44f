package aster

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestBlendPosition(t *testing.T) {
	node := NewGroup("n")
	b := BlendPosition(node, 100, 50, 1.0, ease.Linear)

	b.Update(0.5)
	if node.X < 49 || node.X > 51 {
		t.Errorf("X = %v, want ~50", node.X)
	}
	if b.Done {
		t.Error("blend should not be done at half duration")
	}

	b.Update(0.5)
	if node.X < 99 || node.X > 101 {
		t.Errorf("X = %v, want ~100", node.X)
	}
	if !b.Done {
		t.Error("blend should be done")
	}
}

func TestBlendOpacity(t *testing.T) {
	node := NewGroup("n")
	b := BlendOpacity(node, 0, 1.0, ease.Linear)
	b.Update(1.0)
	if node.Opacity != 0 {
		t.Errorf("Opacity = %v, want 0", node.Opacity)
	}
}

func TestBlendStopsOnDisposedNode(t *testing.T) {
	node := NewGroup("n")
	b := BlendScale(node, 2, 2, 1.0, ease.Linear)
	node.Dispose()
	b.Update(0.5)
	if !b.Done {
		t.Error("blend should stop when the target is disposed")
	}
	if node.ScaleX != 1 {
		t.Error("no writes should occur after disposal")
	}
}

func TestBlendUpdateAfterDone(t *testing.T) {
	node := NewGroup("n")
	b := BlendOpacity(node, 0.5, 0.1, ease.Linear)
	b.Update(1)
	b.Update(1) // no-op
	if !almostEqual(node.Opacity, 0.5) {
		t.Errorf("Opacity = %v, want 0.5", node.Opacity)
	}
}

func TestBlendAddRejectsUnboundProperty(t *testing.T) {
	b := NewBlend(NewGroup("n"))
	if err := b.Add(PropertyFillA, 1, 1, ease.Linear); err == nil {
		t.Error("fill property should not bind on a group")
	}
}

func TestBlendMarksDirty(t *testing.T) {
	root := NewGroup("root")
	node := NewGroup("n")
	root.AddChild(node)
	b := BlendPosition(node, 10, 10, 1, ease.Linear)
	root.ClearDirty()

	b.Update(0.25)
	if !root.IsDirty() {
		t.Error("blend writes should propagate dirty flags")
	}
}
