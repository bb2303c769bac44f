package aster

import (
	"testing"
)

// --- Constructor defaults ---

func TestNewGroupDefaults(t *testing.T) {
	n := NewGroup("test")
	assertNodeDefaults(t, n, "test", NodeTypeGroup)
}

func TestNewArtboardDefaults(t *testing.T) {
	bg := Color{0.2, 0.3, 0.4, 1}
	n := NewArtboard("board", 640, 480, bg)
	assertNodeDefaults(t, n, "board", NodeTypeArtboard)
	if n.Width != 640 || n.Height != 480 {
		t.Errorf("dimensions = (%v, %v), want (640, 480)", n.Width, n.Height)
	}
	if n.Background != bg {
		t.Errorf("Background = %v, want %v", n.Background, bg)
	}
}

func TestNewShapeDefaults(t *testing.T) {
	p := NewRectPath(10, 10)
	n := NewShape("shp", p)
	assertNodeDefaults(t, n, "shp", NodeTypeShape)
	if n.Path != p {
		t.Error("Path not set")
	}
	if n.Fill != ColorWhite {
		t.Errorf("Fill = %v, want white", n.Fill)
	}
}

func TestNewImageDefaults(t *testing.T) {
	n := NewImage("img", nil, 32, 16)
	assertNodeDefaults(t, n, "img", NodeTypeImage)
	if n.ImageW != 32 || n.ImageH != 16 {
		t.Errorf("image size = (%v, %v), want (32, 16)", n.ImageW, n.ImageH)
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %d, want %d", n.Type, typ)
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.Opacity != 1 {
		t.Errorf("Opacity = %v, want 1", n.Opacity)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if !n.transformDirty {
		t.Error("transformDirty should be true")
	}
	if !n.dirty {
		t.Error("dirty should be true")
	}
}

// --- Unique IDs ---

func TestUniqueIDs(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	c := NewShape("c", NewRectPath(1, 1))
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != child {
		t.Error("ChildAt(0) should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewGroup("p1")
	p2 := NewGroup("p2")
	child := NewGroup("child")

	p1.AddChild(child)
	if p1.NumChildren() != 1 {
		t.Fatal("p1 should have 1 child")
	}

	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 {
		t.Error("p2 should have 1 child")
	}
	if child.Parent != p2 {
		t.Error("child.Parent should be p2")
	}
}

func TestAddChildCyclePanic(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	grandchild := NewGroup("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for cycle, got none")
		}
	}()
	grandchild.AddChild(parent) // should panic
}

func TestAddChildSelfPanic(t *testing.T) {
	n := NewGroup("self")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for self-add, got none")
		}
	}()
	n.AddChild(n)
}

func TestAddChildNilPanic(t *testing.T) {
	n := NewGroup("n")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil child, got none")
		}
	}()
	n.AddChild(nil)
}

// --- AddChildAt ---

func TestAddChildAt(t *testing.T) {
	parent := NewGroup("parent")
	a := NewGroup("a")
	b := NewGroup("b")
	c := NewGroup("c")
	parent.AddChild(a)
	parent.AddChild(c)

	parent.AddChildAt(b, 1) // insert between a and c

	if parent.NumChildren() != 3 {
		t.Fatalf("NumChildren = %d, want 3", parent.NumChildren())
	}
	if parent.ChildAt(0) != a || parent.ChildAt(1) != b || parent.ChildAt(2) != c {
		t.Error("children order should be [a, b, c]")
	}
}

func TestAddChildAtOutOfBoundsPanic(t *testing.T) {
	parent := NewGroup("parent")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for out of bounds, got none")
		}
	}()
	parent.AddChildAt(NewGroup("a"), 3)
}

// --- RemoveChild ---

func TestRemoveChild(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	parent.AddChild(child)
	parent.RemoveChild(child)

	if parent.NumChildren() != 0 {
		t.Error("parent should have 0 children")
	}
	if child.Parent != nil {
		t.Error("child.Parent should be nil")
	}
}

func TestRemoveChildExactlyOnce(t *testing.T) {
	parent := NewGroup("parent")
	a := NewGroup("a")
	b := NewGroup("b")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.RemoveChild(a)

	if parent.NumChildren() != 1 || parent.ChildAt(0) != b {
		t.Error("only a should have been removed")
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p1 := NewGroup("p1")
	p2 := NewGroup("p2")
	child := NewGroup("child")
	p1.AddChild(child)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for wrong parent, got none")
		}
	}()
	p2.RemoveChild(child)
}

// --- RemoveChildAt / RemoveFromParent / RemoveChildren ---

func TestRemoveChildAt(t *testing.T) {
	parent := NewGroup("parent")
	a := NewGroup("a")
	b := NewGroup("b")
	c := NewGroup("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	removed := parent.RemoveChildAt(1)
	if removed != b {
		t.Error("removed should be b")
	}
	if parent.NumChildren() != 2 {
		t.Errorf("NumChildren = %d, want 2", parent.NumChildren())
	}
	if parent.ChildAt(0) != a || parent.ChildAt(1) != c {
		t.Error("remaining children should be [a, c]")
	}
}

func TestRemoveFromParent(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	parent.AddChild(child)
	child.RemoveFromParent()

	if parent.NumChildren() != 0 {
		t.Error("parent should have 0 children")
	}
	if child.Parent != nil {
		t.Error("child.Parent should be nil")
	}
}

func TestRemoveFromParentNoOp(t *testing.T) {
	n := NewGroup("orphan")
	n.RemoveFromParent() // should not panic
	if n.Parent != nil {
		t.Error("Parent should remain nil")
	}
}

func TestRemoveChildren(t *testing.T) {
	parent := NewGroup("parent")
	a := NewGroup("a")
	b := NewGroup("b")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.RemoveChildren()

	if parent.NumChildren() != 0 {
		t.Error("parent should have 0 children")
	}
	if a.Parent != nil || b.Parent != nil {
		t.Error("detached children should have nil Parent")
	}
}

// --- Find ---

func TestFind(t *testing.T) {
	root := NewGroup("root")
	mid := NewGroup("mid")
	leaf := NewShape("leaf", NewRectPath(1, 1))
	root.AddChild(mid)
	mid.AddChild(leaf)

	if root.Find("leaf") != leaf {
		t.Error("Find should locate a nested node")
	}
	if root.Find("root") != root {
		t.Error("Find should match the root itself")
	}
	if root.Find("missing") != nil {
		t.Error("Find should return nil for unknown names")
	}
}

// --- Setters ---

func TestSetOpacityClamps(t *testing.T) {
	n := NewGroup("n")
	n.SetOpacity(2)
	if n.Opacity != 1 {
		t.Errorf("Opacity = %v, want 1", n.Opacity)
	}
	n.SetOpacity(-0.5)
	if n.Opacity != 0 {
		t.Errorf("Opacity = %v, want 0", n.Opacity)
	}
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	grandchild := NewGroup("grandchild")
	root := NewGroup("root")
	root.AddChild(parent)
	parent.AddChild(child)
	child.AddChild(grandchild)

	parent.Dispose()

	if !parent.IsDisposed() {
		t.Error("parent should be disposed")
	}
	if !child.IsDisposed() {
		t.Error("child should be disposed")
	}
	if !grandchild.IsDisposed() {
		t.Error("grandchild should be disposed")
	}
	if parent.ID != 0 || child.ID != 0 || grandchild.ID != 0 {
		t.Error("disposed nodes should have ID = 0")
	}
	if root.NumChildren() != 0 {
		t.Error("root should have 0 children after dispose")
	}
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewGroup("n")
	n.Dispose()
	n.Dispose() // should not panic
	if !n.IsDisposed() {
		t.Error("should still be disposed")
	}
}

// --- Invalidation propagation ---

func TestTransformInvalidationOnAddChild(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	grandchild := NewGroup("grandchild")
	child.AddChild(grandchild)

	// Settle caches, then attach.
	child.WorldTransform()
	grandchild.WorldTransform()

	parent.AddChild(child)

	if !child.transformDirty {
		t.Error("child should have a stale transform after AddChild")
	}
	if !grandchild.transformDirty {
		t.Error("grandchild should have a stale transform after AddChild")
	}
}

func TestDirtyPropagatesToRoot(t *testing.T) {
	root := NewGroup("root")
	mid := NewGroup("mid")
	leaf := NewGroup("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)
	root.ClearDirty()

	leaf.SetPosition(1, 2)

	if !leaf.IsDirty() || !mid.IsDirty() || !root.IsDirty() {
		t.Error("dirty flag should propagate from leaf to root")
	}
}

func TestClearDirtyIsTopDown(t *testing.T) {
	root := NewGroup("root")
	leaf := NewGroup("leaf")
	root.AddChild(leaf)
	leaf.SetPosition(5, 5)

	root.ClearDirty()

	if root.IsDirty() || leaf.IsDirty() {
		t.Error("ClearDirty should reset the whole subtree")
	}
}

func TestDirtyStaysSetUntilCleared(t *testing.T) {
	root := NewGroup("root")
	leaf := NewGroup("leaf")
	root.AddChild(leaf)
	root.ClearDirty()

	leaf.SetRotation(1)
	// Reading caches must not clear the redraw flag.
	root.WorldTransform()
	leaf.WorldTransform()

	if !root.IsDirty() {
		t.Error("redraw flag should only be cleared by ClearDirty")
	}
}
