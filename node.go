package aster

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// nodeIDCounter is a plain counter; aster is single-threaded, so no atomic.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene graph element. A single flat struct is used
// for all node kinds to avoid interface dispatch on the hot path; Type selects
// the behavior and the local bounds contract.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy. Parent is a non-owning back-reference used for world
	// transform composition and dirty/bounds propagation, never for lifetime.
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
	PivotX   float64
	PivotY   float64

	// Visibility
	Opacity float64
	Visible bool

	// Computed caches (lazily refreshed; see WorldTransform / WorldBounds)
	worldTransform Matrix
	worldOpacity   float64
	transformDirty bool

	worldBounds    Rect
	worldHasBounds bool
	boundsDirty    bool

	// Redraw flag. Set by every mutating setter and propagated to the root;
	// cleared only by an explicit top-down ClearDirty pass.
	dirty bool

	// Artboard fields (NodeTypeArtboard)
	Width      float64
	Height     float64
	Background Color

	// Shape fields (NodeTypeShape)
	Path        *Path
	Fill        Color
	Stroke      Color
	StrokeWidth float64

	// Image fields (NodeTypeImage)
	Img            *ebiten.Image
	ImageW, ImageH float64

	// Internal
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Opacity = 1
	n.Visible = true
	n.transformDirty = true
	n.boundsDirty = true
	n.dirty = true
}

// NewArtboard creates a root container node with fixed dimensions and a
// background color.
func NewArtboard(name string, width, height float64, background Color) *Node {
	n := &Node{
		Name:       name,
		Type:       NodeTypeArtboard,
		Width:      width,
		Height:     height,
		Background: background,
	}
	nodeDefaults(n)
	return n
}

// NewGroup creates a container node with no visual representation.
func NewGroup(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeGroup}
	nodeDefaults(n)
	return n
}

// NewShape creates a shape node that renders the given path. Fill defaults to
// opaque white; set StrokeWidth > 0 to draw an outline.
func NewShape(name string, path *Path) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeShape,
		Path: path,
		Fill: ColorWhite,
	}
	nodeDefaults(n)
	return n
}

// NewImage creates an image node. img may be nil until the asset collaborator
// resolves it; width and height define the local bounds either way.
func NewImage(name string, img *ebiten.Image, width, height float64) *Node {
	n := &Node{
		Name:   name,
		Type:   NodeTypeImage,
		Img:    img,
		ImageW: width,
		ImageH: height,
	}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, child == n, or child is an ancestor of n (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("aster: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("aster: adding child would create a cycle")
	}
	if child.Parent != nil {
		old := child.Parent
		old.removeChildByPtr(child)
		old.invalidate()
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeTransformDirty(child)
	n.invalidate()
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("aster: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("aster: adding child would create a cycle")
	}
	if index < 0 || index > len(n.children) {
		panic("aster: child index out of range")
	}
	if child.Parent != nil {
		old := child.Parent
		old.removeChildByPtr(child)
		old.invalidate()
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	markSubtreeTransformDirty(child)
	n.invalidate()
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child == nil || child.Parent != n {
		panic("aster: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeTransformDirty(child)
	n.invalidate()
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		panic("aster: child index out of range")
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.Parent = nil
	markSubtreeTransformDirty(child)
	n.invalidate()
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		markSubtreeTransformDirty(child)
	}
	n.children = n.children[:0]
	n.invalidate()
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Find returns the first node in this subtree (depth-first, including n
// itself) whose Name matches, or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// --- Mutating setters ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.invalidateTransform()
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.invalidateTransform()
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.invalidateTransform()
}

// SetPivot sets the node's PivotX and PivotY and marks it dirty.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = px
	n.PivotY = py
	n.invalidateTransform()
}

// SetOpacity sets the node's opacity, clamped to [0, 1], and marks it dirty.
func (n *Node) SetOpacity(a float64) {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	n.Opacity = a
	n.invalidateTransform()
}

// SetVisible sets the node's visibility and marks it dirty.
func (n *Node) SetVisible(v bool) {
	if n.Visible == v {
		return
	}
	n.Visible = v
	n.invalidate()
}

// SetFill sets a shape node's fill color and marks it dirty.
func (n *Node) SetFill(c Color) {
	n.Fill = c
	n.markDirty()
}

// SetStroke sets a shape node's stroke color and marks it dirty.
func (n *Node) SetStroke(c Color) {
	n.Stroke = c
	n.markDirty()
}

// SetStrokeWidth sets a shape node's stroke width and marks it dirty.
// Stroke width expands the local bounds by half its value.
func (n *Node) SetStrokeWidth(w float64) {
	n.StrokeWidth = w
	n.invalidate()
}

// SetImage swaps an image node's resolved asset and marks it dirty.
func (n *Node) SetImage(img *ebiten.Image) {
	n.Img = img
	n.markDirty()
}

// LocalTransform returns the node's decomposed local transform.
func (n *Node) LocalTransform() Transform {
	return Transform{
		Position: Vec2{n.X, n.Y},
		Rotation: n.Rotation,
		Scale:    Vec2{n.ScaleX, n.ScaleY},
		Pivot:    Vec2{n.PivotX, n.PivotY},
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Path = nil
	n.Img = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeTransformDirty invalidates cached world transforms and bounds on
// node and all its descendants.
func markSubtreeTransformDirty(node *Node) {
	node.transformDirty = true
	node.boundsDirty = true
	for _, child := range node.children {
		markSubtreeTransformDirty(child)
	}
}

// invalidateTransform handles a change to this node's local transform or
// opacity: the whole subtree's world transforms are stale, bounds are stale
// here and upward, and the node needs repainting.
func (n *Node) invalidateTransform() {
	markSubtreeTransformDirty(n)
	n.invalidate()
}

// invalidate marks this node's bounds stale (propagating upward, since a
// parent's bounds union its children's) and flags it for repaint.
func (n *Node) invalidate() {
	for p := n; p != nil && !p.boundsDirty; p = p.Parent {
		p.boundsDirty = true
	}
	n.boundsDirty = true
	n.markDirty()
}

// markDirty sets the redraw flag on this node and every ancestor. Once an
// ancestor is flagged, the rest of the chain already is.
func (n *Node) markDirty() {
	for p := n; p != nil && !p.dirty; p = p.Parent {
		p.dirty = true
	}
}
