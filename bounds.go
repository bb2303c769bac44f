package aster

// refreshWorld recomputes the cached world transform and world opacity.
// Invalidation always flags the whole subtree (markSubtreeTransformDirty), so
// a clean node implies a clean ancestor chain and the cache can be trusted.
func (n *Node) refreshWorld() {
	if !n.transformDirty {
		return
	}
	local := n.LocalTransform().Matrix()
	if n.Parent != nil {
		n.Parent.refreshWorld()
		n.worldTransform = n.Parent.worldTransform.Multiply(local)
		n.worldOpacity = n.Parent.worldOpacity * n.Opacity
	} else {
		n.worldTransform = local
		n.worldOpacity = n.Opacity
	}
	n.transformDirty = false
}

// WorldTransform returns the node's cached world transform, recomputing it
// lazily as parent.worldTransform x localTransform.
func (n *Node) WorldTransform() Matrix {
	n.refreshWorld()
	return n.worldTransform
}

// WorldOpacity returns the product of the opacities from the root down to
// this node.
func (n *Node) WorldOpacity() float64 {
	n.refreshWorld()
	return n.worldOpacity
}

// WorldVisible reports whether this node and every ancestor are visible.
func (n *Node) WorldVisible() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Visible {
			return false
		}
	}
	return true
}

// WorldToLocal converts a world-space point to this node's local space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return n.WorldTransform().Invert().Apply(wx, wy)
}

// LocalToWorld converts a local-space point to world space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return n.WorldTransform().Apply(lx, ly)
}

// LocalBounds returns the node's own local-space bounds, excluding children.
// Shapes report their path bounds expanded by half the stroke width; images
// report their asset rectangle. Containers (artboard, group) report no local
// bounds of their own.
func (n *Node) LocalBounds() (bounds Rect, ok bool) {
	switch n.Type {
	case NodeTypeShape:
		if n.Path == nil {
			return Rect{}, false
		}
		b, have := n.Path.Bounds()
		if !have {
			return Rect{}, false
		}
		if n.StrokeWidth > 0 {
			b = b.Expand(n.StrokeWidth / 2)
		}
		return b, true
	case NodeTypeImage:
		if n.ImageW <= 0 || n.ImageH <= 0 {
			return Rect{}, false
		}
		return Rect{0, 0, n.ImageW, n.ImageH}, true
	default:
		return Rect{}, false
	}
}

// WorldBounds returns the node's cached world-space bounding rectangle: its
// own local bounds transformed into world space, unioned with the world
// bounds of every visible child. ok is false if neither the node nor any
// visible descendant has bounds.
func (n *Node) WorldBounds() (bounds Rect, ok bool) {
	if !n.boundsDirty {
		return n.worldBounds, n.worldHasBounds
	}

	have := false
	var acc Rect
	if local, lok := n.LocalBounds(); lok {
		acc = n.WorldTransform().ApplyRect(local)
		have = true
	}
	for _, child := range n.children {
		if !child.Visible {
			continue
		}
		if cb, cok := child.WorldBounds(); cok {
			if have {
				acc = acc.Union(cb)
			} else {
				acc = cb
				have = true
			}
		}
	}

	n.worldBounds = acc
	n.worldHasBounds = have
	n.boundsDirty = false
	return acc, have
}

// --- Dirty regions ---

// IsDirty reports whether this node needs repainting.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// CollectDirtyRegions appends the world bounds of every dirty node in this
// subtree to the region manager. A clean node implies a clean subtree (the
// redraw flag propagates upward), so traversal prunes at clean nodes.
func (n *Node) CollectDirtyRegions(regions *RegionManager) {
	if !n.dirty {
		return
	}
	if b, ok := n.WorldBounds(); ok {
		regions.Add(b)
	}
	for _, child := range n.children {
		child.CollectDirtyRegions(regions)
	}
}

// ClearDirty clears the redraw flag on this node and all descendants.
func (n *Node) ClearDirty() {
	n.dirty = false
	for _, child := range n.children {
		child.ClearDirty()
	}
}

// --- Hit testing ---

// HitTest reports whether the world-space point (wx, wy) hits this node's own
// geometry. The point is inverse-transformed into local space and tested
// against the shape path (or the image rectangle). Containers never hit.
func (n *Node) HitTest(wx, wy float64) bool {
	if !n.Visible {
		return false
	}
	lx, ly := n.WorldToLocal(wx, wy)
	switch n.Type {
	case NodeTypeShape:
		if n.Path == nil {
			return false
		}
		if b, ok := n.LocalBounds(); !ok || !b.Contains(lx, ly) {
			return false
		}
		return n.Path.Contains(lx, ly)
	case NodeTypeImage:
		b, ok := n.LocalBounds()
		return ok && b.Contains(lx, ly)
	default:
		return false
	}
}

// NodeAt returns the front-most node in this subtree hit by the world-space
// point, or nil. Later siblings draw on top, so children are searched in
// reverse order before the node itself.
func (n *Node) NodeAt(wx, wy float64) *Node {
	if !n.Visible {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := n.children[i].NodeAt(wx, wy); hit != nil {
			return hit
		}
	}
	if n.HitTest(wx, wy) {
		return n
	}
	return nil
}
