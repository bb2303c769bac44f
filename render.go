package aster

import "github.com/hajimehoshi/ebiten/v2"

// Renderer is the draw backend the runtime invokes each frame. The engine
// walks the scene tree and issues immediate-mode calls; it never rasterizes
// anything itself. Transform and SetOpacity compose multiplicatively with the
// current state, bracketed by Save/Restore.
type Renderer interface {
	Initialize(width, height int) error
	Resize(width, height int)

	BeginFrame()
	EndFrame()
	Clear(c Color)

	Save()
	Restore()
	Transform(m Matrix)
	SetOpacity(a float64)

	DrawPath(p *Path, fill Color)
	DrawStroke(p *Path, stroke Color, width float64)
	DrawImage(img *ebiten.Image, m Matrix)
}

// RenderStats summarizes one render pass.
type RenderStats struct {
	NodesVisited int // nodes reached by the traversal
	NodesDrawn   int // nodes that issued draw calls
	NodesSkipped int // invisible subtrees pruned
}

// renderTree walks the scene depth-first in child order, applying each node's
// local transform and opacity and dispatching draws by node kind. Invisible
// subtrees are pruned.
func renderTree(r Renderer, root *Node) RenderStats {
	var stats RenderStats
	renderNode(r, root, &stats)
	return stats
}

func renderNode(r Renderer, n *Node, stats *RenderStats) {
	if !n.Visible {
		stats.NodesSkipped++
		return
	}
	stats.NodesVisited++

	r.Save()
	r.Transform(n.LocalTransform().Matrix())
	r.SetOpacity(n.Opacity)

	switch n.Type {
	case NodeTypeShape:
		if n.Path != nil && !n.Path.IsEmpty() {
			drew := false
			if n.Fill.A > 0 {
				r.DrawPath(n.Path, n.Fill)
				drew = true
			}
			if n.StrokeWidth > 0 && n.Stroke.A > 0 {
				r.DrawStroke(n.Path, n.Stroke, n.StrokeWidth)
				drew = true
			}
			if drew {
				stats.NodesDrawn++
			}
		}
	case NodeTypeImage:
		if n.Img != nil {
			b := n.Img.Bounds()
			m := MatrixIdentity
			if b.Dx() > 0 && b.Dy() > 0 {
				m = Matrix{
					A: n.ImageW / float64(b.Dx()),
					D: n.ImageH / float64(b.Dy()),
				}
			}
			r.DrawImage(n.Img, m)
			stats.NodesDrawn++
		}
	}

	for _, child := range n.Children() {
		renderNode(r, child, stats)
	}

	r.Restore()
}
