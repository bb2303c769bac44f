package aster

import (
	"image"
	stdcolor "image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteImage backs solid-color triangle fills. The 1px inset sub-image avoids
// bleeding from the texture border when sampling with anti-aliasing.
var whiteImage = ebiten.NewImage(3, 3)
var whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

func init() {
	whiteImage.Fill(stdcolor.White)
}

// renderState is one entry of the EbitenRenderer's save/restore stack.
type renderState struct {
	transform Matrix
	opacity   float64
}

// drawBuffers holds the reusable vertex/index scratch for one draw call.
type drawBuffers struct {
	verts []ebiten.Vertex
	inds  []uint16
}

// EbitenRenderer implements Renderer on an ebiten image target. Paths are
// flattened into triangles via ebiten's vector package; images draw through
// GeoM. The renderer keeps an explicit transform/opacity stack because ebiten
// draws are stateless.
type EbitenRenderer struct {
	target  *ebiten.Image
	width   int
	height  int
	state   renderState
	stack   []renderState
	buffers *Pool[*drawBuffers]
}

// NewEbitenRenderer creates a renderer. Call SetTarget with the frame's
// destination image before each render pass.
func NewEbitenRenderer() *EbitenRenderer {
	return &EbitenRenderer{
		state: renderState{transform: MatrixIdentity, opacity: 1},
		buffers: NewPool(
			func() *drawBuffers { return &drawBuffers{} },
			func(b *drawBuffers) {
				b.verts = b.verts[:0]
				b.inds = b.inds[:0]
			},
			8,
		),
	}
}

// SetTarget sets the destination image for subsequent draw calls.
func (r *EbitenRenderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

// Initialize implements Renderer.
func (r *EbitenRenderer) Initialize(width, height int) error {
	r.width = width
	r.height = height
	return nil
}

// Resize implements Renderer.
func (r *EbitenRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// BeginFrame resets the transform/opacity stack for a new frame.
func (r *EbitenRenderer) BeginFrame() {
	r.state = renderState{transform: MatrixIdentity, opacity: 1}
	r.stack = r.stack[:0]
}

// EndFrame implements Renderer.
func (r *EbitenRenderer) EndFrame() {}

// Clear fills the target with the given color.
func (r *EbitenRenderer) Clear(c Color) {
	if r.target == nil {
		return
	}
	r.target.Fill(c.toRGBA())
}

// Save pushes the current transform and opacity.
func (r *EbitenRenderer) Save() {
	r.stack = append(r.stack, r.state)
}

// Restore pops the most recently saved transform and opacity.
// Unbalanced restores are logged and dropped.
func (r *EbitenRenderer) Restore() {
	if len(r.stack) == 0 {
		logger.Warn("renderer restore without matching save")
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

// Transform composes m onto the current transform.
func (r *EbitenRenderer) Transform(m Matrix) {
	r.state.transform = r.state.transform.Multiply(m)
}

// SetOpacity multiplies the current opacity by a.
func (r *EbitenRenderer) SetOpacity(a float64) {
	r.state.opacity *= a
}

// DrawPath fills p with the given color under the current transform.
func (r *EbitenRenderer) DrawPath(p *Path, fill Color) {
	if r.target == nil || p.IsEmpty() {
		return
	}
	fill.A *= r.state.opacity
	if fill.A <= 0 {
		return
	}
	vp := r.buildPath(p)
	buf := r.buffers.Get()
	buf.verts, buf.inds = vp.AppendVerticesAndIndicesForFilling(buf.verts[:0], buf.inds[:0])
	r.submitTriangles(buf, fill)
	r.buffers.Put(buf)
}

// DrawStroke outlines p with the given color and width under the current
// transform. The width scales with the transform.
func (r *EbitenRenderer) DrawStroke(p *Path, stroke Color, width float64) {
	if r.target == nil || p.IsEmpty() || width <= 0 {
		return
	}
	stroke.A *= r.state.opacity
	if stroke.A <= 0 {
		return
	}
	vp := r.buildPath(p)
	m := r.state.transform
	scale := math.Sqrt(math.Abs(m.A*m.D - m.C*m.B))
	op := &vector.StrokeOptions{Width: float32(width * scale)}
	buf := r.buffers.Get()
	buf.verts, buf.inds = vp.AppendVerticesAndIndicesForStroke(buf.verts[:0], buf.inds[:0], op)
	r.submitTriangles(buf, stroke)
	r.buffers.Put(buf)
}

// DrawImage draws img with m prepended to the current transform, scaled by
// the current opacity.
func (r *EbitenRenderer) DrawImage(img *ebiten.Image, m Matrix) {
	if r.target == nil || img == nil {
		return
	}
	world := r.state.transform.Multiply(m)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.SetElement(0, 0, world.A)
	op.GeoM.SetElement(0, 1, world.C)
	op.GeoM.SetElement(0, 2, world.TX)
	op.GeoM.SetElement(1, 0, world.B)
	op.GeoM.SetElement(1, 1, world.D)
	op.GeoM.SetElement(1, 2, world.TY)
	op.ColorScale.ScaleAlpha(float32(r.state.opacity))
	op.Filter = ebiten.FilterLinear
	r.target.DrawImage(img, op)
}

// buildPath flattens p into a vector.Path in target space.
func (r *EbitenRenderer) buildPath(p *Path) *vector.Path {
	m := r.state.transform
	vp := &vector.Path{}
	p.visit(
		func(x, y float64) {
			wx, wy := m.Apply(x, y)
			vp.MoveTo(float32(wx), float32(wy))
		},
		func(x, y float64) {
			wx, wy := m.Apply(x, y)
			vp.LineTo(float32(wx), float32(wy))
		},
		vp.Close,
	)
	return vp
}

// submitTriangles colors the vertices and issues one DrawTriangles call.
func (r *EbitenRenderer) submitTriangles(buf *drawBuffers, c Color) {
	for i := range buf.verts {
		buf.verts[i].SrcX = 1
		buf.verts[i].SrcY = 1
		buf.verts[i].ColorR = float32(c.R)
		buf.verts[i].ColorG = float32(c.G)
		buf.verts[i].ColorB = float32(c.B)
		buf.verts[i].ColorA = float32(c.A)
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		FillRule:       ebiten.FillRuleNonZero,
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
	}
	r.target.DrawTriangles(buf.verts, buf.inds, whiteSubImage, op)
}
