package aster

import "log/slog"

// debugRegionColor is the outline color for dirty-region overlays.
var debugRegionColor = Color{R: 1, G: 0, B: 1, A: 1}

// SetDebug toggles per-frame diagnostics: every render pass logs its stats at
// debug level and outlines the frame's optimized dirty regions on top of the
// scene. Install a handler with SetLogger to see the log output.
func (r *Runtime) SetDebug(enabled bool) {
	r.debug = enabled
}

// debugLogFrame logs the render pass that just finished.
func (r *Runtime) debugLogFrame() {
	logger.Debug("frame",
		slog.Int("visited", r.lastStats.NodesVisited),
		slog.Int("drawn", r.lastStats.NodesDrawn),
		slog.Int("skipped", r.lastStats.NodesSkipped),
		slog.Int("regions", r.regions.Count()),
		slog.Bool("fullRedraw", r.lastFullRedraw))
}

// DebugDrawRegions strokes the outline of every accumulated region through the
// renderer, in world space.
func DebugDrawRegions(ren Renderer, rm *RegionManager, width float64) {
	for _, reg := range rm.Regions() {
		outline := NewRectPath(reg.Width, reg.Height)
		ren.Save()
		ren.Transform(Matrix{A: 1, D: 1, TX: reg.X, TY: reg.Y})
		ren.DrawStroke(outline, debugRegionColor, width)
		ren.Restore()
	}
}
