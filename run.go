package aster

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and scheduler created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// TPS overrides ebiten's ticks per second when > 0.
	TPS int
}

// game adapts a Runtime to ebiten's fixed-step loop: Update advances
// playback, Draw points the renderer at the frame's screen image and renders.
type game struct {
	runtime  *Runtime
	renderer *EbitenRenderer
	width    int
	height   int
}

func (g *game) Update() error {
	if g.runtime.State() == PlaybackPlaying {
		g.runtime.Advance(g.runtime.clock.Delta())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	g.runtime.Render()
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a window and drives the runtime until the window closes. The
// runtime must have been created with an EbitenRenderer; Run wires it to the
// screen each frame. Blocks until the loop ends.
func Run(rt *Runtime, renderer *EbitenRenderer, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if err := renderer.Initialize(cfg.Width, cfg.Height); err != nil {
		return err
	}
	return ebiten.RunGame(&game{
		runtime:  rt,
		renderer: renderer,
		width:    cfg.Width,
		height:   cfg.Height,
	})
}
