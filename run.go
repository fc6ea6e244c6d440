package shapes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds the window options for Run. Zero values select the
// canvas size and an empty title.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool
}

// game adapts a Canvas to ebiten.Game.
type game struct {
	canvas *Canvas
	fps    *fpsWidget
}

func (g *game) Update() error {
	if g.fps != nil {
		g.fps.update(tickDuration())
	}
	return g.canvas.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.canvas.ScreenSize()
}

// Run opens a window showing c and blocks until it is closed or the update
// func returns an error. The canvas keeps its own size; the window is scaled
// to fit.
func Run(c *Canvas, cfg RunConfig) error {
	if c == nil {
		return fmt.Errorf("run %q: nil canvas", cfg.Title)
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = c.ScreenSize()
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{canvas: c}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	Logger().Info("run", "title", cfg.Title, "width", w, "height", h)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run %q: %w", cfg.Title, err)
	}
	return nil
}
