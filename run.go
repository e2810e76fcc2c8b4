package cloudview

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	Resizable     bool

	// UpdateFunc, when set, runs after the scene's update each tick. A
	// non-nil error ends the game loop, and Run returns it.
	UpdateFunc func() error
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene  *Scene
	update func() error
}

func (g *game) Update() error {
	g.scene.Update()
	if g.update != nil {
		return g.update()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Layout(outsideWidth, outsideHeight)
}

// Run opens a window and drives scene until the window closes or
// cfg.UpdateFunc returns an error. For full control, implement ebiten.Game
// and call Scene.Update, Scene.Draw and Scene.Layout yourself.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(&game{scene: scene, update: cfg.UpdateFunc})
}
