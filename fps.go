package cloudview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// NewFPSWidget creates a sprite that shows the current FPS and TPS, redrawn
// every half second. Add it after a CloudView so it draws on top.
func NewFPSWidget() *Node {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)

	node := NewSprite("fps_widget", BitmapImage(img), 0)
	node.SetSize(100, 32)

	var sinceRedraw float64
	node.OnUpdate = func(dt float64) {
		sinceRedraw += dt
		if sinceRedraw < 0.5 {
			return
		}
		sinceRedraw = 0

		img.Clear()
		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}

	return node
}
