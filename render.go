package cloudview

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image used to paint container fills. Created on
// first draw so that building a tree never touches the graphics driver.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// drawOpts is reused across draw calls to avoid per-sprite allocations.
var drawOpts ebiten.DrawImageOptions

// render draws n and its subtree onto target and returns the number of
// sprites drawn.
func (s *Scene) render(target *ebiten.Image, n *Node) int {
	if !n.Visible || n.worldAlpha <= 0 {
		return 0
	}

	box := image.Rect(
		int(n.worldX), int(n.worldY),
		int(n.worldX+n.Width), int(n.worldY+n.Height),
	)

	drawn := 0
	switch n.Type {
	case NodeTypeContainer:
		if n.Fill && n.Width > 0 && n.Height > 0 {
			drawOpts = ebiten.DrawImageOptions{}
			drawOpts.GeoM.Scale(n.Width, n.Height)
			drawOpts.GeoM.Translate(n.worldX, n.worldY)
			drawOpts.ColorScale.ScaleWithColor(n.Color.toRGBA())
			drawOpts.ColorScale.ScaleAlpha(float32(n.worldAlpha))
			target.DrawImage(ensureWhitePixel(), &drawOpts)
		}
		if n.Clip {
			clipped := target.SubImage(box.Intersect(target.Bounds()))
			if clipped.Bounds().Empty() {
				return 0
			}
			target = clipped.(*ebiten.Image)
		}
	case NodeTypeSprite:
		if n.Source != nil && n.Width > 0 && n.Height > 0 {
			if tex := n.Source.texture(); tex != nil {
				tw, th := tex.Bounds().Dx(), tex.Bounds().Dy()
				drawOpts = ebiten.DrawImageOptions{}
				drawOpts.GeoM.Scale(n.Width/float64(tw), n.Height/float64(th))
				drawOpts.GeoM.Translate(n.worldX, n.worldY)
				drawOpts.ColorScale.ScaleWithColor(n.Color.toRGBA())
				drawOpts.ColorScale.ScaleAlpha(float32(n.worldAlpha))
				drawOpts.Filter = ebiten.FilterLinear
				target.DrawImage(tex, &drawOpts)
				drawn++
			}
		}
	}

	for _, child := range n.children {
		drawn += s.render(target, child)
	}
	return drawn
}
