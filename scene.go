package cloudview

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree and drives the
// update, measure, draw, and post-draw notification passes.
type Scene struct {
	root  *Node
	debug bool

	// ClearColor fills the screen before the tree is drawn. A zero alpha
	// leaves the screen untouched.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes its PNGs. Defaults to
	// "screenshots".
	ScreenshotDir string

	width, height   int
	screenshotQueue []string
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{root: NewContainer("root")}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Layout records the outside size as the root's measured size. It has the
// signature of ebiten.Game.Layout so it can be returned from one directly.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.width, s.height = outsideWidth, outsideHeight
	s.root.Width = float64(outsideWidth)
	s.root.Height = float64(outsideHeight)
	return outsideWidth, outsideHeight
}

// Update runs every node's OnUpdate hook with a fixed tick of 1/TPS seconds.
func (s *Scene) Update() {
	s.UpdateBy(1.0 / float64(ebiten.TPS()))
}

// UpdateBy runs every node's OnUpdate hook with the given tick, in seconds,
// then refreshes world transforms.
func (s *Scene) UpdateBy(dt float64) {
	updateNodes(s.root, dt)
	updateWorldTransform(s.root, 0, 0, 1.0, false)
}

// updateNodes calls OnUpdate depth-first. Hooks may rebuild their own
// subtree, so children are walked from a snapshot.
func updateNodes(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	if len(n.children) == 0 {
		return
	}
	snapshot := append([]*Node(nil), n.children...)
	for _, child := range snapshot {
		if child.Parent == n {
			updateNodes(child, dt)
		}
	}
}

// Draw measures the tree, draws it onto screen, then fires OnDraw hooks.
func (s *Scene) Draw(screen *ebiten.Image) {
	var stats debugStats
	var t0 time.Time

	if s.debug {
		t0 = time.Now()
	}

	measure(s.root)
	updateWorldTransform(s.root, 0, 0, 1.0, false)

	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	stats.spriteCount = s.render(screen, s.root)

	if s.debug {
		stats.drawTime = time.Since(t0)
		t0 = time.Now()
	}

	notifyDrawn(s.root)
	s.flushScreenshots(screen)

	if s.debug {
		stats.notifyTime = time.Since(t0)
		s.debugLog(stats)
	}
}

// measure sizes FillParent nodes to their parent's box.
func measure(n *Node) {
	for _, child := range n.children {
		if child.FillParent {
			child.Width, child.Height = n.Width, n.Height
		}
		measure(child)
	}
}

// notifyDrawn fires OnDraw hooks children-first, so a view's sprites are
// settled before the view itself reacts to having been drawn.
func notifyDrawn(n *Node) {
	if !n.Visible {
		return
	}
	snapshot := append([]*Node(nil), n.children...)
	for _, child := range snapshot {
		if child.Parent == n {
			notifyDrawn(child)
		}
	}
	if n.OnDraw != nil {
		n.OnDraw()
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, child count warnings are printed, and per-frame stats are
// logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
