package cloudview

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates one float64 field on a Node. Call Update(dt) each frame;
// the tween writes the value to the field and marks the node dirty. If the
// target node is disposed, the tween stops immediately without writing.
type Tween struct {
	tween  *gween.Tween
	field  *float64
	target *Node
	Done   bool

	duration, elapsed float32
}

// Update advances the tween by dt seconds.
func (g *Tween) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	g.elapsed += dt
	val, finished := g.tween.Update(dt)
	*g.field = float64(val)
	g.Done = finished

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// Retarget continues the tween from the field's current value toward to,
// finishing in the time it had left.
func (g *Tween) Retarget(to float64, fn ease.TweenFunc) {
	if g.Done {
		return
	}
	remaining := max(g.duration-g.elapsed, 0)
	g.tween = gween.New(float32(*g.field), float32(to), remaining, fn)
	g.duration, g.elapsed = remaining, 0
}

// TweenX creates a Tween that animates node.X to toX over the given
// duration, in seconds.
func TweenX(node *Node, toX float64, duration float32, fn ease.TweenFunc) *Tween {
	return &Tween{
		tween:    gween.New(float32(node.X), float32(toX), duration, fn),
		field:    &node.X,
		target:   node,
		duration: duration,
	}
}

// TweenAlpha creates a Tween that animates node.Alpha from its current
// value to the target over the given duration, in seconds.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *Tween {
	return &Tween{
		tween:    gween.New(float32(node.Alpha), float32(to), duration, fn),
		field:    &node.Alpha,
		target:   node,
		duration: duration,
	}
}

// motion is one pass of a cloud across its view: an idle start delay, then a
// linear travel tween, with an optional fade tween attached when the travel
// begins.
type motion struct {
	cloud  CloudID
	node   *Node
	delay  float32 // seconds left before the travel starts
	travel *Tween
	fade   *Tween

	started bool
	done    bool

	// onStart runs once when the delay has elapsed, before the first travel
	// step. onEnd runs once when the travel completes or the node is gone.
	onStart func(m *motion)
	onEnd   func(m *motion)
}

// update advances the motion by dt seconds. Any part of dt left over after
// the delay is applied to the travel in the same step.
func (m *motion) update(dt float32) {
	if m.done {
		return
	}
	if m.node.IsDisposed() {
		m.finish()
		return
	}

	if !m.started {
		if dt < m.delay {
			m.delay -= dt
			return
		}
		dt -= m.delay
		m.delay = 0
		m.started = true
		if m.onStart != nil {
			m.onStart(m)
		}
	}

	if m.fade != nil {
		m.fade.Update(dt)
	}
	m.travel.Update(dt)
	if m.travel.Done {
		m.finish()
	}
}

func (m *motion) finish() {
	m.done = true
	if m.onEnd != nil {
		m.onEnd(m)
	}
}
