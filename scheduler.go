package cloudview

import (
	"math"

	"github.com/tanema/gween/ease"
)

// StartAnimation starts moving clouds across the view. Before the first draw
// the start is held; with no clouds it is reported and nothing moves, though
// the request stands and a later non-empty rebuild starts the clouds.
func (v *CloudView) StartAnimation() {
	v.animationRequested = true
	if v.animating {
		return
	}
	if v.gate.hold(intentStart) {
		return
	}
	v.forceStartAnimation()
}

// StopAnimation stops the clouds and replaces them with fresh clouds at
// rest.
func (v *CloudView) StopAnimation() {
	wasAnimating := v.animating
	v.animationRequested = false
	v.animating = false
	v.gate.drop(intentStart)
	if v.gate.ready {
		v.rebuildPool()
	}
	if wasAnimating {
		v.emit(CloudEvent{Type: EventAnimationStopped})
	}
}

// forceStartAnimation starts one pass per live cloud.
func (v *CloudView) forceStartAnimation() {
	if v.pool.len() == 0 {
		logger.Printf("start animation: view %q has no clouds; nothing to animate", v.node.Name)
		return
	}
	v.animating = true
	v.emit(CloudEvent{Type: EventAnimationStarted, Count: v.pool.len()})
	for _, c := range v.pool.clouds {
		v.schedule(c)
	}
}

// passTiming draws a crossing duration in [base, base+variance) and a start
// delay in [0, base+variance), both in milliseconds.
func (v *CloudView) passTiming() (durationMs, delayMs float64) {
	base := float64(v.basePassTimeMs)
	variance := float64(v.passTimeVarianceMs)
	durationMs = base + variance*v.rng.Float64()
	delayMs = (base + variance) * v.rng.Float64()
	return durationMs, delayMs
}

// schedule puts c back at the right edge at a fresh height and starts a new
// pass for it.
func (v *CloudView) schedule(c *Cloud) {
	durationMs, delayMs := v.passTiming()

	n := c.node
	n.SetPosition(v.spawnX(), v.randomY(c.Size))
	n.SetAlpha(1)

	m := &motion{
		cloud:   c.ID,
		node:    n,
		delay:   float32(delayMs / 1000),
		travel:  TweenX(n, -float64(c.Size), float32(durationMs/1000), ease.Linear),
		onStart: v.onPassStart,
		onEnd:   v.onPassEnd,
	}
	v.motions = append(v.motions, m)

	v.emit(CloudEvent{
		Type:       EventPassScheduled,
		Cloud:      c.ID,
		DurationMs: int(math.Round(durationMs)),
		DelayMs:    int(math.Round(delayMs)),
	})
}

// onPassStart attaches the fade, read from the configuration current at the
// moment the cloud begins to move.
func (v *CloudView) onPassStart(m *motion) {
	if v.fadeInEnabled && v.fadeInTimeMs > 0 {
		m.node.SetAlpha(0)
		m.fade = TweenAlpha(m.node, 1, float32(v.fadeInTimeMs)/1000, ease.Linear)
	}
	v.emit(CloudEvent{Type: EventPassStarted, Cloud: m.cloud})
}

// onPassEnd reschedules the cloud if it is still in the pool and the view is
// still animating. Otherwise the cloud's chain of passes ends here.
func (v *CloudView) onPassEnd(m *motion) {
	c := v.pool.resolve(m.cloud)
	if c == nil || !v.animating {
		return
	}
	v.emit(CloudEvent{Type: EventPassFinished, Cloud: m.cloud})
	v.schedule(c)
}

// retargetMotions points every pass in flight at the current size of its
// cloud, keeping the time the pass has left.
func (v *CloudView) retargetMotions() {
	for _, m := range v.motions {
		if m.done {
			continue
		}
		if c := v.pool.resolve(m.cloud); c != nil {
			m.travel.Retarget(-float64(c.Size), ease.Linear)
		}
	}
}

// update is the view's OnUpdate hook: it steps every motion by dt seconds.
// Passes scheduled from completion callbacks first move on the next tick.
func (v *CloudView) update(dt float64) {
	if len(v.motions) == 0 {
		return
	}
	active := v.motions
	v.motions = v.motionBuf[:0]
	for _, m := range active {
		m.update(float32(dt))
		if !m.done {
			v.motions = append(v.motions, m)
		}
	}
	clear(active)
	v.motionBuf = active[:0]
}

// ActiveMotions returns the number of passes in flight for live clouds,
// including those still in their start delay.
func (v *CloudView) ActiveMotions() int {
	n := 0
	for _, m := range v.motions {
		if !m.done && v.pool.resolve(m.cloud) != nil {
			n++
		}
	}
	return n
}
