package cloudview

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Defaults applied by New and SetDefaults.
const (
	DefaultCloudCount         = 10
	DefaultMinCloudSize       = 300
	DefaultMaxCloudSize       = 500
	DefaultPassTimeMs         = 10000
	DefaultPassTimeVarianceMs = 2000
	DefaultFadeInTimeMs       = 1000
)

// ErrInvalidConfig is returned by setters that reject a value. The view is
// left unchanged.
var ErrInvalidConfig = errors.New("cloudview: invalid configuration")

// RandSource supplies the randomness behind cloud sizes, positions and
// timings. *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	Float64() float64
	IntN(n int) int
}

// globalRand draws from the math/rand/v2 top-level generator.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// State is the animation state of a view.
type State uint8

const (
	StateIdle              State = iota // not animating
	StateAwaitingReadiness              // animation requested before the first draw
	StateAnimating                      // clouds are drifting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingReadiness:
		return "awaiting-readiness"
	case StateAnimating:
		return "animating"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Option configures a CloudView at construction.
type Option func(*CloudView)

// WithRand sets the random source. Tests use it to script exact sizes and
// timings.
func WithRand(r RandSource) Option {
	return func(v *CloudView) { v.rng = r }
}

// WithResources sets the filesystem SetImageResource reads from.
func WithResources(fsys fs.FS) Option {
	return func(v *CloudView) { v.resources = fsys }
}

// WithEventSink sets an observer for cloud lifecycle events.
func WithEventSink(s EventSink) Option {
	return func(v *CloudView) { v.sink = s }
}

// CloudView is a container that fills its box with sky color and floats a
// pool of cloud sprites across it from right to left.
//
// The view learns its size from the scene: until it has been drawn once,
// operations that need the size (spawning, resizing, starting) are held and
// replayed on the first draw. Removing the view from its parent stops it and
// re-arms that wait.
type CloudView struct {
	node      *Node
	rng       RandSource
	resources fs.FS
	sink      EventSink

	count              int
	minSize, maxSize   int
	basePassTimeMs     int
	passTimeVarianceMs int
	fadeInEnabled      bool
	fadeInTimeMs       int
	image              *ImageSource
	padding            Insets

	gate               readinessGate
	animationRequested bool
	animating          bool

	pool      cloudPool
	motions   []*motion
	motionBuf []*motion
}

// New creates a view with default configuration, not animating. Add
// v.Node() to a scene to show it.
func New(opts ...Option) *CloudView {
	v := &CloudView{
		rng:                globalRand{},
		count:              DefaultCloudCount,
		minSize:            DefaultMinCloudSize,
		maxSize:            DefaultMaxCloudSize,
		basePassTimeMs:     DefaultPassTimeMs,
		passTimeVarianceMs: DefaultPassTimeVarianceMs,
		fadeInTimeMs:       DefaultFadeInTimeMs,
		image:              DefaultImage(),
	}
	for _, opt := range opts {
		opt(v)
	}

	n := NewContainer("cloudview")
	n.FillParent = true
	n.Fill = true
	n.Clip = true
	n.Color = DefaultSkyColor
	n.OnUpdate = v.update
	n.OnDraw = v.onDrawn
	n.OnDetach = v.onDetach
	n.UserData = v
	v.node = n

	v.gate.hold(intentSpawn)
	return v
}

// Node returns the view's container node.
func (v *CloudView) Node() *Node {
	return v.node
}

// --- Accessors ---

// CloudCount returns the configured number of clouds.
func (v *CloudView) CloudCount() int { return v.count }

// MinCloudSize returns the inclusive lower bound of cloud sizes, in pixels.
func (v *CloudView) MinCloudSize() int { return v.minSize }

// MaxCloudSize returns the exclusive upper bound of cloud sizes, in pixels.
func (v *CloudView) MaxCloudSize() int { return v.maxSize }

// SizeRange returns the cloud size range [min, max).
func (v *CloudView) SizeRange() (min, max int) { return v.minSize, v.maxSize }

// BasePassTimeMs returns the crossing time of the fastest possible cloud.
func (v *CloudView) BasePassTimeMs() int { return v.basePassTimeMs }

// PassTimeVarianceMs returns the spread between the fastest and slowest
// possible crossing times.
func (v *CloudView) PassTimeVarianceMs() int { return v.passTimeVarianceMs }

// FadeInEnabled reports whether clouds fade in when they start moving.
func (v *CloudView) FadeInEnabled() bool { return v.fadeInEnabled }

// FadeInTimeMs returns the fade-in duration.
func (v *CloudView) FadeInTimeMs() int { return v.fadeInTimeMs }

// Image returns the active image source.
func (v *CloudView) Image() *ImageSource { return v.image }

// Padding returns the insets clouds travel within.
func (v *CloudView) Padding() Insets { return v.padding }

// AnimationRequested reports whether animation has been asked for, whether
// or not clouds are moving yet.
func (v *CloudView) AnimationRequested() bool { return v.animationRequested }

// Animating reports whether clouds of the current pool are moving.
func (v *CloudView) Animating() bool { return v.animating }

// Drawn reports whether the view has been drawn since it was last attached.
func (v *CloudView) Drawn() bool { return v.gate.ready }

// State returns the view's animation state. A view removed from its parent
// while animation was requested reports StateAwaitingReadiness, not
// StateIdle: the request survives the detach and clouds resume on the first
// draw after re-attaching. Call StopAnimation to make a detached view idle.
func (v *CloudView) State() State {
	switch {
	case v.animating:
		return StateAnimating
	case v.animationRequested && !v.gate.ready:
		return StateAwaitingReadiness
	default:
		return StateIdle
	}
}

// Clouds returns the live clouds. The returned slice MUST NOT be mutated and
// is invalidated by the next rebuild.
func (v *CloudView) Clouds() []*Cloud {
	return v.pool.clouds
}

// Cloud returns the live cloud with the given ID, or nil if the pool has been
// rebuilt since the ID was issued.
func (v *CloudView) Cloud(id CloudID) *Cloud {
	return v.pool.resolve(id)
}

// CloudAt returns the topmost cloud under the world-space point (x, y), or
// nil. Points outside the view's box never hit, since clouds are clipped to
// it. Positions are those of the last update or draw.
func (v *CloudView) CloudAt(x, y float64) *Cloud {
	lx, ly := v.node.WorldToLocal(x, y)
	if !(Rect{Width: v.node.Width, Height: v.node.Height}).Contains(lx, ly) {
		return nil
	}
	for i := len(v.pool.clouds) - 1; i >= 0; i-- {
		c := v.pool.clouds[i]
		if c.node.Bounds().Contains(lx, ly) {
			return c
		}
	}
	return nil
}

// --- Pool configuration ---

// SetCloudCount sets how many clouds the view holds and rebuilds the pool
// with fresh clouds, even if n is unchanged. Animation resumes on the new
// clouds if it was requested. Before the first draw the rebuild is held.
func (v *CloudView) SetCloudCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: cloud count %d is negative", ErrInvalidConfig, n)
	}
	v.count = n
	if v.gate.hold(intentCount) {
		return nil
	}
	v.respawn()
	return nil
}

// SetSizeRange sets the cloud size range. Bounds are sorted and clamped to
// zero; an empty resulting range is rejected. Existing clouds are resized in
// place, keeping their identity and motion.
func (v *CloudView) SetSizeRange(a, b int) error {
	lo, hi := max(min(a, b), 0), max(a, b, 0)
	if lo == hi {
		return fmt.Errorf("%w: size range [%d, %d) is empty", ErrInvalidConfig, lo, hi)
	}
	v.minSize, v.maxSize = lo, hi
	if v.gate.hold(intentResize) {
		return nil
	}
	v.resizeClouds()
	return nil
}

// SetMinSize sets the lower size bound. A bound at or above the current
// maximum pushes the maximum to size+1.
func (v *CloudView) SetMinSize(size int) *CloudView {
	size = max(size, 0)
	hi := max(v.maxSize, size+1)
	// The range is never empty here.
	_ = v.SetSizeRange(size, hi)
	return v
}

// SetMaxSize sets the upper size bound, clamped to at least 1. A bound at or
// below the current minimum pulls the minimum to size-1.
func (v *CloudView) SetMaxSize(size int) *CloudView {
	size = max(size, 1)
	lo := min(v.minSize, size-1)
	_ = v.SetSizeRange(lo, size)
	return v
}

// SetBasePassTime sets the crossing time of the fastest cloud. Clouds
// already crossing keep their current pass.
func (v *CloudView) SetBasePassTime(ms int) error {
	if ms <= 0 {
		return fmt.Errorf("%w: base pass time %dms is not positive", ErrInvalidConfig, ms)
	}
	v.basePassTimeMs = ms
	return nil
}

// SetPassTimeVariance sets the spread of crossing times. Zero makes every
// cloud move at the same speed.
func (v *CloudView) SetPassTimeVariance(ms int) error {
	if ms < 0 {
		return fmt.Errorf("%w: pass time variance %dms is negative", ErrInvalidConfig, ms)
	}
	v.passTimeVarianceMs = ms
	return nil
}

// SetFadeInEnabled turns fade-in on or off for passes that start later.
func (v *CloudView) SetFadeInEnabled(enabled bool) *CloudView {
	v.fadeInEnabled = enabled
	return v
}

// SetFadeInTime sets the fade-in duration. A fade longer than the base pass
// time is accepted with a warning, since fast clouds may leave the view
// before they are opaque.
func (v *CloudView) SetFadeInTime(ms int) error {
	if ms < 0 {
		return fmt.Errorf("%w: fade-in time %dms is negative", ErrInvalidConfig, ms)
	}
	v.fadeInTimeMs = ms
	if ms > v.basePassTimeMs {
		logger.Printf("warning: fade-in time (%d ms) exceeds base pass time (%d ms); "+
			"clouds may cross the view before fully fading in", ms, v.basePassTimeMs)
	}
	return nil
}

// SetPadding sets the insets clouds spawn and travel within. Applies from the
// next spawn or pass.
func (v *CloudView) SetPadding(p Insets) *CloudView {
	v.padding = p
	return v
}

// SetSkyColor sets the background color.
func (v *CloudView) SetSkyColor(c Color) *CloudView {
	v.node.Color = c
	return v
}

// --- Images ---

// SetImage replaces the image every cloud is drawn with. A nil source
// selects the default image. The pool is rebuilt and animation resumes if it
// was requested.
func (v *CloudView) SetImage(src *ImageSource) *CloudView {
	if src == nil {
		src = DefaultImage()
	}
	v.image = src
	v.restartAnimation()
	return v
}

// SetImageResource loads the named image from the view's resource
// filesystem and makes it the active image. On error nothing changes.
func (v *CloudView) SetImageResource(name string) error {
	src, err := LoadResourceImage(v.resources, name)
	if err != nil {
		return err
	}
	v.SetImage(src)
	return nil
}

// SetImageBitmap makes img the active image.
func (v *CloudView) SetImageBitmap(img *ebiten.Image) *CloudView {
	return v.SetImage(BitmapImage(img))
}

// SetImageDrawable makes img the active image.
func (v *CloudView) SetImageDrawable(img image.Image) *CloudView {
	return v.SetImage(DrawableImage(img))
}

// SetDefaultImage restores the built-in cloud image.
func (v *CloudView) SetDefaultImage() *CloudView {
	return v.SetImage(DefaultImage())
}

// SetDefaults resets count, size range, pass time, variance and image to
// their defaults in one rebuild, keeping whether animation was requested.
func (v *CloudView) SetDefaults() *CloudView {
	wasRequested := v.animationRequested

	v.image = DefaultImage()
	v.minSize, v.maxSize = DefaultMinCloudSize, DefaultMaxCloudSize
	v.basePassTimeMs = DefaultPassTimeMs
	v.passTimeVarianceMs = DefaultPassTimeVarianceMs
	v.count = DefaultCloudCount

	if !v.gate.hold(intentCount) {
		v.rebuildPool()
	}
	if wasRequested {
		v.StartAnimation()
	}
	return v
}

// --- Pool management ---

// rebuildPool replaces every cloud with a fresh one at rest. Motions of the
// old clouds end on their next step.
func (v *CloudView) rebuildPool() {
	if v.animating {
		v.animating = false
		v.emit(CloudEvent{Type: EventAnimationStopped})
	}
	v.pool.rebuild(v.count, v.node, v.spawnCloud)
	v.emit(CloudEvent{Type: EventPoolRebuilt, Count: v.pool.len()})
}

// respawn rebuilds the pool and resumes animation if it was requested.
func (v *CloudView) respawn() {
	v.rebuildPool()
	if v.animationRequested {
		v.forceStartAnimation()
	}
}

// restartAnimation rebuilds the pool, then starts again if animation was
// requested beforehand.
func (v *CloudView) restartAnimation() {
	wasRequested := v.animationRequested
	v.stopUntilRespawn()
	if wasRequested {
		v.StartAnimation()
	}
}

// stopUntilRespawn stops the current pool without dropping the request.
// Before the first draw nothing can be animating yet.
func (v *CloudView) stopUntilRespawn() {
	if v.gate.hold(intentSpawn) {
		return
	}
	v.rebuildPool()
}

func (v *CloudView) spawnCloud(id CloudID) *Cloud {
	size := v.randomSize()
	c := &Cloud{ID: id, Size: size, Source: v.image}
	c.node = NewSprite(fmt.Sprintf("cloud-%d", id.slot), v.image, float64(size))
	c.node.UserData = c
	c.node.SetPosition(v.spawnX(), v.randomY(size))
	return c
}

// resizeClouds gives every live cloud a new random size. Passes in flight
// are re-aimed so each cloud still leaves the view fully.
func (v *CloudView) resizeClouds() {
	for _, c := range v.pool.clouds {
		c.Size = v.randomSize()
		c.node.SetSize(float64(c.Size), float64(c.Size))
	}
	v.retargetMotions()
}

// randomSize returns a size in [minSize, maxSize).
func (v *CloudView) randomSize() int {
	return v.minSize + v.rng.IntN(v.maxSize-v.minSize)
}

// spawnX is the left edge of a cloud waiting at the right side of the view.
func (v *CloudView) spawnX() float64 {
	return v.node.Width - v.padding.Right
}

// randomY returns a top edge that keeps a cloud of the given size inside the
// padded box when it fits, and at the top padding when it doesn't.
func (v *CloudView) randomY(size int) float64 {
	span := v.node.Height - v.padding.Top - v.padding.Bottom - float64(size)
	if span < 0 {
		span = 0
	}
	return v.padding.Top + span*v.rng.Float64()
}

// --- Readiness ---

// onDrawn opens the readiness gate on the first draw and replays what was
// held.
func (v *CloudView) onDrawn() {
	if v.gate.ready {
		return
	}
	pending := v.gate.open()

	rebuilt := false
	if pending.has(intentSpawn | intentCount) {
		v.rebuildPool()
		rebuilt = true
	}
	if pending.has(intentResize) && !rebuilt {
		v.resizeClouds()
	}
	if pending.has(intentStart) {
		v.forceStartAnimation()
	}
}

// onDetach stops the view when it leaves the tree. The clouds are destroyed
// and the gate re-armed, so a re-attached view respawns and, if animation is
// still requested, resumes on its next draw.
func (v *CloudView) onDetach() {
	if !v.gate.ready {
		return
	}
	wasAnimating := v.animating
	v.animating = false
	v.pool.clear()

	pending := intentSpawn
	if v.animationRequested {
		pending |= intentStart
	}
	v.gate.rearm(pending)
	if wasAnimating {
		v.emit(CloudEvent{Type: EventAnimationStopped})
	}
}
