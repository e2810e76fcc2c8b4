package cloudview

import (
	"bytes"
	"log"
	"testing"
)

// fixedRand returns f from Float64 and int(f*n) from IntN.
type fixedRand struct{ f float64 }

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(n int) int   { return int(r.f * float64(n)) }

// seqRand replays scripted values, cycling when a script runs out.
type seqRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *seqRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *seqRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)] % n
	r.ii++
	return v
}

// recordSink collects emitted events.
type recordSink struct {
	events []CloudEvent
}

func (s *recordSink) EmitCloudEvent(e CloudEvent) {
	s.events = append(s.events, e)
}

func (s *recordSink) count(typ CloudEventType) int {
	n := 0
	for _, e := range s.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

// drawWithoutTarget runs the measure and post-draw passes of Scene.Draw
// without touching the graphics driver.
func drawWithoutTarget(s *Scene) {
	measure(s.root)
	updateWorldTransform(s.root, 0, 0, 1.0, false)
	notifyDrawn(s.root)
}

const (
	testViewW = 800
	testViewH = 600
)

// newAttachedView returns a scene sized testViewW×testViewH holding a view
// that has not been drawn yet.
func newAttachedView(opts ...Option) (*Scene, *CloudView) {
	s := NewScene()
	s.Layout(testViewW, testViewH)
	v := New(opts...)
	s.Root().AddChild(v.Node())
	return s, v
}

// newDrawnView is newAttachedView followed by one draw.
func newDrawnView(opts ...Option) (*Scene, *CloudView) {
	s, v := newAttachedView(opts...)
	drawWithoutTarget(s)
	return s, v
}

// captureLog redirects the package logger for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(log.New(&buf, "", 0))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func cloudIDs(v *CloudView) []CloudID {
	ids := make([]CloudID, 0, len(v.Clouds()))
	for _, c := range v.Clouds() {
		ids = append(ids, c.ID)
	}
	return ids
}
