package cloudview

// intent is a kind of work that needs the view's measured size. Pending
// intents are flags, so repeated requests of one kind before readiness
// collapse into a single replay that reads the latest configuration.
type intent uint8

const (
	intentSpawn  intent = 1 << iota // build the pool for the first time
	intentCount                     // rebuild the pool at a new count
	intentResize                    // re-randomize sizes of the existing pool
	intentStart                     // start animating once clouds exist
)

// readinessGate holds intents until the view has been drawn, then hands them
// over exactly once.
type readinessGate struct {
	ready   bool
	pending intent
}

// hold records an intent. Returns false, recording nothing, once the gate is
// open: the caller must act immediately instead.
func (g *readinessGate) hold(i intent) bool {
	if g.ready {
		return false
	}
	g.pending |= i
	return true
}

// drop discards a pending intent.
func (g *readinessGate) drop(i intent) {
	g.pending &^= i
}

// open marks the gate ready and returns the intents to replay. Every later
// call returns 0 until the gate is re-armed.
func (g *readinessGate) open() intent {
	if g.ready {
		return 0
	}
	g.ready = true
	p := g.pending
	g.pending = 0
	return p
}

// rearm closes the gate again with the given intents pending. Used when the
// view leaves the tree and its measured size is no longer trustworthy.
func (g *readinessGate) rearm(i intent) {
	g.ready = false
	g.pending = i
}

func (i intent) has(flag intent) bool {
	return i&flag != 0
}
