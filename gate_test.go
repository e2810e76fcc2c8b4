package cloudview

import "testing"

func TestGateHoldsUntilOpen(t *testing.T) {
	var g readinessGate
	if !g.hold(intentSpawn) || !g.hold(intentStart) {
		t.Fatal("closed gate should hold intents")
	}
	p := g.open()
	if !p.has(intentSpawn) || !p.has(intentStart) || p.has(intentResize) {
		t.Errorf("pending = %b", p)
	}
	if g.hold(intentCount) {
		t.Error("open gate should refuse to hold")
	}
}

func TestGateCollapsesRepeats(t *testing.T) {
	var g readinessGate
	for i := 0; i < 5; i++ {
		g.hold(intentCount)
	}
	if p := g.open(); p != intentCount {
		t.Errorf("pending = %b, want only count", p)
	}
}

func TestGateOpensOnce(t *testing.T) {
	var g readinessGate
	g.hold(intentSpawn)
	g.open()
	if p := g.open(); p != 0 {
		t.Errorf("second open returned %b, want 0", p)
	}
}

func TestGateDrop(t *testing.T) {
	var g readinessGate
	g.hold(intentSpawn | intentStart)
	g.drop(intentStart)
	if p := g.open(); p != intentSpawn {
		t.Errorf("pending = %b, want spawn", p)
	}
}

func TestGateRearm(t *testing.T) {
	var g readinessGate
	g.open()
	g.rearm(intentSpawn)
	if g.ready {
		t.Fatal("rearmed gate should be closed")
	}
	if !g.hold(intentResize) {
		t.Fatal("rearmed gate should hold")
	}
	if p := g.open(); p != intentSpawn|intentResize {
		t.Errorf("pending = %b", p)
	}
}
