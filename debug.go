package cloudview

import (
	"fmt"
	"time"
)

// debugStats holds per-frame timing and draw metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	drawTime    time.Duration
	notifyTime  time.Duration
	spriteCount int
}

// debugLog prints timing and sprite stats through the package logger.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	logger.Printf("draw: %v | notify: %v | total: %v | sprites: %d",
		stats.drawTime, stats.notifyTime, stats.drawTime+stats.notifyTime, stats.spriteCount)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("cloudview debug: %s on disposed node %q", op, n.Name))
	}
}

// debugMaxChildCount is the child count above which a warning is logged.
// Pools of that size are almost always a slider or config mistake.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) == debugMaxChildCount+1 {
		logger.Printf("warning: node %q has %d children (threshold %d)",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
