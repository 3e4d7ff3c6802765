package heartfield

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOutput receives debug logs.
var debugOutput io.Writer = os.Stderr

// debugStats holds per-frame timing and field metrics.
// Only populated when Game.debug is true.
type debugStats struct {
	tickTime  time.Duration
	drawTime  time.Duration
	particles int
	revealed  int
	revealT   float64
	pulse     float64
}

// debugLog prints timing and field stats to debugOutput.
func (g *Game) debugLog(stats debugStats) {
	if !g.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOutput,
		"[heartfield] tick: %v | draw: %v | total: %v\n",
		stats.tickTime, stats.drawTime, stats.tickTime+stats.drawTime)
	_, _ = fmt.Fprintf(debugOutput,
		"[heartfield] particles: %d | revealed: %d | reveal: %.3f | pulse: %.3f\n",
		stats.particles, stats.revealed, stats.revealT, stats.pulse)
}
