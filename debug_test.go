package heartfield

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := debugOutput
	debugOutput = &buf
	t.Cleanup(func() { debugOutput = prev })
	return &buf
}

func TestDebugLogDisabled(t *testing.T) {
	buf := captureDebug(t)
	g := NewGame(NewSimulation(DefaultConfig()), nil)
	g.debugLog(debugStats{particles: 10})
	if buf.Len() != 0 {
		t.Errorf("debug output with debug off: %q", buf.String())
	}
}

func TestDebugLogEnabled(t *testing.T) {
	buf := captureDebug(t)
	g := NewGame(NewSimulation(DefaultConfig()), nil)
	g.SetDebugMode(true)
	g.debugLog(debugStats{
		tickTime:  2 * time.Millisecond,
		drawTime:  3 * time.Millisecond,
		particles: 850,
		revealed:  425,
		revealT:   0.5,
		pulse:     0.25,
	})
	out := buf.String()
	for _, want := range []string{
		"[heartfield] tick: 2ms | draw: 3ms | total: 5ms",
		"particles: 850 | revealed: 425 | reveal: 0.500 | pulse: 0.250",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
}
