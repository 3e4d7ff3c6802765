package heartfield

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Scale  float64 `json:"scale,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var pointerActions = map[string]EventType{
	"enter":   EventPointerEnter,
	"leave":   EventPointerLeave,
	"move":    EventPointerMove,
	"press":   EventPointerDown,
	"release": EventPointerUp,
	"touch":   EventTouchStart,
}

// TestRunner sequences injected input events, resizes and screenshots across
// frames for automated visual testing. Attach to a Game via SetTestRunner.
//
// Actions: enter, leave, move, press, release, touch (x, y); click (x, y);
// sweep (fromX, fromY, toX, toY, frames); resize (width, height, scale);
// wait (frames); screenshot (label).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Game via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownAction(st.Action) {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func knownAction(action string) bool {
	if _, ok := pointerActions[action]; ok {
		return true
	}
	switch action {
	case "click", "sweep", "resize", "wait", "screenshot":
		return true
	}
	return false
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Game.Update.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	sim := g.sim
	// Wait for pending injections to drain before advancing.
	if sim.PendingInjections() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	if typ, ok := pointerActions[st.Action]; ok {
		sim.InjectEvent(typ, st.X, st.Y)
	}
	switch st.Action {
	case "screenshot":
		g.Screenshot(st.Label)
	case "click":
		sim.InjectClick(st.X, st.Y)
	case "sweep":
		sim.InjectSweep(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "resize":
		sim.Resize(st.Width, st.Height, st.Scale)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && sim.PendingInjections() == 0 {
		r.done = true
	}
}
