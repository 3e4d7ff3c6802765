package heartfield

import "testing"

func TestInjectClick(t *testing.T) {
	sim := newTestSimulation(t)
	sim.InjectClick(50, 60)
	if sim.PendingInjections() != 3 {
		t.Fatalf("queued = %d, want 3", sim.PendingInjections())
	}

	// Frame 1: press
	sim.Update()
	if !sim.Pointer().Down {
		t.Error("Down should be set on the press frame")
	}
	if sim.PendingInjections() != 2 {
		t.Fatalf("remaining = %d, want 2", sim.PendingInjections())
	}

	// Frame 2: release
	sim.Update()
	if sim.Pointer().Down {
		t.Error("Down should clear on the release frame")
	}

	// Frame 3: click re-pins the pulse.
	sim.Update()
	if sim.Pulse() != 1-sim.Config().Animate.PulseDecay {
		t.Errorf("pulse = %v, want one tick of decay from 1", sim.Pulse())
	}
	if sim.PendingInjections() != 0 {
		t.Errorf("remaining = %d, want 0", sim.PendingInjections())
	}
	if p := sim.Pointer(); p.X != 50 || p.Y != 60 {
		t.Errorf("pointer = (%v, %v), want (50, 60)", p.X, p.Y)
	}
}

func TestInjectSweep(t *testing.T) {
	sim := newTestSimulation(t)
	sim.InjectSweep(0, 0, 100, 200, 6)
	if sim.PendingInjections() != 6 {
		t.Fatalf("queued = %d, want 6", sim.PendingInjections())
	}

	sim.Update()
	if !sim.Pointer().Inside {
		t.Error("sweep should start by entering")
	}
	sim.Update()
	assertNear(t, "first move X", sim.Pointer().X, 20)
	assertNear(t, "first move Y", sim.Pointer().Y, 40)
	for range 4 {
		sim.Update()
	}
	if sim.Pointer().Inside {
		t.Error("sweep should end by leaving")
	}
	assertNear(t, "last move X", sim.Pointer().X, 80)
}

func TestInjectSweepMinimumFrames(t *testing.T) {
	sim := newTestSimulation(t)
	sim.InjectSweep(0, 0, 10, 10, 0)
	if sim.PendingInjections() != 2 {
		t.Errorf("queued = %d, want 2 (enter and leave)", sim.PendingInjections())
	}
}

func TestInjectEventTicksEvenWhenEmpty(t *testing.T) {
	sim := newTestSimulation(t)
	if sim.processInjectedInput() {
		t.Error("empty queue reported an event")
	}
	sim.Update()
	if sim.Ticks() != 1 {
		t.Errorf("ticks = %d, want 1", sim.Ticks())
	}
}
