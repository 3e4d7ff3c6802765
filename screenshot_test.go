package heartfield

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-click", "after-click"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	g := NewGame(NewSimulation(DefaultConfig()), nil)
	g.Screenshot("a")
	g.Screenshot("b")
	if len(g.shots) != 2 || g.shots[0] != "a" || g.shots[1] != "b" {
		t.Errorf("queue = %v, want [a b]", g.shots)
	}
}

func TestFrameStateReadsSimulation(t *testing.T) {
	sim := newTestSimulation(t)
	sim.HandleEvent(PointerEvent{Type: EventClick})
	for range 3 {
		sim.Tick()
	}
	g := NewGame(sim, nil)
	st := g.frameState("pulse")
	if st.Label != "pulse" || st.Tick != 3 || st.Particles != len(sim.Particles()) {
		t.Errorf("frameState = %+v", st)
	}
	assertNear(t, "Pulse", st.Pulse, sim.Pulse())
	assertNear(t, "RevealT", st.RevealT, sim.RevealT())
	if st.Width != 800 || st.Height != 600 {
		t.Errorf("size = %vx%v, want 800x600", st.Width, st.Height)
	}
}

func TestSaveFrame(t *testing.T) {
	// Premultiplied input: half-alpha pink-ish, opaque red, transparent.
	frame := image.NewRGBA(image.Rect(0, 0, 3, 1))
	copy(frame.Pix, []byte{
		128, 64, 0, 128,
		255, 0, 0, 255,
		0, 0, 0, 0,
	})
	dir := filepath.Join(t.TempDir(), "shots")
	path, err := saveFrame(dir, frame, frameState{Label: "after click", Tick: 42, Pulse: 0.5})
	if err != nil {
		t.Fatalf("saveFrame: %v", err)
	}
	if want := filepath.Join(dir, "000042_after_click.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	img, ok := decoded.(*image.NRGBA)
	if !ok {
		t.Fatalf("decoded %T, want *image.NRGBA", decoded)
	}
	// PNG stores straight alpha.
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{255, 127, 0, 128}) {
		t.Errorf("half-alpha pixel = %+v", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("opaque pixel = %+v", got)
	}
	if got := img.NRGBAAt(2, 0); got.A != 0 {
		t.Errorf("transparent pixel = %+v", got)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "000042_after_click.json"))
	if err != nil {
		t.Fatal(err)
	}
	var st frameState
	if err := json.Unmarshal(raw, &st); err != nil {
		t.Fatalf("sidecar: %v", err)
	}
	if st.Tick != 42 || st.Label != "after click" || st.Pulse != 0.5 {
		t.Errorf("sidecar = %+v", st)
	}
}

func TestSaveFrameBadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := saveFrame(file, image.NewRGBA(image.Rect(0, 0, 1, 1)), frameState{}); err == nil {
		t.Error("saveFrame under a regular file should fail")
	}
}
