package heartfield

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// frameState describes the simulation at the moment a frame was captured.
// It is written next to each screenshot so visual tests can tell which
// reveal and pulse phase an image shows.
type frameState struct {
	Label     string  `json:"label"`
	Tick      uint64  `json:"tick"`
	RevealT   float64 `json:"reveal"`
	Pulse     float64 `json:"pulse"`
	Revealed  int     `json:"revealed"`
	Particles int     `json:"particles"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Scale     float64 `json:"scale"`
}

// Screenshot queues a capture of the next drawn frame. Each capture writes
// <tick>_<label>.png and a matching .json with the simulation state into
// ScreenshotDir. Safe to call from Update or Draw.
func (g *Game) Screenshot(label string) {
	g.shots = append(g.shots, label)
}

func (g *Game) frameState(label string) frameState {
	surf := g.sim.Surface()
	return frameState{
		Label:     label,
		Tick:      g.sim.Ticks(),
		RevealT:   g.sim.RevealT(),
		Pulse:     g.sim.Pulse(),
		Revealed:  g.sim.RevealedCount(),
		Particles: len(g.sim.Particles()),
		Width:     surf.Width(),
		Height:    surf.Height(),
		Scale:     surf.Scale(),
	}
}

// flushScreenshots reads the drawn frame back once and saves it for every
// queued label. Called at the end of Game.Draw.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.shots) == 0 {
		return
	}
	b := screen.Bounds()
	// ReadPixels yields premultiplied RGBA, which is what image.RGBA holds.
	frame := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(frame.Pix)

	for _, label := range g.shots {
		if _, err := saveFrame(g.ScreenshotDir, frame, g.frameState(label)); err != nil {
			_, _ = fmt.Fprintf(debugOutput, "[heartfield] screenshot %q: %v\n", label, err)
		}
	}
	g.shots = g.shots[:0]
}

// saveFrame writes frame as a PNG and st as a JSON sidecar under dir,
// creating dir if needed. Returns the PNG path.
func saveFrame(dir string, frame image.Image, st frameState) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	base := filepath.Join(dir, fmt.Sprintf("%06d_%s", st.Tick, sanitizeLabel(st.Label)))

	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		return "", fmt.Errorf("encode %s: %w", base, err)
	}
	if err := os.WriteFile(base+".png", buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	meta, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(base+".json", meta, 0o644); err != nil {
		return "", err
	}
	return base + ".png", nil
}

// sanitizeLabel keeps letters, digits, '-' and '.', replacing anything else
// with '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
