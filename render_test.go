package heartfield

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

func TestNewRendererValidates(t *testing.T) {
	if _, err := NewRenderer(DefaultConfig().Render); err != nil {
		t.Fatalf("default render config: %v", err)
	}
	if _, err := NewRenderer(GlowConfig().Render); err != nil {
		t.Fatalf("glow render config: %v", err)
	}

	bad := DefaultConfig().Render
	bad.BackgroundInner = "#zzz"
	if _, err := NewRenderer(bad); err == nil || !strings.Contains(err.Error(), "background inner") {
		t.Errorf("bad background error = %v", err)
	}

	bad = DefaultConfig().Render
	bad.DotRadius = 0
	if _, err := NewRenderer(bad); err == nil {
		t.Error("zero dot radius accepted")
	}
}

func TestRendererPulseFactor(t *testing.T) {
	r, err := NewRenderer(DefaultConfig().Render)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "PulseFactor(0)", r.PulseFactor(0), 1)
	assertNear(t, "PulseFactor(1)", r.PulseFactor(1), 1.6)
	assertNear(t, "PulseFactor(0.5)", r.PulseFactor(0.5), 1.3)
	assertNear(t, "DisplaySize(2, 1)", r.DisplaySize(2, 1), 3.2)

	cfg := DefaultConfig().Render
	cfg.PulseEase = ease.OutQuad
	r, _ = NewRenderer(cfg)
	assertNear(t, "eased PulseFactor(0.5)", r.PulseFactor(0.5), 1+0.75*0.6)

	cfg.PulseEase = nil
	r, _ = NewRenderer(cfg)
	assertNear(t, "nil ease PulseFactor(0.5)", r.PulseFactor(0.5), 1.3)
}

func TestRendererLiveBlur(t *testing.T) {
	r, err := NewRenderer(GlowConfig().Render)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "LiveBlur(0)", r.LiveBlur(0), 16)
	assertNear(t, "LiveBlur(1)", r.LiveBlur(1), 16*1.8)

	r, _ = NewRenderer(DefaultConfig().Render)
	assertNear(t, "sprite mode LiveBlur(1)", r.LiveBlur(1), 16)
}

func TestRendererCachesPerResize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Field.Count = 50
	sim := NewSimulation(cfg)
	r, err := NewRenderer(cfg.Render)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Dispose()
	screen := ebiten.NewImage(100, 100)
	defer screen.Deallocate()

	if n := r.Draw(screen, sim); n != 0 {
		t.Errorf("Draw before resize drew %d particles", n)
	}

	sim.Resize(80, 80, 1)
	for range 3 {
		if n := r.Draw(screen, sim); n != 50 {
			t.Fatalf("Draw = %d, want 50", n)
		}
	}
	if r.glyphs.builds != 1 || r.back.paints != 1 {
		t.Errorf("builds = %d, paints = %d; want 1 each across frames", r.glyphs.builds, r.back.paints)
	}
	if r.glyphs.dotSize != 4 || r.glyphs.glowSize != 36 {
		t.Errorf("glyph sizes = %d, %d; want 4, 36", r.glyphs.dotSize, r.glyphs.glowSize)
	}

	sim.Resize(100, 100, 1.25)
	r.Draw(screen, sim)
	if r.glyphs.builds != 2 || r.back.paints != 2 {
		t.Errorf("after resize: builds = %d, paints = %d; want 2", r.glyphs.builds, r.back.paints)
	}
	if r.glyphs.glowSize != 45 {
		t.Errorf("glow size at 1.25 = %d, want 45", r.glyphs.glowSize)
	}

	r.Dispose()
	r.Dispose()
}
