package heartfield

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// setupBenchSimulation creates a settled simulation with the pointer over
// the heart, so every tick exercises spring, repulsion and friction.
func setupBenchSimulation(cfg Config) *Simulation {
	cfg.Seed = 1
	sim := NewSimulation(cfg)
	sim.Resize(1280, 720, 1)
	for range 100 {
		sim.Tick()
	}
	sim.HandleEvent(PointerEvent{Type: EventPointerEnter, ClientX: 640, ClientY: 300})
	sim.HandleEvent(PointerEvent{Type: EventPointerMove, ClientX: 640, ClientY: 300})
	return sim
}

// --- Simulation Benchmarks ---

func BenchmarkTick_850(b *testing.B) {
	sim := setupBenchSimulation(DefaultConfig())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sim.Tick()
	}
}

func BenchmarkTick_1200(b *testing.B) {
	sim := setupBenchSimulation(GlowConfig())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sim.Tick()
	}
}

func BenchmarkBuildField_850(b *testing.B) {
	cfg := DefaultConfig().Field
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		BuildField(1280, 720, cfg, nil)
	}
}

func BenchmarkGradientPixels(b *testing.B) {
	g := backgroundGradient(1280, 720, Color{0.08, 0.02, 0.05, 1}, Color{0, 0, 0, 1})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g.pixels(1600, 900, 1.25)
	}
}

// --- Rendering Benchmarks ---

func BenchmarkDraw_Sprites(b *testing.B) {
	benchDraw(b, DefaultConfig())
}

func BenchmarkDraw_Live(b *testing.B) {
	benchDraw(b, GlowConfig())
}

func benchDraw(b *testing.B, cfg Config) {
	sim := setupBenchSimulation(cfg)
	r, err := NewRenderer(cfg.Render)
	if err != nil {
		b.Fatal(err)
	}
	surf := sim.Surface()
	screen := ebiten.NewImage(surf.DeviceWidth(), surf.DeviceHeight())

	// Warm up: first draw builds the backdrop and glyphs.
	r.Draw(screen, sim)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Draw(screen, sim)
	}
}
