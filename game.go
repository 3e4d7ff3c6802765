package heartfield

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// Debug logs per-frame timing to stderr.
	Debug bool
	// Script, when non-nil, drives input from a test script.
	Script *TestRunner
	// ExitWhenScriptDone stops the loop once Script has run every step.
	ExitWhenScriptDone bool
	// ScreenshotDir overrides the screenshot directory.
	ScreenshotDir string
}

// Game is the render driver: it implements ebiten.Game, feeding device
// input to a Simulation, ticking it once per Update and rendering it once per
// Draw. Tests can drive it with Step without a display clock.
type Game struct {
	sim      *Simulation
	renderer *Renderer
	tracker  pointerTracker
	touchIDs []ebiten.TouchID
	events   []PointerEvent

	running bool
	debug   bool
	fps     *fpsOverlay

	testRunner         *TestRunner
	exitWhenScriptDone bool
	shots              []string
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	// deviceScale reports the display's pixel ratio; replaced in tests.
	deviceScale    func() float64
	lastOutW       int
	lastOutH       int
	lastDeviceRate float64

	stats debugStats
}

// NewGame creates a running driver for sim drawn by renderer.
func NewGame(sim *Simulation, renderer *Renderer) *Game {
	return &Game{
		sim:           sim,
		renderer:      renderer,
		running:       true,
		ScreenshotDir: "screenshots",
		deviceScale:   func() float64 { return ebiten.Monitor().DeviceScaleFactor() },
	}
}

// Simulation returns the driven simulation.
func (g *Game) Simulation() *Simulation { return g.sim }

// Start resumes a stopped driver.
func (g *Game) Start() { g.running = true }

// Stop ends the loop: the next Update returns ebiten.Termination.
func (g *Game) Stop() { g.running = false }

// Running reports whether the driver is running.
func (g *Game) Running() bool { return g.running }

// SetDebugMode enables or disables per-frame timing logs on stderr.
func (g *Game) SetDebugMode(enabled bool) { g.debug = enabled }

// SetTestRunner attaches a script runner. Its step runs at the start of every
// Update, before input is processed.
func (g *Game) SetTestRunner(runner *TestRunner) { g.testRunner = runner }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if !g.running {
		return ebiten.Termination
	}
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	g.stepScript()
	if !g.sim.processInjectedInput() {
		g.pollInput()
	}
	g.handleKeys()
	g.sim.Tick()

	if g.debug {
		g.stats.tickTime = time.Since(t0)
	}
	if g.fps != nil {
		g.fps.update(1 / float64(ebiten.TPS()))
	}
	return nil
}

// Step runs n updates without a display clock or device input. Injected
// events and the test runner are still processed.
func (g *Game) Step(n int) {
	for i := 0; i < n && g.running; i++ {
		g.stepScript()
		g.sim.Update()
	}
}

func (g *Game) stepScript() {
	if g.testRunner == nil {
		return
	}
	g.testRunner.step(g)
	if g.exitWhenScriptDone && g.testRunner.Done() && len(g.shots) == 0 {
		g.Stop()
	}
}

func (g *Game) pollInput() {
	var in inputSample
	in, g.touchIDs = sampleInput(g.sim.Surface(), g.touchIDs)
	g.events = g.tracker.events(in, g.events[:0])
	for _, e := range g.events {
		g.sim.HandleEvent(e)
	}
}

// handleKeys maps a few keyboard shortcuts: R replays the build, space
// pulses, P captures a screenshot.
func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p := g.sim.Pointer()
		g.sim.HandleEvent(PointerEvent{Type: EventClick, ClientX: p.X, ClientY: p.Y})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.Screenshot(fmt.Sprintf("frame-%d", g.sim.Ticks()))
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	drawn := g.renderer.Draw(screen, g.sim)

	if g.debug {
		g.stats.drawTime = time.Since(t0)
		g.stats.particles = drawn
		g.stats.revealed = g.sim.RevealedCount()
		g.stats.revealT = g.sim.RevealT()
		g.stats.pulse = g.sim.Pulse()
		g.debugLog(g.stats)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The screen is sized in device pixels: the
// outside (logical) size times the capped device pixel ratio. A change of
// either triggers a synchronous rebuild of the field.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	rate := g.deviceScale()
	if outsideWidth != g.lastOutW || outsideHeight != g.lastOutH || rate != g.lastDeviceRate {
		g.lastOutW, g.lastOutH, g.lastDeviceRate = outsideWidth, outsideHeight, rate
		g.sim.Resize(float64(outsideWidth), float64(outsideHeight), rate)
	}
	surf := g.sim.Surface()
	if !surf.Valid() {
		return max(outsideWidth, 1), max(outsideHeight, 1)
	}
	return max(surf.DeviceWidth(), 1), max(surf.DeviceHeight(), 1)
}

// Run creates a simulation from cfg, opens a resizable window and runs the
// loop until the window closes or the driver is stopped. The error reports a
// configuration problem or a failure to start the graphics backend.
func Run(cfg Config, rc RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("heartfield: invalid config: %w", err)
	}
	renderer, err := NewRenderer(cfg.Render)
	if err != nil {
		return fmt.Errorf("heartfield: %w", err)
	}
	g := NewGame(NewSimulation(cfg), renderer)
	g.SetDebugMode(rc.Debug)
	if rc.ShowFPS {
		g.fps = newFPSOverlay()
	}
	if rc.Script != nil {
		g.SetTestRunner(rc.Script)
		g.exitWhenScriptDone = rc.ExitWhenScriptDone
	}
	if rc.ScreenshotDir != "" {
		g.ScreenshotDir = rc.ScreenshotDir
	}

	if rc.Title != "" {
		ebiten.SetWindowTitle(rc.Title)
	}
	if rc.Width > 0 && rc.Height > 0 {
		ebiten.SetWindowSize(rc.Width, rc.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("heartfield: run: %w", err)
	}
	return nil
}
