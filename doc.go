// Package heartfield renders an animated particle heart for [Ebitengine].
//
// A cloud of points converges onto a heart-shaped outline, scatters away
// from the pointer, and pulses on click or tap. The interesting part is the
// per-frame loop: a reveal sweep gates a spring that pulls each particle to
// its place on the curve, an inverse-square field pushes particles away from
// the pointer, and friction damps both before the position update.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	if err := heartfield.Run(heartfield.DefaultConfig(), heartfield.RunConfig{
//		Title: "Heart", Width: 800, Height: 600,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, drive a [Simulation] yourself. It has no dependency on
// a display: call [Simulation.Resize] when the surface changes,
// [Simulation.HandleEvent] for pointer input, and [Simulation.Tick] once
// per frame. Draw it with a [Renderer], or with the terminal backend in
// heartfield/terminal.
//
//	sim := heartfield.NewSimulation(heartfield.DefaultConfig())
//	sim.Resize(800, 600, 1)
//	sim.HandleEvent(heartfield.PointerEvent{Type: heartfield.EventClick})
//	for range 500 {
//		sim.Tick()
//	}
//
// # Presets
//
// [DefaultConfig] blits pre-rendered glow sprites and caps the device pixel
// ratio at 1.25; [GlowConfig] draws a denser field with a halo whose radius
// follows the pulse. Neither changes the simulation, only its constants.
//
// # Testing
//
// [Game.Step] advances the loop without a display clock, and
// [LoadTestScript] plays scripted pointer input for visual tests.
//
// [Ebitengine]: https://ebitengine.org
package heartfield
