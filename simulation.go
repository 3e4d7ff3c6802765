package heartfield

import "math/rand/v2"

// Simulation owns all mutable state of the effect: the surface geometry, the
// particle field, the pointer and the animation scalars. It is driven from a
// single goroutine; events and ticks must not be delivered concurrently.
type Simulation struct {
	cfg       Config
	surface   Surface
	particles []Particle
	pointer   Pointer
	anim      *Animator
	rng       *rand.Rand
	sink      EventSink

	injectQueue []PointerEvent
	ticks       uint64
	rebuilds    int
}

// NewSimulation creates a simulation with no surface yet. Call Resize before
// the first Tick to build the field.
func NewSimulation(cfg Config) *Simulation {
	s := &Simulation{
		cfg:     cfg,
		surface: Surface{DPRCap: cfg.DPRCap},
		anim:    NewAnimator(cfg.Animate),
	}
	if cfg.Seed != 0 {
		s.rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}
	return s
}

// Config returns the configuration the simulation was created with.
func (s *Simulation) Config() Config { return s.cfg }

// Surface returns the surface geometry. The returned value MUST NOT be resized
// directly; use Simulation.Resize.
func (s *Simulation) Surface() *Surface { return &s.surface }

// Particles returns the current field. The slice is replaced on every rebuild.
func (s *Simulation) Particles() []Particle { return s.particles }

// Pointer returns a copy of the pointer state.
func (s *Simulation) Pointer() Pointer { return s.pointer }

// RevealT returns the reveal sweep position in [0, 1].
func (s *Simulation) RevealT() float64 { return s.anim.RevealT() }

// Pulse returns the pulse strength in [0, 1].
func (s *Simulation) Pulse() float64 { return s.anim.Pulse() }

// Ticks returns the number of ticks run since creation.
func (s *Simulation) Ticks() uint64 { return s.ticks }

// Rebuilds returns the number of field rebuilds since creation.
func (s *Simulation) Rebuilds() int { return s.rebuilds }

// SetEventSink sets the optional receiver of handled pointer events.
func (s *Simulation) SetEventSink(sink EventSink) {
	s.sink = sink
}

// Resize applies a new logical surface size and device pixel ratio and
// rebuilds the whole field before returning. A zero-size surface is ignored:
// the previous field and geometry are kept. Reports whether a rebuild ran.
func (s *Simulation) Resize(width, height, deviceScale float64) bool {
	if !s.surface.Resize(width, height, deviceScale) {
		return false
	}
	s.Rebuild()
	return true
}

// Rebuild discards the field, lays out a fresh one for the current surface and
// restarts the reveal sweep. It is a no-op before the first successful Resize.
func (s *Simulation) Rebuild() {
	if !s.surface.Valid() {
		return
	}
	s.particles = BuildField(s.surface.Width(), s.surface.Height(), s.cfg.Field, s.rng)
	s.anim.Reset()
	s.rebuilds++
}

// HandleEvent applies one pointer event immediately. Returns false for event
// types the simulation does not know. TouchStart is consumed without changing
// state so the host suppresses its default scroll and zoom.
func (s *Simulation) HandleEvent(evt PointerEvent) bool {
	if evt.Type > EventTouchStart {
		return false
	}
	evt.X, evt.Y = s.surface.ClientToLocal(evt.ClientX, evt.ClientY)

	switch evt.Type {
	case EventPointerEnter:
		s.pointer.Inside = true
	case EventPointerLeave:
		s.pointer.Inside = false
		s.pointer.Down = false
	case EventPointerDown:
		s.pointer.Down = true
	case EventPointerUp:
		s.pointer.Down = false
	}

	switch evt.Type {
	case EventPointerMove, EventPointerDown, EventPointerUp:
		s.pointer.X, s.pointer.Y = evt.X, evt.Y
	}

	switch evt.Type {
	case EventClick, EventPointerDown:
		s.anim.Press()
	}

	if s.sink != nil {
		s.sink.EmitEvent(evt)
	}
	return true
}

// Tick advances the animation scalars and then integrates every particle
// once. The order matches a display frame: timers first, forces second.
func (s *Simulation) Tick() {
	s.anim.Tick()
	Integrate(s.particles, s.pointer, s.anim.RevealT(), s.anim.Pulse(), s.cfg.Forces)
	s.ticks++
}

// Update consumes at most one injected event and then ticks. Drivers that do
// not poll a real device call this instead of Tick.
func (s *Simulation) Update() {
	s.processInjectedInput()
	s.Tick()
}

// RevealedCount returns how many particles the reveal sweep has reached.
func (s *Simulation) RevealedCount() int {
	n := 0
	for i := range s.particles {
		if s.anim.Revealed(s.particles[i].Order) {
			n++
		}
	}
	return n
}
