package heartfield

// AnimatorConfig holds the per-tick rates of the reveal sweep and the pulse.
type AnimatorConfig struct {
	// RevealSpeed is added to the reveal sweep every tick.
	RevealSpeed float64
	// PulseDecay is subtracted from the pulse every tick.
	PulseDecay float64
}

// Animator tracks the two animation scalars. The reveal sweep climbs from 0
// to 1 after every rebuild; the pulse jumps to 1 on a press and decays back
// to 0.
//
// Both scalars are derived from tick counters rather than accumulated, so
// the sweep lands on exactly 1 after ceil(1/RevealSpeed) ticks and the pulse
// on exactly 0 after ceil(1/PulseDecay) ticks.
type Animator struct {
	cfg AnimatorConfig

	revealT     float64
	revealTicks int

	pulse      float64
	pulseTicks int
	pulsing    bool
}

// NewAnimator returns an animator with both scalars at 0.
func NewAnimator(cfg AnimatorConfig) *Animator {
	return &Animator{cfg: cfg}
}

// RevealT returns the reveal sweep position in [0, 1].
func (a *Animator) RevealT() float64 { return a.revealT }

// Pulse returns the pulse strength in [0, 1].
func (a *Animator) Pulse() float64 { return a.pulse }

// Revealed reports whether a particle of the given order has been reached by
// the sweep.
func (a *Animator) Revealed(order float64) bool {
	return order <= a.revealT
}

// Tick advances both scalars by one frame.
func (a *Animator) Tick() {
	if a.revealT < 1 {
		a.revealTicks++
		a.revealT = clamp01(float64(a.revealTicks) * a.cfg.RevealSpeed)
	}
	if a.pulsing {
		a.pulseTicks++
		a.pulse = max(0, 1-float64(a.pulseTicks)*a.cfg.PulseDecay)
		if a.pulse == 0 {
			a.pulsing = false
		}
	}
}

// Press pins the pulse at 1. Repeated presses overwrite rather than add.
func (a *Animator) Press() {
	a.pulse = 1
	a.pulseTicks = 0
	a.pulsing = a.cfg.PulseDecay > 0
}

// Reset restarts the reveal sweep. A pulse in flight keeps decaying.
func (a *Animator) Reset() {
	a.revealT = 0
	a.revealTicks = 0
}
