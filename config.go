package heartfield

import (
	"errors"
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/tanema/gween/ease"
)

// Config gathers every tuning knob of the effect. The constants are visual
// tuning; none of them change the structure of the simulation.
type Config struct {
	Field   FieldConfig
	Forces  ForceConfig
	Animate AnimatorConfig
	Render  RenderConfig
	// DPRCap bounds the device pixel ratio to limit per-frame fill cost on
	// dense displays.
	DPRCap float64
	// Seed makes particle layout reproducible. Zero uses the global source.
	Seed uint64
}

// DefaultConfig returns the sprite-based preset tuned for mobile GPUs:
// fewer particles, a low DPR cap and pre-rendered glow.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Count:       850,
			CurveScale:  0.02,
			Center:      Vec2{X: 0.5, Y: 0.55},
			Jitter:      0.003,
			Thickness:   0.03,
			SpawnSpread: 10,
			Size:        Range{Min: 1.0, Max: 2.2},
		},
		Forces: ForceConfig{
			Spring:       0.06,
			PulseStiffen: 0.4,
			Radius:       120,
			Force:        1100,
			MinDistance:  12,
			Friction:     0.86,
		},
		Animate: AnimatorConfig{
			RevealSpeed: 0.014,
			PulseDecay:  0.045,
		},
		Render: RenderConfig{
			Mode:            GlowSprite,
			DotColor:        "#ff5fa2",
			GlowColor:       "#ff8fc0",
			BackgroundInner: "#000",
			BackgroundOuter: "#000",
			DotRadius:       1.8,
			GlowBlur:        16,
			PulseScale:      0.6,
			GlowBlend:       BlendNormal,
			PulseEase:       ease.Linear,
		},
		DPRCap: 1.25,
	}
}

// GlowConfig returns the live-blur preset: a denser field, sharper output on
// high density displays and a glow radius that swells with the pulse.
func GlowConfig() Config {
	c := DefaultConfig()
	c.Field.Count = 1200
	c.Field.Size = Range{Min: 1.0, Max: 2.4}
	c.Forces.Friction = 0.88
	c.Render.Mode = GlowLive
	c.Render.GlowBlend = BlendAdd
	c.Render.PulseBlur = 0.8
	c.Render.BackgroundInner = "#14050c"
	c.DPRCap = 2
	return c
}

var presets = map[string]func() Config{
	"fast": DefaultConfig,
	"glow": GlowConfig,
}

// Preset returns the named preset ("fast" or "glow").
func Preset(name string) (Config, error) {
	fn, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown preset %q (want %s)", name, strings.Join(sortedKeys(presets), ", "))
	}
	return fn(), nil
}

// Validate reports configuration values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Field.Count < 0 {
		errs = append(errs, fmt.Errorf("particle count %d is negative", c.Field.Count))
	}
	if c.Forces.Friction < 0 || c.Forces.Friction >= 1 {
		errs = append(errs, fmt.Errorf("friction %v outside [0, 1)", c.Forces.Friction))
	}
	if c.Forces.MinDistance <= 0 {
		errs = append(errs, fmt.Errorf("min distance %v must be positive", c.Forces.MinDistance))
	}
	if c.Animate.RevealSpeed <= 0 {
		errs = append(errs, fmt.Errorf("reveal speed %v must be positive", c.Animate.RevealSpeed))
	}
	if c.Animate.PulseDecay <= 0 {
		errs = append(errs, fmt.Errorf("pulse decay %v must be positive", c.Animate.PulseDecay))
	}
	if _, err := c.Render.palette(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// RegisterFlags binds the main knobs of c to fs. The -preset flag replaces
// the whole config, so it must come before any individual overrides on the
// command line.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Var(presetValue{c}, "preset", "tuning preset: fast or glow (must precede other flags)")
	fs.IntVar(&c.Field.Count, "count", c.Field.Count, "number of particles")
	fs.Float64Var(&c.Field.Thickness, "thickness", c.Field.Thickness, "outline thickness as a fraction of the minor dimension")
	fs.Float64Var(&c.Forces.Spring, "spring", c.Forces.Spring, "return spring coefficient")
	fs.Float64Var(&c.Forces.Friction, "friction", c.Forces.Friction, "velocity damping per tick")
	fs.Float64Var(&c.Forces.Radius, "repulse-radius", c.Forces.Radius, "pointer repulsion radius in pixels")
	fs.Float64Var(&c.Forces.Force, "repulse-force", c.Forces.Force, "pointer repulsion strength")
	fs.Float64Var(&c.Animate.RevealSpeed, "reveal-speed", c.Animate.RevealSpeed, "reveal sweep advance per tick")
	fs.Float64Var(&c.Animate.PulseDecay, "pulse-decay", c.Animate.PulseDecay, "pulse decay per tick")
	fs.Float64Var(&c.DPRCap, "dpr-cap", c.DPRCap, "maximum device pixel ratio")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "layout seed (0 = random)")
	fs.StringVar(&c.Render.DotColor, "color", c.Render.DotColor, "dot color")
	fs.StringVar(&c.Render.GlowColor, "glow-color", c.Render.GlowColor, "glow color")
	fs.StringVar(&c.Render.BackgroundOuter, "background", c.Render.BackgroundOuter, "background color")
	fs.Var(easeValue{&c.Render.PulseEase}, "pulse-ease", "easing of the pulse size boost: "+strings.Join(sortedKeys(easings), ", "))
}

type presetValue struct{ cfg *Config }

func (v presetValue) String() string { return "fast" }

func (v presetValue) Set(name string) error {
	p, err := Preset(name)
	if err != nil {
		return err
	}
	*v.cfg = p
	return nil
}

var easings = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"out-quad":    ease.OutQuad,
	"out-cubic":   ease.OutCubic,
	"out-sine":    ease.OutSine,
	"out-back":    ease.OutBack,
	"out-elastic": ease.OutElastic,
	"out-bounce":  ease.OutBounce,
}

// EaseByName looks up an easing curve usable as RenderConfig.PulseEase.
func EaseByName(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[name]
	return fn, ok
}

type easeValue struct{ fn *ease.TweenFunc }

func (v easeValue) String() string { return "linear" }

func (v easeValue) Set(name string) error {
	fn, ok := EaseByName(name)
	if !ok {
		return fmt.Errorf("unknown easing %q", name)
	}
	*v.fn = fn
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
