package heartfield

import (
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestPresetsValidate(t *testing.T) {
	for _, name := range []string{"fast", "glow"} {
		cfg, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s preset invalid: %v", name, err)
		}
	}
	if _, err := Preset("turbo"); err == nil || !strings.Contains(err.Error(), "fast, glow") {
		t.Errorf("Preset(turbo) error = %v", err)
	}
}

func TestDefaultConfigConstants(t *testing.T) {
	c := DefaultConfig()
	if c.Field.Count != 850 || c.DPRCap != 1.25 || c.Forces.Radius != 120 {
		t.Errorf("unexpected defaults: count %d, cap %v, radius %v", c.Field.Count, c.DPRCap, c.Forces.Radius)
	}
	g := GlowConfig()
	if g.Field.Count != 1200 || g.DPRCap != 2 || g.Render.Mode != GlowLive {
		t.Errorf("unexpected glow preset: %+v", g)
	}
}

func TestConfigValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative count", func(c *Config) { c.Field.Count = -1 }, "particle count"},
		{"friction one", func(c *Config) { c.Forces.Friction = 1 }, "friction"},
		{"negative friction", func(c *Config) { c.Forces.Friction = -0.1 }, "friction"},
		{"zero min distance", func(c *Config) { c.Forces.MinDistance = 0 }, "min distance"},
		{"zero reveal", func(c *Config) { c.Animate.RevealSpeed = 0 }, "reveal speed"},
		{"zero decay", func(c *Config) { c.Animate.PulseDecay = 0 }, "pulse decay"},
		{"bad color", func(c *Config) { c.Render.GlowColor = "nope" }, "glow color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.want)
			}
		})
	}

	c := DefaultConfig()
	c.Field.Count = -1
	c.Forces.Friction = 2
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "particle count") || !strings.Contains(err.Error(), "friction") {
		t.Errorf("Validate() should report every problem, got %v", err)
	}
}

func TestRegisterFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.RegisterFlags(fs)

	err := fs.Parse([]string{"-preset", "glow", "-count", "100", "-friction", "0.9", "-pulse-ease", "out-back", "-seed", "7"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Render.Mode != GlowLive {
		t.Error("-preset glow not applied")
	}
	if cfg.Field.Count != 100 || cfg.Forces.Friction != 0.9 || cfg.Seed != 7 {
		t.Errorf("overrides not applied: count %d friction %v seed %d", cfg.Field.Count, cfg.Forces.Friction, cfg.Seed)
	}
	if got, want := cfg.Render.PulseEase(0.5, 0, 1, 1), ease.OutBack(0.5, 0, 1, 1); got != want {
		t.Errorf("pulse ease = %v, want out-back %v", got, want)
	}
}

func TestRegisterFlagsRejectsUnknownValues(t *testing.T) {
	for _, args := range [][]string{
		{"-preset", "turbo"},
		{"-pulse-ease", "wobble"},
	} {
		cfg := DefaultConfig()
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		cfg.RegisterFlags(fs)
		if err := fs.Parse(args); err == nil {
			t.Errorf("Parse(%v) should fail", args)
		}
	}
}

func TestEaseByName(t *testing.T) {
	if _, ok := EaseByName("out-quad"); !ok {
		t.Error("out-quad missing")
	}
	if _, ok := EaseByName("nope"); ok {
		t.Error("unknown easing found")
	}
}
