package heartfield

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
)

// GlowMode selects how the halo around each particle is produced.
type GlowMode uint8

const (
	GlowSprite GlowMode = iota // blit a glow sprite pre-rendered at resize time
	GlowLive                   // scale a unit halo to a blur radius recomputed every frame
)

// RenderConfig controls the look of the effect.
type RenderConfig struct {
	Mode GlowMode
	// Colors are CSS-style hex strings.
	DotColor        string
	GlowColor       string
	BackgroundInner string
	BackgroundOuter string
	// DotRadius is the radius of the pre-rendered dot sprite in logical
	// pixels. A particle of size s draws the sprite scaled by s/DotRadius.
	DotRadius float64
	// GlowBlur is the halo blur radius in logical pixels.
	GlowBlur float64
	// PulseScale boosts the dot size by (1 + PulseEase(pulse)·PulseScale).
	PulseScale float64
	// PulseBlur grows the live halo by (1 + pulse·PulseBlur). GlowLive only.
	PulseBlur float64
	// PulseEase shapes the pulse before it scales the dots. Nil is linear.
	PulseEase ease.TweenFunc
	// GlowBlend composites the halo.
	GlowBlend BlendMode
}

type palette struct {
	dot, glow        Color
	bgInner, bgOuter Color
}

func (c RenderConfig) palette() (palette, error) {
	var p palette
	var err error
	if p.dot, err = ParseColor(c.DotColor); err != nil {
		return palette{}, fmt.Errorf("dot color: %w", err)
	}
	if p.glow, err = ParseColor(c.GlowColor); err != nil {
		return palette{}, fmt.Errorf("glow color: %w", err)
	}
	if p.bgInner, err = ParseColor(c.BackgroundInner); err != nil {
		return palette{}, fmt.Errorf("background inner color: %w", err)
	}
	if p.bgOuter, err = ParseColor(c.BackgroundOuter); err != nil {
		return palette{}, fmt.Errorf("background outer color: %w", err)
	}
	return p, nil
}

// Renderer draws a Simulation onto an ebiten image. The backdrop and glyph
// sprites are cached and rebuilt only when the surface generation changes.
type Renderer struct {
	cfg    RenderConfig
	pal    palette
	back   backdrop
	glyphs glyphCache
	gen    uint64
	op     ebiten.DrawImageOptions
}

// NewRenderer validates the colors in cfg and returns a renderer. Images are
// created lazily on the first Draw.
func NewRenderer(cfg RenderConfig) (*Renderer, error) {
	pal, err := cfg.palette()
	if err != nil {
		return nil, err
	}
	if cfg.DotRadius <= 0 {
		return nil, fmt.Errorf("dot radius %v must be positive", cfg.DotRadius)
	}
	return &Renderer{cfg: cfg, pal: pal}, nil
}

// PulseFactor returns the size multiplier for a pulse value:
// 1 + PulseEase(pulse)·PulseScale.
func (c RenderConfig) PulseFactor(pulse float64) float64 {
	e := pulse
	if c.PulseEase != nil {
		e = float64(c.PulseEase(float32(pulse), 0, 1, 1))
	}
	return 1 + e*c.PulseScale
}

// PulseFactor returns the size multiplier for a pulse value.
func (r *Renderer) PulseFactor(pulse float64) float64 {
	return r.cfg.PulseFactor(pulse)
}

// DisplaySize returns the drawn size of a particle of the given size.
func (r *Renderer) DisplaySize(size, pulse float64) float64 {
	return size * r.PulseFactor(pulse)
}

// LiveBlur returns the halo blur radius GlowLive uses for a pulse value.
func (r *Renderer) LiveBlur(pulse float64) float64 {
	return r.cfg.GlowBlur * (1 + pulse*r.cfg.PulseBlur)
}

// Draw renders the backdrop and then every particle in insertion order. The
// destination is in device pixels; logical coordinates are scaled by the
// surface's device pixel ratio. Returns the number of particles drawn.
func (r *Renderer) Draw(dst *ebiten.Image, sim *Simulation) int {
	surf := sim.Surface()
	if !surf.Valid() {
		dst.Fill(r.pal.bgOuter.toRGBA())
		return 0
	}
	r.ensure(surf)
	r.back.draw(dst)

	ps := sim.Particles()
	pulse := sim.Pulse()
	switch r.cfg.Mode {
	case GlowLive:
		r.drawLive(dst, ps, pulse, surf.Scale())
	default:
		r.drawSprites(dst, ps, pulse, surf.Scale())
	}
	return len(ps)
}

// ensure rebuilds the cached backdrop and glyphs after a resize.
func (r *Renderer) ensure(surf *Surface) {
	if r.gen == surf.Generation() {
		return
	}
	r.gen = surf.Generation()
	scale := surf.Scale()
	r.back.resize(surf.DeviceWidth(), surf.DeviceHeight())
	r.back.paint(backgroundGradient(surf.Width(), surf.Height(), r.pal.bgInner, r.pal.bgOuter), scale)
	r.glyphs.build(r.cfg, r.pal, scale)
}

func (r *Renderer) drawSprites(dst *ebiten.Image, ps []Particle, pulse, scale float64) {
	k := r.PulseFactor(pulse)
	glowHalf := float64(r.glyphs.glowSize) / 2
	dotHalf := float64(r.glyphs.dotSize) / 2
	glowBlend := r.cfg.GlowBlend.EbitenBlend()
	op := &r.op
	op.ColorScale.Reset()

	for i := range ps {
		p := &ps[i]
		px, py := p.X*scale, p.Y*scale

		op.GeoM.Reset()
		op.GeoM.Translate(px-glowHalf, py-glowHalf)
		op.Blend = glowBlend
		op.Filter = ebiten.FilterNearest
		dst.DrawImage(r.glyphs.glow, op)

		s := p.Size * k / r.cfg.DotRadius
		op.GeoM.Reset()
		op.GeoM.Translate(-dotHalf, -dotHalf)
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(px, py)
		op.Blend = ebiten.BlendSourceOver
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(r.glyphs.dot, op)
	}
}

func (r *Renderer) drawLive(dst *ebiten.Image, ps []Particle, pulse, scale float64) {
	k := r.PulseFactor(pulse)
	blur := r.LiveBlur(pulse)
	half := float64(softGlyphSize) / 2
	glow := r.pal.glow
	dot := r.pal.dot.toRGBA()
	op := &r.op
	op.Blend = r.cfg.GlowBlend.EbitenBlend()
	op.Filter = ebiten.FilterLinear
	op.ColorScale.Reset()
	op.ColorScale.Scale(float32(glow.R*glow.A), float32(glow.G*glow.A), float32(glow.B*glow.A), float32(glow.A))

	for i := range ps {
		p := &ps[i]
		px, py := p.X*scale, p.Y*scale
		s := p.Size * k

		f := (s + blur) * scale / half
		op.GeoM.Reset()
		op.GeoM.Translate(-half, -half)
		op.GeoM.Scale(f, f)
		op.GeoM.Translate(px, py)
		dst.DrawImage(r.glyphs.soft, op)

		vector.DrawFilledCircle(dst, float32(px), float32(py), float32(s*scale), dot, true)
	}
}

// Dispose releases every cached image. The renderer rebuilds them on the
// next Draw.
func (r *Renderer) Dispose() {
	r.back.dispose()
	r.glyphs.dispose()
	r.gen = 0
}
