package heartfield

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/vector"
)

// circleKappa places cubic Bézier control points so four segments
// approximate a circle.
const circleKappa = 0.5522847498

// softGlyphSize is the pixel size of the unit halo used by GlowLive.
const softGlyphSize = 64

// spriteSize returns the square pixel size of a sprite holding a disc of the
// given radius plus a halo of the given blur, at a device scale.
func spriteSize(radius, blur, scale float64) int {
	return int(math.Ceil((radius + blur) * 2 * scale))
}

// rasterDisc returns a size×size image with an anti-aliased disc of radius r
// pixels centered in it.
func rasterDisc(size int, r float64, c Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size <= 0 || r <= 0 {
		return img
	}

	z := vector.NewRasterizer(size, size)
	cx, cy := float32(size)/2, float32(size)/2
	rr := float32(r)
	k := float32(circleKappa) * rr
	z.MoveTo(cx+rr, cy)
	z.CubeTo(cx+rr, cy+k, cx+k, cy+rr, cx, cy+rr)
	z.CubeTo(cx-k, cy+rr, cx-rr, cy+k, cx-rr, cy)
	z.CubeTo(cx-rr, cy-k, cx-k, cy-rr, cx, cy-rr)
	z.CubeTo(cx+k, cy-rr, cx+rr, cy-k, cx+rr, cy)
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(c.nrgba()), image.Point{})
	return img
}

func (c Color) nrgba() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// glyphCache holds the pre-rendered particle sprites. There is a single
// glyph of each kind, rebuilt whenever the surface scale may have changed.
type glyphCache struct {
	dot  *ebiten.Image // sharp disc of DotRadius
	glow *ebiten.Image // sharp disc over a blurred halo
	soft *ebiten.Image // blurred white disc, tinted and scaled per particle in GlowLive

	dotSize  int
	glowSize int
	builds   int
}

// build renders every glyph for the given device scale. Halos are blurred
// on the CPU with sigma = blur/2, matching a canvas shadow of that blur.
func (gc *glyphCache) build(cfg RenderConfig, pal palette, scale float64) {
	gc.dispose()
	gc.builds++

	r := cfg.DotRadius * scale
	gc.dotSize = max(spriteSize(cfg.DotRadius, 0, scale), 1)
	gc.dot = ebiten.NewImageFromImage(rasterDisc(gc.dotSize, r, pal.dot))

	// Halo in the soft color with the sharp disc on top.
	gc.glowSize = max(spriteSize(cfg.DotRadius, cfg.GlowBlur, scale), 1)
	gc.glow = ebiten.NewImageFromImage(rasterHalo(gc.glowSize, r, cfg.GlowBlur*scale/2, pal.glow))
	var op ebiten.DrawImageOptions
	off := float64(gc.glowSize-gc.dotSize) / 2
	op.GeoM.Translate(off, off)
	gc.glow.DrawImage(gc.dot, &op)

	// Unit halo for live mode: disc and blur in the same proportion as the
	// configured radius and blur.
	gc.soft = ebiten.NewImageFromImage(rasterHalo(softGlyphSize, softRadius(cfg), softBlur(cfg)/2, ColorWhite))
}

// softRadius and softBlur scale the configured disc and blur so together
// they fill half of softGlyphSize.
func softRadius(cfg RenderConfig) float64 {
	return softGlyphSize / 2 * cfg.DotRadius / math.Max(cfg.DotRadius+cfg.GlowBlur, 1e-9)
}

func softBlur(cfg RenderConfig) float64 {
	return softGlyphSize / 2 * cfg.GlowBlur / math.Max(cfg.DotRadius+cfg.GlowBlur, 1e-9)
}

// dispose deallocates every glyph.
func (gc *glyphCache) dispose() {
	for _, img := range []*ebiten.Image{gc.dot, gc.glow, gc.soft} {
		if img != nil {
			img.Deallocate()
		}
	}
	gc.dot, gc.glow, gc.soft = nil, nil, nil
}
