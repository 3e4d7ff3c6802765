package heartfield

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// radialGradient is a two-stop gradient between concentric circles, the
// shape of a canvas radial gradient whose start and end circles share a
// center. Coordinates are logical pixels.
type radialGradient struct {
	CX, CY       float64
	R0, R1       float64
	Inner, Outer Color
}

// backgroundGradient returns the backdrop gradient for a surface: centered,
// starting at a tenth of the minor dimension and ending at 0.6 of the major.
func backgroundGradient(width, height float64, inner, outer Color) radialGradient {
	return radialGradient{
		CX:    width * 0.5,
		CY:    height * 0.5,
		R0:    math.Min(width, height) * 0.1,
		R1:    math.Max(width, height) * 0.6,
		Inner: inner,
		Outer: outer,
	}
}

// At returns the gradient color at (x, y). Points inside R0 take the inner
// color, points beyond R1 the outer color.
func (g radialGradient) At(x, y float64) Color {
	if g.R1 <= g.R0 {
		return g.Outer
	}
	d := math.Hypot(x-g.CX, y-g.CY)
	return g.Inner.Lerp(g.Outer, (d-g.R0)/(g.R1-g.R0))
}

// uniform reports whether the gradient is a flat fill.
func (g radialGradient) uniform() bool {
	return g.Inner == g.Outer
}

// pixels rasterizes the gradient into w×h premultiplied RGBA bytes, sampling
// pixel centers of a surface scaled by scale.
func (g radialGradient) pixels(w, h int, scale float64) []byte {
	pix := make([]byte, 4*w*h)
	for py := 0; py < h; py++ {
		y := (float64(py) + 0.5) / scale
		for px := 0; px < w; px++ {
			x := (float64(px) + 0.5) / scale
			c := g.At(x, y).toRGBA()
			i := 4 * (py*w + px)
			pix[i] = c.R
			pix[i+1] = c.G
			pix[i+2] = c.B
			pix[i+3] = c.A
		}
	}
	return pix
}

// backdrop is a persistent offscreen canvas holding the painted background.
// It is repainted only when the surface geometry changes, never per frame.
type backdrop struct {
	image  *ebiten.Image
	w, h   int
	paints int
}

// resize deallocates the old image and creates a new one at the given
// device dimensions.
func (b *backdrop) resize(w, h int) {
	if b.image != nil {
		b.image.Deallocate()
	}
	b.image = ebiten.NewImage(max(w, 1), max(h, 1))
	b.w = max(w, 1)
	b.h = max(h, 1)
}

// paint fills the canvas with the gradient.
func (b *backdrop) paint(g radialGradient, scale float64) {
	b.paints++
	if g.uniform() {
		b.image.Fill(g.Outer.toRGBA())
		return
	}
	b.image.WritePixels(g.pixels(b.w, b.h, scale))
}

// draw copies the backdrop over dst, replacing whatever was there.
func (b *backdrop) draw(dst *ebiten.Image) {
	var op ebiten.DrawImageOptions
	op.Blend = ebiten.BlendCopy
	dst.DrawImage(b.image, &op)
}

// dispose deallocates the underlying image.
func (b *backdrop) dispose() {
	if b.image != nil {
		b.image.Deallocate()
		b.image = nil
	}
}
