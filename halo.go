package heartfield

import (
	"image"
	"math"
)

// gaussianKernel returns the normalized weights of a 1D Gaussian with the
// given standard deviation, truncated at three sigma. The center weight is
// at index len/2.
func gaussianKernel(sigma float64) []float64 {
	if sigma <= 0 {
		return []float64{1}
	}
	n := int(math.Ceil(3 * sigma))
	k := make([]float64, 2*n+1)
	var sum float64
	for i := range k {
		d := float64(i - n)
		k[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// blurAlpha convolves a w×h coverage plane with a separable Gaussian and
// returns the result. Samples outside the plane are transparent.
func blurAlpha(a []float64, w, h int, sigma float64) []float64 {
	k := gaussianKernel(sigma)
	n := len(k) / 2
	tmp := make([]float64, len(a))
	for y := 0; y < h; y++ {
		row := a[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			var v float64
			for i, wt := range k {
				if sx := x + i - n; sx >= 0 && sx < w {
					v += row[sx] * wt
				}
			}
			tmp[y*w+x] = v
		}
	}
	out := make([]float64, len(a))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			var v float64
			for i, wt := range k {
				if sy := y + i - n; sy >= 0 && sy < h {
					v += tmp[sy*w+x] * wt
				}
			}
			out[y*w+x] = v
		}
	}
	return out
}

// rasterHalo returns a size×size premultiplied sprite of a disc of radius r,
// centered, blurred with a Gaussian of standard deviation sigma and tinted c.
// This is the shadow a canvas draws for shadowBlur = 2·sigma.
func rasterHalo(size int, r, sigma float64, c Color) *image.RGBA {
	disc := rasterDisc(size, r, ColorWhite)
	if size <= 0 {
		return disc
	}
	a := make([]float64, size*size)
	for i := range a {
		a[i] = float64(disc.Pix[4*i+3]) / 255
	}
	a = blurAlpha(a, size, size, sigma)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	ca := clamp01(c.A)
	for i, v := range a {
		alpha := clamp01(v) * ca
		img.Pix[4*i] = unit8(c.R * alpha)
		img.Pix[4*i+1] = unit8(c.G * alpha)
		img.Pix[4*i+2] = unit8(c.B * alpha)
		img.Pix[4*i+3] = unit8(alpha)
	}
	return img
}

// unit8 maps [0, 1] to a rounded byte so faint halo tails survive.
func unit8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
