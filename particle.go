package heartfield

import (
	"math"
	"math/rand/v2"
)

// Particle is one point of the heart outline. Position and velocity are
// simulation state; target, order and size are fixed when the field is built
// and only change on the next rebuild.
type Particle struct {
	X, Y   float64 // current position in logical pixels
	VX, VY float64 // velocity in logical pixels per tick
	TX, TY float64 // resting point on (or near) the curve
	// Order is the fractional reveal position in [0, 1). A particle starts
	// springing toward its target once the reveal sweep passes it.
	Order float64
	// Size is the per-particle visual scale factor.
	Size float64
}

// FieldConfig controls how the particle field is laid out along the curve.
type FieldConfig struct {
	// Count is the number of particles. Zero or negative builds an empty field.
	Count int
	// CurveScale multiplies the minor surface dimension to give the curve scale.
	CurveScale float64
	// Center is the curve center as a fraction of the surface size.
	Center Vec2
	// Jitter is the total width of the uniform perturbation added to each
	// base curve parameter, to avoid visible banding.
	Jitter float64
	// Thickness multiplies the minor surface dimension to give the maximum
	// perpendicular offset from the curve.
	Thickness float64
	// SpawnSpread is the width of the square around the center in which
	// particles start.
	SpawnSpread float64
	// Size is the range of per-particle visual sizes.
	Size Range
}

// Geometry returns the curve scale and center for a surface of the given
// logical size.
func (c FieldConfig) Geometry(width, height float64) (scale float64, center Vec2) {
	scale = math.Min(width, height) * c.CurveScale
	center = Vec2{X: width * c.Center.X, Y: height * c.Center.Y}
	return scale, center
}

// BuildField lays out cfg.Count particles along the heart curve for a surface
// of the given logical size. Particle i sits at base parameter 2π·i/Count and
// gets Order i/Count, so orders are strictly increasing in index order.
// Randomness only perturbs offsets, spawn positions and sizes. A nil rng uses
// the global source.
func BuildField(width, height float64, cfg FieldConfig, rng *rand.Rand) []Particle {
	if cfg.Count <= 0 || width <= 0 || height <= 0 {
		return nil
	}

	minor := math.Min(width, height)
	scale, center := cfg.Geometry(width, height)
	n := float64(cfg.Count)

	ps := make([]Particle, cfg.Count)
	for i := range ps {
		t := float64(i)/n*2*math.Pi + (randFloat(rng)-0.5)*cfg.Jitter
		p := HeartPoint(t, scale, center.X, center.Y)

		// Offset along the normal of the parameter direction.
		angle := t + math.Pi/2
		r := (randFloat(rng)*2 - 1) * cfg.Thickness * minor

		ps[i] = Particle{
			TX:    p.X + math.Cos(angle)*r,
			TY:    p.Y + math.Sin(angle)*r,
			X:     center.X + (randFloat(rng)-0.5)*cfg.SpawnSpread,
			Y:     center.Y + (randFloat(rng)-0.5)*cfg.SpawnSpread,
			Order: float64(i) / n,
			Size:  cfg.Size.RandomFrom(rng),
		}
	}
	return ps
}
