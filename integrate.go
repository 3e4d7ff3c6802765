package heartfield

import "math"

// ForceConfig holds the constants of the per-tick force field.
type ForceConfig struct {
	// Spring is the return-to-target coefficient applied to revealed particles.
	Spring float64
	// PulseStiffen scales the spring by (1 + pulse·PulseStiffen).
	PulseStiffen float64
	// Radius is the pointer repulsion radius in logical pixels.
	Radius float64
	// Force is the numerator of the inverse-square repulsion.
	Force float64
	// MinDistance clamps the repulsion distance away from zero.
	MinDistance float64
	// Friction multiplies velocity every tick. Must be below 1 for the
	// field to settle.
	Friction float64
}

// RepulsionAt returns the repulsion magnitude at distance d from the pointer,
// ignoring the radius cutoff.
func (c ForceConfig) RepulsionAt(d float64) float64 {
	d = math.Max(c.MinDistance, d)
	if d <= 0 {
		return 0
	}
	return c.Force / (d * d)
}

// Integrate advances every particle by one tick. For each particle the
// spring is applied first (only once revealed), then pointer repulsion (only
// while the pointer is inside the surface and within the radius), then
// friction damps the combined impulse, and finally the position moves by the
// velocity.
func Integrate(ps []Particle, ptr Pointer, revealT, pulse float64, cfg ForceConfig) {
	spring := cfg.Spring * (1 + pulse*cfg.PulseStiffen)
	r2 := cfg.Radius * cfg.Radius

	for i := range ps {
		p := &ps[i]

		if p.Order <= revealT {
			p.VX += (p.TX - p.X) * spring
			p.VY += (p.TY - p.Y) * spring
		}

		if ptr.Inside {
			dx := p.X - ptr.X
			dy := p.Y - ptr.Y
			d2 := dx*dx + dy*dy
			if d2 < r2 {
				dist := math.Max(cfg.MinDistance, math.Sqrt(d2))
				if dist > 0 {
					f := cfg.Force / (dist * dist)
					p.VX += dx / dist * f
					p.VY += dy / dist * f
				}
			}
		}

		p.VX *= cfg.Friction
		p.VY *= cfg.Friction
		p.X += p.VX
		p.Y += p.VY
	}
}
