package heartfield

import "math"

// HeartPoint maps the curve parameter t onto the heart outline
//
//	x(t) = 16 sin³t
//	y(t) = 13 cos t − 5 cos 2t − 2 cos 3t − cos 4t
//
// scaled by scale and centered on (cx, cy). Y is inverted so the heart is
// upright on a surface whose Y axis grows downward. t is not range checked;
// callers sample [0, 2π).
func HeartPoint(t, scale, cx, cy float64) Vec2 {
	s := math.Sin(t)
	x := 16 * s * s * s
	y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
	return Vec2{X: cx + x*scale, Y: cy - y*scale}
}
