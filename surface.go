package heartfield

import "math"

// Surface tracks the drawing surface geometry: logical size, the capped
// device pixel ratio, and the resulting device pixel size. Every successful
// Resize bumps the generation so caches built for an older geometry can tell
// they are stale.
type Surface struct {
	// DPRCap bounds the device pixel ratio. Zero or negative disables the cap.
	DPRCap float64
	// Origin is the client-space position of the surface's top-left corner.
	Origin Vec2

	width, height    float64
	scale            float64
	deviceW, deviceH int
	gen              uint64
}

// Resize records a new logical size and device pixel ratio. A non-positive
// device ratio is treated as 1. A non-positive logical size leaves the
// surface untouched and returns false.
func (s *Surface) Resize(width, height, deviceScale float64) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	s.scale = s.capScale(deviceScale)
	s.width = width
	s.height = height
	s.deviceW = int(math.Floor(width * s.scale))
	s.deviceH = int(math.Floor(height * s.scale))
	s.gen++
	return true
}

func (s *Surface) capScale(deviceScale float64) float64 {
	if deviceScale <= 0 || math.IsNaN(deviceScale) {
		deviceScale = 1
	}
	if s.DPRCap > 0 && deviceScale > s.DPRCap {
		return s.DPRCap
	}
	return deviceScale
}

// Valid reports whether the surface has been given a usable size.
func (s *Surface) Valid() bool { return s.gen > 0 }

// Width returns the logical width.
func (s *Surface) Width() float64 { return s.width }

// Height returns the logical height.
func (s *Surface) Height() float64 { return s.height }

// Scale returns the capped device pixel ratio, or 1 before the first resize.
func (s *Surface) Scale() float64 {
	if s.scale <= 0 {
		return 1
	}
	return s.scale
}

// DeviceWidth returns the width in device pixels.
func (s *Surface) DeviceWidth() int { return s.deviceW }

// DeviceHeight returns the height in device pixels.
func (s *Surface) DeviceHeight() int { return s.deviceH }

// Generation returns a counter incremented by every successful Resize.
func (s *Surface) Generation() uint64 { return s.gen }

// Bounds returns the surface rectangle in logical coordinates.
func (s *Surface) Bounds() Rect {
	return Rect{Width: s.width, Height: s.height}
}

// ClientToLocal translates client coordinates into surface-local ones.
func (s *Surface) ClientToLocal(x, y float64) (float64, float64) {
	return x - s.Origin.X, y - s.Origin.Y
}
