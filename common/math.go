package common

import "math"

const (
	// BaseWidth and BaseHeight are the viewport used before the host reports
	// the real window size.
	BaseWidth  = 1280
	BaseHeight = 720
)

// Clamp keeps v inside [lo, hi]. When the range is inverted hi wins, so a
// sprite larger than the viewport pins to the far edge.
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(lo, v), hi)
}
