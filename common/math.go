package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed simulation rate.
	TPS = 60
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Approach moves current toward target by the fraction k of the remaining gap.
func Approach(current, target, k float64) float64 {
	return current + (target-current)*k
}
