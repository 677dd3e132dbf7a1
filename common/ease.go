package common

import "math"

// Ease maps normalized time in [0,1] to normalized progress.
type Ease func(t float64) float64

func Linear(t float64) float64 {
	return t
}

// EaseOutCubic decelerates toward the end.
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	return 1 - math.Pow(1-t, 3)
}

func EaseInOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseByName resolves a scene-file easing name. Unknown names fall back to
// linear.
func EaseByName(name string) Ease {
	switch name {
	case "out_cubic", "ease_out":
		return EaseOutCubic
	case "in_out_cubic", "ease_in_out":
		return EaseInOutCubic
	default:
		return Linear
	}
}
