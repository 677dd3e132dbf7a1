package synth

import "math"

// Voice is the target frequency and gain of a sustained oscillator.
type Voice struct {
	Freq float64
	Gain float64
}

// AmbientState is the sustained bed for one frame.
type AmbientState struct {
	Intensity float64
	Ambient   Voice
	Drone     Voice
}

// Intensity maps zoom magnitude onto [0,1].
func Intensity(p Params, zoom float64) float64 {
	if p.IntensitySpan <= 0 {
		return 0
	}
	return math.Min(math.Abs(zoom)/p.IntensitySpan, 1)
}

// Ambient derives the bed from the zoom level. The ambient pitch wobbles
// with zoom only while auto is set; otherwise prevFreq is kept, or the base
// pitch when prevFreq is zero.
func Ambient(p Params, zoom float64, auto bool, prevFreq float64) AmbientState {
	i := Intensity(p, zoom)
	freq := prevFreq
	if freq == 0 {
		freq = p.AmbientFreq
	}
	if auto {
		freq = p.AmbientFreq + math.Sin(zoom*p.WobbleRate)*p.WobbleDepth
	}
	return AmbientState{
		Intensity: i,
		Ambient:   Voice{Freq: freq, Gain: p.AmbientGain + i*p.AmbientRange},
		Drone:     Voice{Freq: p.DroneFreq, Gain: p.DroneGain + i*p.DroneRange},
	}
}

// PulseState reports whether the rhythmic pulse plays at zoom and which
// bucket it is keyed on. The pulse restarts whenever the pair changes.
func PulseState(p Params, zoom float64) (active bool, bucket int) {
	if p.PulseThreshold <= 0 || zoom < p.PulseThreshold {
		return false, 0
	}
	return true, int(math.Floor(zoom / p.PulseThreshold))
}
