package synth

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

type WaveType int

const (
	WaveSine WaveType = iota
	WaveSaw
	WaveTriangle
)

func waveAt(w WaveType, phase float64) float64 {
	switch w {
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// tone is a sustained oscillator whose frequency and gain can be retargeted
// while it plays. Gain slews toward its target to avoid zipper noise.
type tone struct {
	wave    WaveType
	rate    beep.SampleRate
	phase   float64
	freq    float64
	gain    float64
	target  float64
	slew    float64
	lfoRate float64
	lfoAmp  float64
	t       float64
	stopped bool
}

func newTone(wave WaveType, rate beep.SampleRate, v Voice) *tone {
	return &tone{
		wave:   wave,
		rate:   rate,
		freq:   v.Freq,
		gain:   v.Gain,
		target: v.Gain,
		slew:   1 / float64(rate.N(20*time.Millisecond)),
	}
}

func (o *tone) set(v Voice) {
	o.freq = v.Freq
	o.target = v.Gain
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if o.stopped {
		return 0, false
	}
	dt := 1 / float64(o.rate)
	for i := range samples {
		switch {
		case o.gain < o.target:
			o.gain = math.Min(o.target, o.gain+o.slew)
		case o.gain > o.target:
			o.gain = math.Max(o.target, o.gain-o.slew)
		}
		g := o.gain
		if o.lfoAmp != 0 {
			g += math.Sin(2*math.Pi*o.lfoRate*o.t) * o.lfoAmp
		}
		val := waveAt(o.wave, o.phase) * g
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq * dt
		o.phase -= math.Floor(o.phase)
		o.t += dt
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// sweep glides frequency and gain exponentially and then holds the end
// values. Callers bound its length with beep.Take.
type sweep struct {
	s     Sweep
	rate  beep.SampleRate
	phase float64
	pos   int
	total int
}

func newSweep(s Sweep, rate beep.SampleRate) *sweep {
	return &sweep{s: s, rate: rate, total: max(rate.N(s.Duration), 1)}
}

func expRamp(from, to, t float64) float64 {
	if from <= 0 || to <= 0 {
		return from + (to-from)*t
	}
	return from * math.Pow(to/from, t)
}

func (w *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := math.Min(float64(w.pos)/float64(w.total), 1)
		freq := expRamp(w.s.FromFreq, w.s.ToFreq, t)
		val := math.Sin(2*math.Pi*w.phase) * expRamp(w.s.FromGain, w.s.ToGain, t)
		samples[i][0] = val
		samples[i][1] = val

		w.phase += freq / float64(w.rate)
		w.phase -= math.Floor(w.phase)
		w.pos++
	}
	return len(samples), true
}

func (w *sweep) Err() error { return nil }
