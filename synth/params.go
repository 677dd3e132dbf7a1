package synth

import "time"

// Params holds the tuning of every voice. The zero value is silent; use
// DefaultParams for the stock sound.
type Params struct {
	AmbientFreq    float64
	AmbientGain    float64
	AmbientRange   float64
	WobbleDepth    float64
	WobbleRate     float64
	DroneFreq      float64
	DroneGain      float64
	DroneRange     float64
	IntensitySpan  float64
	PulseThreshold float64
	PulseFreq      float64
	PulseGain      float64
	PulseLFORate   float64
	PulseLFODepth  float64
	Whoosh         Sweep
	Cues           map[Cue]Sweep
	CueLife        time.Duration
	MasterVolume   float64
}

// Sweep is an exponential glide of frequency and gain over Duration.
type Sweep struct {
	FromFreq float64
	ToFreq   float64
	FromGain float64
	ToGain   float64
	Duration time.Duration
}

// Cue names a short UI sound.
type Cue string

const (
	CueStart Cue = "start"
	CueClick Cue = "click"
	CueHover Cue = "hover"
)

func DefaultParams() Params {
	return Params{
		AmbientFreq:    60,
		AmbientGain:    0.03,
		AmbientRange:   0.05,
		WobbleDepth:    20,
		WobbleRate:     0.1,
		DroneFreq:      40,
		DroneGain:      0.02,
		DroneRange:     0.08,
		IntensitySpan:  100,
		PulseThreshold: 40,
		PulseFreq:      30,
		PulseGain:      0.04,
		PulseLFORate:   0.5,
		PulseLFODepth:  0.03,
		Whoosh: Sweep{
			FromFreq: 200, ToFreq: 50,
			FromGain: 0.1, ToGain: 0.01,
			Duration: 2 * time.Second,
		},
		Cues: map[Cue]Sweep{
			CueStart: {FromFreq: 300, ToFreq: 800, FromGain: 0.3, ToGain: 0.01, Duration: 300 * time.Millisecond},
			CueClick: {FromFreq: 800, ToFreq: 400, FromGain: 0.2, ToGain: 0.01, Duration: 100 * time.Millisecond},
			CueHover: {FromFreq: 600, ToFreq: 600, FromGain: 0.05, ToGain: 0.01, Duration: 50 * time.Millisecond},
		},
		CueLife:      300 * time.Millisecond,
		MasterVolume: 1,
	}
}
