package entity

import (
	"math"
	"time"

	"github.com/milk9111/spacezoom/ecs/component"
	"github.com/milk9111/spacezoom/prefabs"
	"github.com/milk9111/spacezoom/procgen"
	"github.com/milk9111/spacezoom/synth"
)

// FlightTuning converts the flight section of a scene spec. Zero fields
// fall back to the stock tuning.
func FlightTuning(spec *prefabs.SceneSpec) component.FlightTuning {
	t := component.DefaultFlightTuning()
	if spec == nil {
		return t
	}
	f := spec.Flight
	setIf(&t.BaseDistance, f.BaseDistance)
	setIf(&t.DistanceGain, f.DistanceGain)
	setIf(&t.BaseFOV, f.BaseFOV)
	setIf(&t.FOVGain, f.FOVGain)
	setIf(&t.FOVCap, f.FOVCap)
	setIf(&t.MinFOV, f.MinFOV)
	setIf(&t.Threshold, f.DeepSpaceThreshold)
	setIf(&t.AutoAdvance, f.AutoAdvance)
	setIf(&t.WheelScale, f.WheelScale)
	setIf(&t.WheelPixelsPerNotch, f.WheelPixelsPerNotch)
	setIf(&t.Smoothing, f.Smoothing)
	setIf(&t.LookAhead, f.LookAhead)
	t.Advance = component.ParseAdvanceMode(f.AdvanceMode)
	if f.ScrollTween.Duration > 0 {
		t.ScrollTween = component.TweenTuning{Duration: f.ScrollTween.Duration, Ease: f.ScrollTween.Ease}
	}
	if f.ExitTween.Duration > 0 {
		t.ExitTween = component.TweenTuning{Duration: f.ExitTween.Duration, Ease: f.ExitTween.Ease}
	}
	return t
}

// ContentRules converts the spawner table. Categories missing from the scene
// spec keep their stock rule.
func ContentRules(spec *prefabs.SceneSpec) map[procgen.Category]procgen.Rule {
	rules := procgen.DefaultRules()
	if spec == nil {
		return rules
	}
	for name, sp := range spec.Content.Spawners {
		c := procgen.Category(name)
		if _, ok := rules[c]; !ok {
			continue
		}
		rules[c] = procgen.Rule{
			Category:     c,
			BucketSize:   sp.Bucket,
			Base:         sp.Base,
			AngleStepDeg: sp.AngleStep,
			DepthStart:   sp.Depth.Start,
			DepthStep:    sp.Depth.Step,
			DepthJitter:  sp.Depth.Jitter,
			RadiusMin:    sp.Radius.Min,
			RadiusJitter: sp.Radius.Jitter,
			HeightSpread: sp.HeightSpread,
		}
	}
	return rules
}

// AudioParams converts the audio section. An absent section yields the stock
// sound.
func AudioParams(spec *prefabs.SceneSpec) synth.Params {
	p := synth.DefaultParams()
	if spec == nil {
		return p
	}
	a := spec.Audio
	setIf(&p.AmbientFreq, a.Ambient.Freq)
	setIf(&p.AmbientGain, a.Ambient.Gain)
	setIf(&p.AmbientRange, a.Ambient.Range)
	setIf(&p.WobbleDepth, a.Ambient.WobbleDepth)
	setIf(&p.WobbleRate, a.Ambient.WobbleRate)
	setIf(&p.DroneFreq, a.Drone.Freq)
	setIf(&p.DroneGain, a.Drone.Gain)
	setIf(&p.DroneRange, a.Drone.Range)
	setIf(&p.IntensitySpan, a.IntensitySpan)
	setIf(&p.PulseThreshold, a.Pulse.Threshold)
	setIf(&p.PulseFreq, a.Pulse.Freq)
	setIf(&p.PulseGain, a.Pulse.Gain)
	setIf(&p.PulseLFORate, a.Pulse.LFORate)
	setIf(&p.PulseLFODepth, a.Pulse.LFODepth)
	setIf(&p.MasterVolume, a.Volume)
	if a.Whoosh.Duration > 0 {
		p.Whoosh = sweepFromSpec(a.Whoosh)
	}
	for name, c := range a.Cues {
		p.Cues[synth.Cue(name)] = sweepFromSpec(c)
	}
	if a.CueLife > 0 {
		p.CueLife = seconds(a.CueLife)
	}
	return p
}

func sweepFromSpec(s prefabs.SweepSpec) synth.Sweep {
	return synth.Sweep{
		FromFreq: s.FromFreq,
		ToFreq:   s.ToFreq,
		FromGain: s.FromGain,
		ToGain:   s.ToGain,
		Duration: seconds(s.Duration),
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

func setIf(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
