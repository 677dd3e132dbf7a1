package system

import (
	"log/slog"

	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
	"github.com/milk9111/spacezoom/logging"
	"github.com/milk9111/spacezoom/synth"
)

// AudioSink is the part of the synth engine the audio system drives.
type AudioSink interface {
	SetAmbient(s synth.AmbientState)
	RestartPulse()
	StopPulse()
	PlayWhoosh()
	PlayCue(c synth.Cue)
}

// AudioSystem maps the flight state onto the ambient bed every frame and
// turns flight events into one-shot sounds. The pulse voice is only touched
// when its (active, bucket) pair changes.
type AudioSystem struct {
	sink   AudioSink
	params synth.Params
	log    *slog.Logger

	lastFreq    float64
	primed      bool
	pulseActive bool
	pulseBucket int
}

func NewAudioSystem(sink AudioSink, params synth.Params, logger *slog.Logger) *AudioSystem {
	return &AudioSystem{sink: sink, params: params, log: logging.For(logger, "audio")}
}

// SetParams swaps the mapping parameters and re-keys the pulse on the next
// frame.
func (s *AudioSystem) SetParams(p synth.Params) {
	if s == nil {
		return
	}
	s.params = p
	s.primed = false
}

func (s *AudioSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.sink == nil {
		return
	}
	_, flight, ok := ecs.First(w, component.FlightComponent.Kind())
	if !ok {
		return
	}

	w.Events().Each(func(evt ecs.Event) {
		switch evt.Type {
		case ecs.EventModeChanged:
			if mc, ok := evt.Data.(ecs.ModeChanged); ok && mc.Auto {
				s.sink.PlayWhoosh()
			}
		case ecs.EventCue:
			if cue, ok := evt.Data.(ecs.Cue); ok {
				s.sink.PlayCue(synth.Cue(cue.Kind))
			}
		}
	})

	auto := flight.Mode == component.FlightAuto
	st := synth.Ambient(s.params, flight.Zoom, auto, s.lastFreq)
	s.lastFreq = st.Ambient.Freq
	s.sink.SetAmbient(st)

	active, bucket := synth.PulseState(s.params, flight.Zoom)
	if s.primed && active == s.pulseActive && (!active || bucket == s.pulseBucket) {
		return
	}
	if active {
		s.log.Debug("pulse restarted", "bucket", bucket)
		s.sink.RestartPulse()
	} else if s.pulseActive || !s.primed {
		s.sink.StopPulse()
	}
	s.primed = true
	s.pulseActive = active
	s.pulseBucket = bucket
}
