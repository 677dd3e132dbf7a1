package system

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/spacezoom/common"
	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
	"github.com/milk9111/spacezoom/logging"
)

// FlightSystem runs the zoom journey state machine on the camera entity.
// It owns the zoom level, the flight mode and the deep-space edge, and
// during auto flight integrates the camera toward the zoom-derived target.
type FlightSystem struct {
	log *slog.Logger
}

func NewFlightSystem(logger *slog.Logger) *FlightSystem {
	return &FlightSystem{log: logging.For(logger, "flight")}
}

func (s *FlightSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	e, flight, ok := ecs.First(w, component.FlightComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		return
	}
	tween, _ := ecs.Get(w, e, component.CameraTweenComponent.Kind())
	input, _ := ecs.Get(w, e, component.InputComponent.Kind())
	events := w.Events()

	if input != nil {
		if input.Trigger {
			s.trigger(events, flight, tween)
		}
		if input.Cancel {
			s.cancel(events, flight, cam, tween)
		}
		input.Trigger = false
		input.Cancel = false
	}

	t := flight.Tuning
	switch flight.Mode {
	case component.FlightAuto:
		step := t.AutoAdvance
		if t.Advance == component.AdvancePerSecond {
			step *= DefaultTPS * frameDT(w)
		}
		flight.Zoom += step
		events.Push(ecs.Event{Type: ecs.EventZoomChanged, Data: ecs.ZoomChanged{Zoom: flight.Zoom}})
		integrate(cam, t, flight.Zoom)
	default:
		if input != nil && input.WheelDelta != 0 && !input.WheelModifier {
			flight.Zoom += input.WheelDelta * t.WheelScale
			events.Push(ecs.Event{Type: ecs.EventZoomChanged, Data: ecs.ZoomChanged{Zoom: flight.Zoom}})
			if flight.Zoom > t.Threshold && tween != nil {
				tween.StartMove(
					cam.Position, mgl64.Vec3{0, 0, t.TargetDistance(flight.Zoom)},
					cam.FOV, t.TargetFOV(flight.Zoom),
					t.ScrollTween.Duration, common.EaseByName(t.ScrollTween.Ease),
				)
			}
		}
	}

	if input != nil {
		input.WheelDelta = 0
		input.WheelModifier = false
	}

	switch flight.Gate.Observe(flight.Zoom) {
	case component.CrossEnter:
		flight.DeepSpace = true
		flight.ManualEnabled = false
		s.log.Info("entered deep space", "zoom", flight.Zoom)
		events.Push(ecs.Event{Type: ecs.EventDeepSpaceEntered, Data: ecs.ZoomChanged{Zoom: flight.Zoom}})
	case component.CrossExit:
		flight.DeepSpace = false
		flight.ManualEnabled = flight.Mode == component.FlightOrbit
		if tween != nil {
			tween.StartFOV(cam.FOV, t.BaseFOV, t.ExitTween.Duration, common.EaseByName(t.ExitTween.Ease))
		}
		s.log.Info("left deep space", "zoom", flight.Zoom)
		events.Push(ecs.Event{Type: ecs.EventDeepSpaceExited, Data: ecs.ZoomChanged{Zoom: flight.Zoom}})
	}
}

func (s *FlightSystem) trigger(events *ecs.EventQueue, flight *component.Flight, tween *component.CameraTween) {
	if flight.Mode == component.FlightAuto {
		return
	}
	flight.Mode = component.FlightAuto
	flight.ManualEnabled = false
	tween.Cancel()
	s.log.Info("journey started", "zoom", flight.Zoom)
	events.Push(ecs.Event{Type: ecs.EventCue, Data: ecs.Cue{Kind: ecs.CueStart}})
	events.Push(ecs.Event{Type: ecs.EventModeChanged, Data: ecs.ModeChanged{Auto: true, Zoom: flight.Zoom}})
}

func (s *FlightSystem) cancel(events *ecs.EventQueue, flight *component.Flight, cam *component.Camera, tween *component.CameraTween) {
	if flight.Mode == component.FlightOrbit {
		return
	}
	t := flight.Tuning
	flight.Mode = component.FlightOrbit
	flight.ManualEnabled = true
	tween.StartFOV(cam.FOV, t.BaseFOV, t.ExitTween.Duration, common.EaseByName(t.ExitTween.Ease))
	s.log.Info("journey stopped", "zoom", flight.Zoom)
	events.Push(ecs.Event{Type: ecs.EventCue, Data: ecs.Cue{Kind: ecs.CueClick}})
	events.Push(ecs.Event{Type: ecs.EventModeChanged, Data: ecs.ModeChanged{Auto: false, Zoom: flight.Zoom}})
}

// integrate moves the camera a fixed fraction toward the zoom target and
// aims it LookAhead units further down the axis.
func integrate(cam *component.Camera, t component.FlightTuning, zoom float64) {
	dist := t.TargetDistance(zoom)
	target := mgl64.Vec3{0, 0, dist}
	cam.Position = cam.Position.Add(target.Sub(cam.Position).Mul(t.Smoothing))
	cam.FOV = common.Approach(cam.FOV, t.TargetFOV(zoom), t.Smoothing)
	cam.LookAt = mgl64.Vec3{0, 0, dist - t.LookAhead}
}
