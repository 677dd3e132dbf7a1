package system

import (
	"math"

	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
)

// SpinSystem animates the scene: per-tick spins, the moon orbit, the
// wormhole scale pulse and nebula sway.
type SpinSystem struct{}

func NewSpinSystem() *SpinSystem { return &SpinSystem{} }

func (s *SpinSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	speed := 1.0
	if _, scene, ok := ecs.First(w, component.SceneComponent.Kind()); ok {
		speed = scene.RotationSpeed
	}
	t := elapsed(w)

	ecs.ForEach2(w, component.SpinComponent.Kind(), component.RenderableComponent.Kind(), func(_ ecs.Entity, spin *component.Spin, r *component.Renderable) {
		rate := spin.Rate
		if spin.Scaled {
			rate *= speed
		}
		switch spin.Axis {
		case component.SpinRoll:
			r.Roll = wrapAngle(r.Roll + rate)
		default:
			r.Yaw = wrapAngle(r.Yaw + rate)
		}
	})

	ecs.ForEach2(w, component.MoonOrbitComponent.Kind(), component.RenderableComponent.Kind(), func(_ ecs.Entity, m *component.MoonOrbit, r *component.Renderable) {
		phase := t * m.Speed
		r.Position[0] = math.Cos(phase) * m.Radius
		r.Position[1] = math.Sin(phase*m.BobRate) * m.BobAmp
		r.Position[2] = math.Sin(phase) * m.Radius
	})

	ecs.ForEach2(w, component.ScalePulseComponent.Kind(), component.RenderableComponent.Kind(), func(_ ecs.Entity, p *component.ScalePulse, r *component.Renderable) {
		r.Scale = 1 + math.Sin(t*p.Freq)*p.Amp
	})

	ecs.ForEach2(w, component.SwayComponent.Kind(), component.RenderableComponent.Kind(), func(_ ecs.Entity, sw *component.Sway, r *component.Renderable) {
		r.Tilt = math.Sin(t*sw.Rate) * sw.Amp
	})
}

func wrapAngle(a float64) float64 {
	return math.Mod(a, 2*math.Pi)
}
