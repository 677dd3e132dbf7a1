package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/spacezoom/common"
	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
)

const (
	polarEpsilon  = 1e-6
	dollyBase     = 0.95
	dollyPerPixel = 0.01
)

// OrbitSystem is the manual camera control: drag rotates around the target,
// the wheel dollies, and rotation glides to a stop through a damped cp body.
// It only touches the camera while the flight allows manual control.
type OrbitSystem struct {
	tps float64
}

func NewOrbitSystem(tps int) *OrbitSystem {
	if tps <= 0 {
		tps = DefaultTPS
	}
	return &OrbitSystem{tps: float64(tps)}
}

func (s *OrbitSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	e, orbit, ok := ecs.First(w, component.OrbitComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		return
	}
	flight, _ := ecs.Get(w, e, component.FlightComponent.Kind())
	input, _ := ecs.Get(w, e, component.InputComponent.Kind())

	manual := flight == nil || flight.ManualEnabled
	if !manual {
		orbit.Synced = false
		if orbit.Body != nil {
			orbit.Body.SetVelocity(0, 0)
		}
		if input != nil {
			input.DragDX, input.DragDY = 0, 0
		}
		return
	}

	if !orbit.Synced {
		syncOrbit(orbit, cam.Position)
	}

	h := float64(common.BaseHeight)
	if input != nil {
		if (input.DragDX != 0 || input.DragDY != 0) && orbit.Body != nil {
			dTheta := -2 * math.Pi * input.DragDX / h * orbit.RotateSpeed
			dPhi := -2 * math.Pi * input.DragDY / h * orbit.RotateSpeed
			if orbit.Damping > 0 {
				// The damped body spends a delta over many ticks; scale the
				// impulse so the total rotation equals the drag.
				k := orbit.Damping * s.tps
				v := orbit.Body.Velocity()
				orbit.Body.SetVelocity(v.X+dTheta*k, v.Y+dPhi*k)
			} else {
				p := orbit.Body.Position()
				orbit.Body.SetPosition(cp.Vector{X: p.X + dTheta, Y: p.Y + dPhi})
			}
		}
		input.DragDX, input.DragDY = 0, 0

		if input.WheelDelta != 0 {
			scale := math.Pow(dollyBase, orbit.ZoomSpeed*math.Abs(input.WheelDelta)*dollyPerPixel)
			if input.WheelDelta < 0 {
				orbit.Radius *= scale
			} else {
				orbit.Radius /= scale
			}
			orbit.Radius = common.Clamp(orbit.Radius, orbit.MinDistance, orbit.MaxDistance)
		}
	}

	if orbit.Space != nil && orbit.Body != nil {
		orbit.Space.Step(1 / s.tps)
		p := orbit.Body.Position()
		polar := common.Clamp(p.Y, polarEpsilon, math.Pi-polarEpsilon)
		if polar != p.Y {
			orbit.Body.SetVelocity(orbit.Body.Velocity().X, 0)
		}
		orbit.Body.SetPosition(cp.Vector{X: p.X, Y: polar})
		orbit.Azimuth, orbit.Polar = p.X, polar
	}

	switch {
	case orbit.MinDistance > 0 && orbit.Radius < orbit.MinDistance:
		orbit.Radius = common.Approach(orbit.Radius, orbit.MinDistance, orbit.Glide)
	case orbit.MaxDistance > 0 && orbit.Radius > orbit.MaxDistance:
		orbit.Radius = common.Approach(orbit.Radius, orbit.MaxDistance, orbit.Glide)
	}

	cam.Position = orbit.Target.Add(sphericalOffset(orbit.Radius, orbit.Polar, orbit.Azimuth))
	cam.LookAt = orbit.Target
}

// syncOrbit rebuilds the spherical pose from the camera position.
func syncOrbit(orbit *component.Orbit, pos mgl64.Vec3) {
	off := pos.Sub(orbit.Target)
	r := off.Len()
	if r < polarEpsilon {
		off, r = mgl64.Vec3{0, 0, 1}, 1
	}
	orbit.Radius = r
	orbit.Azimuth = math.Atan2(off.X(), off.Z())
	orbit.Polar = math.Acos(common.Clamp(off.Y()/r, -1, 1))
	orbit.Polar = common.Clamp(orbit.Polar, polarEpsilon, math.Pi-polarEpsilon)
	if orbit.Body != nil {
		orbit.Body.SetPosition(cp.Vector{X: orbit.Azimuth, Y: orbit.Polar})
		orbit.Body.SetVelocity(0, 0)
	}
	orbit.Synced = true
}

func sphericalOffset(r, polar, azimuth float64) mgl64.Vec3 {
	sinP := math.Sin(polar)
	return mgl64.Vec3{
		r * sinP * math.Sin(azimuth),
		r * math.Cos(polar),
		r * sinP * math.Cos(azimuth),
	}
}
