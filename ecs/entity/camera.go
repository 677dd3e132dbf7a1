package entity

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/spacezoom/common"
	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
	"github.com/milk9111/spacezoom/prefabs"
)

const (
	defaultNear = 0.1
	defaultFar  = 1000
)

// NewCamera builds the single camera entity that carries the flight state
// machine, the orbit control, the input intents and the frame clock.
func NewCamera(w *ecs.World, spec *prefabs.SceneSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("camera: nil scene spec")
	}
	tuning := FlightTuning(spec)

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	cs := spec.Camera
	pos := mgl64.Vec3{cs.Position.X, cs.Position.Y, cs.Position.Z}
	if pos == (mgl64.Vec3{}) {
		pos = mgl64.Vec3{0, 0, tuning.BaseDistance}
	}
	fov := cs.FOV
	if fov == 0 {
		fov = tuning.BaseFOV
	}
	near, far := cs.Near, cs.Far
	if near <= 0 {
		near = defaultNear
	}
	if far <= near {
		far = defaultFar
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Position: pos,
		FOV:      fov,
		Near:     near,
		Far:      far,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	flight := component.NewFlight(tuning)
	if err := ecs.Add(w, camera, component.FlightComponent.Kind(), &flight); err != nil {
		return 0, fmt.Errorf("camera: add flight: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraTweenComponent.Kind(), &component.CameraTween{}); err != nil {
		return 0, fmt.Errorf("camera: add tween: %w", err)
	}

	orb := spec.Orbit
	space, body := NewOrbitBody(orb.Damping)
	if err := ecs.Add(w, camera, component.OrbitComponent.Kind(), &component.Orbit{
		MinDistance: orb.MinDistance,
		MaxDistance: orb.MaxDistance,
		RotateSpeed: orb.RotateSpeed,
		ZoomSpeed:   orb.ZoomSpeed,
		Damping:     orb.Damping,
		Glide:       orb.Glide,
		Space:       space,
		Body:        body,
	}); err != nil {
		return 0, fmt.Errorf("camera: add orbit: %w", err)
	}

	if err := ecs.Add(w, camera, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("camera: add input: %w", err)
	}
	if err := ecs.Add(w, camera, component.ClockComponent.Kind(), &component.Clock{}); err != nil {
		return 0, fmt.Errorf("camera: add clock: %w", err)
	}

	return camera, nil
}

// NewOrbitBody creates the damped space and body that carry orbit momentum.
// damping is the fraction of angular velocity lost per tick.
func NewOrbitBody(damping float64) (*cp.Space, *cp.Body) {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	space.SetDamping(math.Pow(common.Clamp(1-damping, 0, 1), common.TPS))
	body := space.AddBody(cp.NewBody(1, cp.INFINITY))
	return space, body
}
