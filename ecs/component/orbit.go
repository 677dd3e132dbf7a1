package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Orbit is the manual camera control around Target. Angular velocity lives
// on Body, a damped cp body whose position encodes (azimuth, polar).
type Orbit struct {
	Target      mgl64.Vec3
	Azimuth     float64
	Polar       float64
	Radius      float64
	MinDistance float64
	MaxDistance float64
	RotateSpeed float64
	ZoomSpeed   float64
	Damping     float64
	Glide       float64
	// Synced is cleared whenever manual control is disabled so the orbit is
	// rebuilt from the camera pose when control returns.
	Synced bool

	Space *cp.Space
	Body  *cp.Body
}

var OrbitComponent = NewComponent[Orbit]()
