package component

import "github.com/go-gl/mathgl/mgl64"

// Camera is the perspective pose used to project the scene.
type Camera struct {
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
	FOV      float64
	Near     float64
	Far      float64
}

var CameraComponent = NewComponent[Camera]()
