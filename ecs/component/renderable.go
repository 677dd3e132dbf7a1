package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/spacezoom/procgen"
)

type Shape int

const (
	ShapeSphere Shape = iota
	ShapeRing
	ShapePoints
	ShapeGlow
)

// Renderable is anything drawn in world space. Points are in the local frame
// and are rotated by Yaw and scaled by Scale before translation. On a sphere
// they are unit-sphere surface spots and the disc is skipped when Opacity is
// zero.
type Renderable struct {
	Shape    Shape
	Position mgl64.Vec3
	Radius   float64
	Width    float64
	Color    color.RGBA
	Opacity  float64
	Emissive float64
	Points   []procgen.Point
	// PointSize is the world size of a unit point. Spheres use it for
	// surface spots.
	PointSize float64
	Scale     float64
	Yaw       float64
	Roll      float64
	// Tilt is the ring inclination toward the viewer in radians.
	Tilt float64
}

var RenderableComponent = NewComponent[Renderable]()
