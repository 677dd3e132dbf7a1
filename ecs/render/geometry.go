package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Orient returns the rotation applied to a body's local points: yaw about
// the vertical axis, then roll in its own plane, then tilt about x.
func Orient(yaw, roll, tilt float64) mgl64.Mat3 {
	return mgl64.Rotate3DX(tilt).Mul3(mgl64.Rotate3DZ(roll)).Mul3(mgl64.Rotate3DY(yaw))
}

// RingPoints samples n points of a circle of the given radius around
// center. The circle starts in the xy plane facing +z and is oriented by
// roll and tilt.
func RingPoints(center mgl64.Vec3, radius, roll, tilt float64, n int) []mgl64.Vec3 {
	if n < 3 {
		n = 3
	}
	rot := Orient(0, roll, tilt)
	out := make([]mgl64.Vec3, n)
	for i := range out {
		a := float64(i) / float64(n) * 2 * math.Pi
		local := mgl64.Vec3{math.Cos(a) * radius, math.Sin(a) * radius, 0}
		out[i] = center.Add(rot.Mul3x1(local))
	}
	return out
}

// FacesEye reports whether the surface point at offset from a sphere's
// center lies on the hemisphere visible from eye.
func FacesEye(center, offset, eye mgl64.Vec3) bool {
	return offset.Dot(eye.Sub(center)) > 0
}
