package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/spacezoom/ecs/component"
)

const (
	defaultNear = 0.1
	defaultFar  = 1000
)

var worldUp = mgl64.Vec3{0, 1, 0}

// Projector maps world space onto a screen of W×H pixels for one camera
// pose.
type Projector struct {
	W, H     float64
	Eye      mgl64.Vec3
	viewProj mgl64.Mat4
	focal    float64
}

func NewProjector(cam component.Camera, w, h float64) Projector {
	near, far := cam.Near, cam.Far
	if near <= 0 {
		near = defaultNear
	}
	if far <= near {
		far = defaultFar
	}
	fov := cam.FOV
	if fov <= 0 || fov >= 180 {
		fov = 75
	}
	aspect := 1.0
	if h > 0 {
		aspect = w / h
	}

	up := worldUp
	dir := cam.LookAt.Sub(cam.Position)
	if dir.Len() < 1e-9 {
		dir = mgl64.Vec3{0, 0, -1}
	}
	if math.Abs(dir.Normalize().Dot(up)) > 0.999 {
		up = mgl64.Vec3{0, 0, -1}
	}

	view := mgl64.LookAtV(cam.Position, cam.Position.Add(dir), up)
	proj := mgl64.Perspective(mgl64.DegToRad(fov), aspect, near, far)
	return Projector{
		W:        w,
		H:        h,
		Eye:      cam.Position,
		viewProj: proj.Mul4(view),
		focal:    h / 2 / math.Tan(mgl64.DegToRad(fov)/2),
	}
}

// Project returns the screen position of p and its distance from the eye.
// ok is false when p is behind the camera or outside the depth range.
func (pr Projector) Project(p mgl64.Vec3) (x, y, dist float64, ok bool) {
	clip := pr.viewProj.Mul4x1(p.Vec4(1))
	if clip.W() <= 1e-9 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, 0, false
	}
	x = (ndc.X() + 1) / 2 * pr.W
	y = (1 - ndc.Y()) / 2 * pr.H
	return x, y, p.Sub(pr.Eye).Len(), true
}

// ScreenRadius is the projected radius in pixels of a sphere of radius r at
// distance dist.
func (pr Projector) ScreenRadius(r, dist float64) float64 {
	if dist <= 1e-9 {
		return 0
	}
	return r * pr.focal / dist
}

// Fog is the linear fog visibility in [0,1] for dist.
func Fog(dist, near, far float64) float64 {
	if far <= near {
		return 1
	}
	return 1 - math.Max(0, math.Min(1, (dist-near)/(far-near)))
}
