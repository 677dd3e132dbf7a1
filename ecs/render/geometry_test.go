package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRingPointsRadius(t *testing.T) {
	center := mgl64.Vec3{1, 2, -3}
	pts := RingPoints(center, 4, 0.3, math.Pi/2, 32)
	if len(pts) != 32 {
		t.Fatalf("expected 32 points, got %d", len(pts))
	}
	for i, p := range pts {
		if d := p.Sub(center).Len(); math.Abs(d-4) > 1e-9 {
			t.Fatalf("point %d: expected radius 4, got %v", i, d)
		}
	}
}

func TestRingTilt(t *testing.T) {
	tests := []struct {
		name string
		tilt float64
		axis int
	}{
		{name: "facing the viewer", tilt: 0, axis: 2},
		{name: "edge on", tilt: math.Pi / 2, axis: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range RingPoints(mgl64.Vec3{}, 3, 0, tt.tilt, 16) {
				if math.Abs(p[tt.axis]) > 1e-9 {
					t.Fatalf("expected component %d to be zero, got %v", tt.axis, p)
				}
			}
		})
	}
}

func TestRingPointsMinimumSegments(t *testing.T) {
	if got := len(RingPoints(mgl64.Vec3{}, 1, 0, 0, 1)); got != 3 {
		t.Fatalf("expected 3 points, got %d", got)
	}
}

func TestOrientYaw(t *testing.T) {
	got := Orient(math.Pi/2, 0, 0).Mul3x1(mgl64.Vec3{1, 0, 0})
	want := mgl64.Vec3{0, 0, -1}
	if !got.ApproxEqualThreshold(want, 1e-9) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFacesEye(t *testing.T) {
	eye := mgl64.Vec3{0, 0, 10}
	if !FacesEye(mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, eye) {
		t.Fatal("expected front point to face the eye")
	}
	if FacesEye(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, eye) {
		t.Fatal("expected back point to be hidden")
	}
}
