package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/spacezoom/ecs/component"
)

func startCamera() component.Camera {
	return component.Camera{Position: mgl64.Vec3{0, 0, 8}, FOV: 75}
}

func TestProjectCenter(t *testing.T) {
	pr := NewProjector(startCamera(), 1280, 720)
	x, y, dist, ok := pr.Project(mgl64.Vec3{})
	if !ok {
		t.Fatal("origin should be visible")
	}
	if math.Abs(x-640) > 1e-6 || math.Abs(y-360) > 1e-6 {
		t.Fatalf("origin projected to (%v,%v)", x, y)
	}
	if math.Abs(dist-8) > 1e-9 {
		t.Fatalf("dist=%v", dist)
	}
}

func TestProjectAxes(t *testing.T) {
	pr := NewProjector(startCamera(), 1280, 720)
	x, _, _, _ := pr.Project(mgl64.Vec3{1, 0, 0})
	_, y, _, _ := pr.Project(mgl64.Vec3{0, 1, 0})
	if x <= 640 {
		t.Fatalf("+x should land right of center, got %v", x)
	}
	if y >= 360 {
		t.Fatalf("+y should land above center, got %v", y)
	}
}

func TestBehindCameraRejected(t *testing.T) {
	pr := NewProjector(startCamera(), 1280, 720)
	if _, _, _, ok := pr.Project(mgl64.Vec3{0, 0, 20}); ok {
		t.Fatal("point behind the camera should not project")
	}
}

func TestScreenRadiusMatchesProjection(t *testing.T) {
	pr := NewProjector(startCamera(), 1280, 720)
	_, yTop, _, _ := pr.Project(mgl64.Vec3{0, 2, 0})
	r := pr.ScreenRadius(2, 8)
	if math.Abs((360-yTop)-r) > 1e-6 {
		t.Fatalf("screen radius %v vs projected %v", r, 360-yTop)
	}
}

func TestWiderFOVShrinks(t *testing.T) {
	narrow := NewProjector(startCamera(), 1280, 720)
	cam := startCamera()
	cam.FOV = 120
	wide := NewProjector(cam, 1280, 720)
	if wide.ScreenRadius(1, 10) >= narrow.ScreenRadius(1, 10) {
		t.Fatal("wider field of view should shrink objects")
	}
}

func TestDegenerateLookAt(t *testing.T) {
	cam := component.Camera{Position: mgl64.Vec3{0, 10, 0}, LookAt: mgl64.Vec3{}, FOV: 75}
	pr := NewProjector(cam, 100, 100)
	x, y, _, ok := pr.Project(mgl64.Vec3{})
	if !ok || math.Abs(x-50) > 1e-6 || math.Abs(y-50) > 1e-6 {
		t.Fatalf("looking straight down should still center the target: (%v,%v,%v)", x, y, ok)
	}
}

func TestFog(t *testing.T) {
	tests := []struct {
		dist, want float64
	}{
		{10, 1},
		{30, 1},
		{75, 0.5},
		{120, 0},
		{500, 0},
	}
	for _, tc := range tests {
		if got := Fog(tc.dist, 30, 120); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("Fog(%v)=%v want %v", tc.dist, got, tc.want)
		}
	}
}
