package entity

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
	"github.com/milk9111/spacezoom/procgen"
)

func newClouds(t *testing.T) *procgen.CloudCache {
	t.Helper()
	clouds, err := procgen.NewCloudCache(4, 20, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("new cloud cache: %v", err)
	}
	return clouds
}

func count[T any](w *ecs.World, kind component.ComponentKind[T]) int {
	n := 0
	ecs.ForEach(w, kind, func(ecs.Entity, *T) { n++ })
	return n
}

func TestBuildScene(t *testing.T) {
	spec := loadSpec(t)
	spec.Content.StarCount = 200
	w := ecs.NewWorld()
	if err := BuildScene(w, spec, rand.New(rand.NewSource(1)), newClouds(t)); err != nil {
		t.Fatalf("build scene: %v", err)
	}

	// planet + cloud layer, moon, stars, near galaxies, black hole core and
	// disc, wormhole
	want := 2 + 1 + 1 + len(procgen.NearGalaxies()) + 2 + 1
	if got := count(w, component.RenderableComponent.Kind()); got != want {
		t.Fatalf("expected %d renderables, got %d", want, got)
	}
	if got := count(w, component.DeepSpaceTagComponent.Kind()); got != 3 {
		t.Fatalf("expected 3 deep-space landmarks, got %d", got)
	}
	if got := count(w, component.SceneComponent.Kind()); got != 1 {
		t.Fatalf("expected one scene singleton, got %d", got)
	}

	pe, ok := w.First(component.PlanetTagComponent.Kind())
	if !ok {
		t.Fatal("expected a planet")
	}
	r, _ := ecs.Get(w, pe, component.RenderableComponent.Kind())
	if r.Radius != spec.Scene.PlanetRadius || r.Position != (mgl64.Vec3{}) {
		t.Fatalf("expected the planet at the origin with radius %v, got %+v", spec.Scene.PlanetRadius, r.Position)
	}

	me, ok := w.First(component.MoonTagComponent.Kind())
	if !ok {
		t.Fatal("expected a moon")
	}
	orbit, ok := ecs.Get(w, me, component.MoonOrbitComponent.Kind())
	if !ok || orbit.Radius != spec.Scene.Moon.OrbitRadius {
		t.Fatalf("expected moon orbit radius %v", spec.Scene.Moon.OrbitRadius)
	}

	stars := 0
	ecs.ForEach(w, component.RenderableComponent.Kind(), func(_ ecs.Entity, r *component.Renderable) {
		if r.Shape == component.ShapePoints && len(r.Points) == 200 {
			stars++
		}
	})
	if stars != 1 {
		t.Fatalf("expected one starfield with 200 points, got %d", stars)
	}
}

func TestBuildSceneNilSpec(t *testing.T) {
	if err := BuildScene(ecs.NewWorld(), nil, rand.New(rand.NewSource(1)), newClouds(t)); err == nil {
		t.Fatal("expected an error for a nil spec")
	}
}

func TestNewContent(t *testing.T) {
	rules := procgen.DefaultRules()
	tests := []struct {
		category procgen.Category
		entities int
		shape    component.Shape
	}{
		{procgen.CategoryGalaxy, 1, component.ShapePoints},
		{procgen.CategoryNebula, 1, component.ShapeGlow},
		{procgen.CategoryPlanet, 1, component.ShapeSphere},
		{procgen.CategoryBlackHole, 2, component.ShapeSphere},
	}
	for _, tc := range tests {
		t.Run(string(tc.category), func(t *testing.T) {
			w := ecs.NewWorld()
			recs := procgen.Generate(rules[tc.category], 1, rand.New(rand.NewSource(5)))
			out, err := NewContent(w, recs[0], newClouds(t))
			if err != nil {
				t.Fatalf("new content: %v", err)
			}
			if len(out) != tc.entities {
				t.Fatalf("expected %d entities, got %d", tc.entities, len(out))
			}
			for _, e := range out {
				c, ok := ecs.Get(w, e, component.ContentComponent.Kind())
				if !ok || c.Category != tc.category || c.Index != 0 {
					t.Fatalf("expected a content marker on every entity")
				}
				if !ecs.Has(w, e, component.DeepSpaceTagComponent.Kind()) {
					t.Fatalf("expected content hidden outside deep space")
				}
			}
			r, _ := ecs.Get(w, out[0], component.RenderableComponent.Kind())
			if r.Shape != tc.shape || r.Position != recs[0].Position {
				t.Fatalf("unexpected renderable %+v", *r)
			}
		})
	}
}

func TestNewContentUnknownCategory(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewContent(w, procgen.Record{Category: "comet"}, newClouds(t)); err == nil {
		t.Fatal("expected an error for an unknown category")
	}
}

func TestNewCamera(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()
	e, err := NewCamera(w, spec)
	if err != nil {
		t.Fatalf("new camera: %v", err)
	}
	cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
	if cam.Position[2] != 8 || cam.FOV != 75 {
		t.Fatalf("unexpected camera %+v", *cam)
	}
	orbit, _ := ecs.Get(w, e, component.OrbitComponent.Kind())
	if orbit.Space == nil || orbit.Body == nil || orbit.MinDistance != 3 || orbit.MaxDistance != 20 {
		t.Fatalf("unexpected orbit %+v", *orbit)
	}
	flight, _ := ecs.Get(w, e, component.FlightComponent.Kind())
	if flight.Mode != component.FlightOrbit || !flight.ManualEnabled {
		t.Fatalf("expected the camera to start in orbit mode, got %+v", *flight)
	}
}
