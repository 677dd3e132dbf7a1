package entity

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
	"github.com/milk9111/spacezoom/prefabs"
	"github.com/milk9111/spacezoom/procgen"
)

const (
	planetSpin     = 0.0003
	cloudLayerSpin = 0.0004
	moonSpin       = 0.001
	moonBobRate    = 0.5
	moonBobAmp     = 1
	starSpin       = 0.00005
	galaxySpin     = 0.0005
	starPointSize  = 0.15
	cloudPointSize = 0.05
	fixedDiscSpin  = 0.01
	wormholeSpin   = 0.05
	wormholePulse  = 5
	wormholeAmp    = 0.2
	wormholeTube   = 3
)

var (
	oceanColor = color.RGBA{R: 0x1a, G: 0x4d, B: 0x6b, A: 0xff}
	landColors = []color.RGBA{
		{R: 0x2d, G: 0x5a, B: 0x3d, A: 0xff},
		{R: 0x3a, G: 0x7a, B: 0x4f, A: 0xff},
	}
	cloudColors = []color.RGBA{{R: 0x80, G: 0x80, B: 0x80, A: 0x80}}

	moonColor    = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	craterColors = []color.RGBA{
		{R: 0x66, G: 0x66, B: 0x66, A: 0xff},
		{R: 0x44, G: 0x44, B: 0x44, A: 0xff},
	}
	black = color.RGBA{A: 0xff}
)

// BuildScene creates every entity that exists for the whole session: the
// scene settings and HUD singleton, the near field and the fixed deep-space
// landmarks.
func BuildScene(w *ecs.World, spec *prefabs.SceneSpec, rng *rand.Rand, clouds *procgen.CloudCache) error {
	if spec == nil {
		return fmt.Errorf("scene: nil scene spec")
	}
	if _, err := NewSceneState(w, spec); err != nil {
		return err
	}
	if _, err := NewPlanet(w, spec, rng); err != nil {
		return err
	}
	if _, err := NewMoon(w, spec, rng); err != nil {
		return err
	}
	starCount := spec.Content.StarCount
	if starCount <= 0 {
		starCount = procgen.StarCount
	}
	if _, err := NewStarfield(w, procgen.Starfield(starCount, rng)); err != nil {
		return err
	}
	for _, g := range procgen.NearGalaxies() {
		if _, err := NewGalaxy(w, g.Position, clouds.Cloud(g.Scale), false); err != nil {
			return err
		}
	}
	if _, err := NewFixedBlackHole(w, spec.Content.BlackHole); err != nil {
		return err
	}
	if _, err := NewWormhole(w, spec.Content.Wormhole); err != nil {
		return err
	}
	return nil
}

// NewSceneState adds the scene settings and HUD singleton.
func NewSceneState(w *ecs.World, spec *prefabs.SceneSpec) (ecs.Entity, error) {
	s := spec.Scene
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SceneComponent.Kind(), &component.Scene{
		RotationSpeed:    s.RotationSpeed,
		MaxRotationSpeed: s.MaxRotationSpeed,
		PlanetRadius:     s.PlanetRadius,
	}); err != nil {
		return 0, fmt.Errorf("scene: add settings: %w", err)
	}
	if err := ecs.Add(w, e, component.HUDComponent.Kind(), &component.HUD{RotationSpeed: s.RotationSpeed}); err != nil {
		return 0, fmt.Errorf("scene: add hud: %w", err)
	}
	return e, nil
}

// NewPlanet adds the home planet and its cloud layer.
func NewPlanet(w *ecs.World, spec *prefabs.SceneSpec, rng *rand.Rand) (ecs.Entity, error) {
	radius := spec.Scene.PlanetRadius
	planet, err := newBody(w, &component.Renderable{
		Shape:     component.ShapeSphere,
		Radius:    radius,
		Color:     oceanColor,
		Opacity:   1,
		Points:    procgen.SurfaceSpots(500, landColors, 0.8, 0.8, rng),
		PointSize: radius * 0.12,
		Scale:     1,
	}, &component.Spin{Axis: component.SpinYaw, Rate: planetSpin, Scaled: true})
	if err != nil {
		return 0, fmt.Errorf("planet: %w", err)
	}
	if err := ecs.Add(w, planet, component.PlanetTagComponent.Kind(), &component.PlanetTag{}); err != nil {
		return 0, fmt.Errorf("planet: add tag: %w", err)
	}

	if _, err := newBody(w, &component.Renderable{
		Shape:     component.ShapeSphere,
		Radius:    radius * 1.005,
		Points:    procgen.SurfaceSpots(300, cloudColors, 0.6, 1.2, rng),
		PointSize: radius * 0.1,
		Scale:     1,
	}, &component.Spin{Axis: component.SpinYaw, Rate: cloudLayerSpin, Scaled: true}); err != nil {
		return 0, fmt.Errorf("planet clouds: %w", err)
	}
	return planet, nil
}

func NewMoon(w *ecs.World, spec *prefabs.SceneSpec, rng *rand.Rand) (ecs.Entity, error) {
	m := spec.Scene.Moon
	moon, err := newBody(w, &component.Renderable{
		Shape:     component.ShapeSphere,
		Position:  mgl64.Vec3{m.OrbitRadius, 0, 0},
		Radius:    m.Radius,
		Color:     moonColor,
		Opacity:   1,
		Points:    procgen.SurfaceSpots(120, craterColors, 0.5, 1, rng),
		PointSize: m.Radius * 0.15,
		Scale:     1,
	}, &component.Spin{Axis: component.SpinYaw, Rate: moonSpin})
	if err != nil {
		return 0, fmt.Errorf("moon: %w", err)
	}
	if err := ecs.Add(w, moon, component.MoonTagComponent.Kind(), &component.MoonTag{}); err != nil {
		return 0, fmt.Errorf("moon: add tag: %w", err)
	}
	if err := ecs.Add(w, moon, component.MoonOrbitComponent.Kind(), &component.MoonOrbit{
		Radius:  m.OrbitRadius,
		Speed:   m.Speed,
		BobRate: moonBobRate,
		BobAmp:  moonBobAmp,
	}); err != nil {
		return 0, fmt.Errorf("moon: add orbit: %w", err)
	}
	return moon, nil
}

func NewStarfield(w *ecs.World, stars []procgen.Point) (ecs.Entity, error) {
	e, err := newBody(w, &component.Renderable{
		Shape:     component.ShapePoints,
		Opacity:   0.9,
		Points:    stars,
		PointSize: starPointSize,
		Scale:     1,
	}, &component.Spin{Axis: component.SpinYaw, Rate: starSpin})
	if err != nil {
		return 0, fmt.Errorf("starfield: %w", err)
	}
	return e, nil
}

// NewGalaxy adds a spinning particle cloud at pos. Deep galaxies are only
// drawn in deep space.
func NewGalaxy(w *ecs.World, pos mgl64.Vec3, cloud []procgen.Point, deep bool) (ecs.Entity, error) {
	e, err := newBody(w, &component.Renderable{
		Shape:     component.ShapePoints,
		Position:  pos,
		Opacity:   0.8,
		Points:    cloud,
		PointSize: cloudPointSize,
		Scale:     1,
	}, &component.Spin{Axis: component.SpinYaw, Rate: galaxySpin})
	if err != nil {
		return 0, fmt.Errorf("galaxy: %w", err)
	}
	if deep {
		if err := ecs.Add(w, e, component.DeepSpaceTagComponent.Kind(), &component.DeepSpaceTag{}); err != nil {
			return 0, fmt.Errorf("galaxy: add deep-space tag: %w", err)
		}
	}
	return e, nil
}

// NewFixedBlackHole adds the landmark black hole far down the flight axis.
func NewFixedBlackHole(w *ecs.World, spec prefabs.FixedBlackHoleSpec) ([]ecs.Entity, error) {
	pos := mgl64.Vec3{spec.Position.X, spec.Position.Y, spec.Position.Z}
	size := spec.Size
	if size <= 0 {
		size = 1
	}
	orange, _ := procgen.AccretionColors()
	disc := spec.Color.RGBAOr(orange)
	out, err := newBlackHole(w, pos, size, disc, 2, 0.8, fixedDiscSpin)
	if err != nil {
		return nil, fmt.Errorf("fixed black hole: %w", err)
	}
	return out, nil
}

// NewWormhole adds the pulsing ring around the flight axis.
func NewWormhole(w *ecs.World, spec prefabs.WormholeSpec) (ecs.Entity, error) {
	radius := spec.Radius
	if radius <= 0 {
		radius = 15
	}
	e, err := newBody(w, &component.Renderable{
		Shape:   component.ShapeRing,
		Radius:  radius,
		Width:   wormholeTube,
		Color:   spec.Color.RGBAOr(color.RGBA{G: 0xff, B: 0xff, A: 0xff}),
		Opacity: 0.3,
		Scale:   1,
	}, &component.Spin{Axis: component.SpinRoll, Rate: wormholeSpin})
	if err != nil {
		return 0, fmt.Errorf("wormhole: %w", err)
	}
	if err := ecs.Add(w, e, component.ScalePulseComponent.Kind(), &component.ScalePulse{Freq: wormholePulse, Amp: wormholeAmp}); err != nil {
		return 0, fmt.Errorf("wormhole: add pulse: %w", err)
	}
	if err := ecs.Add(w, e, component.DeepSpaceTagComponent.Kind(), &component.DeepSpaceTag{}); err != nil {
		return 0, fmt.Errorf("wormhole: add deep-space tag: %w", err)
	}
	return e, nil
}

// newBlackHole adds a black core and its accretion disc, both drawn only in
// deep space.
func newBlackHole(w *ecs.World, pos mgl64.Vec3, size float64, disc color.RGBA, emissive, opacity, spin float64) ([]ecs.Entity, error) {
	core, err := newBody(w, &component.Renderable{
		Shape:    component.ShapeSphere,
		Position: pos,
		Radius:   size,
		Color:    black,
		Opacity:  1,
		Scale:    1,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	ring, err := newBody(w, &component.Renderable{
		Shape:    component.ShapeRing,
		Position: pos,
		Radius:   size * 3,
		Width:    size * 0.5,
		Color:    disc,
		Opacity:  opacity,
		Emissive: emissive,
		Scale:    1,
		Tilt:     math.Pi / 2,
	}, &component.Spin{Axis: component.SpinRoll, Rate: spin})
	if err != nil {
		return nil, fmt.Errorf("accretion disc: %w", err)
	}
	for _, e := range []ecs.Entity{core, ring} {
		if err := ecs.Add(w, e, component.DeepSpaceTagComponent.Kind(), &component.DeepSpaceTag{}); err != nil {
			return nil, fmt.Errorf("add deep-space tag: %w", err)
		}
	}
	return []ecs.Entity{core, ring}, nil
}

func newBody(w *ecs.World, r *component.Renderable, spin *component.Spin) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.RenderableComponent.Kind(), r); err != nil {
		return 0, fmt.Errorf("add renderable: %w", err)
	}
	if spin != nil {
		if err := ecs.Add(w, e, component.SpinComponent.Kind(), spin); err != nil {
			return 0, fmt.Errorf("add spin: %w", err)
		}
	}
	return e, nil
}
