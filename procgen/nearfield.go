package procgen

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/colornames"
)

// NearGalaxy is one of the fixed galaxies visible from the start.
type NearGalaxy struct {
	Position mgl64.Vec3
	Scale    float64
}

// NearGalaxies returns the eight fixed background galaxies.
func NearGalaxies() []NearGalaxy {
	return []NearGalaxy{
		{Position: mgl64.Vec3{15, 8, -25}, Scale: 0.5},
		{Position: mgl64.Vec3{-20, -5, -30}, Scale: 0.6},
		{Position: mgl64.Vec3{10, -10, -35}, Scale: 0.4},
		{Position: mgl64.Vec3{-15, 12, -28}, Scale: 0.7},
		{Position: mgl64.Vec3{25, 0, -40}, Scale: 0.5},
		{Position: mgl64.Vec3{-10, 15, -32}, Scale: 0.45},
		{Position: mgl64.Vec3{5, -15, -38}, Scale: 0.55},
		{Position: mgl64.Vec3{-25, 8, -42}, Scale: 0.6},
	}
}

// Point is a single colored particle.
type Point struct {
	Position mgl64.Vec3
	Color    color.RGBA
	Size     float64
}

const (
	StarCount     = 15000
	starMinRadius = 50
	starRadiusJit = 200
)

var (
	starBlue = color.RGBA{R: 0x80, G: 0xcc, B: 0xff, A: 0xff}
	starWarm = color.RGBA{R: 0xff, G: 0xcc, B: 0x99, A: 0xff}
)

// Starfield scatters n stars uniformly over directions on a shell between
// radius 50 and 250. About 5% are blue and 5% warm, the rest white.
func Starfield(n int, rng *rand.Rand) []Point {
	if n <= 0 || rng == nil {
		return nil
	}
	out := make([]Point, n)
	for i := range out {
		radius := starMinRadius + rng.Float64()*starRadiusJit
		theta := rng.Float64() * math.Pi * 2
		phi := math.Acos(rng.Float64()*2 - 1)

		c := colornames.White
		switch pick := rng.Float64(); {
		case pick > 0.95:
			c = starBlue
		case pick > 0.9:
			c = starWarm
		}

		out[i] = Point{
			Position: mgl64.Vec3{
				radius * math.Sin(phi) * math.Cos(theta),
				radius * math.Sin(phi) * math.Sin(theta),
				radius * math.Cos(phi),
			},
			Color: c,
			Size:  rng.Float64()*2 + 0.5,
		}
	}
	return out
}

// SurfaceSpots scatters n spots over the unit sphere, each tinted from
// palette and sized in [minSize, minSize+sizeJitter). Spheres draw them on
// their visible hemisphere so spin reads on screen.
func SurfaceSpots(n int, palette []color.RGBA, minSize, sizeJitter float64, rng *rand.Rand) []Point {
	if n <= 0 || rng == nil || len(palette) == 0 {
		return nil
	}
	out := make([]Point, n)
	for i := range out {
		theta := rng.Float64() * math.Pi * 2
		phi := math.Acos(rng.Float64()*2 - 1)
		out[i] = Point{
			Position: mgl64.Vec3{
				math.Sin(phi) * math.Cos(theta),
				math.Cos(phi),
				math.Sin(phi) * math.Sin(theta),
			},
			Color: palette[rng.Intn(len(palette))],
			Size:  minSize + rng.Float64()*sizeJitter,
		}
	}
	return out
}
