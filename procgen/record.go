package procgen

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/colornames"
)

// Record is one generated object. Only the fields relevant to its category
// are set.
type Record struct {
	Category Category
	Index    int
	Position mgl64.Vec3

	// Scale applies to galaxies, Size to the rest.
	Scale    float64
	Size     float64
	Color    color.RGBA
	Opacity  float64
	Emissive float64
	Spin     float64
}

var (
	nebulaColor = color.RGBA{R: 0xff, G: 0x00, B: 0xaa, A: 0xff}

	accretionOrange = color.RGBA{R: 0xff, G: 0x66, B: 0x00, A: 0xff}
	accretionViolet = color.RGBA{R: 0x66, G: 0x00, B: 0xff, A: 0xff}

	PlanetPalette = []color.RGBA{
		{R: 0xff, G: 0x66, B: 0x00, A: 0xff},
		{R: 0x66, G: 0x66, B: 0xff, A: 0xff},
		{R: 0xff, G: 0x00, B: 0x66, A: 0xff},
		{R: 0x00, G: 0xff, B: 0x66, A: 0xff},
		colornames.Yellow,
		colornames.Magenta,
		colornames.Cyan,
	}
)

// AccretionColors are the two disc tints a generated black hole picks from.
func AccretionColors() (color.RGBA, color.RGBA) {
	return accretionOrange, accretionViolet
}

// Generate builds count records for rule using rng.
func Generate(rule Rule, count int, rng *rand.Rand) []Record {
	if count <= 0 || rng == nil {
		return nil
	}
	step := rule.AngleStepDeg * math.Pi / 180
	out := make([]Record, count)
	for i := range out {
		angle := float64(i) * step
		depth := rule.DepthStart + float64(i)*rule.DepthStep - rng.Float64()*rule.DepthJitter
		radius := rule.RadiusMin + rng.Float64()*rule.RadiusJitter
		rec := Record{
			Category: rule.Category,
			Index:    i,
			Position: mgl64.Vec3{
				math.Cos(angle) * radius,
				(rng.Float64() - 0.5) * rule.HeightSpread,
				depth,
			},
		}
		decorate(&rec, rng)
		out[i] = rec
	}
	return out
}

func decorate(rec *Record, rng *rand.Rand) {
	switch rec.Category {
	case CategoryGalaxy:
		rec.Scale = 0.4 + rng.Float64()*0.8
		rec.Opacity = 0.8
	case CategoryNebula:
		rec.Size = 5
		rec.Color = nebulaColor
		rec.Opacity = 0.15
	case CategoryPlanet:
		rec.Size = 0.5 + rng.Float64()*1.5
		rec.Color = PlanetPalette[rng.Intn(len(PlanetPalette))]
		rec.Emissive = 0.2
		rec.Spin = 0.001 + rng.Float64()*0.003
		rec.Opacity = 1
	case CategoryBlackHole:
		rec.Size = 1 + rng.Float64()*2
		rec.Color = accretionOrange
		if rng.Float64() > 0.5 {
			rec.Color = accretionViolet
		}
		rec.Emissive = 2
		rec.Opacity = 0.8
	}
}
