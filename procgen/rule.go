package procgen

import (
	"fmt"
	"math"
)

// Category names a family of procedurally generated deep-space objects.
type Category string

const (
	CategoryGalaxy    Category = "galaxy"
	CategoryNebula    Category = "nebula"
	CategoryPlanet    Category = "planet"
	CategoryBlackHole Category = "black_hole"
)

// Categories lists every category in spawn order.
var Categories = []Category{CategoryGalaxy, CategoryNebula, CategoryPlanet, CategoryBlackHole}

// Rule controls how many records a category produces for a zoom level and
// where they are placed. Records spread around the z axis by a fixed angular
// step and recede in depth.
type Rule struct {
	Category     Category
	BucketSize   float64
	Base         int
	AngleStepDeg float64
	DepthStart   float64
	DepthStep    float64
	DepthJitter  float64
	RadiusMin    float64
	RadiusJitter float64
	HeightSpread float64
}

// DefaultRules returns the stock rule per category.
func DefaultRules() map[Category]Rule {
	return map[Category]Rule{
		CategoryGalaxy: {
			Category: CategoryGalaxy, BucketSize: 20, Base: 8, AngleStepDeg: 137.5,
			DepthStart: -50, DepthStep: -30, DepthJitter: 20,
			RadiusMin: 20, RadiusJitter: 30, HeightSpread: 40,
		},
		CategoryNebula: {
			Category: CategoryNebula, BucketSize: 30, Base: 5, AngleStepDeg: 222.5,
			DepthStart: -60, DepthStep: -40, DepthJitter: 25,
			RadiusMin: 15, RadiusJitter: 25, HeightSpread: 30,
		},
		CategoryPlanet: {
			Category: CategoryPlanet, BucketSize: 25, Base: 5, AngleStepDeg: 180,
			DepthStart: -30, DepthStep: -20, DepthJitter: 15,
			RadiusMin: 10, RadiusJitter: 15, HeightSpread: 20,
		},
		CategoryBlackHole: {
			Category: CategoryBlackHole, BucketSize: 40, Base: 2, AngleStepDeg: 137.5,
			DepthStart: -60, DepthStep: -35, DepthJitter: 20,
			RadiusMin: 15, RadiusJitter: 25, HeightSpread: 15,
		},
	}
}

func (r Rule) Validate() error {
	if r.BucketSize <= 0 {
		return fmt.Errorf("procgen: %s: bucket size must be positive, got %v", r.Category, r.BucketSize)
	}
	if r.Base < 1 {
		return fmt.Errorf("procgen: %s: base count must be at least 1, got %d", r.Category, r.Base)
	}
	return nil
}

// BucketIndex is floor(|zoom| / bucket). Negative zoom maps like its
// magnitude.
func (r Rule) BucketIndex(zoom float64) int {
	if r.BucketSize <= 0 {
		return 0
	}
	return int(math.Floor(math.Abs(zoom) / r.BucketSize))
}

// Count is the number of records for zoom. It is never below Base.
func (r Rule) Count(zoom float64) int {
	return r.BucketIndex(zoom) + max(r.Base, 1)
}
