package procgen

import (
	"image/color"
	"math"
	"math/rand"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/colornames"
)

const (
	CloudPoints  = 5000
	cloudArms    = 3
	cloudReach   = 3
	cloudScatter = 0.3
)

// GalaxyCloud builds a three-arm spiral of points in the galaxy's local
// frame, tinted from magenta at the core to cyan at the rim.
func GalaxyCloud(scale float64, n int, rng *rand.Rand) []Point {
	if n <= 0 || rng == nil || scale <= 0 {
		return nil
	}
	reach := cloudReach * scale
	out := make([]Point, n)
	for i := range out {
		radius := rng.Float64() * reach
		spin := radius * 5
		branch := float64(i%cloudArms) / cloudArms * math.Pi * 2

		out[i] = Point{
			Position: mgl64.Vec3{
				math.Cos(branch+spin)*radius + scatter(rng),
				scatter(rng),
				math.Sin(branch+spin)*radius + scatter(rng),
			},
			Color: mixRGBA(colornames.Magenta, colornames.Cyan, radius/reach),
			Size:  1,
		}
	}
	return out
}

func scatter(rng *rand.Rand) float64 {
	v := math.Pow(rng.Float64(), 3) * cloudScatter
	if rng.Float64() < 0.5 {
		return -v
	}
	return v
}

func mixRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}

// CloudCache keeps generated particle clouds keyed by galaxy scale so that
// repeated regenerations of deep-space galaxies do not rebuild the points.
type CloudCache struct {
	mu    sync.Mutex
	rng   *rand.Rand
	n     int
	cache *lru.Cache[float64, []Point]
}

func NewCloudCache(size, points int, rng *rand.Rand) (*CloudCache, error) {
	cache, err := lru.New[float64, []Point](size)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &CloudCache{rng: rng, n: points, cache: cache}, nil
}

// Cloud returns the cached cloud for scale, generating it on a miss. Scales
// are quantized to two decimals.
func (c *CloudCache) Cloud(scale float64) []Point {
	if c == nil {
		return nil
	}
	key := math.Round(scale*100) / 100
	c.mu.Lock()
	defer c.mu.Unlock()
	if pts, ok := c.cache.Get(key); ok {
		return pts
	}
	pts := GalaxyCloud(key, c.n, c.rng)
	c.cache.Add(key, pts)
	return pts
}

func (c *CloudCache) Len() int {
	if c == nil {
		return 0
	}
	return c.cache.Len()
}
