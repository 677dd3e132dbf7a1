package system

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
	"github.com/milk9111/spacezoom/ecs/render"
)

const (
	ringSegments = 96
	maxQuads     = 16000
	minPointPx   = 1
)

// RenderSystem projects every Renderable through the camera and paints them
// back to front. Deep-space entities are skipped until the camera is in deep
// space, and everything fades linearly into the black fog.
type RenderSystem struct {
	FogNear float64
	FogFar  float64

	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewRenderSystem(fogNear, fogFar float64) *RenderSystem {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &RenderSystem{
		FogNear: fogNear,
		FogFar:  fogFar,
		white:   img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

type drawItem struct {
	r    *component.Renderable
	dist float64
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	camEntity, cam, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	deep := false
	if flight, ok := ecs.Get(w, camEntity, component.FlightComponent.Kind()); ok {
		deep = flight.DeepSpace
	}

	b := screen.Bounds()
	pr := render.NewProjector(*cam, float64(b.Dx()), float64(b.Dy()))

	var items []drawItem
	ecs.ForEach(w, component.RenderableComponent.Kind(), func(e ecs.Entity, rend *component.Renderable) {
		if !deep && ecs.Has(w, e, component.DeepSpaceTagComponent.Kind()) {
			return
		}
		items = append(items, drawItem{r: rend, dist: rend.Position.Sub(pr.Eye).Len()})
	})
	sort.SliceStable(items, func(i, j int) bool { return items[i].dist > items[j].dist })

	for _, it := range items {
		if it.r.Shape != component.ShapePoints {
			// Keep queued particles behind whatever is drawn next.
			r.flush(screen)
		}
		switch it.r.Shape {
		case component.ShapeSphere:
			r.drawSphere(screen, pr, it.r)
		case component.ShapeRing:
			r.drawRing(screen, pr, it.r)
		case component.ShapeGlow:
			r.drawGlow(screen, pr, it.r)
		case component.ShapePoints:
			r.drawPoints(screen, pr, it.r)
		}
	}
	r.flush(screen)
}

func (r *RenderSystem) fog(dist float64) float64 {
	return render.Fog(dist, r.FogNear, r.FogFar)
}

func (r *RenderSystem) drawSphere(screen *ebiten.Image, pr render.Projector, rend *component.Renderable) {
	x, y, dist, ok := pr.Project(rend.Position)
	if !ok {
		return
	}
	fog := r.fog(dist)
	scale := scaleOr1(rend.Scale)
	radius := pr.ScreenRadius(rend.Radius*scale, dist)
	if rend.Emissive > 0 {
		glow := scaleColor(rend.Color, fog*rend.Opacity*math.Min(rend.Emissive, 2)*0.1)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius*1.4), glow, true)
	}
	if rend.Opacity > 0 {
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), scaleColor(rend.Color, fog*rend.Opacity), true)
	}
	if len(rend.Points) == 0 {
		return
	}
	rot := render.Orient(rend.Yaw, rend.Roll, 0)
	for _, p := range rend.Points {
		off := rot.Mul3x1(p.Position).Mul(rend.Radius * scale)
		if !render.FacesEye(rend.Position, off, pr.Eye) {
			continue
		}
		r.addPoint(screen, pr, rend.Position.Add(off), rend.PointSize*p.Size, p.Color, 1)
	}
	r.flushWith(screen, ebiten.BlendSourceOver)
}

func (r *RenderSystem) drawRing(screen *ebiten.Image, pr render.Projector, rend *component.Renderable) {
	_, _, dist, ok := pr.Project(rend.Position)
	if !ok {
		return
	}
	scale := scaleOr1(rend.Scale)
	clr := scaleColor(rend.Color, r.fog(dist)*rend.Opacity)
	pts := render.RingPoints(rend.Position, rend.Radius*scale, rend.Roll, rend.Tilt, ringSegments)
	width := float32(math.Max(1, pr.ScreenRadius(rend.Width*scale, dist)))
	for i := range pts {
		x0, y0, _, ok0 := pr.Project(pts[i])
		x1, y1, _, ok1 := pr.Project(pts[(i+1)%len(pts)])
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
	}
}

func (r *RenderSystem) drawGlow(screen *ebiten.Image, pr render.Projector, rend *component.Renderable) {
	x, y, dist, ok := pr.Project(rend.Position)
	if !ok {
		return
	}
	fog := r.fog(dist)
	radius := pr.ScreenRadius(rend.Radius*scaleOr1(rend.Scale), dist)
	// Squash with the sway tilt.
	inner := radius * (0.6 + 0.1*math.Sin(rend.Tilt))
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), scaleColor(rend.Color, fog*rend.Opacity*0.6), true)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(inner), scaleColor(rend.Color, fog*rend.Opacity), true)
}

func (r *RenderSystem) drawPoints(screen *ebiten.Image, pr render.Projector, rend *component.Renderable) {
	rot := render.Orient(rend.Yaw, 0, rend.Tilt)
	scale := scaleOr1(rend.Scale)
	for _, p := range rend.Points {
		world := rend.Position.Add(rot.Mul3x1(p.Position.Mul(scale)))
		r.addPoint(screen, pr, world, rend.PointSize*p.Size, p.Color, rend.Opacity)
	}
}

// addPoint queues a screen-aligned quad for a world-space particle.
func (r *RenderSystem) addPoint(screen *ebiten.Image, pr render.Projector, world mgl64.Vec3, size float64, c color.RGBA, opacity float64) {
	x, y, dist, ok := pr.Project(world)
	if !ok {
		return
	}
	k := opacity * r.fog(dist)
	if k <= 0 {
		return
	}
	half := math.Max(minPointPx, pr.ScreenRadius(size, dist)) / 2
	if len(r.vertices)/4 >= maxQuads {
		r.flush(screen)
	}
	cr, cg, cb, ca := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	kf := float32(k)
	base := uint16(len(r.vertices))
	for _, corner := range [4][2]float64{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX:   float32(x + corner[0]*half),
			DstY:   float32(y + corner[1]*half),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr * kf,
			ColorG: cg * kf,
			ColorB: cb * kf,
			ColorA: ca * kf,
		})
	}
	r.indices = append(r.indices, base, base+1, base+2, base+1, base+3, base+2)
}

// flush draws the queued particles additively.
func (r *RenderSystem) flush(screen *ebiten.Image) {
	r.flushWith(screen, ebiten.BlendLighter)
}

func (r *RenderSystem) flushWith(screen *ebiten.Image, blend ebiten.Blend) {
	if len(r.indices) == 0 {
		return
	}
	screen.DrawTriangles(r.vertices, r.indices, r.white, &ebiten.DrawTrianglesOptions{
		Blend:          blend,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

func scaleColor(c color.RGBA, k float64) color.RGBA {
	k = math.Max(0, math.Min(1, k))
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}

func scaleOr1(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}
