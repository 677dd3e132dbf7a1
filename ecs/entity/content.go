package entity

import (
	"fmt"

	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
	"github.com/milk9111/spacezoom/procgen"
)

const (
	contentDiscSpin = 0.015
	nebulaSpin      = 0.0001
	nebulaSwayRate  = 0.1
	nebulaSwayAmp   = 0.2
)

// NewContent mirrors one procedural record into the world. Black holes take
// two entities, everything else one. Every entity carries the record's
// Content marker and a deep-space tag.
func NewContent(w *ecs.World, rec procgen.Record, clouds *procgen.CloudCache) ([]ecs.Entity, error) {
	var (
		out []ecs.Entity
		err error
	)
	switch rec.Category {
	case procgen.CategoryGalaxy:
		var e ecs.Entity
		e, err = NewGalaxy(w, rec.Position, clouds.Cloud(rec.Scale), true)
		out = []ecs.Entity{e}
	case procgen.CategoryNebula:
		var e ecs.Entity
		e, err = newDeepBody(w, &component.Renderable{
			Shape:    component.ShapeGlow,
			Position: rec.Position,
			Radius:   rec.Size,
			Color:    rec.Color,
			Opacity:  rec.Opacity,
			Scale:    1,
		}, &component.Spin{Axis: component.SpinYaw, Rate: nebulaSpin})
		if err == nil {
			err = ecs.Add(w, e, component.SwayComponent.Kind(), &component.Sway{Rate: nebulaSwayRate, Amp: nebulaSwayAmp})
		}
		out = []ecs.Entity{e}
	case procgen.CategoryPlanet:
		var e ecs.Entity
		e, err = newDeepBody(w, &component.Renderable{
			Shape:    component.ShapeSphere,
			Position: rec.Position,
			Radius:   rec.Size,
			Color:    rec.Color,
			Opacity:  rec.Opacity,
			Emissive: rec.Emissive,
			Scale:    1,
		}, &component.Spin{Axis: component.SpinYaw, Rate: rec.Spin})
		out = []ecs.Entity{e}
	case procgen.CategoryBlackHole:
		out, err = newBlackHole(w, rec.Position, rec.Size, rec.Color, rec.Emissive, rec.Opacity, contentDiscSpin)
	default:
		return nil, fmt.Errorf("content: unknown category %q", rec.Category)
	}
	if err != nil {
		return nil, fmt.Errorf("content %s/%d: %w", rec.Category, rec.Index, err)
	}
	for _, e := range out {
		if err := ecs.Add(w, e, component.ContentComponent.Kind(), &component.Content{Category: rec.Category, Index: rec.Index}); err != nil {
			return nil, fmt.Errorf("content %s/%d: add marker: %w", rec.Category, rec.Index, err)
		}
	}
	return out, nil
}

func newDeepBody(w *ecs.World, r *component.Renderable, spin *component.Spin) (ecs.Entity, error) {
	e, err := newBody(w, r, spin)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.DeepSpaceTagComponent.Kind(), &component.DeepSpaceTag{}); err != nil {
		return 0, fmt.Errorf("add deep-space tag: %w", err)
	}
	return e, nil
}
