package system

import (
	"math"

	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
)

// HUDSystem copies what the overlay needs out of the flight and scene state.
type HUDSystem struct{}

func NewHUDSystem() *HUDSystem { return &HUDSystem{} }

func (s *HUDSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	_, hud, ok := ecs.First(w, component.HUDComponent.Kind())
	if !ok {
		return
	}
	if _, flight, ok := ecs.First(w, component.FlightComponent.Kind()); ok {
		hud.JourneyVisible = flight.Mode == component.FlightAuto
		hud.ZoomLevel = int(math.Floor(flight.Zoom))
	}
	if _, scene, ok := ecs.First(w, component.SceneComponent.Kind()); ok {
		hud.RotationSpeed = scene.RotationSpeed
	}
}
