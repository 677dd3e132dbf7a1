package system

import (
	"testing"

	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
)

func TestHUDMirrorsFlight(t *testing.T) {
	tests := []struct {
		name    string
		mode    component.FlightMode
		zoom    float64
		visible bool
		level   int
	}{
		{name: "orbit", mode: component.FlightOrbit, zoom: 3.7, visible: false, level: 3},
		{name: "auto", mode: component.FlightAuto, zoom: 51.9, visible: true, level: 51},
		{name: "negative", mode: component.FlightAuto, zoom: -0.5, visible: true, level: -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestScene(t)
			s.flight(t).Mode = tc.mode
			s.flight(t).Zoom = tc.zoom
			_, scene, _ := ecs.First(s.world, component.SceneComponent.Kind())
			scene.RotationSpeed = 3

			ecs.NewScheduler(NewHUDSystem()).Update(s.world)
			hud := s.hud(t)
			if hud.JourneyVisible != tc.visible || hud.ZoomLevel != tc.level || hud.RotationSpeed != 3 {
				t.Fatalf("unexpected hud %+v", *hud)
			}
		})
	}
}
