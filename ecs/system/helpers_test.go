package system

import (
	"math/rand"
	"testing"

	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
	"github.com/milk9111/spacezoom/ecs/entity"
	"github.com/milk9111/spacezoom/prefabs"
	"github.com/milk9111/spacezoom/procgen"
)

// eventLog records every event it sees. Put it last in a scheduler.
type eventLog struct {
	events []ecs.Event
}

func (l *eventLog) Update(w *ecs.World) {
	w.Events().Each(func(evt ecs.Event) {
		l.events = append(l.events, evt)
	})
}

func (l *eventLog) count(typ string) int {
	n := 0
	for _, evt := range l.events {
		if evt.Type == typ {
			n++
		}
	}
	return n
}

func (l *eventLog) cues(kind ecs.CueKind) int {
	n := 0
	for _, evt := range l.events {
		if cue, ok := evt.Data.(ecs.Cue); ok && evt.Type == ecs.EventCue && cue.Kind == kind {
			n++
		}
	}
	return n
}

func (l *eventLog) reset() {
	l.events = nil
}

type testScene struct {
	world  *ecs.World
	camera ecs.Entity
	spec   *prefabs.SceneSpec
}

func newTestScene(t *testing.T) *testScene {
	t.Helper()
	spec, err := prefabs.LoadSceneSpec()
	if err != nil {
		t.Fatalf("load scene spec: %v", err)
	}
	w := ecs.NewWorld()
	cam, err := entity.NewCamera(w, spec)
	if err != nil {
		t.Fatalf("new camera: %v", err)
	}
	if _, err := entity.NewSceneState(w, spec); err != nil {
		t.Fatalf("new scene state: %v", err)
	}
	return &testScene{world: w, camera: cam, spec: spec}
}

func (s *testScene) flight(t *testing.T) *component.Flight {
	t.Helper()
	f, ok := ecs.Get(s.world, s.camera, component.FlightComponent.Kind())
	if !ok {
		t.Fatal("camera has no flight")
	}
	return f
}

func (s *testScene) cam(t *testing.T) *component.Camera {
	t.Helper()
	c, ok := ecs.Get(s.world, s.camera, component.CameraComponent.Kind())
	if !ok {
		t.Fatal("camera has no camera component")
	}
	return c
}

func (s *testScene) input(t *testing.T) *component.Input {
	t.Helper()
	in, ok := ecs.Get(s.world, s.camera, component.InputComponent.Kind())
	if !ok {
		t.Fatal("camera has no input")
	}
	return in
}

func (s *testScene) tween(t *testing.T) *component.CameraTween {
	t.Helper()
	tw, ok := ecs.Get(s.world, s.camera, component.CameraTweenComponent.Kind())
	if !ok {
		t.Fatal("camera has no tween")
	}
	return tw
}

func (s *testScene) orbit(t *testing.T) *component.Orbit {
	t.Helper()
	o, ok := ecs.Get(s.world, s.camera, component.OrbitComponent.Kind())
	if !ok {
		t.Fatal("camera has no orbit")
	}
	return o
}

func (s *testScene) contentSystem(t *testing.T) *ContentSystem {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	clouds, err := procgen.NewCloudCache(8, 50, rng)
	if err != nil {
		t.Fatalf("new cloud cache: %v", err)
	}
	return NewContentSystem(procgen.NewSet(entity.ContentRules(s.spec), rng), clouds, nil)
}

func step(w *ecs.World, sched *ecs.Scheduler, frames int) {
	for i := 0; i < frames; i++ {
		sched.Update(w)
	}
}

func contentCounts(w *ecs.World) map[procgen.Category]int {
	out := map[procgen.Category]int{}
	ecs.ForEach(w, component.ContentComponent.Kind(), func(_ ecs.Entity, c *component.Content) {
		out[c.Category]++
	})
	return out
}
