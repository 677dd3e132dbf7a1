package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
	"github.com/milk9111/spacezoom/prefabs"
)

func (s *testScene) hud(t *testing.T) *component.HUD {
	t.Helper()
	_, hud, ok := ecs.First(s.world, component.HUDComponent.Kind())
	if !ok {
		t.Fatal("scene has no hud")
	}
	return hud
}

func pushAndRun(w *ecs.World, sched *ecs.Scheduler, evt ecs.Event) {
	w.Events().Push(evt)
	sched.Update(w)
}

func TestJourneyScriptDrivesBanner(t *testing.T) {
	s := newTestScene(t)
	sched := ecs.NewScheduler(NewJourneySystem("journey.tengo", nil))

	steps := []struct {
		name string
		evt  ecs.Event
		want string
	}{
		{"start", ecs.Event{Type: ecs.EventModeChanged, Data: ecs.ModeChanged{Auto: true}}, "Journey 1"},
		{"deep space", ecs.Event{Type: ecs.EventDeepSpaceEntered}, "Deep space"},
		{"black hole bucket", ecs.Event{Type: ecs.EventContentRegenerated, Data: ecs.ContentRegenerated{Category: "black_hole", Count: 4, Bucket: 2}}, "Filament"},
		{"other category ignored", ecs.Event{Type: ecs.EventContentRegenerated, Data: ecs.ContentRegenerated{Category: "planet", Count: 8, Bucket: 3}}, "Filament"},
		{"stop", ecs.Event{Type: ecs.EventModeChanged, Data: ecs.ModeChanged{Auto: false}}, ""},
		{"second start", ecs.Event{Type: ecs.EventModeChanged, Data: ecs.ModeChanged{Auto: true}}, "Journey 2"},
	}
	for _, st := range steps {
		pushAndRun(s.world, sched, st.evt)
		if got := s.hud(t).Banner; got != st.want {
			t.Fatalf("%s: expected banner %q, got %q", st.name, st.want, got)
		}
	}
}

func TestJourneyReloadResetsState(t *testing.T) {
	s := newTestScene(t)
	js := NewJourneySystem("journey.tengo", nil)
	sched := ecs.NewScheduler(js)
	start := ecs.Event{Type: ecs.EventModeChanged, Data: ecs.ModeChanged{Auto: true}}

	pushAndRun(s.world, sched, start)
	pushAndRun(s.world, sched, start)
	if got := s.hud(t).Banner; got != "Journey 2" {
		t.Fatalf("expected Journey 2, got %q", got)
	}

	js.Reload()
	pushAndRun(s.world, sched, start)
	if got := s.hud(t).Banner; got != "Journey 1" {
		t.Fatalf("expected the count to restart after reload, got %q", got)
	}
}

func TestJourneyMissingScriptIsSkipped(t *testing.T) {
	s := newTestScene(t)
	log := &eventLog{}
	sched := ecs.NewScheduler(NewJourneySystem("missing.tengo", nil), log)

	for i := 0; i < 3; i++ {
		pushAndRun(s.world, sched, ecs.Event{Type: ecs.EventModeChanged, Data: ecs.ModeChanged{Auto: true}})
	}
	if got := s.hud(t).Banner; got != "" {
		t.Fatalf("expected no banner, got %q", got)
	}
	if log.count(ecs.EventModeChanged) != 3 {
		t.Fatalf("expected events to keep flowing, got %d", log.count(ecs.EventModeChanged))
	}
}

func TestJourneyEngineBindings(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "scripts"), 0o755); err != nil {
		t.Fatal(err)
	}
	src := `
on_start := func(engine, state) {
	engine.cue("hover")
	engine.set_rotation_speed(2.5)
	engine.banner("zoom " + string(engine.zoom()))
}
on_stop := func(engine, state) {
	engine.set_rotation_speed(99)
}
on_deep_space_entered := func(engine, state) {}
on_deep_space_exited := func(engine, state) {}
on_content := func(engine, state, category, count, bucket) {}
`
	if err := os.WriteFile(filepath.Join(dir, "scripts", "bindings.tengo"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	old := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = old })

	s := newTestScene(t)
	s.flight(t).Zoom = 12
	log := &eventLog{}
	sched := ecs.NewScheduler(NewJourneySystem("bindings.tengo", nil), log)

	pushAndRun(s.world, sched, ecs.Event{Type: ecs.EventModeChanged, Data: ecs.ModeChanged{Auto: true}})
	if got := s.hud(t).Banner; got != "zoom 12" {
		t.Fatalf("expected banner from zoom binding, got %q", got)
	}
	if log.cues(ecs.CueHover) != 1 {
		t.Fatalf("expected the script cue to reach the event queue")
	}
	_, scene, _ := ecs.First(s.world, component.SceneComponent.Kind())
	if scene.RotationSpeed != 2.5 {
		t.Fatalf("expected rotation speed 2.5, got %v", scene.RotationSpeed)
	}

	pushAndRun(s.world, sched, ecs.Event{Type: ecs.EventModeChanged, Data: ecs.ModeChanged{Auto: false}})
	if scene.RotationSpeed != scene.MaxRotationSpeed {
		t.Fatalf("expected rotation speed clamped to %v, got %v", scene.MaxRotationSpeed, scene.RotationSpeed)
	}
}
