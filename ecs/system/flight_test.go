package system

import (
	"math"
	"testing"

	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
)

func TestDeepSpaceEdgesFireOnce(t *testing.T) {
	s := newTestScene(t)
	log := &eventLog{}
	sched := ecs.NewScheduler(NewClockSystem(DefaultTPS), NewFlightSystem(nil), NewTweenSystem(), log)

	seq := []float64{0, 10, 49, 51, 60, 49, 10}
	wantEnter := []int{0, 0, 0, 1, 1, 1, 1}
	wantExit := []int{0, 0, 0, 0, 0, 1, 1}
	for i, zoom := range seq {
		s.flight(t).Zoom = zoom
		sched.Update(s.world)
		if got := log.count(ecs.EventDeepSpaceEntered); got != wantEnter[i] {
			t.Fatalf("step %d (zoom %v): expected %d enter events, got %d", i, zoom, wantEnter[i], got)
		}
		if got := log.count(ecs.EventDeepSpaceExited); got != wantExit[i] {
			t.Fatalf("step %d (zoom %v): expected %d exit events, got %d", i, zoom, wantExit[i], got)
		}
	}

	f := s.flight(t)
	if f.DeepSpace {
		t.Fatal("expected to be back in the near scene")
	}
	if !f.ManualEnabled {
		t.Fatal("expected manual control restored after leaving deep space in orbit mode")
	}
}

func TestEnterDisablesManualAndExitTweensFOV(t *testing.T) {
	s := newTestScene(t)
	sched := ecs.NewScheduler(NewFlightSystem(nil))

	s.flight(t).Zoom = 51
	sched.Update(s.world)
	f := s.flight(t)
	if !f.DeepSpace || f.ManualEnabled {
		t.Fatalf("expected deep space with manual disabled, got %+v", f)
	}

	s.cam(t).FOV = 120
	f.Zoom = 49
	sched.Update(s.world)
	tw := s.tween(t)
	if !tw.Active || !tw.AnimateFOV || tw.AnimatePosition {
		t.Fatalf("expected an fov-only tween, got %+v", tw)
	}
	if tw.FromFOV != 120 || tw.ToFOV != f.Tuning.BaseFOV {
		t.Fatalf("expected tween 120 -> %v, got %v -> %v", f.Tuning.BaseFOV, tw.FromFOV, tw.ToFOV)
	}
	if tw.Duration != f.Tuning.ExitTween.Duration {
		t.Fatalf("expected duration %v, got %v", f.Tuning.ExitTween.Duration, tw.Duration)
	}
}

func TestTriggerIsIdempotent(t *testing.T) {
	s := newTestScene(t)
	log := &eventLog{}
	sched := ecs.NewScheduler(NewFlightSystem(nil), log)

	s.input(t).Trigger = true
	sched.Update(s.world)
	if got := log.cues(ecs.CueStart); got != 1 {
		t.Fatalf("expected one start cue, got %d", got)
	}
	f := s.flight(t)
	if f.Mode != component.FlightAuto || f.ManualEnabled {
		t.Fatalf("expected auto flight with manual disabled, got %+v", f)
	}

	log.reset()
	s.input(t).Trigger = true
	sched.Update(s.world)
	if got := log.cues(ecs.CueStart); got != 0 {
		t.Fatalf("expected no second start cue, got %d", got)
	}
	if got := log.count(ecs.EventModeChanged); got != 0 {
		t.Fatalf("expected no mode change, got %d", got)
	}
}

func TestCancelInOrbitIsNoop(t *testing.T) {
	s := newTestScene(t)
	log := &eventLog{}
	sched := ecs.NewScheduler(NewFlightSystem(nil), log)

	s.input(t).Cancel = true
	sched.Update(s.world)
	if len(log.events) != 0 {
		t.Fatalf("expected no events, got %+v", log.events)
	}
	if s.tween(t).Active {
		t.Fatal("expected no tween")
	}
}

func TestTriggerCancelsTween(t *testing.T) {
	s := newTestScene(t)
	sched := ecs.NewScheduler(NewFlightSystem(nil))
	s.tween(t).StartFOV(100, 75, 1, nil)

	s.input(t).Trigger = true
	sched.Update(s.world)
	if s.tween(t).Active {
		t.Fatal("expected trigger to cancel the tween")
	}
}

func TestWheelInOrbit(t *testing.T) {
	tests := []struct {
		name     string
		delta    float64
		modifier bool
		want     float64
	}{
		{name: "forward", delta: 100, want: 0.3},
		{name: "back", delta: -200, want: -0.6},
		{name: "modifier held", delta: 100, modifier: true, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene(t)
			sched := ecs.NewScheduler(NewFlightSystem(nil))
			in := s.input(t)
			in.WheelDelta = tt.delta
			in.WheelModifier = tt.modifier
			sched.Update(s.world)
			if got := s.flight(t).Zoom; math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("expected zoom %v, got %v", tt.want, got)
			}
			if in.WheelDelta != 0 {
				t.Fatal("expected the wheel to be consumed")
			}
		})
	}
}

func TestWheelIgnoredDuringAutoFlight(t *testing.T) {
	s := newTestScene(t)
	sched := ecs.NewScheduler(NewFlightSystem(nil))
	s.input(t).Trigger = true
	sched.Update(s.world)
	before := s.flight(t).Zoom

	s.input(t).WheelDelta = -10000
	sched.Update(s.world)
	if got := s.flight(t).Zoom; math.Abs(got-(before+0.3)) > 1e-12 {
		t.Fatalf("expected only the auto advance, got %v -> %v", before, got)
	}
}

func TestWheelPastThresholdStartsMoveTween(t *testing.T) {
	s := newTestScene(t)
	sched := ecs.NewScheduler(NewFlightSystem(nil))
	f := s.flight(t)
	f.Zoom = 49.9
	s.input(t).WheelDelta = 100
	sched.Update(s.world)

	tw := s.tween(t)
	if !tw.Active || !tw.AnimatePosition {
		t.Fatalf("expected a move tween, got %+v", tw)
	}
	wantZ := f.Tuning.TargetDistance(f.Zoom)
	if math.Abs(tw.ToPos.Z()-wantZ) > 1e-9 || tw.ToPos.X() != 0 || tw.ToPos.Y() != 0 {
		t.Fatalf("expected target (0,0,%v), got %v", wantZ, tw.ToPos)
	}
	if math.Abs(tw.ToFOV-f.Tuning.TargetFOV(f.Zoom)) > 1e-9 {
		t.Fatalf("expected target fov %v, got %v", f.Tuning.TargetFOV(f.Zoom), tw.ToFOV)
	}
	if tw.Duration != f.Tuning.ScrollTween.Duration {
		t.Fatalf("expected duration %v, got %v", f.Tuning.ScrollTween.Duration, tw.Duration)
	}
	if !f.DeepSpace {
		t.Fatal("expected deep space after crossing by wheel")
	}
}

func TestAdvanceModes(t *testing.T) {
	tests := []struct {
		name string
		mode component.AdvanceMode
		tps  int
		want float64
	}{
		{name: "per frame at 60", mode: component.AdvancePerFrame, tps: 60, want: 3},
		{name: "per frame at 30", mode: component.AdvancePerFrame, tps: 30, want: 3},
		{name: "per second at 60", mode: component.AdvancePerSecond, tps: 60, want: 3},
		{name: "per second at 30", mode: component.AdvancePerSecond, tps: 30, want: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene(t)
			s.flight(t).Tuning.Advance = tt.mode
			sched := ecs.NewScheduler(NewClockSystem(tt.tps), NewFlightSystem(nil))
			s.input(t).Trigger = true
			step(s.world, sched, 10)
			if got := s.flight(t).Zoom; math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("expected zoom %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAutoFlightIntegratesTowardTarget(t *testing.T) {
	s := newTestScene(t)
	sched := ecs.NewScheduler(NewFlightSystem(nil))
	s.input(t).Trigger = true
	sched.Update(s.world)

	f := s.flight(t)
	cam := s.cam(t)
	target := f.Tuning.TargetDistance(f.Zoom)
	wantZ := 8 + (target-8)*f.Tuning.Smoothing
	if math.Abs(cam.Position.Z()-wantZ) > 1e-9 {
		t.Fatalf("expected z %v, got %v", wantZ, cam.Position.Z())
	}
	if math.Abs(cam.LookAt.Z()-(target-f.Tuning.LookAhead)) > 1e-9 {
		t.Fatalf("expected look-at z %v, got %v", target-f.Tuning.LookAhead, cam.LookAt.Z())
	}
}

func TestJourneyEndToEnd(t *testing.T) {
	s := newTestScene(t)
	log := &eventLog{}
	sched := ecs.NewScheduler(
		NewClockSystem(DefaultTPS),
		NewOrbitSystem(DefaultTPS),
		NewFlightSystem(nil),
		NewTweenSystem(),
		s.contentSystem(t),
		log,
	)

	s.input(t).Trigger = true
	sched.Update(s.world)
	f := s.flight(t)
	if f.Mode != component.FlightAuto || f.ManualEnabled {
		t.Fatalf("expected auto flight with manual disabled, got %+v", f)
	}

	step(s.world, sched, 199)
	if math.Abs(f.Zoom-60) > 1e-6 {
		t.Fatalf("expected zoom near 60 after 200 frames, got %v", f.Zoom)
	}
	if !f.DeepSpace {
		t.Fatal("expected deep space")
	}
	if got := contentCounts(s.world)["black_hole"]; got < 1 {
		t.Fatalf("expected at least one black hole entity, got %d", got)
	}

	s.input(t).Cancel = true
	sched.Update(s.world)
	if f.Mode != component.FlightOrbit || !f.ManualEnabled {
		t.Fatalf("expected orbit with manual enabled, got %+v", f)
	}
	if log.cues(ecs.CueClick) != 1 {
		t.Fatalf("expected one click cue, got %d", log.cues(ecs.CueClick))
	}
	step(s.world, sched, 60)
	if got := s.cam(t).FOV; math.Abs(got-f.Tuning.BaseFOV) > 1e-9 {
		t.Fatalf("expected fov back at %v within a second, got %v", f.Tuning.BaseFOV, got)
	}
	if s.tween(t).Active {
		t.Fatal("expected the exit tween to be finished")
	}
}
