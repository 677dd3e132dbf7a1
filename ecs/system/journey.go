package system

import (
	"fmt"
	"log/slog"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
	"github.com/milk9111/spacezoom/logging"
	"github.com/milk9111/spacezoom/prefabs"
)

const journeyDispatchScript = `
if __hook == "start" {
	on_start(__engine, __state)
} else if __hook == "stop" {
	on_stop(__engine, __state)
} else if __hook == "deep_space_entered" {
	on_deep_space_entered(__engine, __state)
} else if __hook == "deep_space_exited" {
	on_deep_space_exited(__engine, __state)
} else if __hook == "content" {
	on_content(__engine, __state, __args[0], __args[1], __args[2])
}
`

type journeyCall struct {
	hook string
	args []any
}

// JourneySystem runs the journey script's hooks when flight events fire.
// A script that fails to load or run is logged and skipped; the journey
// itself never depends on it.
type JourneySystem struct {
	path     string
	log      *slog.Logger
	compiled *tengo.Compiled
	state    *tengo.Map
	failed   bool
}

func NewJourneySystem(path string, logger *slog.Logger) *JourneySystem {
	return &JourneySystem{path: path, log: logging.For(logger, "journey")}
}

// Reload drops the compiled script; the next hook recompiles it from disk
// or the embedded copy. Script state starts over.
func (s *JourneySystem) Reload() {
	if s == nil {
		return
	}
	s.compiled = nil
	s.state = nil
	s.failed = false
}

func (s *JourneySystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.path == "" {
		return
	}

	var calls []journeyCall
	w.Events().Each(func(evt ecs.Event) {
		switch evt.Type {
		case ecs.EventModeChanged:
			if mc, ok := evt.Data.(ecs.ModeChanged); ok {
				hook := "stop"
				if mc.Auto {
					hook = "start"
				}
				calls = append(calls, journeyCall{hook: hook})
			}
		case ecs.EventDeepSpaceEntered:
			calls = append(calls, journeyCall{hook: "deep_space_entered"})
		case ecs.EventDeepSpaceExited:
			calls = append(calls, journeyCall{hook: "deep_space_exited"})
		case ecs.EventContentRegenerated:
			if cr, ok := evt.Data.(ecs.ContentRegenerated); ok {
				calls = append(calls, journeyCall{hook: "content", args: []any{cr.Category, cr.Count, cr.Bucket}})
			}
		}
	})
	if len(calls) == 0 {
		return
	}

	if err := s.ensureLoaded(); err != nil {
		if !s.failed {
			s.log.Error("load journey script", "path", s.path, "err", err)
			s.failed = true
		}
		return
	}

	engine := buildJourneyEngine(w, s.log)
	for _, call := range calls {
		if err := s.run(call, engine); err != nil {
			s.log.Error("journey hook", "hook", call.hook, "err", err)
		}
	}
}

func (s *JourneySystem) ensureLoaded() error {
	if s.compiled != nil {
		return nil
	}
	if s.failed {
		return fmt.Errorf("journey: script %s failed to load", s.path)
	}

	src, err := prefabs.LoadScript(s.path)
	if err != nil {
		return fmt.Errorf("journey: load %s: %w", s.path, err)
	}
	script := tengo.NewScript(append(append([]byte{}, src...), "\n"+journeyDispatchScript...))
	_ = script.Add("__hook", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__args", []any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("journey: compile %s: %w", s.path, err)
	}
	s.compiled = compiled
	s.state = &tengo.Map{Value: map[string]tengo.Object{}}
	return nil
}

func (s *JourneySystem) run(call journeyCall, engine *tengo.ImmutableMap) error {
	args := call.args
	if args == nil {
		args = []any{}
	}
	if err := s.compiled.Set("__hook", call.hook); err != nil {
		return err
	}
	if err := s.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := s.compiled.Set("__state", s.state); err != nil {
		return err
	}
	if err := s.compiled.Set("__args", args); err != nil {
		return err
	}
	return s.compiled.Run()
}

func buildJourneyEngine(w *ecs.World, log *slog.Logger) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["banner"] = &tengo.UserFunction{Name: "banner", Value: func(args ...tengo.Object) (tengo.Object, error) {
		_, hud, ok := ecs.First(w, component.HUDComponent.Kind())
		if !ok {
			return tengo.FalseValue, nil
		}
		text := ""
		if len(args) > 0 {
			text, _ = tengo.ToString(args[0])
		}
		hud.Banner = text
		return tengo.TrueValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		msg, _ := tengo.ToString(args[0])
		log.Info(msg, "source", "script")
		return tengo.TrueValue, nil
	}}

	values["zoom"] = &tengo.UserFunction{Name: "zoom", Value: func(args ...tengo.Object) (tengo.Object, error) {
		_, flight, ok := ecs.First(w, component.FlightComponent.Kind())
		if !ok {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: flight.Zoom}, nil
	}}

	values["cue"] = &tengo.UserFunction{Name: "cue", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name, ok := tengo.ToString(args[0])
		if !ok || name == "" {
			return tengo.FalseValue, nil
		}
		w.Events().Push(ecs.Event{Type: ecs.EventCue, Data: ecs.Cue{Kind: ecs.CueKind(name)}})
		return tengo.TrueValue, nil
	}}

	values["set_rotation_speed"] = &tengo.UserFunction{Name: "set_rotation_speed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		v, ok := tengo.ToFloat64(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		_, scene, found := ecs.First(w, component.SceneComponent.Kind())
		if !found {
			return tengo.FalseValue, nil
		}
		scene.AdjustRotationSpeed(v - scene.RotationSpeed)
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
