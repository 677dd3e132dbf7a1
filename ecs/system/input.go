package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/spacezoom/common"
	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
	"github.com/milk9111/spacezoom/ecs/render"
)

const speedStep = 0.5

// RawInput is one frame of device state.
type RawInput struct {
	CursorX, CursorY float64
	WheelY           float64
	Modifier         bool
	LeftPressed      bool
	LeftJustPressed  bool
	Trigger          bool
	Cancel           bool
	Fullscreen       bool
	SpeedUp          bool
	SpeedDown        bool
}

func PollEbiten() RawInput {
	cx, cy := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return RawInput{
		CursorX:         float64(cx),
		CursorY:         float64(cy),
		WheelY:          wy,
		Modifier:        ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta),
		LeftPressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		LeftJustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Trigger:         inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Cancel:          inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Fullscreen:      inpututil.IsKeyJustPressed(ebiten.KeyF),
		SpeedUp:         inpututil.IsKeyJustPressed(ebiten.KeyBracketRight),
		SpeedDown:       inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft),
	}
}

// InputSystem turns device state into the camera's Input intents. Clicking
// the planet starts the journey, dragging elsewhere orbits. It also applies
// the intents the HUD may have queued: rotation speed, fullscreen and the
// hover cue of its buttons.
type InputSystem struct {
	poll          func() RawInput
	setFullscreen func(bool)

	dragging bool
	lastX    float64
	lastY    float64
	havePos  bool
}

// NewInputSystem polls with poll, or ebiten when poll is nil. setFullscreen
// may be nil.
func NewInputSystem(poll func() RawInput, setFullscreen func(bool)) *InputSystem {
	if poll == nil {
		poll = PollEbiten
	}
	return &InputSystem{poll: poll, setFullscreen: setFullscreen}
}

func (s *InputSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	raw := s.poll()
	e, input, ok := ecs.First(w, component.InputComponent.Kind())
	if !ok {
		return
	}
	flight, _ := ecs.Get(w, e, component.FlightComponent.Kind())
	cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
	_, scene, _ := ecs.First(w, component.SceneComponent.Kind())

	dx, dy := 0.0, 0.0
	if s.havePos {
		dx, dy = raw.CursorX-s.lastX, raw.CursorY-s.lastY
	}
	input.CursorMoved = s.havePos && (dx != 0 || dy != 0)
	input.CursorX, input.CursorY = raw.CursorX, raw.CursorY
	s.lastX, s.lastY, s.havePos = raw.CursorX, raw.CursorY, true

	hovered := cam != nil && overPlanet(w, *cam, raw.CursorX, raw.CursorY)
	if scene != nil {
		scene.HoverPlanet = hovered
	}

	if raw.LeftJustPressed {
		if hovered {
			input.Trigger = true
		} else {
			s.dragging = true
		}
	}
	if !raw.LeftPressed {
		s.dragging = false
	}
	input.Dragging = s.dragging
	if s.dragging && !raw.LeftJustPressed {
		input.DragDX += dx
		input.DragDY += dy
	}

	if raw.WheelY != 0 {
		notch := 100.0
		if flight != nil && flight.Tuning.WheelPixelsPerNotch > 0 {
			notch = flight.Tuning.WheelPixelsPerNotch
		}
		// Scrolling up moves forward, like a negative browser deltaY.
		input.WheelDelta += -raw.WheelY * notch
		input.WheelModifier = raw.Modifier
	}

	input.Trigger = input.Trigger || raw.Trigger
	input.Cancel = input.Cancel || raw.Cancel
	input.ToggleFullscreen = input.ToggleFullscreen || raw.Fullscreen
	if raw.SpeedUp {
		input.SpeedDelta += speedStep
	}
	if raw.SpeedDown {
		input.SpeedDelta -= speedStep
	}

	if scene != nil {
		if input.SpeedDelta != 0 {
			scene.AdjustRotationSpeed(input.SpeedDelta)
		}
		if input.ToggleFullscreen {
			scene.Fullscreen = !scene.Fullscreen
			if s.setFullscreen != nil {
				s.setFullscreen(scene.Fullscreen)
			}
			w.Events().Push(ecs.Event{Type: ecs.EventCue, Data: ecs.Cue{Kind: ecs.CueClick}})
		}
	}
	if input.HoverCue {
		w.Events().Push(ecs.Event{Type: ecs.EventCue, Data: ecs.Cue{Kind: ecs.CueHover}})
	}
	input.SpeedDelta = 0
	input.ToggleFullscreen = false
	input.HoverCue = false
}

// overPlanet reports whether the screen point lies inside the projected disc
// of the home planet.
func overPlanet(w *ecs.World, cam component.Camera, x, y float64) bool {
	pe, ok := w.First(component.PlanetTagComponent.Kind())
	if !ok {
		return false
	}
	r, ok := ecs.Get(w, pe, component.RenderableComponent.Kind())
	if !ok {
		return false
	}
	pr := render.NewProjector(cam, common.BaseWidth, common.BaseHeight)
	px, py, dist, ok := pr.Project(r.Position)
	if !ok {
		return false
	}
	return math.Hypot(x-px, y-py) <= pr.ScreenRadius(r.Radius, dist)
}
