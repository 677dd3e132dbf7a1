package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
	"github.com/milk9111/spacezoom/prefabs"
	"golang.org/x/image/font/basicfont"
)

const hudSpeedStep = 0.5

var (
	defaultHUDBackground = color.RGBA{A: 0xb3}
	defaultHUDText       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	defaultHUDAccent     = color.RGBA{G: 0xff, B: 0xff, A: 0xff}
)

// HUD is the overlay: the journey status panel with its stop button while
// auto flight runs, and the always-on settings row.
type HUD struct {
	UI *ebitenui.UI

	journey  *widget.Container
	settings *widget.Container
	status   *widget.Text
	banner   *widget.Text
	speed    *widget.Text
	panels   []*widget.Container

	panelImg  *imageui.NineSlice
	buttonImg *widget.ButtonImage

	visible bool
}

// NewHUD builds the overlay. Buttons only queue intents on the camera input;
// the input system applies them on the next tick.
func NewHUD(g *Game, spec prefabs.HUDSpec) *HUD {
	bg := spec.Background.RGBAOr(defaultHUDBackground)
	accent := spec.Accent.RGBAOr(defaultHUDAccent)
	h := &HUD{
		panelImg: imageui.NewNineSliceColor(bg),
		buttonImg: &widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}),
			Hover:   imageui.NewNineSliceColor(color.RGBA{R: accent.R / 3, G: accent.G / 3, B: accent.B / 3, A: 0xff}),
			Pressed: imageui.NewNineSliceColor(color.RGBA{R: accent.R / 2, G: accent.G / 2, B: accent.B / 2, A: 0xff}),
		},
	}

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	textColor := spec.Text.RGBAOr(defaultHUDText)

	h.status = widget.NewText(
		widget.TextOpts.Text("", &face, accent),
	)
	h.banner = widget.NewText(
		widget.TextOpts.Text("", &face, textColor),
	)
	stop := h.newButton("Stop Journey", &face, textColor, func() {
		if in := g.input(); in != nil {
			in.Cancel = true
		}
	}, hoverCue(g))

	h.journey = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(h.panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 14, Right: 14}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	h.journey.AddChild(h.status)
	h.journey.AddChild(h.banner)
	h.journey.AddChild(stop)
	h.journey.GetWidget().Visibility = widget.Visibility_Hide

	h.speed = widget.NewText(
		widget.TextOpts.Text("", &face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	slower := h.newButton("-", &face, textColor, func() {
		if in := g.input(); in != nil {
			in.SpeedDelta -= hudSpeedStep
		}
	})
	faster := h.newButton("+", &face, textColor, func() {
		if in := g.input(); in != nil {
			in.SpeedDelta += hudSpeedStep
		}
	})
	fullscreen := h.newButton("Fullscreen", &face, textColor, func() {
		if in := g.input(); in != nil {
			in.ToggleFullscreen = true
		}
	}, hoverCue(g))

	h.settings = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(h.panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	h.settings.AddChild(h.speed)
	h.settings.AddChild(slower)
	h.settings.AddChild(faster)
	h.settings.AddChild(fullscreen)

	h.panels = []*widget.Container{h.journey, h.settings}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 16, Right: 16}),
		)),
	)
	root.AddChild(h.journey)
	root.AddChild(h.settings)

	h.UI = &ebitenui.UI{Container: root}
	return h
}

func (h *HUD) newButton(label string, face *ebtext.Face, textColor color.Color, onClick func(), opts ...widget.ButtonOpt) *widget.Button {
	opts = append([]widget.ButtonOpt{
		widget.ButtonOpts.Image(h.buttonImg),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: textColor}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(28, 24),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	}, opts...)
	return widget.NewButton(opts...)
}

// hoverCue queues the hover sound when the cursor enters the button.
func hoverCue(g *Game) widget.ButtonOpt {
	return widget.ButtonOpts.CursorEnteredHandler(func(args *widget.ButtonHoverEventArgs) {
		if in := g.input(); in != nil {
			in.HoverCue = true
		}
	})
}

// Sync copies the HUD state produced by the systems into the widgets.
func (h *HUD) Sync(w *ecs.World) {
	if h == nil {
		return
	}
	_, state, ok := ecs.First(w, component.HUDComponent.Kind())
	if !ok {
		return
	}
	if state.JourneyVisible != h.visible {
		h.visible = state.JourneyVisible
		if h.visible {
			h.journey.GetWidget().Visibility = widget.Visibility_Show
		} else {
			h.journey.GetWidget().Visibility = widget.Visibility_Hide
		}
		h.journey.RequestRelayout()
	}
	h.status.Label = fmt.Sprintf("Infinite Journey Active - Zoom Level: %d", state.ZoomLevel)
	h.banner.Label = state.Banner
	h.speed.Label = fmt.Sprintf("Rotation speed: %.1f", state.RotationSpeed)
}

// Contains reports whether the point lies on a visible overlay panel.
func (h *HUD) Contains(x, y int) bool {
	if h == nil {
		return false
	}
	pt := image.Pt(x, y)
	for _, p := range h.panels {
		wd := p.GetWidget()
		if wd.Visibility == widget.Visibility_Show && pt.In(wd.Rect) {
			return true
		}
	}
	return false
}
