package component

// Input holds this frame's user intents. Producers set fields, consumers
// clear what they act on.
type Input struct {
	Trigger bool
	Cancel  bool

	WheelDelta    float64
	WheelModifier bool

	Dragging bool
	DragDX   float64
	DragDY   float64

	CursorX     float64
	CursorY     float64
	CursorMoved bool

	ToggleFullscreen bool
	SpeedDelta       float64
	// HoverCue is set when the cursor enters an overlay button.
	HoverCue bool
}

var InputComponent = NewComponent[Input]()
