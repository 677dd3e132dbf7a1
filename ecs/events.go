package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventZoomChanged        = "zoom_changed"
	EventModeChanged        = "mode_changed"
	EventDeepSpaceEntered   = "deep_space_entered"
	EventDeepSpaceExited    = "deep_space_exited"
	EventCue                = "cue"
	EventContentRegenerated = "content_regenerated"
)

// ZoomChanged carries the zoom level after a frame's advance or wheel step.
type ZoomChanged struct {
	Zoom float64
}

// ModeChanged is pushed on every flight mode transition.
type ModeChanged struct {
	Auto bool
	Zoom float64
}

// CueKind names a short UI sound.
type CueKind string

const (
	CueStart CueKind = "start"
	CueClick CueKind = "click"
	CueHover CueKind = "hover"
)

type Cue struct {
	Kind CueKind
}

// ContentRegenerated reports a category whose records were replaced.
type ContentRegenerated struct {
	Category string
	Count    int
	Bucket   int
}

// EventQueue is a FIFO of events for the current frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Each visits pending events without consuming them. Events pushed by fn are
// visited too.
func (q *EventQueue) Each(fn func(Event)) {
	if q == nil || fn == nil {
		return
	}
	for i := 0; i < len(q.items); i++ {
		fn(q.items[i])
	}
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
