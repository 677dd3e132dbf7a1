package component

// HUD is what the overlay shows this frame.
type HUD struct {
	JourneyVisible bool
	ZoomLevel      int
	Banner         string
	RotationSpeed  float64
}

var HUDComponent = NewComponent[HUD]()
