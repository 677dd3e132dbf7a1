package component

type SpinAxis int

const (
	SpinYaw SpinAxis = iota
	SpinRoll
)

// Spin rotates a Renderable by Rate radians per tick.
type Spin struct {
	Axis SpinAxis
	Rate float64
	// Scaled multiplies Rate by the scene rotation speed.
	Scaled bool
}

var SpinComponent = NewComponent[Spin]()

// MoonOrbit moves a Renderable on a circle around the origin at Speed rad/s
// with a small vertical bob.
type MoonOrbit struct {
	Radius  float64
	Speed   float64
	BobRate float64
	BobAmp  float64
}

var MoonOrbitComponent = NewComponent[MoonOrbit]()

// ScalePulse oscillates Renderable.Scale around 1.
type ScalePulse struct {
	Freq float64
	Amp  float64
}

var ScalePulseComponent = NewComponent[ScalePulse]()

// Sway tilts a Renderable back and forth slowly.
type Sway struct {
	Rate float64
	Amp  float64
}

var SwayComponent = NewComponent[Sway]()
