package component

import "math"

type FlightMode int

const (
	FlightOrbit FlightMode = iota
	FlightAuto
)

func (m FlightMode) String() string {
	if m == FlightAuto {
		return "auto_flight"
	}
	return "orbit"
}

// AdvanceMode selects how auto flight grows the zoom level.
type AdvanceMode int

const (
	// AdvancePerFrame adds AutoAdvance once per tick.
	AdvancePerFrame AdvanceMode = iota
	// AdvancePerSecond scales AutoAdvance by 60*dt so the pace does not
	// depend on the tick rate.
	AdvancePerSecond
)

func ParseAdvanceMode(s string) AdvanceMode {
	if s == "time" {
		return AdvancePerSecond
	}
	return AdvancePerFrame
}

type TweenTuning struct {
	Duration float64
	Ease     string
}

type FlightTuning struct {
	BaseDistance        float64
	DistanceGain        float64
	BaseFOV             float64
	FOVGain             float64
	FOVCap              float64
	MinFOV              float64
	Threshold           float64
	AutoAdvance         float64
	Advance             AdvanceMode
	WheelScale          float64
	WheelPixelsPerNotch float64
	Smoothing           float64
	LookAhead           float64
	ScrollTween         TweenTuning
	ExitTween           TweenTuning
}

func DefaultFlightTuning() FlightTuning {
	return FlightTuning{
		BaseDistance:        8,
		DistanceGain:        2,
		BaseFOV:             75,
		FOVGain:             45,
		FOVCap:              90,
		MinFOV:              10,
		Threshold:           50,
		AutoAdvance:         0.3,
		WheelScale:          0.003,
		WheelPixelsPerNotch: 100,
		Smoothing:           0.02,
		LookAhead:           50,
		ScrollTween:         TweenTuning{Duration: 2, Ease: "in_out_cubic"},
		ExitTween:           TweenTuning{Duration: 1, Ease: "out_cubic"},
	}
}

// TargetDistance is the camera z the flight converges on for zoom.
func (t FlightTuning) TargetDistance(zoom float64) float64 {
	return t.BaseDistance - zoom*t.DistanceGain
}

// TargetFOV widens with zoom up to BaseFOV+FOVCap and never drops below
// MinFOV.
func (t FlightTuning) TargetFOV(zoom float64) float64 {
	if t.Threshold <= 0 {
		return t.BaseFOV
	}
	fov := t.BaseFOV + math.Min(zoom/t.Threshold*t.FOVGain, t.FOVCap)
	return math.Max(fov, t.MinFOV)
}

// Flight is the zoom journey state carried by the camera entity.
type Flight struct {
	Zoom          float64
	Mode          FlightMode
	DeepSpace     bool
	ManualEnabled bool
	Gate          ThresholdGate
	Tuning        FlightTuning
}

func NewFlight(t FlightTuning) Flight {
	return Flight{
		Mode:          FlightOrbit,
		ManualEnabled: true,
		Gate:          ThresholdGate{Threshold: t.Threshold},
		Tuning:        t,
	}
}

var FlightComponent = NewComponent[Flight]()
