package component

// Crossing is the edge reported by a ThresholdGate.
type Crossing int

const (
	CrossNone Crossing = iota
	CrossEnter
	CrossExit
)

func (c Crossing) String() string {
	switch c {
	case CrossEnter:
		return "enter"
	case CrossExit:
		return "exit"
	default:
		return "none"
	}
}

// ThresholdGate remembers which side of Threshold the last observed value
// was on. Only strict crossings count: a value exactly on the threshold keeps
// the current side.
type ThresholdGate struct {
	Threshold float64
	Above     bool
}

func (g *ThresholdGate) Observe(v float64) Crossing {
	if g == nil {
		return CrossNone
	}
	switch {
	case !g.Above && v > g.Threshold:
		g.Above = true
		return CrossEnter
	case g.Above && v < g.Threshold:
		g.Above = false
		return CrossExit
	default:
		return CrossNone
	}
}
