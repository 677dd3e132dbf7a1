package component

type Scene struct {
	RotationSpeed    float64
	MaxRotationSpeed float64
	Fullscreen       bool
	PlanetRadius     float64
	// HoverPlanet is true while the cursor is over the planet.
	HoverPlanet bool
}

// AdjustRotationSpeed adds delta and clamps to [0, MaxRotationSpeed].
func (s *Scene) AdjustRotationSpeed(delta float64) {
	if s == nil {
		return
	}
	v := s.RotationSpeed + delta
	if v < 0 {
		v = 0
	}
	if s.MaxRotationSpeed > 0 && v > s.MaxRotationSpeed {
		v = s.MaxRotationSpeed
	}
	s.RotationSpeed = v
}

var SceneComponent = NewComponent[Scene]()
