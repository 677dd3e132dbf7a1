package system

import (
	"github.com/milk9111/spacezoom/common"
	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
)

const DefaultTPS = common.TPS

// ClockSystem advances the frame clock by one fixed tick.
type ClockSystem struct {
	dt float64
}

func NewClockSystem(tps int) *ClockSystem {
	if tps <= 0 {
		tps = DefaultTPS
	}
	return &ClockSystem{dt: 1 / float64(tps)}
}

func (c *ClockSystem) Update(w *ecs.World) {
	if c == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.ClockComponent.Kind(), func(_ ecs.Entity, clock *component.Clock) {
		clock.Frame++
		clock.DT = c.dt
		clock.Elapsed += c.dt
	})
}

// frameDT returns the clock's tick length, or the default tick when the
// world has no clock yet.
func frameDT(w *ecs.World) float64 {
	if _, clock, ok := ecs.First(w, component.ClockComponent.Kind()); ok && clock.DT > 0 {
		return clock.DT
	}
	return 1.0 / DefaultTPS
}

func elapsed(w *ecs.World) float64 {
	if _, clock, ok := ecs.First(w, component.ClockComponent.Kind()); ok {
		return clock.Elapsed
	}
	return 0
}
