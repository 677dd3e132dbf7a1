package system

import (
	"github.com/milk9111/spacezoom/common"
	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
)

// finishEpsilon absorbs float drift from summing per-tick dt.
const finishEpsilon = 1e-6

type TweenSystem struct{}

func NewTweenSystem() *TweenSystem { return &TweenSystem{} }

func (s *TweenSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := frameDT(w)
	ecs.ForEach2(w, component.CameraTweenComponent.Kind(), component.CameraComponent.Kind(), func(_ ecs.Entity, tw *component.CameraTween, cam *component.Camera) {
		if !tw.Active {
			return
		}
		tw.Elapsed += dt
		progress := 1.0
		if tw.Duration > 0 && tw.Elapsed < tw.Duration-finishEpsilon {
			progress = tw.Elapsed / tw.Duration
		}
		ease := tw.Ease
		if ease == nil {
			ease = common.Linear
		}
		k := ease(progress)
		if tw.AnimatePosition {
			cam.Position = tw.FromPos.Add(tw.ToPos.Sub(tw.FromPos).Mul(k))
		}
		if tw.AnimateFOV {
			cam.FOV = common.Lerp(tw.FromFOV, tw.ToFOV, k)
		}
		if progress >= 1 {
			tw.Active = false
		}
	})
}
