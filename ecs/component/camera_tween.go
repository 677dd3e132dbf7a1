package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/spacezoom/common"
)

// CameraTween is an eased, fixed-duration camera move. Starting a new tween
// overwrites the previous one, which cancels it.
type CameraTween struct {
	Active          bool
	Elapsed         float64
	Duration        float64
	Ease            common.Ease
	AnimatePosition bool
	FromPos         mgl64.Vec3
	ToPos           mgl64.Vec3
	AnimateFOV      bool
	FromFOV         float64
	ToFOV           float64
}

// StartFOV begins a tween of the field of view only.
func (t *CameraTween) StartFOV(from, to, duration float64, ease common.Ease) {
	if t == nil {
		return
	}
	*t = CameraTween{
		Active:     duration > 0,
		Duration:   duration,
		Ease:       ease,
		AnimateFOV: true,
		FromFOV:    from,
		ToFOV:      to,
	}
}

// StartMove begins a tween of both position and field of view.
func (t *CameraTween) StartMove(fromPos, toPos mgl64.Vec3, fromFOV, toFOV, duration float64, ease common.Ease) {
	if t == nil {
		return
	}
	*t = CameraTween{
		Active:          duration > 0,
		Duration:        duration,
		Ease:            ease,
		AnimatePosition: true,
		FromPos:         fromPos,
		ToPos:           toPos,
		AnimateFOV:      true,
		FromFOV:         fromFOV,
		ToFOV:           toFOV,
	}
}

func (t *CameraTween) Cancel() {
	if t == nil {
		return
	}
	*t = CameraTween{}
}

var CameraTweenComponent = NewComponent[CameraTween]()
