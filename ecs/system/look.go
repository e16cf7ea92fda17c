package system

import (
	"math"

	"github.com/milk9111/fpsplayer/common"
	"github.com/milk9111/fpsplayer/ecs"
	"github.com/milk9111/fpsplayer/ecs/component"
)

const fullTurn = 360.0

type LookSystem struct{}

func NewLookSystem() *LookSystem {
	return &LookSystem{}
}

func (l *LookSystem) Update(w *ecs.World) {
	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.LookComponent.Kind(),
		func(e ecs.Entity, p *component.Player, in *component.Input, look *component.Look) {
			if in.MotionX == 0 && in.MotionY == 0 {
				return
			}
			ApplyMouseMotion(look, p, in.MotionX, in.MotionY)
		})
}

// ApplyMouseMotion accumulates relative mouse motion into the target rotation.
// Moving the mouse right or down turns right or looks down.
func ApplyMouseMotion(look *component.Look, p *component.Player, dx, dy float64) {
	if look == nil || p == nil {
		return
	}
	limit := math.Abs(p.VerticalRotationLimit)
	look.Pitch = common.Clamp(-dy*p.RotationSpeed+look.Pitch, -limit, limit)
	look.Yaw = common.Wrap(-dx*p.RotationSpeed+look.Yaw, 0, fullTurn)
}
