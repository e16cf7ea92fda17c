package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/fpsplayer/common"
	"github.com/milk9111/fpsplayer/ecs"
	"github.com/milk9111/fpsplayer/ecs/component"
)

// LookFollowSystem eases the camera and weapon rig toward the player's target
// rotation, each at its own rate. It runs after physics.
type LookFollowSystem struct{}

func NewLookFollowSystem() *LookFollowSystem {
	return &LookFollowSystem{}
}

func (l *LookFollowSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.LookComponent.Kind(),
		component.PlayerRefsComponent.Kind(),
		func(e ecs.Entity, p *component.Player, look *component.Look, refs *component.PlayerRefs) {
			if t, ok := ecs.Get(w, ecs.Entity(refs.Camera), component.TransformComponent.Kind()); ok {
				FollowRotation(t, *look, p.CameraRotationSpeed, dt)
			}
			if t, ok := ecs.Get(w, ecs.Entity(refs.WeaponRig), component.TransformComponent.Kind()); ok {
				FollowRotation(t, *look, p.WeaponRotationSpeed, dt)
			}
		})
}

// FollowRotation moves t's pitch and yaw toward look along the shortest arc.
// The weight rate*dt is clamped to [0, 1]; roll is reset.
func FollowRotation(t *component.Transform, look component.Look, rate, dt float64) {
	weight := common.Clamp(rate*dt, 0, 1)
	t.Rotation = mgl64.Vec3{
		common.LerpAngle(t.Rotation.X(), common.DegToRad(look.Pitch), weight),
		common.LerpAngle(t.Rotation.Y(), common.DegToRad(look.Yaw), weight),
		0,
	}
}
