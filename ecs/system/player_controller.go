package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/fpsplayer/common"
	"github.com/milk9111/fpsplayer/ecs"
	"github.com/milk9111/fpsplayer/ecs/component"
)

const directionEpsilon = 1e-9

// PlayerControllerSystem turns input into character velocity once per
// physics tick. Displacement is left to PhysicsSystem.
type PlayerControllerSystem struct {
	gravity float64
}

func NewPlayerControllerSystem(gravity float64) *PlayerControllerSystem {
	return &PlayerControllerSystem{gravity: gravity}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.CharacterBodyComponent.Kind(),
		func(e ecs.Entity, p *component.Player, in *component.Input, body *component.CharacterBody) {
			basis := mgl64.Ident3()
			if refs, ok := ecs.Get(w, e, component.PlayerRefsComponent.Kind()); ok {
				if cam, ok := ecs.Get(w, ecs.Entity(refs.Camera), component.TransformComponent.Kind()); ok {
					basis = cam.HorizontalBasis()
				}
			}
			StepVelocity(body, p, in, basis, s.gravity, dt)
		})
}

// StepVelocity applies gravity, jump and horizontal movement to body for one
// tick. basis orients the input; only its horizontal result is used.
func StepVelocity(body *component.CharacterBody, p *component.Player, in *component.Input, basis mgl64.Mat3, gravity, dt float64) {
	v := body.Velocity

	if !body.Grounded {
		v[1] -= gravity * dt
	}

	if in.JumpPressed && body.Grounded {
		v[1] = p.JumpVelocity
	}

	dir := basis.Mul3x1(mgl64.Vec3{in.MoveX, 0, in.MoveY})
	dir[1] = 0
	if dir.Len() > directionEpsilon {
		dir = dir.Normalize()
		v[0] = dir[0] * p.Speed
		v[2] = dir[2] * p.Speed
	} else {
		step := p.Speed
		if p.Deceleration > 0 {
			step = p.Deceleration * dt
		}
		v[0] = common.MoveToward(v[0], 0, step)
		v[2] = common.MoveToward(v[2], 0, step)
	}

	body.Velocity = v
}
