package system

import (
	"github.com/milk9111/fpsplayer/ecs"
	"github.com/milk9111/fpsplayer/ecs/component"
	"github.com/milk9111/fpsplayer/input"
	"github.com/rs/zerolog/log"
)

// InputSystem samples the input context once per tick, handles the global
// EXIT/QUIT actions and writes the snapshot into every Input component.
type InputSystem struct {
	ctx *input.Context
}

func NewInputSystem(ctx *input.Context) *InputSystem {
	return &InputSystem{ctx: ctx}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.ctx == nil || w == nil {
		return
	}

	i.ctx.Poll()
	// motion only drives the look while the mouse was already captured when
	// this tick's sample was taken
	captured := i.ctx.Captured()

	if i.ctx.JustPressed(input.ActionExit) {
		i.ctx.ToggleMouseMode()
	}
	if i.ctx.JustPressed(input.ActionQuit) {
		log.Info().Msg("input: quit requested")
		i.ctx.RequestQuit()
	}

	moveX, moveY := input.Vector(i.ctx.Source(),
		input.ActionMoveLeft,
		input.ActionMoveRight,
		input.ActionMoveForward,
		input.ActionMoveBackward,
	)

	dx, dy := 0.0, 0.0
	if captured && i.ctx.Captured() {
		dx, dy = i.ctx.Motion()
	}

	jump := i.ctx.JustPressed(input.ActionJump)
	fire := i.ctx.JustPressed(input.ActionFire)
	reload := i.ctx.JustPressed(input.ActionReload)
	inspect := i.ctx.JustPressed(input.ActionInspect)

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, in *component.Input) {
		in.MoveX = moveX
		in.MoveY = moveY
		in.MotionX = dx
		in.MotionY = dy
		in.JumpPressed = jump
		in.FirePressed = fire
		in.ReloadPressed = reload
		in.InspectPressed = inspect
	})
}
