package system

import (
	"testing"

	"github.com/milk9111/fpsplayer/ecs"
	"github.com/milk9111/fpsplayer/input"
	"github.com/stretchr/testify/assert"
)

func TestInputSystemSnapshot(t *testing.T) {
	w := ecs.NewWorld()
	f := newPlayerFixture(t, w)
	fake := input.NewFake()
	ctx := input.NewContext(fake, fake)
	ctx.Capture()
	sys := NewInputSystem(ctx)

	sys.Update(w)
	assert.Zero(t, f.input.MotionX)

	fake.Press(input.ActionMoveForward)
	fake.Press(input.ActionJump)
	fake.Press(input.ActionFire)
	fake.MoveCursor(12, -4)
	sys.Update(w)

	assert.Equal(t, 0.0, f.input.MoveX)
	assert.Equal(t, -1.0, f.input.MoveY)
	assert.Equal(t, 12.0, f.input.MotionX)
	assert.Equal(t, -4.0, f.input.MotionY)
	assert.True(t, f.input.JumpPressed)
	assert.True(t, f.input.FirePressed)
	assert.False(t, f.input.ReloadPressed)

	fake.EndTick()
	sys.Update(w)
	assert.Equal(t, -1.0, f.input.MoveY)
	assert.Zero(t, f.input.MotionX)
	assert.False(t, f.input.JumpPressed)
	assert.False(t, f.input.FirePressed)
}

func TestInputSystemExitTogglesMouse(t *testing.T) {
	w := ecs.NewWorld()
	f := newPlayerFixture(t, w)
	fake := input.NewFake()
	ctx := input.NewContext(fake, fake)
	ctx.Capture()
	sys := NewInputSystem(ctx)
	sys.Update(w)

	fake.Press(input.ActionExit)
	fake.MoveCursor(50, 50)
	sys.Update(w)
	assert.Equal(t, input.MouseVisible, ctx.MouseMode())
	assert.Zero(t, f.input.MotionX)

	fake.EndTick()
	fake.MoveCursor(30, 0)
	sys.Update(w)
	assert.Zero(t, f.input.MotionX, "motion is ignored while the mouse is visible")

	fake.Press(input.ActionExit)
	sys.Update(w)
	assert.True(t, ctx.Captured())
	assert.Equal(t, []input.MouseMode{input.MouseCaptured, input.MouseVisible, input.MouseCaptured}, fake.Modes)
}

func TestInputSystemCaptureTickIgnoresMotion(t *testing.T) {
	w := ecs.NewWorld()
	f := newPlayerFixture(t, w)
	fake := input.NewFake()
	ctx := input.NewContext(fake, fake)
	in := NewInputSystem(ctx)
	look := NewLookSystem()

	in.Update(w)
	look.Update(w)
	fake.EndTick()

	// cursor travel made while visible arrives on the same tick as EXIT
	fake.MoveCursor(300, 0)
	fake.Press(input.ActionExit)
	in.Update(w)
	look.Update(w)

	assert.True(t, ctx.Captured())
	assert.Zero(t, f.input.MotionX)
	assert.Zero(t, f.look.Yaw)

	fake.EndTick()
	in.Update(w)
	look.Update(w)
	assert.Zero(t, f.input.MotionX, "first captured sample starts fresh")
	assert.Zero(t, f.look.Yaw)

	fake.EndTick()
	fake.MoveCursor(-20, 0)
	in.Update(w)
	look.Update(w)
	assert.Equal(t, -20.0, f.input.MotionX)
	assert.InDelta(t, 3.0, f.look.Yaw, 1e-9)
}

func TestInputSystemQuit(t *testing.T) {
	w := ecs.NewWorld()
	fake := input.NewFake()
	ctx := input.NewContext(fake, fake)
	sys := NewInputSystem(ctx)

	sys.Update(w)
	assert.False(t, ctx.QuitRequested())

	fake.Press(input.ActionQuit)
	sys.Update(w)
	assert.True(t, ctx.QuitRequested())
}

func TestInputSystemNilContext(t *testing.T) {
	assert.NotPanics(t, func() { NewInputSystem(nil).Update(ecs.NewWorld()) })
}
