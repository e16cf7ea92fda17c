package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/fpsplayer/ecs"
	"github.com/milk9111/fpsplayer/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestAnimationTriggersTravel(t *testing.T) {
	tests := []struct {
		name string
		in   component.Input
		want []string
	}{
		{name: "fire", in: component.Input{FirePressed: true}, want: []string{"fire"}},
		{name: "reload", in: component.Input{ReloadPressed: true}, want: []string{"reload"}},
		{name: "inspect", in: component.Input{InspectPressed: true}, want: []string{"inspect"}},
		{name: "nothing pressed", in: component.Input{}, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			f := newPlayerFixture(t, w)
			refs, _, _ := attachRig(t, w, f)
			*f.input = tt.in

			NewAnimationTriggerSystem().Update(w)
			assert.Equal(t, tt.want, refs.Arm.TravelPath())
			assert.Equal(t, "idle", refs.Arm.Current())
		})
	}
}

func TestAnimationTriggersDisabled(t *testing.T) {
	w := ecs.NewWorld()
	f := newPlayerFixture(t, w)
	refs, _, _ := attachRig(t, w, f)
	f.player.AnimationTriggers = false
	f.input.FirePressed = true

	NewAnimationTriggerSystem().Update(w)
	assert.Empty(t, refs.Arm.TravelPath())
}

func TestAnimationTriggerUnknownClipIsLogged(t *testing.T) {
	w := ecs.NewWorld()
	f := newPlayerFixture(t, w)
	refs, _, _ := attachRig(t, w, f)
	f.player.FireAnim = "shoot"
	f.input.FirePressed = true

	assert.NotPanics(t, func() { NewAnimationTriggerSystem().Update(w) })
	assert.Equal(t, "idle", refs.Arm.Current())
}

func TestFireAnimationPlaysAndReturns(t *testing.T) {
	w := ecs.NewWorld()
	f := newPlayerFixture(t, w)
	refs, _, _ := attachRig(t, w, f)
	f.body.Grounded = true

	sched := ecs.NewScheduler()
	sched.Add(NewAnimationTriggerSystem())
	sched.Add(NewAnimationSystem())

	f.input.FirePressed = true
	sched.Update(w)
	assert.Equal(t, "fire", refs.Arm.Current())

	f.input.FirePressed = false
	for i := 0; i < 20; i++ {
		sched.Update(w)
	}
	assert.Equal(t, "idle", refs.Arm.Current())
}

func TestAnimationSystemFeedsParameters(t *testing.T) {
	w := ecs.NewWorld()
	f := newPlayerFixture(t, w)
	refs, _, _ := attachRig(t, w, f)
	f.body.Grounded = true
	f.body.Velocity = mgl64.Vec3{3, 0, 4}

	NewAnimationSystem().Update(w)

	tree, ok := ecs.Get(w, ecs.Entity(refs.AnimationTree), component.AnimationTreeComponent.Kind())
	assert.True(t, ok)
	assert.InDelta(t, 5.0, tree.Parameters["speed"], 1e-9)
	assert.Equal(t, true, tree.Parameters["grounded"])
	assert.Equal(t, "walk", refs.Arm.Current())
}

func TestAnimationSystemSkipsInactiveTree(t *testing.T) {
	w := ecs.NewWorld()
	f := newPlayerFixture(t, w)
	refs, _, _ := attachRig(t, w, f)
	tree, _ := ecs.Get(w, ecs.Entity(refs.AnimationTree), component.AnimationTreeComponent.Kind())
	tree.Active = false
	f.body.Grounded = true
	f.body.Velocity = mgl64.Vec3{3, 0, 4}

	NewAnimationSystem().Update(w)
	assert.Equal(t, "idle", refs.Arm.Current())
	assert.Zero(t, refs.Arm.Position())
}
