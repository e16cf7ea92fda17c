package system

import (
	"testing"

	"github.com/milk9111/fpsplayer/ecs"
	"github.com/milk9111/fpsplayer/ecs/component"
	"github.com/stretchr/testify/require"
)

func testPlayer() *component.Player {
	return &component.Player{
		Speed:                 5,
		JumpVelocity:          4.5,
		RotationSpeed:         0.15,
		CameraRotationSpeed:   20,
		WeaponRotationSpeed:   12,
		VerticalRotationLimit: 85,
		IdleAnim:              "idle",
		FireAnim:              "fire",
		ReloadAnim:            "reload",
		InspectAnim:           "inspect",
		AnimationTriggers:     true,
	}
}

func addComponent[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) *T {
	t.Helper()
	require.NoError(t, ecs.Add(w, e, kind, v))
	return v
}

type playerFixture struct {
	entity ecs.Entity
	player *component.Player
	input  *component.Input
	look   *component.Look
	body   *component.CharacterBody
	xform  *component.Transform
}

func newPlayerFixture(t *testing.T, w *ecs.World) playerFixture {
	t.Helper()
	e := ecs.CreateEntity(w)
	return playerFixture{
		entity: e,
		player: addComponent(t, w, e, component.PlayerComponent.Kind(), testPlayer()),
		input:  addComponent(t, w, e, component.InputComponent.Kind(), &component.Input{}),
		look:   addComponent(t, w, e, component.LookComponent.Kind(), &component.Look{}),
		body:   addComponent(t, w, e, component.CharacterBodyComponent.Kind(), &component.CharacterBody{Radius: 0.4}),
		xform:  addComponent(t, w, e, component.TransformComponent.Kind(), &component.Transform{}),
	}
}

func armsTree(t *testing.T) *component.AnimationTree {
	t.Helper()
	params := map[string]any{"speed": 0.0, "vertical_speed": 0.0, "grounded": true}
	toWalk, err := component.CompileAdvanceExpression("grounded && speed > 0.1", params)
	require.NoError(t, err)

	sm, err := component.NewStateMachine("Arms", "idle",
		[]component.AnimationState{
			{Name: "idle", Length: 2, Loop: true},
			{Name: "walk", Length: 0.8, Loop: true},
			{Name: "fire", Length: 0.25},
			{Name: "reload", Length: 1.6},
			{Name: "inspect", Length: 2.4},
		},
		[]component.AnimationTransition{
			{From: "idle", To: "walk", AutoAdvance: true, Expression: toWalk},
			{From: "idle", To: "fire"},
			{From: "idle", To: "reload"},
			{From: "idle", To: "inspect"},
			{From: "fire", To: "idle", Switch: component.SwitchAtEnd, AutoAdvance: true},
			{From: "reload", To: "idle", Switch: component.SwitchAtEnd, AutoAdvance: true},
			{From: "inspect", To: "idle", Switch: component.SwitchAtEnd, AutoAdvance: true},
		})
	require.NoError(t, err)
	return &component.AnimationTree{
		Machines:   map[string]*component.StateMachine{"Arms": sm},
		Parameters: params,
		Active:     true,
	}
}

// attachRig gives the player a camera and weapon rig with an arm playback.
func attachRig(t *testing.T, w *ecs.World, f playerFixture) (*component.PlayerRefs, *component.Transform, *component.Transform) {
	t.Helper()
	camera := ecs.CreateEntity(w)
	camXform := addComponent(t, w, camera, component.TransformComponent.Kind(), &component.Transform{})
	rig := ecs.CreateEntity(w)
	rigXform := addComponent(t, w, rig, component.TransformComponent.Kind(), &component.Transform{})
	tree := addComponent(t, w, rig, component.AnimationTreeComponent.Kind(), armsTree(t))

	pb, err := tree.Playback(component.PlaybackPath("Arms"))
	require.NoError(t, err)
	refs := addComponent(t, w, f.entity, component.PlayerRefsComponent.Kind(), &component.PlayerRefs{
		Camera:        uint64(camera),
		WeaponRig:     uint64(rig),
		AnimationTree: uint64(rig),
		Arm:           pb,
	})
	return refs, camXform, rigXform
}
