package entity

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/fpsplayer/common"
	"github.com/milk9111/fpsplayer/ecs"
	"github.com/milk9111/fpsplayer/ecs/component"
	"github.com/milk9111/fpsplayer/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"name":             addName,
	"player_tag":       addPlayerTag,
	"camera_tag":       addCameraTag,
	"weapon_rig_tag":   addWeaponRigTag,
	"player":           addPlayer,
	"input":            addInput,
	"look":             addLook,
	"transform":        addTransform,
	"character_body":   addCharacterBody,
	"animation_player": addAnimationPlayer,
	"animation_tree":   addAnimationTree,
}

var componentBuildOrder = []string{
	"name",
	"player_tag",
	"camera_tag",
	"weapon_rig_tag",
	"player",
	"input",
	"look",
	"transform",
	"character_body",
	"animation_player",
	"animation_tree",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildEntityFromSpec(w, prefabPath, spec)
}

// BuildEntityFromSpec creates an entity from an already decoded prefab. The
// entity is destroyed again if any component fails to build.
func BuildEntityFromSpec(w *ecs.World, prefabPath string, spec prefabs.EntityBuildSpec) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	names := make([]string, 0, len(spec.Components))
	for _, name := range componentBuildOrder {
		if _, ok := spec.Components[name]; ok {
			names = append(names, name)
		}
	}
	var extra []string
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			extra = append(extra, name)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, extra[0])
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}
	for _, name := range names {
		if err := componentRegistry[name](w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}
	return e, nil
}

func SetEntityPosition(w *ecs.World, e ecs.Entity, pos mgl64.Vec3) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t = &component.Transform{}
	}
	t.Position = pos
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addName(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.NameComponentSpec](raw)
	if err != nil {
		return err
	}
	if spec.Value == "" {
		return fmt.Errorf("name: empty value")
	}
	return ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Value})
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addWeaponRigTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.WeaponRigTagComponent.Kind(), &component.WeaponRigTag{})
}

func playerFromSpec(spec prefabs.PlayerComponentSpec) *component.Player {
	return &component.Player{
		Speed:                 spec.Speed,
		JumpVelocity:          spec.JumpVelocity,
		Deceleration:          spec.Deceleration,
		RotationSpeed:         spec.RotationSpeed,
		CameraRotationSpeed:   spec.CameraRotationSpeed,
		WeaponRotationSpeed:   spec.WeaponRotationSpeed,
		VerticalRotationLimit: spec.VerticalRotationLimit,
		CameraNode:            spec.CameraNode,
		WeaponRigNode:         spec.WeaponRigNode,
		AnimationPlayerNode:   spec.AnimationPlayer,
		AnimationTreeNode:     spec.AnimationTree,
		ArmPlaybackPath:       spec.ArmPlaybackPath,
		IdleAnim:              spec.IdleAnim,
		InspectAnim:           spec.InspectAnim,
		ReloadAnim:            spec.ReloadAnim,
		FireAnim:              spec.FireAnim,
		AnimationTriggers:     spec.AnimationTriggers,
	}
}

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PlayerComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), playerFromSpec(spec))
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addLook(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.LookComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.LookComponent.Kind(), &component.Look{
		Pitch: spec.Pitch,
		Yaw:   common.Wrap(spec.Yaw, 0, 360),
	})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: mgl64.Vec3{spec.X, spec.Y, spec.Z},
		Rotation: mgl64.Vec3{
			common.DegToRad(spec.Pitch),
			common.DegToRad(spec.Yaw),
			common.DegToRad(spec.Roll),
		},
	})
}

func addCharacterBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CharacterBodyComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.CharacterBodyComponent.Kind(), &component.CharacterBody{
		Radius: spec.Radius,
	})
}

func addAnimationPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AnimationPlayerComponentSpec](raw)
	if err != nil {
		return err
	}
	clips := make(map[string]component.AnimationClip, len(spec.Clips))
	for name, c := range spec.Clips {
		if c.Length < 0 {
			return fmt.Errorf("animation player: clip %q: negative length", name)
		}
		clips[name] = component.AnimationClip{Length: c.Length, Loop: c.Loop}
	}
	return ecs.Add(w, e, component.AnimationPlayerComponent.Kind(), &component.AnimationPlayer{Clips: clips})
}

func addAnimationTree(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AnimationTreeComponentSpec](raw)
	if err != nil {
		return err
	}
	tree, err := buildAnimationTree(spec)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.AnimationTreeComponent.Kind(), tree)
}

func buildAnimationTree(spec prefabs.AnimationTreeComponentSpec) (*component.AnimationTree, error) {
	tree := &component.AnimationTree{
		Machines:   make(map[string]*component.StateMachine, len(spec.Machines)),
		Parameters: make(map[string]any, len(spec.Parameters)),
		Active:     spec.Active == nil || *spec.Active,
	}
	for k, v := range spec.Parameters {
		tree.Parameters[k] = v
	}

	for _, ms := range spec.Machines {
		if _, dup := tree.Machines[ms.Name]; dup {
			return nil, fmt.Errorf("animation tree: duplicate machine %q", ms.Name)
		}
		states := make([]component.AnimationState, 0, len(ms.States))
		for _, st := range ms.States {
			states = append(states, component.AnimationState{Name: st.Name, Length: st.Length, Loop: st.Loop})
		}
		transitions := make([]component.AnimationTransition, 0, len(ms.Transitions))
		for _, ts := range ms.Transitions {
			mode, err := component.ParseSwitchMode(ts.Switch)
			if err != nil {
				return nil, err
			}
			tr := component.AnimationTransition{
				From:        ts.From,
				To:          ts.To,
				Switch:      mode,
				AutoAdvance: ts.AutoAdvance,
			}
			if ts.AdvanceExpression != "" {
				expr, err := component.CompileAdvanceExpression(ts.AdvanceExpression, tree.Parameters)
				if err != nil {
					return nil, err
				}
				tr.Expression = expr
			}
			transitions = append(transitions, tr)
		}
		sm, err := component.NewStateMachine(ms.Name, ms.Start, states, transitions)
		if err != nil {
			return nil, err
		}
		tree.Machines[ms.Name] = sm
	}
	return tree, nil
}
