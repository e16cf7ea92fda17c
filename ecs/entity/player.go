package entity

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/fpsplayer/common"
	"github.com/milk9111/fpsplayer/ecs"
	"github.com/milk9111/fpsplayer/ecs/component"
	"github.com/milk9111/fpsplayer/input"
	"github.com/milk9111/fpsplayer/prefabs"
	"github.com/rs/zerolog/log"
)

var ErrNodeNotFound = errors.New("node not found")

// PlayerOptions describes the scene a player is readied into.
type PlayerOptions struct {
	// Prefab is the player prefab, Nodes the prefabs its references point at.
	Prefab string
	Nodes  []string
	Spawn  mgl64.Vec3
	// Input receives the mouse capture request. Nil skips capturing.
	Input *input.Context
}

// NewPlayer builds the player and its node prefabs, then readies the player.
// Any failure destroys what was built.
func NewPlayer(w *ecs.World, opts PlayerOptions) (ecs.Entity, error) {
	var built []ecs.Entity
	fail := func(err error) (ecs.Entity, error) {
		for _, e := range built {
			ecs.DestroyEntity(w, e)
		}
		return 0, err
	}

	for _, node := range opts.Nodes {
		e, err := BuildEntity(w, node)
		if err != nil {
			return fail(err)
		}
		built = append(built, e)
	}

	player, err := BuildEntity(w, opts.Prefab)
	if err != nil {
		return fail(err)
	}
	built = append(built, player)

	if err := SetEntityPosition(w, player, opts.Spawn); err != nil {
		return fail(err)
	}
	if err := ReadyPlayer(w, player, opts.Input); err != nil {
		return fail(err)
	}
	return player, nil
}

// ReadyPlayer resolves the player's node references, starts the arm playback
// at the idle clip and captures the mouse.
func ReadyPlayer(w *ecs.World, player ecs.Entity, ctx *input.Context) error {
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return fmt.Errorf("ready player %v: missing player component", player)
	}

	refs := &component.PlayerRefs{}

	camera, err := resolveNode(w, p.CameraNode)
	if err != nil {
		return fmt.Errorf("ready player: camera: %w", err)
	}
	refs.Camera = uint64(camera)

	rig, err := resolveNode(w, p.WeaponRigNode)
	if err != nil {
		return fmt.Errorf("ready player: weapon rig: %w", err)
	}
	refs.WeaponRig = uint64(rig)

	var library *component.AnimationPlayer
	if p.AnimationPlayerNode != "" {
		libEntity, err := resolveNode(w, p.AnimationPlayerNode)
		if err != nil {
			return fmt.Errorf("ready player: animation player: %w", err)
		}
		var ok bool
		library, ok = ecs.Get(w, libEntity, component.AnimationPlayerComponent.Kind())
		if !ok {
			return fmt.Errorf("ready player: node %q has no animation player: %w", p.AnimationPlayerNode, ErrNodeNotFound)
		}
		for _, clip := range []string{p.IdleAnim, p.FireAnim, p.ReloadAnim, p.InspectAnim} {
			if clip == "" {
				continue
			}
			if _, err := library.Clip(clip); err != nil {
				return fmt.Errorf("ready player: %w", err)
			}
		}
		refs.AnimationPlayer = uint64(libEntity)
	}

	if p.AnimationTreeNode != "" {
		treeEntity, err := resolveNode(w, p.AnimationTreeNode)
		if err != nil {
			return fmt.Errorf("ready player: animation tree: %w", err)
		}
		tree, ok := ecs.Get(w, treeEntity, component.AnimationTreeComponent.Kind())
		if !ok {
			return fmt.Errorf("ready player: node %q has no animation tree: %w", p.AnimationTreeNode, ErrNodeNotFound)
		}
		refs.AnimationTree = uint64(treeEntity)
		tree.BindClips(library)

		if p.ArmPlaybackPath != "" {
			pb, err := tree.Playback(p.ArmPlaybackPath)
			if err != nil {
				return fmt.Errorf("ready player: %w", err)
			}
			if p.IdleAnim != "" {
				if err := pb.Start(p.IdleAnim); err != nil {
					return fmt.Errorf("ready player: idle: %w", err)
				}
			}
			refs.Arm = pb
		}
	}

	if p.AnimationTriggers && refs.Arm == nil {
		return fmt.Errorf("ready player: animation triggers need a playback path: %w", component.ErrUnknownPlayback)
	}

	for _, node := range []ecs.Entity{camera, rig} {
		if err := mountNode(w, node, player); err != nil {
			return fmt.Errorf("ready player: %w", err)
		}
	}

	if err := ecs.Add(w, player, component.PlayerRefsComponent.Kind(), refs); err != nil {
		return fmt.Errorf("ready player: %w", err)
	}

	if ctx != nil {
		ctx.Capture()
	}

	log.Info().
		Stringer("player", player).
		Stringer("camera", camera).
		Stringer("weapon_rig", rig).
		Bool("triggers", p.AnimationTriggers).
		Msg("player ready")
	return nil
}

// mountNode attaches node to parent. The node's prefab position becomes its
// offset from the parent; a node mounted before keeps its first offset.
func mountNode(w *ecs.World, node, parent ecs.Entity) error {
	t, ok := ecs.Get(w, node, component.TransformComponent.Kind())
	if !ok {
		t = &component.Transform{}
		if err := ecs.Add(w, node, component.TransformComponent.Kind(), t); err != nil {
			return err
		}
	}
	offset := t.Position
	if m, ok := ecs.Get(w, node, component.MountComponent.Kind()); ok {
		offset = m.Offset
	}
	if pt, ok := ecs.Get(w, parent, component.TransformComponent.Kind()); ok {
		t.Position = pt.Position.Add(offset)
	}
	return ecs.Add(w, node, component.MountComponent.Kind(), &component.Mount{Parent: uint64(parent), Offset: offset})
}

func resolveNode(w *ecs.World, name string) (ecs.Entity, error) {
	if name == "" {
		return 0, fmt.Errorf("empty node name: %w", ErrNodeNotFound)
	}
	e, ok := ecs.FindByName(w, name)
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrNodeNotFound)
	}
	return e, nil
}

// ApplyPlayerTuning reloads the player prefab and copies its tuning onto the
// live player. Node references stay as they were resolved at ready time.
func ApplyPlayerTuning(w *ecs.World, player ecs.Entity, prefabPath string) error {
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return fmt.Errorf("apply tuning: %v: missing player component", player)
	}
	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return fmt.Errorf("apply tuning: %w", err)
	}
	raw, ok := spec.Components["player"]
	if !ok {
		return fmt.Errorf("apply tuning: %q has no player component", prefabPath)
	}
	ps, err := prefabs.DecodeComponentSpec[prefabs.PlayerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("apply tuning: %w", err)
	}
	next := playerFromSpec(ps)

	p.Speed = next.Speed
	p.JumpVelocity = next.JumpVelocity
	p.Deceleration = next.Deceleration
	p.RotationSpeed = next.RotationSpeed
	p.CameraRotationSpeed = next.CameraRotationSpeed
	p.WeaponRotationSpeed = next.WeaponRotationSpeed
	p.VerticalRotationLimit = next.VerticalRotationLimit
	p.IdleAnim = next.IdleAnim
	p.InspectAnim = next.InspectAnim
	p.ReloadAnim = next.ReloadAnim
	p.FireAnim = next.FireAnim
	if refs, ok := ecs.Get(w, player, component.PlayerRefsComponent.Kind()); ok && refs.Arm != nil {
		p.AnimationTriggers = next.AnimationTriggers
	}

	if look, ok := ecs.Get(w, player, component.LookComponent.Kind()); ok {
		limit := p.VerticalRotationLimit
		if limit < 0 {
			limit = -limit
		}
		look.Pitch = common.Clamp(look.Pitch, -limit, limit)
	}

	log.Info().Str("prefab", prefabPath).Float64("speed", p.Speed).Msg("player tuning reloaded")
	return nil
}
