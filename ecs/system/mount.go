package system

import (
	"github.com/milk9111/fpsplayer/ecs"
	"github.com/milk9111/fpsplayer/ecs/component"
)

// MountSystem carries mounted nodes along with their parent. It runs after
// physics so the camera and weapon rig see this tick's player position.
type MountSystem struct{}

func NewMountSystem() *MountSystem {
	return &MountSystem{}
}

func (m *MountSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w,
		component.MountComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, mount *component.Mount, t *component.Transform) {
			FollowMount(w, mount, t)
		})
}

// FollowMount places t at the mount's offset from its parent. It reports
// false and leaves t alone when the parent is gone.
func FollowMount(w *ecs.World, mount *component.Mount, t *component.Transform) bool {
	parent, ok := ecs.Get(w, ecs.Entity(mount.Parent), component.TransformComponent.Kind())
	if !ok {
		return false
	}
	t.Position = parent.Position.Add(mount.Offset)
	return true
}
