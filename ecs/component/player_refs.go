package component

// PlayerRefs holds the node references a player resolves once at ready time.
// Entities are stored as raw handles because this package cannot import ecs.
type PlayerRefs struct {
	Camera          uint64
	WeaponRig       uint64
	AnimationPlayer uint64
	AnimationTree   uint64
	Arm             *Playback
}

var PlayerRefsComponent = NewComponent[PlayerRefs]()
