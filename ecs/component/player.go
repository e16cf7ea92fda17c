package component

// Player holds the tuning of a first-person character. Values are consumed
// verbatim from the prefab.
type Player struct {
	Speed        float64
	JumpVelocity float64
	// Deceleration is the horizontal slow-down rate in units/s. Zero steps
	// velocity toward rest by Speed every tick.
	Deceleration float64

	// RotationSpeed is mouse sensitivity in degrees per pixel.
	RotationSpeed         float64
	CameraRotationSpeed   float64
	WeaponRotationSpeed   float64
	VerticalRotationLimit float64

	CameraNode    string
	WeaponRigNode string

	// AnimationPlayerNode names the clip library the tree states play from.
	AnimationPlayerNode string
	AnimationTreeNode   string
	ArmPlaybackPath     string
	IdleAnim            string
	InspectAnim         string
	ReloadAnim          string
	FireAnim            string
	// AnimationTriggers enables the fire/reload/inspect travel requests.
	AnimationTriggers bool
}

var PlayerComponent = NewComponent[Player]()
