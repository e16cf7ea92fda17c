package component

// Input stores the per-tick input snapshot for an entity.
type Input struct {
	// MoveX/MoveY is the directional vector, x to the right and y backward.
	MoveX float64
	MoveY float64

	// MotionX/MotionY is the relative mouse motion since the previous tick, in pixels.
	MotionX float64
	MotionY float64

	JumpPressed    bool
	FirePressed    bool
	ReloadPressed  bool
	InspectPressed bool
}

var InputComponent = NewComponent[Input]()
