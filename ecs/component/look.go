package component

// Look is the target rotation accumulated from mouse motion, in degrees.
// Pitch stays within the player's vertical limit and Yaw within [0, 360).
type Look struct {
	Pitch float64
	Yaw   float64
}

var LookComponent = NewComponent[Look]()
