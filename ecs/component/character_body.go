package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// CharacterBody is a kinematic character moved by MoveAndSlide. The horizontal
// plane is simulated by Chipmunk; Y is integrated against the floor height.
type CharacterBody struct {
	Velocity mgl64.Vec3
	Grounded bool
	Radius   float64

	Body  *cp.Body
	Shape *cp.Shape
}

var CharacterBodyComponent = NewComponent[CharacterBody]()
