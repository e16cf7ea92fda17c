package component

import "github.com/jakecoffman/cp"

// Wall is a static collision segment on the horizontal plane, in x/z coordinates.
type Wall struct {
	X1, Z1    float64
	X2, Z2    float64
	Thickness float64

	Shape *cp.Shape
}

var WallComponent = NewComponent[Wall]()
