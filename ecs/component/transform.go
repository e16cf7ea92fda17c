package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is a node's local placement. Rotation holds Euler angles in
// radians: X is pitch, Y is yaw, Z is roll.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
}

// HorizontalBasis returns the yaw-only rotation of the transform.
func (t Transform) HorizontalBasis() mgl64.Mat3 {
	return mgl64.Rotate3DY(t.Rotation.Y())
}

var TransformComponent = NewComponent[Transform]()
