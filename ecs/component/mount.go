package component

import "github.com/go-gl/mathgl/mgl64"

// Mount attaches a node to a parent entity: the node sits at the parent's
// position plus Offset. Rotation stays with the node.
type Mount struct {
	Parent uint64
	Offset mgl64.Vec3
}

var MountComponent = NewComponent[Mount]()
