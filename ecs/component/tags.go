package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type WeaponRigTag struct{}

var WeaponRigTagComponent = NewComponent[WeaponRigTag]()

type WallTag struct{}

var WallTagComponent = NewComponent[WallTag]()
