package component

// Name identifies a scene node so other components can reference it by string.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
