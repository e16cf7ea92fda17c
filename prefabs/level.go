package prefabs

import (
	"path"
	"strings"
)

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type WallSpec struct {
	X1        float64 `yaml:"x1"`
	Z1        float64 `yaml:"z1"`
	X2        float64 `yaml:"x2"`
	Z2        float64 `yaml:"z2"`
	Thickness float64 `yaml:"thickness"`
}

// LevelSpec is a flat arena: a floor height, a spawn point and wall segments
// on the horizontal plane.
type LevelSpec struct {
	Name   string     `yaml:"name"`
	FloorY float64    `yaml:"floor_y"`
	Spawn  Vec3Spec   `yaml:"spawn"`
	Walls  []WallSpec `yaml:"walls"`
}

// LoadLevel reads levels/<name>; the .yaml extension is optional.
func LoadLevel(name string) (LevelSpec, error) {
	name = strings.TrimPrefix(name, "levels/")
	if path.Ext(name) == "" {
		name += ".yaml"
	}
	return LoadSpec[LevelSpec]("levels/" + name)
}
