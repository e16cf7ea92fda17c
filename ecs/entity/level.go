package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/fpsplayer/ecs"
	"github.com/milk9111/fpsplayer/ecs/component"
	"github.com/milk9111/fpsplayer/prefabs"
)

// Level is the result of loading a level into a world.
type Level struct {
	Name   string
	FloorY float64
	Spawn  mgl64.Vec3
	Walls  []ecs.Entity
}

func LoadLevel(w *ecs.World, name string) (*Level, error) {
	spec, err := prefabs.LoadLevel(name)
	if err != nil {
		return nil, fmt.Errorf("load level %q: %w", name, err)
	}
	return BuildLevel(w, spec)
}

func BuildLevel(w *ecs.World, spec prefabs.LevelSpec) (*Level, error) {
	lvl := &Level{
		Name:   spec.Name,
		FloorY: spec.FloorY,
		Spawn:  mgl64.Vec3{spec.Spawn.X, spec.Spawn.Y, spec.Spawn.Z},
	}
	if lvl.Spawn.Y() < lvl.FloorY {
		lvl.Spawn[1] = lvl.FloorY
	}

	for i, ws := range spec.Walls {
		if ws.X1 == ws.X2 && ws.Z1 == ws.Z2 {
			return nil, fmt.Errorf("level %q: wall %d has zero length", spec.Name, i)
		}
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.WallComponent.Kind(), &component.Wall{
			X1:        ws.X1,
			Z1:        ws.Z1,
			X2:        ws.X2,
			Z2:        ws.Z2,
			Thickness: ws.Thickness,
		}); err != nil {
			return nil, err
		}
		if err := ecs.Add(w, e, component.WallTagComponent.Kind(), &component.WallTag{}); err != nil {
			return nil, err
		}
		lvl.Walls = append(lvl.Walls, e)
	}
	return lvl, nil
}
