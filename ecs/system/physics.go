package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fpsplayer/ecs"
	"github.com/milk9111/fpsplayer/ecs/component"
	"github.com/rs/zerolog/log"
)

const (
	collisionTypeWall cp.CollisionType = iota + 1
	collisionTypeCharacter
)

const (
	defaultCharacterRadius = 0.4
	slideIterations        = 4
	contactSkin            = 1e-4
	// maxSubsteps bounds the work of one tick. Past it a step may exceed
	// half a radius again.
	maxSubsteps = 256
)

// PhysicsSystem moves character bodies with collision. The horizontal plane
// (x, z) is a Chipmunk space; y is integrated against a flat floor.
type PhysicsSystem struct {
	space  *cp.Space
	floorY float64

	bodies map[ecs.Entity]*cp.Body
	walls  map[ecs.Entity]*cp.Shape
}

func NewPhysicsSystem(floorY float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	return &PhysicsSystem{
		space:  space,
		floorY: floorY,
		bodies: make(map[ecs.Entity]*cp.Body),
		walls:  make(map[ecs.Entity]*cp.Shape),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) FloorY() float64 {
	if ps == nil {
		return 0
	}
	return ps.floorY
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.syncWalls(w)
	ps.syncBodies(w)
	ps.moveAndSlide(w, w.Delta())
}

func (ps *PhysicsSystem) syncWalls(w *ecs.World) {
	seen := make(map[ecs.Entity]struct{}, len(ps.walls))
	ecs.ForEach(w, component.WallComponent.Kind(), func(e ecs.Entity, wall *component.Wall) {
		seen[e] = struct{}{}
		if wall.Shape != nil {
			return
		}
		radius := wall.Thickness / 2
		shape := cp.NewSegment(ps.space.StaticBody,
			cp.Vector{X: wall.X1, Y: wall.Z1},
			cp.Vector{X: wall.X2, Y: wall.Z2},
			radius)
		shape.SetFriction(0)
		shape.SetElasticity(0)
		shape.SetCollisionType(collisionTypeWall)
		ps.space.AddShape(shape)
		wall.Shape = shape
		ps.walls[e] = shape
	})
	for e, shape := range ps.walls {
		if _, ok := seen[e]; ok {
			continue
		}
		ps.space.RemoveShape(shape)
		delete(ps.walls, e)
	}
}

func (ps *PhysicsSystem) syncBodies(w *ecs.World) {
	seen := make(map[ecs.Entity]struct{}, len(ps.bodies))
	ecs.ForEach2(w,
		component.CharacterBodyComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, cb *component.CharacterBody, t *component.Transform) {
			seen[e] = struct{}{}
			if cb.Body != nil {
				return
			}
			radius := cb.Radius
			if radius <= 0 {
				radius = defaultCharacterRadius
			}
			body := cp.NewBody(1, math.Inf(1))
			body.SetPosition(cp.Vector{X: t.Position.X(), Y: t.Position.Z()})
			shape := cp.NewCircle(body, radius, cp.Vector{})
			shape.SetFriction(0)
			shape.SetElasticity(0)
			shape.SetCollisionType(collisionTypeCharacter)
			ps.space.AddBody(body)
			ps.space.AddShape(shape)
			cb.Body = body
			cb.Shape = shape
			ps.bodies[e] = body
			log.Debug().Stringer("entity", e).Float64("radius", radius).Msg("physics: character body added")
		})
	for e, body := range ps.bodies {
		if _, ok := seen[e]; ok {
			continue
		}
		body.EachShape(func(s *cp.Shape) {
			ps.space.RemoveShape(s)
		})
		ps.space.RemoveBody(body)
		delete(ps.bodies, e)
	}
}

// moveAndSlide displaces every character by its velocity for dt. Horizontal
// velocity comes back with the components blocked by walls removed, vertical
// motion stops at the floor, and Grounded reports floor contact.
func (ps *PhysicsSystem) moveAndSlide(w *ecs.World, dt float64) {
	if dt <= 0 {
		return
	}
	type pending struct {
		cb  *component.CharacterBody
		t   *component.Transform
		vel cp.Vector
	}
	var moved []pending
	steps := 1
	ecs.ForEach2(w,
		component.CharacterBodyComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, cb *component.CharacterBody, t *component.Transform) {
			if cb.Body == nil {
				return
			}
			// the transform is authoritative so teleports apply
			cb.Body.SetPosition(cp.Vector{X: t.Position.X(), Y: t.Position.Z()})
			vel := cp.Vector{X: cb.Velocity.X(), Y: cb.Velocity.Z()}
			steps = max(steps, substeps(vel.Length()*dt, cb.Shape))
			moved = append(moved, pending{cb: cb, t: t, vel: vel})
		})
	if len(moved) == 0 {
		return
	}

	h := dt / float64(steps)
	for i := 0; i < steps; i++ {
		for _, m := range moved {
			m.cb.Body.SetVelocityVector(m.vel)
		}
		ps.space.Step(h)
		for j := range moved {
			moved[j].vel = ps.slide(moved[j].cb.Body, moved[j].cb.Shape, moved[j].vel)
		}
	}

	for _, m := range moved {
		vel := m.vel
		pos := m.cb.Body.Position()
		m.cb.Body.SetVelocityVector(vel)
		m.t.Position[0] = pos.X
		m.t.Position[2] = pos.Y
		m.cb.Velocity[0] = vel.X
		m.cb.Velocity[2] = vel.Y

		y := m.t.Position.Y() + m.cb.Velocity.Y()*dt
		if y <= ps.floorY {
			y = ps.floorY
			if m.cb.Velocity.Y() < 0 {
				m.cb.Velocity[1] = 0
			}
			m.cb.Grounded = true
		} else {
			m.cb.Grounded = false
		}
		m.t.Position[1] = y
	}
}

// substeps splits a horizontal displacement so no single step moves a body
// further than half its radius. The body centre then stays on its side of a
// zero-thickness wall and depenetration pushes it back the way it came.
func substeps(dist float64, shape *cp.Shape) int {
	radius := defaultCharacterRadius
	if shape != nil {
		if c, ok := shape.Class.(*cp.Circle); ok && c.Radius() > 0 {
			radius = c.Radius()
		}
	}
	limit := radius / 2
	if dist <= limit {
		return 1
	}
	return min(int(math.Ceil(dist/limit)), maxSubsteps)
}

// slide pushes body out of any wall it overlaps after the step and removes
// the part of vel that points into those walls.
func (ps *PhysicsSystem) slide(body *cp.Body, shape *cp.Shape, vel cp.Vector) cp.Vector {
	if shape == nil {
		return vel
	}
	for i := 0; i < slideIterations; i++ {
		var push cp.Vector
		hit := false
		ps.space.ShapeQuery(shape, func(other *cp.Shape, set *cp.ContactPointSet) {
			if other.Body() != ps.space.StaticBody {
				return
			}
			deepest := 0.0
			for j := 0; j < set.Count; j++ {
				deepest = math.Min(deepest, set.Points[j].Distance)
			}
			if deepest >= 0 {
				return
			}
			hit = true
			// the normal points from the character into the wall
			push = push.Add(set.Normal.Mult(deepest - contactSkin))
			if into := vel.Dot(set.Normal); into > 0 {
				vel = vel.Sub(set.Normal.Mult(into))
			}
		})
		if !hit {
			break
		}
		body.SetPosition(body.Position().Add(push))
	}
	return vel
}
