package system

import (
	"math"
	"sort"

	"github.com/milk9111/fpsplayer/ecs"
	"github.com/milk9111/fpsplayer/ecs/component"
	"github.com/rs/zerolog/log"
)

// AnimationSystem feeds character state into animation tree parameters and
// advances every active state machine by one tick.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach2(w,
		component.CharacterBodyComponent.Kind(),
		component.PlayerRefsComponent.Kind(),
		func(e ecs.Entity, body *component.CharacterBody, refs *component.PlayerRefs) {
			tree, ok := ecs.Get(w, ecs.Entity(refs.AnimationTree), component.AnimationTreeComponent.Kind())
			if !ok {
				return
			}
			tree.SetParameter("speed", math.Hypot(body.Velocity.X(), body.Velocity.Z()))
			tree.SetParameter("vertical_speed", body.Velocity.Y())
			tree.SetParameter("grounded", body.Grounded)
		})

	ecs.ForEach(w, component.AnimationTreeComponent.Kind(), func(e ecs.Entity, tree *component.AnimationTree) {
		if !tree.Active {
			return
		}
		names := make([]string, 0, len(tree.Machines))
		for name := range tree.Machines {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			pb := tree.Machines[name].Playback()
			from := pb.Current()
			changed, err := pb.Advance(dt, tree.Parameters)
			if err != nil {
				log.Warn().Err(err).Stringer("entity", e).Str("machine", name).Msg("animation: advance")
				continue
			}
			if changed {
				log.Debug().Stringer("entity", e).Str("machine", name).Str("from", from).Str("to", pb.Current()).Msg("animation: state")
			}
		}
	})
}
