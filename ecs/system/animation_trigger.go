package system

import (
	"github.com/milk9111/fpsplayer/ecs"
	"github.com/milk9111/fpsplayer/ecs/component"
	"github.com/rs/zerolog/log"
)

// AnimationTriggerSystem forwards fire/reload/inspect presses to the arm
// state machine as travel requests.
type AnimationTriggerSystem struct{}

func NewAnimationTriggerSystem() *AnimationTriggerSystem {
	return &AnimationTriggerSystem{}
}

func (a *AnimationTriggerSystem) Update(w *ecs.World) {
	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.PlayerRefsComponent.Kind(),
		func(e ecs.Entity, p *component.Player, in *component.Input, refs *component.PlayerRefs) {
			if !p.AnimationTriggers || refs.Arm == nil {
				return
			}
			if in.FirePressed {
				travel(e, refs.Arm, p.FireAnim)
			}
			if in.ReloadPressed {
				travel(e, refs.Arm, p.ReloadAnim)
			}
			if in.InspectPressed {
				travel(e, refs.Arm, p.InspectAnim)
			}
		})
}

func travel(e ecs.Entity, pb *component.Playback, state string) {
	if state == "" {
		return
	}
	if err := pb.Travel(state); err != nil {
		log.Warn().Err(err).Stringer("entity", e).Msg("animation: travel")
		return
	}
	log.Debug().Stringer("entity", e).Str("to", state).Strs("path", pb.TravelPath()).Msg("animation: travel")
}
