package component

import (
	"errors"
	"fmt"
)

var ErrUnknownClip = errors.New("animation: unknown clip")

type AnimationClip struct {
	// Length in seconds.
	Length float64
	Loop   bool
}

// AnimationPlayer is a node's clip library. Tree states play the clip of the
// same name.
type AnimationPlayer struct {
	Clips map[string]AnimationClip
}

func (ap *AnimationPlayer) Clip(name string) (AnimationClip, error) {
	if ap == nil {
		return AnimationClip{}, fmt.Errorf("%q: %w", name, ErrUnknownClip)
	}
	clip, ok := ap.Clips[name]
	if !ok {
		return AnimationClip{}, fmt.Errorf("%q: %w", name, ErrUnknownClip)
	}
	return clip, nil
}

// BindClips copies clip timing onto every tree state named after a clip and
// returns how many states were bound. Other states keep their own timing.
func (t *AnimationTree) BindClips(ap *AnimationPlayer) int {
	if t == nil || ap == nil {
		return 0
	}
	bound := 0
	for _, sm := range t.Machines {
		for name, st := range sm.States {
			clip, ok := ap.Clips[name]
			if !ok {
				continue
			}
			st.Length, st.Loop = clip.Length, clip.Loop
			sm.States[name] = st
			bound++
		}
	}
	return bound
}

var AnimationPlayerComponent = NewComponent[AnimationPlayer]()
