package input

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Action is a named, engine-routed input.
type Action string

const (
	ActionExit         Action = "EXIT"
	ActionQuit         Action = "QUIT"
	ActionFire         Action = "FIRE"
	ActionReload       Action = "RELOAD"
	ActionInspect      Action = "INSPECT"
	ActionJump         Action = "JUMP"
	ActionMoveLeft     Action = "MOVE_LEFT"
	ActionMoveRight    Action = "MOVE_RIGHT"
	ActionMoveForward  Action = "MOVE_FORWARD"
	ActionMoveBackward Action = "MOVE_BACKWARD"
)

var allActions = []Action{
	ActionExit,
	ActionQuit,
	ActionFire,
	ActionReload,
	ActionInspect,
	ActionJump,
	ActionMoveLeft,
	ActionMoveRight,
	ActionMoveForward,
	ActionMoveBackward,
}

func ParseAction(s string) (Action, error) {
	a := Action(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range allActions {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("input: unknown action %q", s)
}

// Bindings maps actions to device inputs. Names are ebiten key names
// ("W", "Space", "Escape") or mouse buttons ("MouseLeft", "MouseRight").
type Bindings map[Action][]string

func DefaultBindings() Bindings {
	return Bindings{
		ActionExit:         {"Escape"},
		ActionQuit:         {"F12"},
		ActionFire:         {"MouseLeft"},
		ActionReload:       {"R"},
		ActionInspect:      {"F"},
		ActionJump:         {"Space"},
		ActionMoveLeft:     {"A", "ArrowLeft"},
		ActionMoveRight:    {"D", "ArrowRight"},
		ActionMoveForward:  {"W", "ArrowUp"},
		ActionMoveBackward: {"S", "ArrowDown"},
	}
}

// Merge returns a copy of b with every action in override replaced.
func (b Bindings) Merge(override Bindings) Bindings {
	out := make(Bindings, len(b)+len(override))
	for a, names := range b {
		out[a] = append([]string(nil), names...)
	}
	for a, names := range override {
		out[a] = append([]string(nil), names...)
	}
	return out
}

// ParseBindings converts raw yaml bindings keyed by action name.
func ParseBindings(raw map[string][]string) (Bindings, error) {
	out := make(Bindings, len(raw))
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		out[a] = append([]string(nil), raw[name]...)
	}
	return out, nil
}

// Source reports the raw state of bound actions and the cursor.
type Source interface {
	Pressed(a Action) bool
	JustPressed(a Action) bool
	CursorPosition() (x, y float64)
}

func strength(src Source, a Action) float64 {
	if src.Pressed(a) {
		return 1
	}
	return 0
}

// Vector builds a 2D direction from four actions. Its length never exceeds 1.
func Vector(src Source, negX, posX, negY, posY Action) (x, y float64) {
	if src == nil {
		return 0, 0
	}
	x = strength(src, posX) - strength(src, negX)
	y = strength(src, posY) - strength(src, negY)
	if l := math.Hypot(x, y); l > 1 {
		x /= l
		y /= l
	}
	return x, y
}
