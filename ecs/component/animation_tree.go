package component

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var (
	ErrUnknownState    = errors.New("animation: unknown state")
	ErrUnknownPlayback = errors.New("animation: unknown playback path")
)

// SwitchMode controls when a transition fires once it has been chosen.
type SwitchMode int

const (
	SwitchImmediate SwitchMode = iota
	SwitchAtEnd
)

func ParseSwitchMode(s string) (SwitchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "immediate":
		return SwitchImmediate, nil
	case "at_end":
		return SwitchAtEnd, nil
	default:
		return SwitchImmediate, fmt.Errorf("animation: unknown switch mode %q", s)
	}
}

type AnimationState struct {
	Name string
	// Length of the clip in seconds.
	Length float64
	Loop   bool
}

type AnimationTransition struct {
	From        string
	To          string
	Switch      SwitchMode
	AutoAdvance bool
	Expression  *AdvanceExpression
}

// StateMachine is a graph of clip states. Its Playback is the only way to
// move between states.
type StateMachine struct {
	Name        string
	Start       string
	States      map[string]AnimationState
	Transitions []AnimationTransition

	playback *Playback
}

func NewStateMachine(name, start string, states []AnimationState, transitions []AnimationTransition) (*StateMachine, error) {
	sm := &StateMachine{
		Name:   name,
		Start:  start,
		States: make(map[string]AnimationState, len(states)),
	}
	for _, st := range states {
		if st.Name == "" {
			return nil, fmt.Errorf("state machine %q: state without name", name)
		}
		sm.States[st.Name] = st
	}
	if _, ok := sm.States[start]; !ok {
		return nil, fmt.Errorf("state machine %q: start %q: %w", name, start, ErrUnknownState)
	}
	for _, tr := range transitions {
		if _, ok := sm.States[tr.From]; !ok {
			return nil, fmt.Errorf("state machine %q: transition from %q: %w", name, tr.From, ErrUnknownState)
		}
		if _, ok := sm.States[tr.To]; !ok {
			return nil, fmt.Errorf("state machine %q: transition to %q: %w", name, tr.To, ErrUnknownState)
		}
		sm.Transitions = append(sm.Transitions, tr)
	}
	sm.playback = &Playback{machine: sm, current: start}
	return sm, nil
}

// Playback returns the machine's playback handle.
func (sm *StateMachine) Playback() *Playback {
	if sm == nil {
		return nil
	}
	return sm.playback
}

func (sm *StateMachine) transition(from, to string) (AnimationTransition, bool) {
	for _, tr := range sm.Transitions {
		if tr.From == from && tr.To == to {
			return tr, true
		}
	}
	return AnimationTransition{}, false
}

// path returns the states visited after from on the shortest transition chain to to.
func (sm *StateMachine) path(from, to string) ([]string, bool) {
	if from == to {
		return nil, true
	}
	prev := map[string]string{from: ""}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, tr := range sm.Transitions {
			if tr.From != cur {
				continue
			}
			if _, seen := prev[tr.To]; seen {
				continue
			}
			prev[tr.To] = cur
			if tr.To == to {
				var out []string
				for s := to; s != from; s = prev[s] {
					out = append(out, s)
				}
				for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
					out[i], out[j] = out[j], out[i]
				}
				return out, true
			}
			queue = append(queue, tr.To)
		}
	}
	return nil, false
}

// Playback drives a state machine: travel requests, clip time and automatic
// transitions.
type Playback struct {
	machine  *StateMachine
	current  string
	position float64
	path     []string
}

func (p *Playback) Current() string {
	if p == nil {
		return ""
	}
	return p.current
}

// Position is the time in seconds spent in the current clip.
func (p *Playback) Position() float64 {
	if p == nil {
		return 0
	}
	return p.position
}

// TravelPath returns the states still to be visited by the last Travel.
func (p *Playback) TravelPath() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.path...)
}

// Start jumps to state immediately and drops any pending travel.
func (p *Playback) Start(state string) error {
	if p == nil {
		return nil
	}
	if _, ok := p.machine.States[state]; !ok {
		return fmt.Errorf("start %q: %w", state, ErrUnknownState)
	}
	p.enter(state)
	p.path = nil
	return nil
}

// Travel requests a move to state along the shortest transition chain. When
// no chain exists the playback jumps straight to state.
func (p *Playback) Travel(state string) error {
	if p == nil {
		return nil
	}
	if _, ok := p.machine.States[state]; !ok {
		return fmt.Errorf("travel %q: %w", state, ErrUnknownState)
	}
	if state == p.current {
		p.path = nil
		return nil
	}
	path, ok := p.machine.path(p.current, state)
	if !ok {
		return p.Start(state)
	}
	p.path = path
	return nil
}

func (p *Playback) enter(state string) {
	p.current = state
	p.position = 0
}

func (p *Playback) atEnd() bool {
	st := p.machine.States[p.current]
	return st.Length <= 0 || p.position >= st.Length
}

// Advance moves clip time forward by dt seconds and takes at most one
// transition: the next travel step if one is pending, otherwise the first
// auto-advance transition whose expression holds.
func (p *Playback) Advance(dt float64, params map[string]any) (bool, error) {
	if p == nil || p.machine == nil {
		return false, nil
	}
	st := p.machine.States[p.current]
	p.position += dt
	if st.Loop && st.Length > 0 && p.position >= st.Length && len(p.path) == 0 {
		// looped clips never report their end to at_end transitions
		p.position = math.Mod(p.position, st.Length)
	} else if !st.Loop && st.Length > 0 && p.position > st.Length {
		p.position = st.Length
	}

	if len(p.path) > 0 {
		next := p.path[0]
		tr, ok := p.machine.transition(p.current, next)
		if !ok {
			p.path = nil
			return false, nil
		}
		if tr.Switch == SwitchAtEnd && !p.atEnd() {
			return false, nil
		}
		p.path = p.path[1:]
		p.enter(next)
		return true, nil
	}

	candidates := make([]AnimationTransition, 0, 2)
	for _, tr := range p.machine.Transitions {
		if tr.From == p.current && tr.AutoAdvance {
			candidates = append(candidates, tr)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		// expression-guarded transitions win over unconditional ones
		return candidates[i].Expression != nil && candidates[j].Expression == nil
	})
	for _, tr := range candidates {
		if tr.Switch == SwitchAtEnd && (st.Loop || !p.atEnd()) {
			continue
		}
		if tr.Expression != nil {
			ok, err := tr.Expression.Eval(params)
			if err != nil {
				return false, fmt.Errorf("advance %s -> %s: %w", tr.From, tr.To, err)
			}
			if !ok {
				continue
			}
		}
		p.enter(tr.To)
		return true, nil
	}
	return false, nil
}

// AnimationTree owns the named state machines of a node and the parameters
// their advance expressions read.
type AnimationTree struct {
	Machines   map[string]*StateMachine
	Parameters map[string]any
	Active     bool
}

// PlaybackPath is the lookup path of a machine's playback handle.
func PlaybackPath(machine string) string {
	return "parameters/" + machine + "/playback"
}

// Playback looks up a playback handle by its path.
func (t *AnimationTree) Playback(path string) (*Playback, error) {
	if t == nil {
		return nil, fmt.Errorf("%q: %w", path, ErrUnknownPlayback)
	}
	name, ok := strings.CutPrefix(path, "parameters/")
	if ok {
		name, ok = strings.CutSuffix(name, "/playback")
	}
	if !ok || name == "" {
		return nil, fmt.Errorf("%q: %w", path, ErrUnknownPlayback)
	}
	sm, ok := t.Machines[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", path, ErrUnknownPlayback)
	}
	return sm.Playback(), nil
}

// SetParameter stores a value read by advance expressions.
func (t *AnimationTree) SetParameter(name string, v any) {
	if t == nil {
		return
	}
	if t.Parameters == nil {
		t.Parameters = make(map[string]any)
	}
	t.Parameters[name] = v
}

var AnimationTreeComponent = NewComponent[AnimationTree]()
