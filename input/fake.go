package input

// Fake is a scripted Source and CursorDriver.
type Fake struct {
	Held  map[Action]bool
	Just  map[Action]bool
	X, Y  float64
	Modes []MouseMode
}

func NewFake() *Fake {
	return &Fake{Held: map[Action]bool{}, Just: map[Action]bool{}}
}

func (f *Fake) Pressed(a Action) bool { return f.Held[a] || f.Just[a] }

func (f *Fake) JustPressed(a Action) bool { return f.Just[a] }

func (f *Fake) CursorPosition() (float64, float64) { return f.X, f.Y }

func (f *Fake) SetMouseMode(m MouseMode) { f.Modes = append(f.Modes, m) }

// Press marks a as pressed on this tick and held afterwards.
func (f *Fake) Press(a Action) {
	f.Just[a] = true
	f.Held[a] = true
}

func (f *Fake) Release(a Action) {
	delete(f.Held, a)
	delete(f.Just, a)
}

// EndTick clears just-pressed edges.
func (f *Fake) EndTick() {
	f.Just = map[Action]bool{}
}

func (f *Fake) MoveCursor(dx, dy float64) {
	f.X += dx
	f.Y += dy
}
