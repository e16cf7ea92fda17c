package input

import "github.com/rs/zerolog/log"

type MouseMode int

const (
	MouseVisible MouseMode = iota
	MouseCaptured
)

func (m MouseMode) String() string {
	switch m {
	case MouseCaptured:
		return "captured"
	default:
		return "visible"
	}
}

// CursorDriver applies a mouse mode to the host window.
type CursorDriver interface {
	SetMouseMode(m MouseMode)
}

// Context is the input state shared by systems: the mouse mode, the quit
// request and the relative mouse motion of the current tick.
type Context struct {
	src    Source
	driver CursorDriver

	mode MouseMode
	quit bool

	lastX, lastY float64
	hasLast      bool
	motionX      float64
	motionY      float64
}

func NewContext(src Source, driver CursorDriver) *Context {
	return &Context{src: src, driver: driver, mode: MouseVisible}
}

func (c *Context) Source() Source {
	if c == nil {
		return nil
	}
	return c.src
}

func (c *Context) MouseMode() MouseMode {
	if c == nil {
		return MouseVisible
	}
	return c.mode
}

func (c *Context) Captured() bool {
	return c.MouseMode() == MouseCaptured
}

func (c *Context) SetMouseMode(m MouseMode) {
	if c == nil {
		return
	}
	if c.mode != m {
		log.Debug().Stringer("from", c.mode).Stringer("to", m).Msg("input: mouse mode")
		// motion polled under the old mode is void and the cursor may jump on
		// the switch, so the next Poll starts from a fresh sample
		c.motionX, c.motionY = 0, 0
	}
	c.mode = m
	c.hasLast = false
	if c.driver != nil {
		c.driver.SetMouseMode(m)
	}
}

func (c *Context) Capture() { c.SetMouseMode(MouseCaptured) }

func (c *Context) Release() { c.SetMouseMode(MouseVisible) }

// ToggleMouseMode captures a visible mouse and releases a captured one.
func (c *Context) ToggleMouseMode() {
	if c.MouseMode() == MouseVisible {
		c.Capture()
		return
	}
	c.Release()
}

func (c *Context) RequestQuit() {
	if c == nil {
		return
	}
	c.quit = true
}

func (c *Context) QuitRequested() bool {
	return c != nil && c.quit
}

// Poll samples the cursor and computes this tick's relative motion.
func (c *Context) Poll() {
	if c == nil || c.src == nil {
		return
	}
	x, y := c.src.CursorPosition()
	if c.hasLast {
		c.motionX = x - c.lastX
		c.motionY = y - c.lastY
	} else {
		c.motionX, c.motionY = 0, 0
	}
	c.lastX, c.lastY = x, y
	c.hasLast = true
}

// Motion returns the relative cursor motion measured by the last Poll.
func (c *Context) Motion() (dx, dy float64) {
	if c == nil {
		return 0, 0
	}
	return c.motionX, c.motionY
}

func (c *Context) JustPressed(a Action) bool {
	return c != nil && c.src != nil && c.src.JustPressed(a)
}
