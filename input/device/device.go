// Package device reads bound actions from ebiten.
package device

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/fpsplayer/input"
)

type binding struct {
	keys    []ebiten.Key
	buttons []ebiten.MouseButton
}

// Ebiten implements input.Source and input.CursorDriver on the running game.
type Ebiten struct {
	bindings map[input.Action]binding
}

var mouseButtons = map[string]ebiten.MouseButton{
	"mouseleft":   ebiten.MouseButtonLeft,
	"mouseright":  ebiten.MouseButtonRight,
	"mousemiddle": ebiten.MouseButtonMiddle,
}

func New(b input.Bindings) (*Ebiten, error) {
	d := &Ebiten{bindings: make(map[input.Action]binding, len(b))}
	for action, names := range b {
		var bind binding
		for _, name := range names {
			if btn, ok := mouseButtons[strings.ToLower(name)]; ok {
				bind.buttons = append(bind.buttons, btn)
				continue
			}
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("device: bind %s to %q: %w", action, name, err)
			}
			bind.keys = append(bind.keys, k)
		}
		d.bindings[action] = bind
	}
	return d, nil
}

func (d *Ebiten) Pressed(a input.Action) bool {
	bind := d.bindings[a]
	for _, k := range bind.keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, b := range bind.buttons {
		if ebiten.IsMouseButtonPressed(b) {
			return true
		}
	}
	return false
}

func (d *Ebiten) JustPressed(a input.Action) bool {
	bind := d.bindings[a]
	for _, k := range bind.keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	for _, b := range bind.buttons {
		if inpututil.IsMouseButtonJustPressed(b) {
			return true
		}
	}
	return false
}

func (d *Ebiten) CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (d *Ebiten) SetMouseMode(m input.MouseMode) {
	if m == input.MouseCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}
