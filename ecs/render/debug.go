package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/fpsplayer/common"
	"github.com/milk9111/fpsplayer/ecs"
	"github.com/milk9111/fpsplayer/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	defaultPixelsPerMeter = 24.0
	facingLength          = 1.5
	crosshairSize         = 8
	hudX, hudY            = 10, 10
)

// DebugView draws the world from above, centred on the player: the physics
// space, the camera and weapon rig headings and the character velocity.
type DebugView struct {
	space *cp.Space
	scale float64
	hud   bool
}

func NewDebugView(space *cp.Space) *DebugView {
	return &DebugView{space: space, scale: defaultPixelsPerMeter}
}

func (d *DebugView) SetScale(pixelsPerMeter float64) {
	if d == nil || pixelsPerMeter <= 0 {
		return
	}
	d.scale = pixelsPerMeter
}

// SetHUD toggles the text overlay.
func (d *DebugView) SetHUD(on bool) {
	if d == nil {
		return
	}
	d.hud = on
}

func (d *DebugView) Draw(w *ecs.World, screen *ebiten.Image) {
	if d == nil || w == nil || screen == nil {
		return
	}

	view := topDown{
		originX: float64(common.BaseWidth) / 2,
		originY: float64(common.BaseHeight) / 2,
		scale:   d.scale,
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if ok {
		if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			view.centerX, view.centerZ = t.Position.X(), t.Position.Z()
		}
	}

	if d.space != nil {
		cp.DrawSpace(d.space, &spaceDrawer{screen: screen, view: view})
	}

	if ok {
		d.drawPlayer(w, player, view, screen)
	}
	drawCrosshair(screen)
	if d.hud {
		ebitenutil.DebugPrintAt(screen, HUDText(w), hudX, hudY)
	}
}

func (d *DebugView) drawPlayer(w *ecs.World, player ecs.Entity, view topDown, screen *ebiten.Image) {
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	origin := t.Position

	if body, ok := ecs.Get(w, player, component.CharacterBodyComponent.Kind()); ok {
		tip := origin.Add(mgl64.Vec3{body.Velocity.X(), 0, body.Velocity.Z()}.Mul(0.25))
		view.line(screen, origin, tip, colornames.Cyan)
	}

	refs, ok := ecs.Get(w, player, component.PlayerRefsComponent.Kind())
	if !ok {
		return
	}
	if cam, ok := ecs.Get(w, ecs.Entity(refs.Camera), component.TransformComponent.Kind()); ok {
		view.line(screen, origin, origin.Add(Heading(*cam).Mul(facingLength)), colornames.Yellow)
	}
	if rig, ok := ecs.Get(w, ecs.Entity(refs.WeaponRig), component.TransformComponent.Kind()); ok {
		view.line(screen, origin, origin.Add(Heading(*rig).Mul(facingLength*0.75)), colornames.Orange)
	}
}

// Heading is the horizontal forward (-z) direction of a transform.
func Heading(t component.Transform) mgl64.Vec3 {
	return t.HorizontalBasis().Mul3x1(mgl64.Vec3{0, 0, -1})
}

// HUDText summarises the player state for the debug overlay.
func HUDText(w *ecs.World) string {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return fmt.Sprintf("TPS: %.1f  FPS: %.1f\nno player", ebiten.ActualTPS(), ebiten.ActualFPS())
	}

	pitch, yaw := 0.0, 0.0
	if look, ok := ecs.Get(w, player, component.LookComponent.Kind()); ok {
		pitch, yaw = look.Pitch, look.Yaw
	}
	var vel mgl64.Vec3
	grounded := false
	if body, ok := ecs.Get(w, player, component.CharacterBodyComponent.Kind()); ok {
		vel = body.Velocity
		grounded = body.Grounded
	}
	anim := "-"
	camera := "-"
	if refs, ok := ecs.Get(w, player, component.PlayerRefsComponent.Kind()); ok {
		if refs.Arm != nil {
			anim = refs.Arm.Current()
			if path := refs.Arm.TravelPath(); len(path) > 0 {
				anim += fmt.Sprintf(" -> %v", path)
			}
		}
		if cam, ok := ecs.Get(w, ecs.Entity(refs.Camera), component.TransformComponent.Kind()); ok {
			camera = fmt.Sprintf("%6.1f %6.1f  eye %.2f",
				common.RadToDeg(cam.Rotation.X()), common.RadToDeg(cam.Rotation.Y()), cam.Position.Y())
		}
	}
	return fmt.Sprintf("TPS: %.1f  FPS: %.1f\nPitch: %6.1f  Yaw: %6.1f\nCamera: %s\nVelocity: (%.2f, %.2f, %.2f)  |h| %.2f\nGrounded: %v\nArms: %s",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		pitch, yaw,
		camera,
		vel.X(), vel.Y(), vel.Z(), math.Hypot(vel.X(), vel.Z()),
		grounded,
		anim)
}

func drawCrosshair(screen *ebiten.Image) {
	cx := float32(common.BaseWidth) / 2
	cy := float32(common.BaseHeight) / 2
	vector.FillRect(screen, cx-crosshairSize, cy-1, crosshairSize*2, 2, colornames.White, false)
	vector.FillRect(screen, cx-1, cy-crosshairSize, 2, crosshairSize*2, colornames.White, false)
}

// topDown maps the x/z plane to screen space; -z is up.
type topDown struct {
	originX, originY float64
	centerX, centerZ float64
	scale            float64
}

func (v topDown) toScreen(x, z float64) (float32, float32) {
	return float32(v.originX + (x-v.centerX)*v.scale), float32(v.originY + (z-v.centerZ)*v.scale)
}

func (v topDown) line(screen *ebiten.Image, a, b mgl64.Vec3, clr color.Color) {
	x1, y1 := v.toScreen(a.X(), a.Z())
	x2, y2 := v.toScreen(b.X(), b.Z())
	vector.StrokeLine(screen, x1, y1, x2, y2, 2, clr, true)
}
