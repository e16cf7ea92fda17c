package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/fpsplayer/ecs"
	"github.com/milk9111/fpsplayer/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeading(t *testing.T) {
	tests := []struct {
		yaw  float64
		want mgl64.Vec3
	}{
		{yaw: 0, want: mgl64.Vec3{0, 0, -1}},
		{yaw: 90, want: mgl64.Vec3{-1, 0, 0}},
		{yaw: 180, want: mgl64.Vec3{0, 0, 1}},
		{yaw: 270, want: mgl64.Vec3{1, 0, 0}},
	}
	for _, tt := range tests {
		// pitch never tilts the heading off the plane
		got := Heading(component.Transform{Rotation: mgl64.Vec3{0.7, mgl64.DegToRad(tt.yaw), 0}})
		assert.Truef(t, got.ApproxEqualThreshold(tt.want, 1e-9), "yaw %v: got %v", tt.yaw, got)
	}
}

func TestTopDownToScreen(t *testing.T) {
	v := topDown{originX: 640, originY: 360, centerX: 2, centerZ: -1, scale: 10}
	x, y := v.toScreen(2, -1)
	assert.Equal(t, float32(640), x)
	assert.Equal(t, float32(360), y)

	x, y = v.toScreen(3, -3)
	assert.Equal(t, float32(650), x)
	assert.Equal(t, float32(340), y)
}

func TestHUDText(t *testing.T) {
	w := ecs.NewWorld()
	assert.Contains(t, HUDText(w), "no player")

	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, e, component.LookComponent.Kind(), &component.Look{Pitch: -12.5, Yaw: 270}))
	require.NoError(t, ecs.Add(w, e, component.CharacterBodyComponent.Kind(), &component.CharacterBody{Grounded: true, Velocity: mgl64.Vec3{3, 0, 4}}))

	text := HUDText(w)
	assert.Contains(t, text, "Pitch:  -12.5")
	assert.Contains(t, text, "Yaw:  270.0")
	assert.Contains(t, text, "|h| 5.00")
	assert.Contains(t, text, "Grounded: true")
	assert.Contains(t, text, "Arms: -")
	assert.Contains(t, text, "Camera: -")

	cam := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, cam, component.TransformComponent.Kind(), &component.Transform{
		Position: mgl64.Vec3{0, 1.6, 0},
		Rotation: mgl64.Vec3{-math.Pi / 4, math.Pi / 2, 0},
	}))
	require.NoError(t, ecs.Add(w, e, component.PlayerRefsComponent.Kind(), &component.PlayerRefs{Camera: uint64(cam)}))
	assert.Contains(t, HUDText(w), "Camera:  -45.0   90.0  eye 1.60")
}

func TestDebugViewNilSafe(t *testing.T) {
	var d *DebugView
	assert.NotPanics(t, func() {
		d.SetScale(10)
		d.Draw(ecs.NewWorld(), nil)
	})
	view := NewDebugView(nil)
	view.SetScale(-1)
	assert.Equal(t, defaultPixelsPerMeter, view.scale)
}
