package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fpsplayer/ecs"
	"github.com/milk9111/fpsplayer/ecs/component"
	"github.com/milk9111/fpsplayer/input"
	"github.com/milk9111/fpsplayer/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, cfg Config) (*Game, *input.Fake) {
	t.Helper()
	prev := prefabs.DiskDir()
	prefabs.SetDiskDir("")
	t.Cleanup(func() { prefabs.SetDiskDir(prev) })

	settings, err := prefabs.LoadProjectSettings()
	require.NoError(t, err)

	fake := input.NewFake()
	g, err := NewGame(cfg, settings, fake, fake)
	require.NoError(t, err)
	t.Cleanup(g.Close)
	return g, fake
}

func tick(t *testing.T, g *Game, fake *input.Fake, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, g.Update())
		fake.EndTick()
	}
}

func TestNewGameReadiesPlayer(t *testing.T) {
	g, fake := newTestGame(t, Config{})

	assert.Equal(t, 60, g.TPS())
	assert.InDelta(t, 1.0/60, g.World().Delta(), 1e-12)
	assert.True(t, g.input.Captured())
	assert.Equal(t, []input.MouseMode{input.MouseCaptured}, fake.Modes)

	refs, ok := ecs.Get(g.World(), g.Player(), component.PlayerRefsComponent.Kind())
	require.True(t, ok)
	require.NotNil(t, refs.Arm)
	assert.Equal(t, "idle", refs.Arm.Current())
	assert.Equal(t, "range", g.level.Name)
}

func TestNewGameOptions(t *testing.T) {
	g, fake := newTestGame(t, Config{NoCapture: true, TPS: 120})
	assert.Equal(t, 120, g.TPS())
	assert.InDelta(t, 1.0/120, g.World().Delta(), 1e-12)
	assert.False(t, g.input.Captured())
	assert.Empty(t, fake.Modes)
}

func TestNewGameUnknownLevel(t *testing.T) {
	prefabs.SetDiskDir("")
	t.Cleanup(func() { prefabs.SetDiskDir("prefabs") })
	settings, err := prefabs.LoadProjectSettings()
	require.NoError(t, err)

	fake := input.NewFake()
	_, err = NewGame(Config{Level: "moon"}, settings, fake, fake)
	assert.Error(t, err)
}

func TestGameWalksForward(t *testing.T) {
	g, fake := newTestGame(t, Config{})
	fake.Press(input.ActionMoveForward)

	tick(t, g, fake, 60)

	xf, ok := ecs.Get(g.World(), g.Player(), component.TransformComponent.Kind())
	require.True(t, ok)
	assert.InDelta(t, -5, xf.Position.Z(), 0.2)
	assert.InDelta(t, 0, xf.Position.X(), 1e-6)
	assert.Equal(t, 0.0, xf.Position.Y())

	body, _ := ecs.Get(g.World(), g.Player(), component.CharacterBodyComponent.Kind())
	assert.True(t, body.Grounded)

	camera, ok := ecs.FindByName(g.World(), "Camera")
	require.True(t, ok)
	camXform, _ := ecs.Get(g.World(), camera, component.TransformComponent.Kind())
	assert.True(t, camXform.Position.ApproxEqualThreshold(xf.Position.Add(mgl64.Vec3{0, 1.6, 0}), 1e-9),
		"camera rides with the player: %v", camXform.Position)

	fake.Release(input.ActionMoveForward)
	tick(t, g, fake, 1)
	assert.Zero(t, body.Velocity.Z())
}

func TestGameMouseLookTurnsCamera(t *testing.T) {
	g, fake := newTestGame(t, Config{})
	tick(t, g, fake, 1)

	fake.MoveCursor(100, 0)
	tick(t, g, fake, 1)

	look, _ := ecs.Get(g.World(), g.Player(), component.LookComponent.Kind())
	assert.InDelta(t, 345, look.Yaw, 1e-9)

	refs, _ := ecs.Get(g.World(), g.Player(), component.PlayerRefsComponent.Kind())
	cam, _ := ecs.Get(g.World(), ecs.Entity(refs.Camera), component.TransformComponent.Kind())
	first := cam.Rotation.Y()
	assert.Less(t, first, 0.0)

	tick(t, g, fake, 120)
	assert.InDelta(t, mgl64.DegToRad(-15), cam.Rotation.Y(), 1e-3)
}

func TestGameFireTravels(t *testing.T) {
	g, fake := newTestGame(t, Config{})
	refs, _ := ecs.Get(g.World(), g.Player(), component.PlayerRefsComponent.Kind())

	fake.Press(input.ActionFire)
	tick(t, g, fake, 1)
	assert.Equal(t, "fire", refs.Arm.Current())

	fake.Release(input.ActionFire)
	tick(t, g, fake, 30)
	assert.Equal(t, "idle", refs.Arm.Current())
}

func TestGameQuit(t *testing.T) {
	g, fake := newTestGame(t, Config{})
	fake.Press(input.ActionQuit)
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
}

func TestReloadPrefabAppliesTuning(t *testing.T) {
	g, _ := newTestGame(t, Config{})
	dir := t.TempDir()
	prefabs.SetDiskDir(dir)

	data := []byte("name: Player\ncomponents:\n  player:\n    speed: 9\n    vertical_rotation_limit: 60\n    animation_triggers: true\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "player.yaml"), data, 0o644))

	g.reloadPrefab("camera.yaml")
	p, _ := ecs.Get(g.World(), g.Player(), component.PlayerComponent.Kind())
	assert.Equal(t, 5.0, p.Speed)

	g.reloadPrefab("player.yaml")
	assert.Equal(t, 9.0, p.Speed)
	assert.Equal(t, 60.0, p.VerticalRotationLimit)
}

func TestReloadPrefabSkipsUnchangedFile(t *testing.T) {
	g, _ := newTestGame(t, Config{})
	dir := t.TempDir()
	prefabs.SetDiskDir(dir)
	file := filepath.Join(dir, "player.yaml")
	stamp := time.Now().Add(-time.Hour).Truncate(time.Second)

	write := func(speed string, at time.Time) {
		data := []byte("name: Player\ncomponents:\n  player:\n    speed: " + speed + "\n    animation_triggers: true\n")
		require.NoError(t, os.WriteFile(file, data, 0o644))
		require.NoError(t, os.Chtimes(file, at, at))
	}

	write("7", stamp)
	g.reloadPrefab("player.yaml")
	p, _ := ecs.Get(g.World(), g.Player(), component.PlayerComponent.Kind())
	require.Equal(t, 7.0, p.Speed)

	// a duplicate event for the same file version is ignored
	p.Speed = 1
	write("7", stamp)
	g.reloadPrefab("player.yaml")
	assert.Equal(t, 1.0, p.Speed)

	write("8", stamp.Add(time.Minute))
	g.reloadPrefab("player.yaml")
	assert.Equal(t, 8.0, p.Speed)
}

func TestWatchPrefabsMissingDir(t *testing.T) {
	g, _ := newTestGame(t, Config{})
	assert.Error(t, g.WatchPrefabs(filepath.Join(t.TempDir(), "nope")))
	assert.NoError(t, g.WatchPrefabs(""))
	assert.Nil(t, g.watcher)
}

func TestLoadBindings(t *testing.T) {
	b, err := LoadBindings(prefabs.ProjectSettings{Input: prefabs.InputSettings{
		Bindings: map[string][]string{"JUMP": {"J"}},
	}})
	require.NoError(t, err)
	assert.Equal(t, []string{"J"}, b[input.ActionJump])
	assert.NotEmpty(t, b[input.ActionFire])

	_, err = LoadBindings(prefabs.ProjectSettings{Input: prefabs.InputSettings{
		Bindings: map[string][]string{"CROUCH": {"C"}},
	}})
	assert.Error(t, err)
}
