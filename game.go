package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fpsplayer/common"
	"github.com/milk9111/fpsplayer/ecs"
	"github.com/milk9111/fpsplayer/ecs/entity"
	"github.com/milk9111/fpsplayer/ecs/render"
	"github.com/milk9111/fpsplayer/ecs/system"
	"github.com/milk9111/fpsplayer/input"
	"github.com/milk9111/fpsplayer/prefabs"
	"github.com/rs/zerolog/log"
)

var backgroundColor = color.RGBA{R: 0x18, G: 0x1c, B: 0x22, A: 0xff}

type Config struct {
	Level     string
	Debug     bool
	NoCapture bool
	TPS       int
}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	input     *input.Context
	physics   *system.PhysicsSystem
	view      *render.DebugView
	pauseUI   *ebitenui.UI
	watcher   *prefabs.Watcher

	settings prefabs.ProjectSettings
	level    *entity.Level
	player   ecs.Entity
	tps      int

	// applied holds the mod time of each prefab version already applied
	applied map[string]time.Time
}

// LoadBindings merges the project bindings over the defaults.
func LoadBindings(settings prefabs.ProjectSettings) (input.Bindings, error) {
	override, err := input.ParseBindings(settings.Input.Bindings)
	if err != nil {
		return nil, fmt.Errorf("input bindings: %w", err)
	}
	return input.DefaultBindings().Merge(override), nil
}

// NewGame loads the scene and readies the player. src and driver are the
// input device; the game owns the input context built on them.
func NewGame(cfg Config, settings prefabs.ProjectSettings, src input.Source, driver input.CursorDriver) (*Game, error) {
	tps := cfg.TPS
	if tps <= 0 {
		tps = settings.Physics.TicksPerSecond
	}
	if tps <= 0 {
		tps = common.TicksPerSecond
	}

	w := ecs.NewWorld()
	w.SetDelta(1 / float64(tps))
	ctx := input.NewContext(src, driver)

	levelName := cfg.Level
	if levelName == "" {
		levelName = settings.Scene.Level
	}
	lvl, err := entity.LoadLevel(w, levelName)
	if err != nil {
		return nil, err
	}

	opts := entity.PlayerOptions{
		Prefab: settings.Scene.Player,
		Nodes:  settings.Scene.Prefabs,
		Spawn:  lvl.Spawn,
		Input:  ctx,
	}
	if cfg.NoCapture {
		opts.Input = nil
	}
	player, err := entity.NewPlayer(w, opts)
	if err != nil {
		return nil, err
	}

	physics := system.NewPhysicsSystem(lvl.FloorY)
	scheduler := ecs.NewScheduler()
	scheduler.Add(system.NewInputSystem(ctx))
	scheduler.Add(system.NewLookSystem())
	scheduler.Add(system.NewAnimationTriggerSystem())
	scheduler.Add(system.NewPlayerControllerSystem(settings.Physics.DefaultGravity))
	scheduler.Add(physics)
	scheduler.Add(system.NewMountSystem())
	scheduler.Add(system.NewLookFollowSystem())
	scheduler.Add(system.NewAnimationSystem())

	view := render.NewDebugView(physics.Space())
	view.SetHUD(cfg.Debug)

	g := &Game{
		world:     w,
		scheduler: scheduler,
		input:     ctx,
		physics:   physics,
		view:      view,
		settings:  settings,
		level:     lvl,
		player:    player,
		tps:       tps,
	}
	log.Info().
		Str("level", lvl.Name).
		Int("walls", len(lvl.Walls)).
		Int("tps", tps).
		Float64("gravity", settings.Physics.DefaultGravity).
		Msg("scene loaded")
	return g, nil
}

func (g *Game) TPS() int {
	return g.tps
}

func (g *Game) World() *ecs.World {
	return g.world
}

func (g *Game) Player() ecs.Entity {
	return g.player
}

// WatchPrefabs reloads the player tuning whenever its prefab changes in dir.
func (g *Game) WatchPrefabs(dir string) error {
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); err != nil {
		return err
	}
	watcher, err := prefabs.NewWatcher(dir)
	if err != nil {
		return err
	}
	g.watcher = watcher
	log.Info().Str("dir", dir).Msg("watching prefabs")
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Warn().Err(err).Msg("close prefab watcher")
		}
		g.watcher = nil
	}
}

func (g *Game) Update() error {
	g.scheduler.Update(g.world)
	g.reloadChangedPrefabs()

	if ui := g.pauseMenu(); ui != nil {
		ui.Update()
	}

	if g.input.QuitRequested() {
		log.Info().Uint64("ticks", g.world.Ticks()).Msg("quitting")
		return ebiten.Termination
	}
	return nil
}

func (g *Game) reloadChangedPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Warn().Err(err).Msg("prefab watcher")
		}
	default:
	}
	for _, name := range g.watcher.Drain() {
		g.reloadPrefab(name)
	}
}

func (g *Game) reloadPrefab(name string) {
	if path.Clean(name) != path.Clean(g.settings.Scene.Player) {
		log.Debug().Str("prefab", name).Msg("prefab changed; reload needs a restart")
		return
	}
	mod, onDisk := prefabs.ModTime(name)
	if onDisk {
		if last, ok := g.applied[name]; ok && !mod.After(last) {
			log.Debug().Str("prefab", name).Msg("prefab unchanged; skipping reload")
			return
		}
	}
	if err := entity.ApplyPlayerTuning(g.world, g.player, name); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return
		}
		log.Warn().Err(err).Str("prefab", name).Msg("reload player tuning")
		return
	}
	if onDisk {
		if g.applied == nil {
			g.applied = make(map[string]time.Time)
		}
		g.applied[name] = mod
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.view.Draw(g.world, screen)
	if ui := g.pauseMenu(); ui != nil {
		ui.Draw(screen)
	}
}

// pauseMenu returns the overlay while the mouse is released. It is built on
// first use.
func (g *Game) pauseMenu() *ebitenui.UI {
	if g.input.Captured() {
		return nil
	}
	if g.pauseUI == nil {
		g.pauseUI = NewPauseUI(g.input)
	}
	return g.pauseUI
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
