package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fpsplayer/common"
	"github.com/milk9111/fpsplayer/input/device"
	"github.com/milk9111/fpsplayer/prefabs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Debug     bool   `help:"Enable debug logging and the debug overlay."`
	Level     string `help:"Level under prefabs/levels to load instead of the project scene level."`
	Prefabs   string `help:"Directory whose prefabs override the embedded copies and are watched for changes." default:"prefabs"`
	NoCapture bool   `help:"Start with the mouse visible instead of captured." name:"no-capture"`
	TPS       int    `help:"Physics ticks per second. Zero uses the project setting." name:"tps"`
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("fpsplayer"),
		kong.Description("a first-person character controller"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	prefabs.SetDiskDir(CLI.Prefabs)

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("fpsplayer")
	}
}

func run() error {
	settings, err := prefabs.LoadProjectSettings()
	if err != nil {
		return fmt.Errorf("project settings: %w", err)
	}
	bindings, err := LoadBindings(settings)
	if err != nil {
		return err
	}
	dev, err := device.New(bindings)
	if err != nil {
		return fmt.Errorf("input device: %w", err)
	}

	game, err := NewGame(Config{
		Level:     CLI.Level,
		Debug:     CLI.Debug,
		NoCapture: CLI.NoCapture,
		TPS:       CLI.TPS,
	}, settings, dev, dev)
	if err != nil {
		return err
	}
	defer game.Close()

	if err := game.WatchPrefabs(CLI.Prefabs); err != nil {
		log.Warn().Err(err).Str("dir", CLI.Prefabs).Msg("prefab hot reload disabled")
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle(settings.Name)
	ebiten.SetTPS(game.TPS())

	return ebiten.RunGame(game)
}
