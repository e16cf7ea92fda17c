package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/milk9111/fpsplayer/ecs"
	"github.com/milk9111/fpsplayer/ecs/entity"
	"github.com/milk9111/fpsplayer/input"
	"github.com/milk9111/fpsplayer/prefabs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Prefabs string `help:"Directory whose prefabs override the embedded copies." default:"prefabs"`
	Debug   bool   `help:"Whether to enable debug logging."`
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("prefabcheck"),
		kong.Description("Load every prefab, level and the project settings and report problems."),
		kong.UsageOnError())

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	prefabs.SetDiskDir(CLI.Prefabs)

	failures, err := check()
	if err != nil {
		log.Fatal().Err(err).Msg("prefabcheck")
	}
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d prefab(s) failed\n", failures)
		os.Exit(1)
	}
}

func check() (int, error) {
	failures := 0
	report := func(path string, err error) {
		if err != nil {
			failures++
			log.Error().Err(err).Str("prefab", path).Msg("invalid")
			return
		}
		log.Info().Str("prefab", path).Msg("ok")
	}

	settings, settingsErr := prefabs.LoadProjectSettings()
	if settingsErr == nil {
		_, settingsErr = input.ParseBindings(settings.Input.Bindings)
	}
	report(prefabs.ProjectFile, settingsErr)

	entities, err := prefabs.List("")
	if err != nil {
		return 0, err
	}
	w := ecs.NewWorld()
	for _, info := range entities {
		if info.Path == prefabs.ProjectFile {
			continue
		}
		_, err := entity.BuildEntity(w, info.Path)
		report(info.Path, err)
	}

	levels, err := prefabs.List("levels")
	if err != nil {
		return 0, err
	}
	for _, info := range levels {
		_, err := entity.LoadLevel(ecs.NewWorld(), strings.TrimPrefix(info.Path, "levels/"))
		report(info.Path, err)
	}

	if settingsErr == nil && settings.Scene.Player != "" {
		_, err := entity.NewPlayer(ecs.NewWorld(), entity.PlayerOptions{
			Prefab: settings.Scene.Player,
			Nodes:  settings.Scene.Prefabs,
		})
		report("scene "+settings.Scene.Player, err)
	}
	return failures, nil
}
