package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/hillclimb/pkg/audio"
	"github.com/golangdaddy/hillclimb/pkg/config"
	"github.com/golangdaddy/hillclimb/pkg/game"
	"github.com/golangdaddy/hillclimb/pkg/logging"
)

func main() {
	logging.Setup(os.Stderr, "info", true)
	if err := run(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

// run returns instead of exiting so deferred cleanup, the audio device
// in particular, always happens
func run(args []string) error {
	fs := flag.NewFlagSet("hillclimb", flag.ContinueOnError)
	configDir := fs.String("config", ".", "directory holding hillclimb.yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.Setup(os.Stderr, cfg.LogLevel, true)
	if f := config.ConfigFile(); f != "" {
		log.Info().Str("file", f).Msg("config loaded")
	}

	sound := audio.NewSoundManager(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, running silent")
		}
	}
	defer sound.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	// Call ebiten.RunGame to start your game loop.
	if err := ebiten.RunGame(game.NewGame(cfg, sound)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
