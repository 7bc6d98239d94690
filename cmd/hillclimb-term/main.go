package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/hillclimb/pkg/audio"
	"github.com/golangdaddy/hillclimb/pkg/config"
	"github.com/golangdaddy/hillclimb/pkg/logging"
	"github.com/golangdaddy/hillclimb/pkg/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hillclimb-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configDir := flag.String("config", ".", "directory holding hillclimb.yaml")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		return err
	}

	// stdout belongs to the screen, so logs go to a file
	logFile, err := logging.OpenLogFile(cfg.LogsDir, "hillclimb-term", time.Now())
	if err != nil {
		return err
	}
	defer logFile.Close()
	logging.Setup(logFile, cfg.LogLevel, false)

	sound := audio.NewSoundManager(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, running silent")
		}
	}
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("config", config.ConfigFile()).Msg("terminal session started")
	err = terminal.NewSession(cfg, screen, sound).Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	log.Info().Err(err).Msg("terminal session ended")
	return err
}
