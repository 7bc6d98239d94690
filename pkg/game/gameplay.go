package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/hillclimb/pkg/audio"
	"github.com/golangdaddy/hillclimb/pkg/background"
	"github.com/golangdaddy/hillclimb/pkg/config"
	"github.com/golangdaddy/hillclimb/pkg/hud"
	"github.com/golangdaddy/hillclimb/pkg/input"
	"github.com/golangdaddy/hillclimb/pkg/sim"
)

// GameplayScreen represents the main driving gameplay
type GameplayScreen struct {
	state   *sim.State
	keys    []keyBinding
	guard   input.HoldGuard
	buttons []hud.Button
	flasher hud.Flasher
	sound   *audio.SoundManager

	backdrop  *background.Generator
	sky       *ebiten.Image
	mountains *ebiten.Image
	carBody   *ebiten.Image

	screenWidth  int
	screenHeight int
	maxStep      float64
	paused       bool
	lastUpdate   time.Time
	onGameEnd    func() // Callback when the player leaves the run
}

// NewGameplayScreen creates a new gameplay screen with a fresh run
func NewGameplayScreen(cfg *config.Config, km *input.Keymap, sound *audio.SoundManager, onGameEnd func()) *GameplayScreen {
	state := sim.New(cfg)
	backdrop := background.NewGenerator(cfg.Window.Width, cfg.Window.Height)

	gs := &GameplayScreen{
		state:        state,
		keys:         bindKeys(km),
		buttons:      hud.Layout(cfg.Window.Width, km),
		sound:        sound,
		backdrop:     backdrop,
		sky:          ebiten.NewImageFromImage(backdrop.GenerateSky()),
		mountains:    ebiten.NewImageFromImage(backdrop.GenerateMountains()),
		carBody:      newCarBody(state.Car.Width, state.Car.Height),
		screenWidth:  cfg.Window.Width,
		screenHeight: cfg.Window.Height,
		maxStep:      cfg.Physics.MaxFrameStep,
		lastUpdate:   time.Now(),
		onGameEnd:    onGameEnd,
	}

	log.Debug().
		Int("segments", state.Terrain.Len()).
		Ints("bridges", state.Terrain.Bridges()).
		Float64("worldBound", state.WorldBound()).
		Msg("course generated")

	return gs
}

// Update handles gameplay logic
func (gs *GameplayScreen) Update() error {
	now := time.Now()
	dt := sim.FrameStep(now.Sub(gs.lastUpdate), gs.maxStep)
	gs.lastUpdate = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if gs.onGameEnd != nil {
			gs.onGameEnd()
		}
		return nil
	}

	in, commands := pollKeys(gs.keys)
	in = gs.guard.Filter(in)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if a, ok := hud.HitTest(gs.buttons, x, y); ok {
			commands = append(commands, a)
		}
	}
	for _, a := range commands {
		gs.command(a, now)
	}

	if gs.paused {
		gs.sound.Engine(false, 0)
		return nil
	}

	ev := sim.Step(gs.state, in, dt)
	gs.sound.React(ev)

	car := gs.state.Car
	gs.sound.Engine(in.Accelerate && car.Energy > 0, car.VX/gs.state.MaxSpeed())

	if ev.Has(sim.EventRespawned) {
		log.Info().
			Float64("energy", car.Energy).
			Int("score", gs.state.Progress.Score).
			Msg("respawned")
	}
	return nil
}

// command runs a one-shot action from a key or button
func (gs *GameplayScreen) command(a input.Action, now time.Time) {
	switch a {
	case input.ActionPause:
		gs.paused = !gs.paused
		log.Debug().Bool("paused", gs.paused).Msg("pause toggled")
		return
	case input.ActionRestart:
		gs.state.Reset()
		gs.paused = false
		log.Info().Msg("run restarted")
		return
	}

	res := hud.Dispatch(gs.state, a)
	switch {
	case res.Err != nil:
		gs.flasher.Push(res.Message, now)
		gs.sound.Denied()
	case res.Handled:
		gs.sound.Purchase()
	}
}

// Draw renders the gameplay screen
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	gs.drawBackdrop(screen)
	gs.drawTerrain(screen)
	gs.drawCar(screen)
	gs.drawUI(screen)
}
