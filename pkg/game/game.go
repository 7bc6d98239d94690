package game

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/hillclimb/pkg/audio"
	"github.com/golangdaddy/hillclimb/pkg/config"
	"github.com/golangdaddy/hillclimb/pkg/input"
	"github.com/golangdaddy/hillclimb/pkg/ui"
)

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	cfg           *config.Config
	keymap        *input.Keymap
	sound         *audio.SoundManager
	currentScreen Screen
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// NewGame creates a new game instance starting at the title screen
func NewGame(cfg *config.Config, sound *audio.SoundManager) *Game {
	game := &Game{
		cfg:    cfg,
		keymap: input.FromConfig(cfg.Keys),
		sound:  sound,
	}
	game.showTitle()
	return game
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) showTitle() {
	g.sound.Engine(false, 0)
	g.currentScreen = ui.NewTitleScreen(controlHints(g.keymap), g.startGameplay)
}

// startGameplay transitions to the actual gameplay
func (g *Game) startGameplay() {
	log.Info().Msg("starting run")
	g.currentScreen = NewGameplayScreen(g.cfg, g.keymap, g.sound, g.showTitle)
}

// controlHints lists the bindings shown on the title screen
func controlHints(km *input.Keymap) []string {
	line := func(name string, a input.Action) string {
		return fmt.Sprintf("%s: %s", name, strings.Join(km.Keys(a), " / "))
	}
	return []string{
		line("Accelerate", input.ActionAccelerate),
		line("Brake", input.ActionBrake),
		line("Jump", input.ActionJump),
		fmt.Sprintf("Energy -/+: %s %s   Level up: %s",
			km.Label(input.ActionDecreaseCapacity),
			km.Label(input.ActionIncreaseCapacity),
			km.Label(input.ActionLevelUp)),
		fmt.Sprintf("Pause: %s   Restart: %s", km.Label(input.ActionPause), km.Label(input.ActionRestart)),
	}
}
