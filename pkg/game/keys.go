package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/hillclimb/pkg/input"
	"github.com/golangdaddy/hillclimb/pkg/sim"
)

// keyBinding ties a physical key to an action
type keyBinding struct {
	key    ebiten.Key
	action input.Action
}

// bindKeys resolves the keymap's key names to ebiten keys. Names ebiten
// does not know are logged and skipped.
func bindKeys(km *input.Keymap) []keyBinding {
	var bindings []keyBinding
	for a := input.ActionAccelerate; a <= input.ActionRestart; a++ {
		for _, name := range km.Keys(a) {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				log.Warn().Str("key", name).Str("action", a.String()).Msg("unknown key name in bindings")
				continue
			}
			bindings = append(bindings, keyBinding{key: k, action: a})
		}
	}
	return bindings
}

// pollKeys reads the keyboard for one frame. Pedals report while held,
// commands only on the frame their key goes down.
func pollKeys(bindings []keyBinding) (sim.Input, []input.Action) {
	var in sim.Input
	var commands []input.Action
	for _, b := range bindings {
		if b.action.Held() {
			if !ebiten.IsKeyPressed(b.key) {
				continue
			}
			switch b.action {
			case input.ActionAccelerate:
				in.Accelerate = true
			case input.ActionBrake:
				in.Brake = true
			case input.ActionJump:
				in.Jump = true
			}
			continue
		}
		if inpututil.IsKeyJustPressed(b.key) {
			commands = append(commands, b.action)
		}
	}
	return in, commands
}
