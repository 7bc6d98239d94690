package hud

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/hillclimb/pkg/input"
	"github.com/golangdaddy/hillclimb/pkg/sim"
)

// Result is the outcome of a one-shot command
type Result struct {
	Handled bool   // the action was a progression command
	Message string // flash text for refused commands
	Err     error
}

// Dispatch runs a progression command against the state. Pedals, pause
// and restart are left to the frontend.
func Dispatch(s *sim.State, a input.Action) Result {
	var err error
	switch a {
	case input.ActionDecreaseCapacity:
		s.DecreaseCapacity()
	case input.ActionIncreaseCapacity:
		err = s.IncreaseCapacity()
	case input.ActionLevelUp:
		err = s.LevelUp()
	default:
		return Result{}
	}

	logger := log.With().
		Str("action", a.String()).
		Int("score", s.Progress.Score).
		Int("level", s.Progress.Level).
		Float64("maxEnergy", s.Car.MaxEnergy).
		Logger()
	if err != nil {
		logger.Debug().Err(err).Msg("purchase refused")
		return Result{Handled: true, Message: MessageFor(s, a, err), Err: err}
	}
	logger.Info().Msg("purchase")
	return Result{Handled: true}
}

// MessageFor turns a refused command into player-facing text
func MessageFor(s *sim.State, a input.Action, err error) string {
	switch {
	case errors.Is(err, sim.ErrCapacityMaxed):
		return "Energy capacity is at maximum"
	case errors.Is(err, sim.ErrInsufficientScore) && a == input.ActionIncreaseCapacity:
		return fmt.Sprintf("Need %d score to increase energy", s.CapacityCost())
	case errors.Is(err, sim.ErrInsufficientScore) && a == input.ActionLevelUp:
		return "Score not enough for level up"
	case err != nil:
		return err.Error()
	}
	return ""
}
