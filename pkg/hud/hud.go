package hud

import (
	"fmt"
	"math"

	"github.com/golangdaddy/hillclimb/pkg/sim"
)

// Stats is the text the HUD shows for one frame
type Stats struct {
	Score     string
	Level     string
	Distance  string
	Energy    string
	LevelCost string
	// EnergyFraction drives the energy bar, in [0, 1]
	EnergyFraction float64
}

// Read formats the HUD from the simulation state
func Read(s *sim.State) Stats {
	car := s.Car
	return Stats{
		Score:          fmt.Sprintf("Score: %d", s.Progress.Score),
		Level:          fmt.Sprintf("Level: %d", s.Progress.Level),
		Distance:       fmt.Sprintf("Distance: %dm", s.Progress.Distance),
		Energy:         fmt.Sprintf("Energy: %.0f/%.0f", math.Floor(car.Energy), car.MaxEnergy),
		LevelCost:      fmt.Sprintf("Level cost: %d", s.Progress.LevelCost),
		EnergyFraction: car.EnergyFraction(),
	}
}
