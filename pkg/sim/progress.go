package sim

import (
	"errors"
	"math"
)

var (
	// ErrInsufficientScore is returned when a purchase costs more than the current score
	ErrInsufficientScore = errors.New("score not enough")
	// ErrCapacityMaxed is returned when energy capacity is already at its purchasable limit
	ErrCapacityMaxed = errors.New("energy capacity already at maximum")
)

// DecreaseCapacity shrinks the energy tank by one step, never below the
// minimum capacity. It is free and always succeeds.
func (s *State) DecreaseCapacity() {
	p := s.cfg.Progression
	car := s.Car
	car.MaxEnergy = math.Max(p.CapacityMin, car.MaxEnergy-p.CapacityStep)
	car.ClampEnergy()
	s.refreshScore()
}

// IncreaseCapacity buys one step of energy capacity and refills the tank
func (s *State) IncreaseCapacity() error {
	p := s.cfg.Progression
	car := s.Car
	if s.Progress.Score < p.CapacityCost {
		return ErrInsufficientScore
	}
	if car.MaxEnergy >= p.CapacityMax {
		return ErrCapacityMaxed
	}
	s.Progress.Spent += p.CapacityCost
	car.MaxEnergy = math.Min(p.CapacityMax, car.MaxEnergy+p.CapacityStep)
	car.Refill()
	s.refreshScore()
	return nil
}

// LevelUp spends the current level cost to advance one level. Each level
// makes the car faster, jump higher and carry more energy.
func (s *State) LevelUp() error {
	p := s.cfg.Progression
	pr := &s.Progress
	if pr.Score < pr.LevelCost {
		return ErrInsufficientScore
	}
	pr.Spent += pr.LevelCost
	pr.Level++
	pr.LevelCost = int(math.Round(float64(pr.LevelCost) * p.LevelCostGrowth))

	car := s.Car
	car.SpeedFactor += p.LevelSpeedBonus
	car.MaxEnergy = math.Min(p.LevelEnergyMax, car.MaxEnergy+p.LevelEnergyBonus)
	car.Refill()
	s.refreshScore()
	return nil
}

// CapacityCost is the score price of one capacity step
func (s *State) CapacityCost() int {
	return s.cfg.Progression.CapacityCost
}
