package sim

import (
	"github.com/golangdaddy/hillclimb/pkg/config"
	"github.com/golangdaddy/hillclimb/pkg/terrain"
	"github.com/golangdaddy/hillclimb/pkg/vehicle"
)

// Input is the set of control flags for one frame. Platform adapters
// fill it from whatever input events they receive.
type Input struct {
	Accelerate bool
	Brake      bool
	Jump       bool
}

// Idle reports whether neither pedal is pressed
func (in Input) Idle() bool {
	return !in.Accelerate && !in.Brake
}

// Progress is the scoring and leveling state
type Progress struct {
	Score     int
	Distance  int
	Level     int
	LevelCost int
	Spent     int // score paid for upgrades so far
}

// State is everything the simulation owns. Renderers read it; only Step
// and the progression methods write it.
type State struct {
	Terrain  *terrain.Terrain
	Car      *vehicle.Vehicle
	Progress Progress
	CameraX  float64
	Frame    uint64

	cfg *config.Config
}

// TerrainParams derives the terrain layout from the game config
func TerrainParams(cfg *config.Config) terrain.Params {
	return terrain.Params{
		SegmentWidth: cfg.World.SegmentWidth,
		Count:        cfg.World.SegmentCount,
		ViewHeight:   float64(cfg.Window.Height),
		BaseOffset:   cfg.World.BaseOffset,
		MinHeight:    cfg.World.MinHeight,
	}
}

// New generates the course and parks the car at the spawn point
func New(cfg *config.Config) *State {
	s := &State{
		Terrain: terrain.Generate(TerrainParams(cfg)),
		cfg:     cfg,
	}
	s.Reset()
	return s
}

// Reset starts a fresh run on the existing course
func (s *State) Reset() {
	p := s.cfg.Progression
	s.Car = vehicle.New(vehicle.Spec{
		Energy:      p.StartEnergy,
		Mass:        p.Mass,
		SpeedFactor: p.SpeedFactor,
	})
	s.Progress = Progress{
		Level:     1,
		LevelCost: p.LevelCost,
	}
	s.CameraX = 0
	s.Frame = 0
	s.placeAtSpawn()
	s.refreshScore()
}

// Config returns the config the state was built with
func (s *State) Config() *config.Config {
	return s.cfg
}

// WorldBound is the largest x the car may reach
func (s *State) WorldBound() float64 {
	return s.Terrain.Width() - s.cfg.World.EndMargin
}

// RespawnLine is the y below which the car is considered lost
func (s *State) RespawnLine() float64 {
	return s.Terrain.ViewHeight() + s.cfg.World.RespawnDepth
}

// MaxSpeed is the forward speed cap for the current level
func (s *State) MaxSpeed() float64 {
	ph := s.cfg.Physics
	return ph.BaseMaxSpeed + ph.MaxSpeedPerLevel*float64(s.Progress.Level)
}

func (s *State) placeAtSpawn() {
	x := s.cfg.World.SpawnX
	s.Car.Place(x, s.Terrain.GroundY(x)-s.cfg.World.WheelClearing)
}
