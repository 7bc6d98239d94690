package vehicle

import "math"

// Body dimensions of the jeep in world pixels
const (
	DefaultWidth  = 80.0
	DefaultHeight = 30.0
	WheelRadius   = 18.0
	WheelSpread   = 0.27 // wheel offset from centre as a fraction of Width
)

// Vehicle is the player's car. X is a world coordinate, Y a screen
// coordinate (down is positive). The simulation mutates it every frame.
type Vehicle struct {
	X, Y     float64 // World position of the chassis bottom centre
	VX, VY   float64 // Velocity in pixels per frame
	Angle    float64 // Body tilt in radians
	WheelRot float64 // Accumulated wheel rotation in radians
	Width    float64
	Height   float64
	OnGround bool

	Energy      float64
	MaxEnergy   float64
	Mass        float64
	SpeedFactor float64 // Throttle acceleration per frame
}

// Spec is the starting setup of a vehicle
type Spec struct {
	Energy      float64
	Mass        float64
	SpeedFactor float64
}

// New creates a stationary vehicle with a full tank
func New(spec Spec) *Vehicle {
	return &Vehicle{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Energy:      spec.Energy,
		MaxEnergy:   spec.Energy,
		Mass:        spec.Mass,
		SpeedFactor: spec.SpeedFactor,
	}
}

// Place puts the vehicle at rest at (x, y)
func (v *Vehicle) Place(x, y float64) {
	v.X, v.Y = x, y
	v.VX, v.VY = 0, 0
	v.Angle = 0
}

// Drain removes energy, never below zero
func (v *Vehicle) Drain(amount float64) {
	v.Energy = math.Max(0, v.Energy-amount)
}

// Charge adds energy, never above MaxEnergy
func (v *Vehicle) Charge(amount float64) {
	v.Energy = math.Min(v.MaxEnergy, v.Energy+amount)
}

// Refill fills the tank
func (v *Vehicle) Refill() {
	v.Energy = v.MaxEnergy
}

// ClampEnergy forces Energy back into [0, MaxEnergy]
func (v *Vehicle) ClampEnergy() {
	if v.MaxEnergy < 0 {
		v.MaxEnergy = 0
	}
	v.Energy = math.Max(0, math.Min(v.MaxEnergy, v.Energy))
}

// EnergyFraction returns Energy/MaxEnergy in [0, 1]
func (v *Vehicle) EnergyFraction() float64 {
	if v.MaxEnergy <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, v.Energy/v.MaxEnergy))
}

// WheelOffsets returns the x offsets of the rear and front wheels
func (v *Vehicle) WheelOffsets() (rear, front float64) {
	d := v.Width * WheelSpread
	return -d, d
}
