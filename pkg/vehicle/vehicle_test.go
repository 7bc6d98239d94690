package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	v := New(Spec{Energy: 100, Mass: 1.8, SpeedFactor: 0.12})

	assert.Equal(t, 100.0, v.Energy)
	assert.Equal(t, 100.0, v.MaxEnergy)
	assert.Equal(t, 1.8, v.Mass)
	assert.Equal(t, 0.12, v.SpeedFactor)
	assert.Equal(t, DefaultWidth, v.Width)
	assert.False(t, v.OnGround)
}

func TestDrainAndCharge(t *testing.T) {
	v := New(Spec{Energy: 50})

	v.Drain(20)
	assert.Equal(t, 30.0, v.Energy)

	v.Drain(100)
	assert.Equal(t, 0.0, v.Energy)

	v.Charge(20)
	assert.Equal(t, 20.0, v.Energy)

	v.Charge(1000)
	assert.Equal(t, 50.0, v.Energy)
}

func TestClampEnergy(t *testing.T) {
	v := New(Spec{Energy: 100})

	v.Energy = 250
	v.ClampEnergy()
	assert.Equal(t, 100.0, v.Energy)

	v.Energy = -3
	v.ClampEnergy()
	assert.Equal(t, 0.0, v.Energy)
}

func TestEnergyFraction(t *testing.T) {
	v := New(Spec{Energy: 80})
	v.Energy = 20

	assert.Equal(t, 0.25, v.EnergyFraction())

	v.MaxEnergy = 0
	assert.Equal(t, 0.0, v.EnergyFraction())
}

func TestPlace(t *testing.T) {
	v := New(Spec{Energy: 10})
	v.VX, v.VY, v.Angle = 3, -2, 0.4

	v.Place(150, 408)

	assert.Equal(t, 150.0, v.X)
	assert.Equal(t, 408.0, v.Y)
	assert.Zero(t, v.VX)
	assert.Zero(t, v.VY)
	assert.Zero(t, v.Angle)
}

func TestWheelOffsets(t *testing.T) {
	v := New(Spec{})

	rear, front := v.WheelOffsets()

	assert.InDelta(t, -21.6, rear, 1e-9)
	assert.InDelta(t, 21.6, front, 1e-9)
}
