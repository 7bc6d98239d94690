package input

import (
	"testing"

	"github.com/golangdaddy/hillclimb/pkg/config"
	"github.com/golangdaddy/hillclimb/pkg/sim"
	"github.com/stretchr/testify/assert"
)

func TestFromConfig_DefaultBindings(t *testing.T) {
	km := FromConfig(config.Default().Keys)

	assert.Equal(t, ActionAccelerate, km.Lookup("ArrowRight"))
	assert.Equal(t, ActionAccelerate, km.Lookup("d"))
	assert.Equal(t, ActionBrake, km.Lookup("A"))
	assert.Equal(t, ActionJump, km.Lookup("space"))
	assert.Equal(t, ActionDecreaseCapacity, km.Lookup("Digit1"))
	assert.Equal(t, ActionIncreaseCapacity, km.Lookup("Digit2"))
	assert.Equal(t, ActionLevelUp, km.Lookup("L"))
	assert.Equal(t, ActionPause, km.Lookup("P"))
	assert.Equal(t, ActionRestart, km.Lookup("R"))
	assert.Equal(t, ActionNone, km.Lookup("Q"))
}

func TestNewKeymap_FirstBindingWins(t *testing.T) {
	km := NewKeymap(map[Action][]string{
		ActionJump:       {"Space"},
		ActionAccelerate: {"Space", "D"},
	})

	assert.Equal(t, ActionAccelerate, km.Lookup("Space"))
	assert.Equal(t, []string{"Space"}, km.Keys(ActionJump))
}

func TestKeymap_Label(t *testing.T) {
	km := FromConfig(config.Default().Keys)

	assert.Equal(t, "1", km.Label(ActionDecreaseCapacity))
	assert.Equal(t, "L", km.Label(ActionLevelUp))
	assert.Equal(t, "", NewKeymap(nil).Label(ActionJump))
}

func TestAction(t *testing.T) {
	assert.Equal(t, "level_up", ActionLevelUp.String())
	assert.Equal(t, "unknown", Action(99).String())
	assert.True(t, ActionJump.Held())
	assert.False(t, ActionPause.Held())
}

func TestLatch_HoldsForWindow(t *testing.T) {
	l := NewLatch(3)
	l.Press(ActionAccelerate)

	for i := 0; i < 3; i++ {
		assert.Equal(t, sim.Input{Accelerate: true}, l.Input(), "frame %d", i)
		l.Tick()
	}
	assert.Equal(t, sim.Input{}, l.Input())
}

func TestLatch_RepeatRefreshes(t *testing.T) {
	l := NewLatch(2)
	l.Press(ActionBrake)
	l.Tick()
	l.Press(ActionBrake)
	l.Tick()

	assert.True(t, l.Held(ActionBrake))
	l.Tick()
	assert.False(t, l.Held(ActionBrake))
}

func TestLatch_IgnoresCommandsAndReleases(t *testing.T) {
	l := NewLatch(0)
	l.Press(ActionPause)
	assert.False(t, l.Held(ActionPause))

	l.Press(ActionJump)
	l.Press(ActionAccelerate)
	l.Release(ActionJump)
	assert.Equal(t, sim.Input{Accelerate: true}, l.Input())
}

func TestHoldGuard_IgnoresKeyHeldAtStart(t *testing.T) {
	var g HoldGuard

	// Space dismissed the title screen and is still down
	assert.Equal(t, sim.Input{}, g.Filter(sim.Input{Jump: true}))
	assert.Equal(t, sim.Input{Accelerate: true}, g.Filter(sim.Input{Jump: true, Accelerate: true}))

	// released, then pressed again on purpose
	assert.Equal(t, sim.Input{}, g.Filter(sim.Input{}))
	assert.Equal(t, sim.Input{Jump: true}, g.Filter(sim.Input{Jump: true}))
}

func TestHoldGuard_PassesFreshInput(t *testing.T) {
	var g HoldGuard

	assert.Equal(t, sim.Input{}, g.Filter(sim.Input{}))
	assert.Equal(t, sim.Input{Accelerate: true, Jump: true}, g.Filter(sim.Input{Accelerate: true, Jump: true}))
}
