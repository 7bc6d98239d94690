package terminal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/hillclimb/pkg/audio"
	"github.com/golangdaddy/hillclimb/pkg/config"
	"github.com/golangdaddy/hillclimb/pkg/input"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(config.Default(), newTestScreen(t), audio.NewSoundManager(0))
	s.Tick(1) // touch down
	return s
}

func TestSession_AccelerateIsLatched(t *testing.T) {
	s := newTestSession(t)

	s.Press("ArrowRight", time.Now())
	s.Tick(1)
	assert.Greater(t, s.State().Car.VX, 0.0)

	for i := 1; i < input.DefaultHoldFrames; i++ {
		require.True(t, s.latch.Held(input.ActionAccelerate), "frame %d", i)
		s.Tick(1)
	}
	assert.False(t, s.latch.Held(input.ActionAccelerate))
}

func TestSession_BrakeCancelsAccelerate(t *testing.T) {
	s := newTestSession(t)

	s.Press("D", time.Now())
	s.Press("ArrowLeft", time.Now())

	assert.False(t, s.latch.Held(input.ActionAccelerate))
	assert.True(t, s.latch.Held(input.ActionBrake))
}

func TestSession_DeniedPurchaseFlashes(t *testing.T) {
	s := newTestSession(t)
	now := time.Now()

	s.Press("L", now)
	s.Draw(now)

	assert.Equal(t, 1, s.State().Progress.Level)
	assert.Contains(t, rowText(s.screen, 1), "Score not enough for level up")
}

func TestSession_CapacityKeys(t *testing.T) {
	s := newTestSession(t)

	s.Press("Digit1", time.Now())
	assert.Equal(t, 90.0, s.State().Car.MaxEnergy)

	s.Press("Digit2", time.Now())
	assert.Equal(t, 100.0, s.State().Car.MaxEnergy)
	assert.Equal(t, 20, s.State().Progress.Spent)
}

func TestSession_Pause(t *testing.T) {
	s := newTestSession(t)
	frame := s.State().Frame

	s.Press("P", time.Now())
	require.True(t, s.Paused())
	assert.Zero(t, s.Tick(1))
	assert.Equal(t, frame, s.State().Frame)

	s.Press("p", time.Now())
	assert.False(t, s.Paused())
	s.Tick(1)
	assert.Equal(t, frame+1, s.State().Frame)
}

func TestSession_Restart(t *testing.T) {
	s := newTestSession(t)
	s.State().Car.X = 3000
	s.Press("P", time.Now())

	s.Press("R", time.Now())

	assert.Equal(t, 150.0, s.State().Car.X)
	assert.False(t, s.Paused())
}

func TestSession_UnboundKeyIgnored(t *testing.T) {
	s := newTestSession(t)
	before := *s.State().Car

	s.Press("Q", time.Now())
	s.Press("", time.Now())

	assert.Equal(t, before, *s.State().Car)
}
