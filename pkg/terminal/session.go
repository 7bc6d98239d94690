package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/hillclimb/pkg/audio"
	"github.com/golangdaddy/hillclimb/pkg/config"
	"github.com/golangdaddy/hillclimb/pkg/hud"
	"github.com/golangdaddy/hillclimb/pkg/input"
	"github.com/golangdaddy/hillclimb/pkg/sim"
)

// Session is one run of the game in a terminal. It owns the simulation;
// all methods must be called from the loop goroutine.
type Session struct {
	state    *sim.State
	keymap   *input.Keymap
	latch    *input.Latch
	flasher  hud.Flasher
	sound    *audio.SoundManager
	renderer *Renderer
	screen   tcell.Screen
	maxStep  float64
	paused   bool
}

// NewSession starts a run drawn onto screen
func NewSession(cfg *config.Config, screen tcell.Screen, sound *audio.SoundManager) *Session {
	return &Session{
		state:    sim.New(cfg),
		keymap:   input.FromConfig(cfg.Keys),
		latch:    input.NewLatch(input.DefaultHoldFrames),
		sound:    sound,
		renderer: NewRenderer(screen, cfg.Window.Width, cfg.Window.Height),
		screen:   screen,
		maxStep:  cfg.Physics.MaxFrameStep,
	}
}

// State returns the simulation state
func (s *Session) State() *sim.State {
	return s.state
}

// Paused reports whether the simulation is paused
func (s *Session) Paused() bool {
	return s.paused
}

// HandleKey applies a key event. It returns true when the player asked
// to quit.
func (s *Session) HandleKey(ev *tcell.EventKey, now time.Time) bool {
	if IsQuit(ev) {
		return true
	}
	s.Press(KeyName(ev), now)
	return false
}

// Press applies the action bound to a key name
func (s *Session) Press(key string, now time.Time) {
	a := s.keymap.Lookup(key)
	switch a {
	case input.ActionNone:
		return
	case input.ActionAccelerate:
		s.latch.Release(input.ActionBrake)
	case input.ActionBrake:
		s.latch.Release(input.ActionAccelerate)
	case input.ActionPause:
		s.paused = !s.paused
		log.Debug().Bool("paused", s.paused).Msg("pause toggled")
		return
	case input.ActionRestart:
		s.state.Reset()
		s.paused = false
		log.Info().Msg("run restarted")
		return
	}

	if a.Held() {
		s.latch.Press(a)
		return
	}

	res := hud.Dispatch(s.state, a)
	switch {
	case res.Err != nil:
		s.flasher.Push(res.Message, now)
		s.sound.Denied()
	case res.Handled:
		s.sound.Purchase()
	}
}

// Tick advances the simulation by dt frames and ages the key latch
func (s *Session) Tick(dt float64) sim.Events {
	if s.paused {
		s.sound.Engine(false, 0)
		return 0
	}

	in := s.latch.Input()
	ev := sim.Step(s.state, in, dt)
	s.latch.Tick()
	s.sound.React(ev)

	car := s.state.Car
	s.sound.Engine(in.Accelerate && car.Energy > 0, car.VX/s.state.MaxSpeed())
	if ev.Has(sim.EventRespawned) {
		log.Info().
			Float64("energy", car.Energy).
			Int("score", s.state.Progress.Score).
			Msg("respawned")
	}
	return ev
}

// Draw renders the current frame
func (s *Session) Draw(now time.Time) {
	s.renderer.Draw(s.state, s.flasher.Active(now), s.paused)
}

// Run drives the session at one step per frame until ctx is cancelled or
// the player quits. Screen events are read on their own goroutine and
// handed to the loop over a channel.
func (s *Session) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(sim.FrameDuration)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if s.HandleKey(ev, time.Now()) {
					return nil
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}

		case now := <-ticker.C:
			s.Tick(sim.FrameStep(now.Sub(last), s.maxStep))
			last = now
			s.Draw(now)
		}
	}
}
