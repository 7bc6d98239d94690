package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/hillclimb/pkg/sim"
)

const (
	sampleRate = beep.SampleRate(44100)

	engineIdleHz  = 45.0
	engineTopHz   = 140.0
	crashDuration = 400 * time.Millisecond
)

// closeSpeaker releases the output device; swapped out in tests
var closeSpeaker = speaker.Close

// SoundManager plays the game's procedural sound effects. All methods are
// no-ops until Initialize succeeds, so a machine without audio runs silent.
type SoundManager struct {
	mu          sync.Mutex
	volume      float64
	mixer       *beep.Mixer
	engine      *EngineGenerator
	engineCtrl  *beep.Ctrl
	initialized bool
	crashes     uint32
}

// NewSoundManager creates a sound manager; volume is in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		volume: math.Max(0, math.Min(1, volume)),
		mixer:  &beep.Mixer{},
		engine: NewEngineGenerator(sampleRate, engineIdleHz),
	}
}

// Initialize opens the audio device and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	sm.engineCtrl = &beep.Ctrl{Streamer: sm.engine, Paused: true}
	sm.mixer.Add(sm.gain(sm.engineCtrl))
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close silences everything and releases the audio device
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.engineCtrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()
	closeSpeaker()
	sm.mixer = &beep.Mixer{}
	sm.initialized = false
}

// Engine runs the engine drone while throttling, pitched by speed in
// [0, 1] of the current top speed
func (sm *SoundManager) Engine(on bool, speed float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.engine.SetFrequency(engineFrequency(speed))
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.engineCtrl.Paused = !on
	speaker.Unlock()
}

// Jump plays a rising chirp
func (sm *SoundManager) Jump() {
	sm.play(NewSweepGenerator(sampleRate, 300, 700, 180*time.Millisecond))
}

// Land plays a short thump
func (sm *SoundManager) Land() {
	sm.play(NewSweepGenerator(sampleRate, 140, 60, 90*time.Millisecond))
}

// Crash plays the fall-through-the-gap sound
func (sm *SoundManager) Crash() {
	sm.mu.Lock()
	sm.crashes++
	seed := sm.crashes
	sm.mu.Unlock()
	sm.play(beep.Take(sampleRate.N(crashDuration), NewCrashGenerator(sampleRate, seed)))
}

// Purchase plays a short bell for a successful upgrade
func (sm *SoundManager) Purchase() {
	tone, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		log.Debug().Err(err).Msg("purchase tone")
		return
	}
	sm.play(beep.Take(sampleRate.N(120*time.Millisecond), tone))
}

// Denied plays a low buzz for a refused purchase
func (sm *SoundManager) Denied() {
	sm.play(NewSweepGenerator(sampleRate, 160, 120, 200*time.Millisecond))
}

// React plays whatever a simulation step asks for
func (sm *SoundManager) React(ev sim.Events) {
	switch {
	case ev.Has(sim.EventRespawned):
		sm.Crash()
	case ev.Has(sim.EventJumped):
		sm.Jump()
	case ev.Has(sim.EventLanded):
		sm.Land()
	}
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(sm.gain(s))
	speaker.Unlock()
}

func (sm *SoundManager) gain(s beep.Streamer) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: sm.volume - 1}
}

// engineFrequency maps a speed fraction to the drone pitch
func engineFrequency(speed float64) float64 {
	speed = math.Max(0, math.Min(1, speed))
	return engineIdleHz + (engineTopHz-engineIdleHz)*speed
}
