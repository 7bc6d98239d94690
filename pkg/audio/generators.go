package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
)

// EngineGenerator is a looping engine drone whose pitch follows the car
type EngineGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64
	freq  atomic.Uint64 // float64 bits
}

// NewEngineGenerator creates an engine drone idling at idleHz
func NewEngineGenerator(sr beep.SampleRate, idleHz float64) *EngineGenerator {
	g := &EngineGenerator{sr: sr}
	g.SetFrequency(idleHz)
	return g
}

// SetFrequency retunes the drone; safe to call from the game loop while
// the speaker goroutine streams
func (g *EngineGenerator) SetFrequency(hz float64) {
	g.freq.Store(math.Float64bits(hz))
}

// Frequency returns the current pitch
func (g *EngineGenerator) Frequency() float64 {
	return math.Float64frombits(g.freq.Load())
}

func (g *EngineGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	freq := g.Frequency()
	step := freq / float64(g.sr)
	for i := range samples {
		// sawtooth with a slow wobble reads as a small petrol engine
		g.phase += step
		g.phase -= math.Floor(g.phase)
		saw := 2*g.phase - 1
		wobble := 0.85 + 0.15*math.Sin(2*math.Pi*7*float64(g.pos)/float64(g.sr))
		sample := 0.12 * saw * wobble

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *EngineGenerator) Err() error {
	return nil
}

// SweepGenerator glides from one pitch to another with a decaying envelope
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sine glide lasting d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		length: sr.N(d),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.length {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.length {
			return i, true
		}
		progress := float64(g.pos) / float64(g.length)
		freq := g.from + (g.to-g.from)*progress
		g.phase += freq / float64(g.sr)
		sample := 0.3 * (1 - progress) * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// CrashGenerator is a burst of low noise and rumble
type CrashGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed uint32
}

// NewCrashGenerator creates a crash sound; seed fixes the noise pattern
func NewCrashGenerator(sr beep.SampleRate, seed uint32) *CrashGenerator {
	if seed == 0 {
		seed = 1
	}
	return &CrashGenerator{sr: sr, seed: seed}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 6)

		// xorshift32
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		rumble := 0.3 * math.Sin(2*math.Pi*55*t)
		sample := envelope * (0.3*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}
