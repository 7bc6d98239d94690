package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/golangdaddy/hillclimb/pkg/sim"
)

func TestEngineGenerator(t *testing.T) {
	g := NewEngineGenerator(sampleRate, 50)

	samples := make([][2]float64, 512)
	n, ok := g.Stream(samples)

	if !ok || n != 512 {
		t.Fatalf("Expected 512 samples and ok, got %d %v", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d should be mono", i)
		}
	}

	g.SetFrequency(120)
	if got := g.Frequency(); got != 120 {
		t.Errorf("Expected frequency 120, got %f", got)
	}
	if g.Err() != nil {
		t.Errorf("Expected no error, got %v", g.Err())
	}
}

func TestSweepGeneratorEnds(t *testing.T) {
	rate := beep.SampleRate(1000)
	g := NewSweepGenerator(rate, 100, 200, 100*time.Millisecond)

	samples := make([][2]float64, 64)
	total := 0
	for {
		n, ok := g.Stream(samples)
		total += n
		if !ok {
			break
		}
		if total > 1000 {
			t.Fatal("sweep never finished")
		}
	}

	if total != 100 {
		t.Errorf("Expected 100 samples, got %d", total)
	}
}

func TestCrashGeneratorDecays(t *testing.T) {
	rate := beep.SampleRate(8000)
	g := NewCrashGenerator(rate, 0)

	samples := make([][2]float64, rate.N(time.Second))
	g.Stream(samples)

	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range samples[from:to] {
			if v := s[0]; v > m {
				m = v
			} else if -v > m {
				m = -v
			}
		}
		return m
	}
	head := peak(0, 800)
	tail := peak(len(samples)-800, len(samples))
	if tail >= head {
		t.Errorf("Expected decaying envelope, head %f tail %f", head, tail)
	}
}

func TestEngineFrequency(t *testing.T) {
	tests := []struct {
		speed float64
		want  float64
	}{
		{-1, engineIdleHz},
		{0, engineIdleHz},
		{1, engineTopHz},
		{5, engineTopHz},
		{0.5, (engineIdleHz + engineTopHz) / 2},
	}
	for _, tt := range tests {
		if got := engineFrequency(tt.speed); got != tt.want {
			t.Errorf("engineFrequency(%v) = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

// TestSoundManagerUninitialized verifies every call is safe without an audio device
func TestSoundManagerUninitialized(t *testing.T) {
	sm := NewSoundManager(2)

	if sm.volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", sm.volume)
	}

	sm.Engine(true, 0.5)
	sm.Jump()
	sm.Land()
	sm.Crash()
	sm.Purchase()
	sm.Denied()
	sm.React(sim.EventJumped | sim.EventRespawned)
	sm.Close()

	if got := sm.engine.Frequency(); got != engineFrequency(0.5) {
		t.Errorf("Expected engine retuned while silent, got %f", got)
	}
}

// TestSoundManagerCloseReleasesDevice verifies Close hands the device back once
func TestSoundManagerCloseReleasesDevice(t *testing.T) {
	closed := 0
	orig := closeSpeaker
	closeSpeaker = func() { closed++ }
	t.Cleanup(func() { closeSpeaker = orig })

	sm := NewSoundManager(0.5)
	// stand in for a successful Initialize without opening a device
	sm.engineCtrl = &beep.Ctrl{Streamer: sm.engine}
	sm.mixer.Add(sm.engineCtrl)
	sm.initialized = true

	sm.Close()
	sm.Close()

	if closed != 1 {
		t.Errorf("Expected the speaker closed once, got %d", closed)
	}
	if sm.initialized {
		t.Error("Expected manager uninitialized after Close")
	}
	if !sm.engineCtrl.Paused {
		t.Error("Expected engine paused after Close")
	}
	if sm.mixer.Len() != 0 {
		t.Errorf("Expected an empty mixer after Close, got %d streamers", sm.mixer.Len())
	}
}
