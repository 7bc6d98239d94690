package input

import "github.com/golangdaddy/hillclimb/pkg/sim"

// DefaultHoldFrames covers a typical terminal key-repeat delay at 60 fps
const DefaultHoldFrames = 30

// Latch turns key-press events into held state for inputs that never
// report key releases. Every press keeps the action active for a fixed
// number of frames; auto-repeat refreshes it while the key stays down.
type Latch struct {
	hold      int
	remaining map[Action]int
}

// NewLatch creates a latch holding each press for holdFrames frames
func NewLatch(holdFrames int) *Latch {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &Latch{
		hold:      holdFrames,
		remaining: make(map[Action]int),
	}
}

// Press marks an action as held
func (l *Latch) Press(a Action) {
	if !a.Held() {
		return
	}
	l.remaining[a] = l.hold
}

// Release drops an action immediately
func (l *Latch) Release(a Action) {
	delete(l.remaining, a)
}

// Held reports whether an action is currently held
func (l *Latch) Held(a Action) bool {
	return l.remaining[a] > 0
}

// Tick ages every held action by one frame
func (l *Latch) Tick() {
	for a, n := range l.remaining {
		if n <= 1 {
			delete(l.remaining, a)
			continue
		}
		l.remaining[a] = n - 1
	}
}

// Input returns the simulation flags for the current frame
func (l *Latch) Input() sim.Input {
	return sim.Input{
		Accelerate: l.Held(ActionAccelerate),
		Brake:      l.Held(ActionBrake),
		Jump:       l.Held(ActionJump),
	}
}
