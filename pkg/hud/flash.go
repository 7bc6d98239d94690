package hud

import "time"

// Flash timings: a message stays solid, then fades out
const (
	FlashVisible = 1200 * time.Millisecond
	FlashFade    = 400 * time.Millisecond
)

// Flash is a short message shown over the game
type Flash struct {
	Text  string
	Alpha float64 // 1 is opaque
}

type flashEntry struct {
	text  string
	since time.Time
}

// Flasher queues flash messages and ages them out
type Flasher struct {
	entries []flashEntry
}

// Push shows text starting at now. Repeating the newest message restarts
// it instead of stacking a duplicate.
func (f *Flasher) Push(text string, now time.Time) {
	if n := len(f.entries); n > 0 && f.entries[n-1].text == text {
		f.entries[n-1].since = now
		return
	}
	f.entries = append(f.entries, flashEntry{text: text, since: now})
}

// Active drops expired messages and returns the rest, oldest first
func (f *Flasher) Active(now time.Time) []Flash {
	kept := f.entries[:0]
	out := make([]Flash, 0, len(f.entries))
	for _, e := range f.entries {
		age := now.Sub(e.since)
		if age >= FlashVisible+FlashFade {
			continue
		}
		alpha := 1.0
		if age > FlashVisible {
			alpha = 1 - float64(age-FlashVisible)/float64(FlashFade)
		}
		kept = append(kept, e)
		out = append(out, Flash{Text: e.text, Alpha: alpha})
	}
	f.entries = kept
	return out
}
