package terrain

import "math"

// Kind is the surface type of a terrain segment
type Kind int

const (
	KindGround Kind = iota
	KindGap
	KindBridge
)

func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindGap:
		return "gap"
	case KindBridge:
		return "bridge"
	}
	return "unknown"
}

// Solid reports whether the car can stand on the segment
func (k Kind) Solid() bool {
	return k != KindGap
}

// Segment is one fixed-width terrain slot. Height is the screen y of the
// surface, so smaller values are higher up.
type Segment struct {
	Height float64
	Kind   Kind
}

// hillBand raises the ground with a trig profile over an open index range
type hillBand struct {
	from, to int // exclusive bounds
	profile  func(i float64) float64
}

// The course: rolling hills, a steep run, short bumps, a long climb and
// a flat ledge high above the base line.
var hillBands = []hillBand{
	{6, 20, func(i float64) float64 { return math.Sin(i*0.6)*40 - 10 }},
	{22, 38, func(i float64) float64 { return math.Sin(i*0.4) * 70 }},
	{40, 55, func(i float64) float64 { return math.Cos(i*0.6) * 35 }},
	{60, 75, func(i float64) float64 { return math.Sin(i*0.5) * 55 }},
	{78, 85, func(float64) float64 { return ledgeRise }},
}

const ledgeRise = 140

// bridgeSpan is the gap slot plus the two bridge slots that follow it
var bridgeSpan = [...]Kind{KindGap, KindBridge, KindBridge}
