package terrain

import "math"

// GapDepth is how far below the view a gap reports its floor, so anything
// over a gap keeps falling until it respawns.
const GapDepth = 1000

// Params fixes the shape of the generated course
type Params struct {
	SegmentWidth float64 // width of one slot in world pixels
	Count        int     // number of slots
	ViewHeight   float64 // height of the visible world; off-course ground sits here
	BaseOffset   float64 // flat ground is ViewHeight - BaseOffset
	MinHeight    float64 // highest allowed surface (smallest y)
}

// Terrain is the generated course. It is immutable after Generate.
type Terrain struct {
	params   Params
	segments []Segment
}

// Generate lays out the course. The result depends only on p, so calling
// it twice with the same Params yields identical terrain.
func Generate(p Params) *Terrain {
	base := p.ViewHeight - p.BaseOffset
	bridgeAt := p.Count/2 - 2

	segments := make([]Segment, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		if i == bridgeAt {
			for _, kind := range bridgeSpan {
				if len(segments) == p.Count {
					break
				}
				segments = append(segments, Segment{Height: base, Kind: kind})
			}
			i += len(bridgeSpan) - 1
			continue
		}

		h := base
		for _, band := range hillBands {
			if i > band.from && i < band.to {
				h -= band.profile(float64(i))
				break
			}
		}
		segments = append(segments, Segment{
			Height: math.Max(p.MinHeight, math.Round(h)),
			Kind:   KindGround,
		})
	}

	return &Terrain{params: p, segments: segments}
}

// Len returns the number of segments
func (t *Terrain) Len() int {
	return len(t.segments)
}

// At returns segment i. Out of range indices return a gap.
func (t *Terrain) At(i int) Segment {
	if i < 0 || i >= len(t.segments) {
		return Segment{Height: t.params.ViewHeight, Kind: KindGap}
	}
	return t.segments[i]
}

// Segments returns a copy of the course
func (t *Terrain) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

// SegmentWidth returns the width of one slot
func (t *Terrain) SegmentWidth() float64 {
	return t.params.SegmentWidth
}

// Width returns the world width in pixels
func (t *Terrain) Width() float64 {
	return float64(len(t.segments)) * t.params.SegmentWidth
}

// ViewHeight returns the height the course was generated for
func (t *Terrain) ViewHeight() float64 {
	return t.params.ViewHeight
}

// IndexAt returns the segment index under worldX
func (t *Terrain) IndexAt(worldX float64) int {
	return int(math.Floor(worldX / t.params.SegmentWidth))
}

// GroundY returns the surface y under worldX. Off-course positions report
// the bottom of the view; gaps report a floor far below it.
func (t *Terrain) GroundY(worldX float64) float64 {
	idx := t.IndexAt(worldX)
	if idx < 0 || idx >= len(t.segments) {
		return t.params.ViewHeight
	}
	seg := t.segments[idx]
	if seg.Kind == KindGap {
		return t.params.ViewHeight + GapDepth
	}
	return seg.Height
}

// Slope returns the angle in radians of the line between the ground under
// x0 and x1. Gaps count as flat so a wheel over a hole does not flip the car.
func (t *Terrain) Slope(x0, x1 float64) float64 {
	if x1 == x0 {
		return 0
	}
	y0, y1 := t.GroundY(x0), t.GroundY(x1)
	if !t.At(t.IndexAt(x0)).Kind.Solid() {
		y0 = y1
	}
	if !t.At(t.IndexAt(x1)).Kind.Solid() {
		y1 = y0
	}
	return math.Atan2(y1-y0, x1-x0)
}

// Bridges returns the indices of bridge segments in order
func (t *Terrain) Bridges() []int {
	var out []int
	for i, seg := range t.segments {
		if seg.Kind == KindBridge {
			out = append(out, i)
		}
	}
	return out
}
