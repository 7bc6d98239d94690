package background

import (
	"image"
	"image/color"
	"math"
)

// ParallaxFactor is how fast the mountain layer scrolls relative to the camera
const ParallaxFactor = 0.2

// Generator creates backdrop layers. Layers are plain RGBA images so they
// can be generated once at start and uploaded to the GPU by the caller.
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// gradientStop is one colour stop of the sky, at offset in [0, 1]
type gradientStop struct {
	offset float64
	c      color.RGBA
}

var skyStops = []gradientStop{
	{0, color.RGBA{0x87, 0xce, 0xff, 255}},
	{0.6, color.RGBA{0x86, 0xb6, 0xff, 255}},
	{1, color.RGBA{0xcf, 0xea, 0xff, 255}},
}

// GenerateSky creates a vertical sky gradient
func (g *Generator) GenerateSky() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		t := 0.0
		if g.Height > 1 {
			t = float64(y) / float64(g.Height-1)
		}
		c := sampleGradient(skyStops, t)
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func sampleGradient(stops []gradientStop, t float64) color.RGBA {
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t <= b.offset {
			f := (t - a.offset) / (b.offset - a.offset)
			return color.RGBA{
				mix(a.c.R, b.c.R, f),
				mix(a.c.G, b.c.G, f),
				mix(a.c.B, b.c.B, f),
				255,
			}
		}
	}
	return stops[len(stops)-1].c
}

func mix(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}

// peak is a triangular mountain: base from left to right, apex at (top, rise)
type peak struct {
	left, top, right int
	rise             int
	c                color.RGBA
}

// The far range, back to front
var peaks = []peak{
	{-200, 120, 360, 180, color.RGBA{0x2b, 0x60, 0xa3, 255}},
	{200, 420, 760, 220, color.RGBA{0x4b, 0x86, 0xc6, 255}},
}

// GenerateMountains creates a horizontally tileable strip of mountains on a
// transparent background. Peaks that cross the strip edge wrap around.
func (g *Generator) GenerateMountains() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for _, p := range peaks {
		g.drawPeak(img, p)
	}
	return img
}

func (g *Generator) drawPeak(img *image.RGBA, p peak) {
	for x := p.left; x <= p.right; x++ {
		var h float64
		if x <= p.top {
			h = float64(p.rise) * float64(x-p.left) / float64(p.top-p.left)
		} else {
			h = float64(p.rise) * float64(p.right-x) / float64(p.right-p.top)
		}
		px := ((x % g.Width) + g.Width) % g.Width
		for y := g.Height - int(h); y < g.Height; y++ {
			if y >= 0 {
				img.SetRGBA(px, y, p.c)
			}
		}
	}
}

// MountainOffset returns the x at which to draw the first mountain tile
// for a camera position. Drawing the tile at the offset and offset+Width
// covers the whole view.
func (g *Generator) MountainOffset(cameraX float64) float64 {
	w := float64(g.Width)
	off := math.Mod(cameraX*ParallaxFactor, w)
	return -off
}
