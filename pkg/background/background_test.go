package background

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSky_GradientEnds(t *testing.T) {
	g := NewGenerator(4, 101)

	sky := g.GenerateSky()

	assert.Equal(t, color.RGBA{0x87, 0xce, 0xff, 255}, sky.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0x86, 0xb6, 0xff, 255}, sky.RGBAAt(2, 60))
	assert.Equal(t, color.RGBA{0xcf, 0xea, 0xff, 255}, sky.RGBAAt(3, 100))
}

func TestGenerateMountains(t *testing.T) {
	g := NewGenerator(960, 540)

	m := g.GenerateMountains()

	// apex of the second peak
	assert.Equal(t, uint8(255), m.RGBAAt(420, 540-220).A)
	assert.Equal(t, uint8(0), m.RGBAAt(420, 540-230).A)
	// sky above the range stays transparent
	assert.Equal(t, uint8(0), m.RGBAAt(900, 10).A)
	// the first peak starts left of the strip and wraps to the right edge
	assert.Equal(t, uint8(255), m.RGBAAt(959, 539).A)
}

func TestMountainOffset(t *testing.T) {
	g := NewGenerator(960, 540)

	assert.Equal(t, 0.0, g.MountainOffset(0))
	assert.InDelta(t, -100.0, g.MountainOffset(500), 1e-9)
	assert.InDelta(t, -40.0, g.MountainOffset(5000), 1e-9)
}
