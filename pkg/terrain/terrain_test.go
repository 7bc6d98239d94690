package terrain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultParams() Params {
	return Params{
		SegmentWidth: 80,
		Count:        120,
		ViewHeight:   540,
		BaseOffset:   120,
		MinHeight:    100,
	}
}

func TestGenerate_FixedLength(t *testing.T) {
	for _, count := range []int{8, 9, 60, 120, 121} {
		p := defaultParams()
		p.Count = count
		assert.Equal(t, count, Generate(p).Len(), "count %d", count)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(defaultParams())
	b := Generate(defaultParams())

	assert.Equal(t, a.Segments(), b.Segments())
}

func TestGenerate_BridgeTripleNearMidpoint(t *testing.T) {
	tr := Generate(defaultParams())

	assert.Equal(t, KindGap, tr.At(58).Kind)
	assert.Equal(t, KindBridge, tr.At(59).Kind)
	assert.Equal(t, KindBridge, tr.At(60).Kind)
	assert.Equal(t, []int{59, 60}, tr.Bridges())

	for _, i := range []int{58, 59, 60} {
		assert.Equal(t, 420.0, tr.At(i).Height, "segment %d", i)
	}

	gaps := 0
	for _, seg := range tr.Segments() {
		if seg.Kind == KindGap {
			gaps++
		}
	}
	assert.Equal(t, 1, gaps)
}

func TestGenerate_Heights(t *testing.T) {
	tr := Generate(defaultParams())
	base := 420.0

	// flat stretches
	for _, i := range []int{0, 6, 20, 21, 38, 55, 85, 119} {
		assert.Equal(t, base, tr.At(i).Height, "segment %d", i)
	}
	// high ledge
	for i := 79; i < 85; i++ {
		assert.Equal(t, base-140, tr.At(i).Height, "segment %d", i)
	}
	// hill sample
	assert.Equal(t, math.Round(base-(math.Sin(10*0.6)*40-10)), tr.At(10).Height)
	assert.Equal(t, math.Round(base-math.Sin(30*0.4)*70), tr.At(30).Height)
}

func TestGenerate_MinHeightFloor(t *testing.T) {
	p := defaultParams()
	p.MinHeight = 400

	tr := Generate(p)

	for i, seg := range tr.Segments() {
		assert.GreaterOrEqual(t, seg.Height, 400.0, "segment %d", i)
	}
}

func TestGroundY(t *testing.T) {
	tr := Generate(defaultParams())

	assert.Equal(t, 540.0, tr.GroundY(-1), "left of course")
	assert.Equal(t, 540.0, tr.GroundY(tr.Width()), "right of course")
	assert.Equal(t, 420.0, tr.GroundY(150))
	assert.Equal(t, 540.0+GapDepth, tr.GroundY(58*80+40), "gap")
	assert.Equal(t, 420.0, tr.GroundY(59*80+1), "bridge")
	assert.Equal(t, 280.0, tr.GroundY(80*80), "ledge")
}

func TestAt_OutOfRange(t *testing.T) {
	tr := Generate(defaultParams())

	assert.Equal(t, KindGap, tr.At(-1).Kind)
	assert.Equal(t, KindGap, tr.At(tr.Len()).Kind)
}

func TestSegments_ReturnsCopy(t *testing.T) {
	tr := Generate(defaultParams())

	segs := tr.Segments()
	segs[0].Height = -5

	assert.Equal(t, 420.0, tr.At(0).Height)
}

func TestSlope(t *testing.T) {
	tr := Generate(defaultParams())

	assert.Equal(t, 0.0, tr.Slope(100, 100))
	assert.Equal(t, 0.0, tr.Slope(10, 70), "flat ground")

	// stepping up onto the ledge: y decreases, so the angle is negative
	up := tr.Slope(78*80+40, 79*80+40)
	assert.Less(t, up, 0.0)

	// a wheel over the gap reads as flat
	assert.Equal(t, 0.0, tr.Slope(57*80+40, 58*80+40))
}

func TestWidth(t *testing.T) {
	tr := Generate(defaultParams())

	require.Equal(t, 80.0, tr.SegmentWidth())
	assert.Equal(t, 9600.0, tr.Width())
	assert.Equal(t, 540.0, tr.ViewHeight())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "ground", KindGround.String())
	assert.Equal(t, "gap", KindGap.String())
	assert.Equal(t, "bridge", KindBridge.String())
	assert.True(t, KindBridge.Solid())
	assert.False(t, KindGap.Solid())
}
