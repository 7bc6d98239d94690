package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/hillclimb/pkg/config"
	"github.com/golangdaddy/hillclimb/pkg/hud"
	"github.com/golangdaddy/hillclimb/pkg/sim"
)

// newTestScreen returns a 96x32 screen: 10x18 world pixels per cell for
// the default 960x540 view, with 30 rows of world above the HUD
func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(96, 32)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, row int) string {
	cols, _ := screen.Size()
	var b strings.Builder
	for c := 0; c < cols; c++ {
		ch, _, _, _ := screen.GetContent(c, row)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestRenderer_Cell(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, 960, 540)

	c, row := r.Cell(150, 408, 0)
	assert.Equal(t, 15, c)
	assert.Equal(t, 22, row)

	c, _ = r.Cell(150, 408, 100)
	assert.Equal(t, 5, c)
}

func TestRenderer_DrawsCarAndGround(t *testing.T) {
	screen := newTestScreen(t)
	s := sim.New(config.Default())
	r := NewRenderer(screen, 960, 540)

	r.Draw(s, nil, false)

	// body spans rows 20-22, columns 11-19
	ch, _, _, _ := screen.GetContent(15, 21)
	assert.Equal(t, BodyRune, ch)
	// wheels sit on the grass row
	ch, _, _, _ = screen.GetContent(12, 23)
	assert.Equal(t, WheelRune, ch)
	ch, _, _, _ = screen.GetContent(17, 23)
	assert.Equal(t, WheelRune, ch)
	// away from the car the surface row shows grass
	ch, _, _, _ = screen.GetContent(0, 23)
	assert.Equal(t, GrassRune, ch)
}

func TestRenderer_HUD(t *testing.T) {
	screen := newTestScreen(t)
	s := sim.New(config.Default())
	r := NewRenderer(screen, 960, 540)

	r.Draw(s, nil, false)

	line := rowText(screen, 30)
	assert.Contains(t, line, "Score: 25")
	assert.Contains(t, line, "Level: 1")
	assert.Contains(t, line, "Distance: 15m")
	assert.Contains(t, line, "Level cost: 100")

	bar := rowText(screen, 31)
	assert.True(t, strings.HasPrefix(bar, "[####################]"), bar)
	assert.Contains(t, bar, "Energy: 100/100")
}

func TestRenderer_FlashAndPause(t *testing.T) {
	screen := newTestScreen(t)
	s := sim.New(config.Default())
	r := NewRenderer(screen, 960, 540)

	r.Draw(s, []hud.Flash{{Text: "Score not enough for level up", Alpha: 1}}, true)

	assert.Contains(t, rowText(screen, 1), "Score not enough for level up")
	assert.Contains(t, rowText(screen, 16), "PAUSED")
}

func TestRenderer_TinyScreen(t *testing.T) {
	screen := newTestScreen(t)
	screen.SetSize(10, 2)
	s := sim.New(config.Default())
	r := NewRenderer(screen, 960, 540)

	assert.NotPanics(t, func() { r.Draw(s, nil, false) })
	c, row := r.Cell(0, 0, 0)
	assert.Equal(t, -1, c)
	assert.Equal(t, -1, row)
}
