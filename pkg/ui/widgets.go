package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/hillclimb/pkg/hud"
)

var (
	panelColor       = color.RGBA{0, 0, 0, 64}
	buttonColor      = color.RGBA{40, 48, 70, 220}
	buttonHoverColor = color.RGBA{70, 84, 120, 230}
	buttonBorder     = color.RGBA{200, 210, 230, 255}
	barBackground    = color.RGBA{40, 40, 40, 255}
	barBorder        = color.RGBA{150, 150, 150, 255}
	white            = color.RGBA{255, 255, 255, 255}
)

// DrawStats draws the score panel in the top-left corner
func DrawStats(screen *ebiten.Image, st hud.Stats) {
	vector.FillRect(screen, 8, 8, 220, 92, panelColor, false)
	DrawTextAt(screen, st.Score, 16, 14, 16, white)
	DrawTextAt(screen, st.Level, 16, 32, 16, white)
	DrawTextAt(screen, st.Distance, 16, 50, 16, white)
	DrawEnergyBar(screen, 16, 72, 200, 14, st.EnergyFraction)

	h := screen.Bounds().Dy()
	DrawTextAt(screen, st.Energy, 16, float64(h-26), 16, white)
	DrawTextAt(screen, st.LevelCost, 180, float64(h-26), 16, white)
}

// DrawEnergyBar draws a horizontal gauge, green when full through red when empty
func DrawEnergyBar(screen *ebiten.Image, x, y, width, height float32, fraction float64) {
	vector.FillRect(screen, x, y, width, height, barBackground, false)

	if fraction > 0 {
		var fill color.RGBA
		if fraction > 0.5 {
			ratio := (fraction - 0.5) / 0.5
			fill = color.RGBA{uint8(255 - ratio*155), 255, 100, 255}
		} else {
			ratio := fraction / 0.5
			fill = color.RGBA{255, uint8(100 + ratio*155), uint8(100 * ratio), 255}
		}
		vector.FillRect(screen, x, y, width*float32(fraction), height, fill, false)
	}
	vector.StrokeRect(screen, x, y, width, height, 1, barBorder, false)
}

// DrawButtons draws the progression buttons; hover highlights the one
// under the cursor
func DrawButtons(screen *ebiten.Image, buttons []hud.Button, cursorX, cursorY int) {
	hovered, _ := hud.HitTest(buttons, cursorX, cursorY)
	for _, b := range buttons {
		bg := buttonColor
		if b.Action == hovered {
			bg = buttonHoverColor
		}
		x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
		w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
		vector.FillRect(screen, x, y, w, h, bg, false)
		vector.StrokeRect(screen, x, y, w, h, 1, buttonBorder, false)
		DrawTextCentered(screen, b.Label, float64(x+w/2), float64(y)+8, 16, white)
	}
}

// DrawFlashes draws queued messages centred near the top of the screen
func DrawFlashes(screen *ebiten.Image, flashes []hud.Flash) {
	cx := float64(screen.Bounds().Dx()) / 2
	y := 56.0
	for _, f := range flashes {
		w := TextWidth(f.Text, 16) + 24
		a := uint8(153 * f.Alpha)
		vector.FillRect(screen, float32(cx-w/2), float32(y), float32(w), 30, color.RGBA{0, 0, 0, a}, false)
		DrawTextCentered(screen, f.Text, cx, y+7, 16, color.RGBA{255, 255, 255, uint8(255 * f.Alpha)})
		y += 36
	}
}
