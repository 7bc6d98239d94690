package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	hints          []string
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen. hints are the control
// lines listed under the title.
func NewTitleScreen(hints []string, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		hints:          hints,
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	drawTitleHills(screen, width, height, elapsed)

	// Pulsing title
	pulse := 1.0 + 0.1*math.Sin(elapsed*2.0)
	brightness := math.Min(1, 1.0+0.2*math.Sin(elapsed*1.5))
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	DrawTextCentered(screen, "HILL CLIMB", centerX, centerY-8, 72*pulse, titleColor)
	DrawTextCentered(screen, "Drive far. Mind the gap.", centerX, centerY+90, 20, color.RGBA{180, 180, 200, 255})

	y := centerY + 140
	for _, h := range ts.hints {
		DrawTextCentered(screen, h, centerX, y, 16, color.RGBA{160, 170, 190, 255})
		y += 22
	}

	// Blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		DrawTextCentered(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-80, 20, color.RGBA{150, 200, 255, 255})
	}
}

// drawTitleHills draws a slowly scrolling hill silhouette along the bottom
func drawTitleHills(screen *ebiten.Image, width, height int, elapsed float64) {
	hill := color.RGBA{30, 45, 60, 255}
	shift := elapsed * 30
	for x := 0; x < width; x += 4 {
		fx := float64(x) + shift
		h := 60 + 25*math.Sin(fx/90) + 12*math.Cos(fx/37)
		vector.FillRect(screen, float32(x), float32(float64(height)-h), 4, float32(h), hill, false)
	}
}
