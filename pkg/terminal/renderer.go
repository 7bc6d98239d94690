package terminal

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/golangdaddy/hillclimb/pkg/background"
	"github.com/golangdaddy/hillclimb/pkg/hud"
	"github.com/golangdaddy/hillclimb/pkg/sim"
	"github.com/golangdaddy/hillclimb/pkg/terrain"
)

// HUDRows is the number of rows below the world reserved for the HUD
const HUDRows = 2

var (
	skyColor    = tcell.NewRGBColor(0x87, 0xce, 0xff)
	groundColor = tcell.NewRGBColor(0xcd, 0xbf, 0x90)
	grassColor  = tcell.NewRGBColor(0x2f, 0x8b, 0x3a)
	deckColor   = tcell.NewRGBColor(0x6b, 0x3f, 0x2a)

	bodyStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xf2, 0xd4, 0x5a))
	wheelStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Bold(true)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	flashStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true)
)

// Glyphs used for the car
const (
	BodyRune  = '█'
	WheelRune = 'o'
	GrassRune = '▀'
	DeckRune  = '='
)

// Renderer draws the simulation onto a terminal screen. The world view
// keeps the windowed game's proportions and is squeezed into the cells
// above the HUD.
type Renderer struct {
	screen    tcell.Screen
	viewW     float64
	viewH     float64
	backdrop  *background.Generator
	mountains *image.RGBA

	// background colour of each world cell from the last frame, row major
	bg    []tcell.Color
	bgCol int
}

// NewRenderer creates a renderer for a world view of viewW x viewH pixels
func NewRenderer(screen tcell.Screen, viewW, viewH int) *Renderer {
	gen := background.NewGenerator(viewW, viewH)
	return &Renderer{
		screen:    screen,
		viewW:     float64(viewW),
		viewH:     float64(viewH),
		backdrop:  gen,
		mountains: gen.GenerateMountains(),
	}
}

// cellSize returns world pixels per column and per row
func (r *Renderer) cellSize() (float64, float64) {
	cols, rows := r.screen.Size()
	rows -= HUDRows
	if cols < 1 || rows < 1 {
		return 0, 0
	}
	return r.viewW / float64(cols), r.viewH / float64(rows)
}

// Cell maps a world position to a screen cell for a camera offset
func (r *Renderer) Cell(worldX, worldY, cameraX float64) (col, row int) {
	sx, sy := r.cellSize()
	if sx == 0 {
		return -1, -1
	}
	return int(math.Floor((worldX - cameraX) / sx)), int(math.Floor(worldY / sy))
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(s *sim.State, flashes []hud.Flash, paused bool) {
	r.screen.Clear()
	cols, rows := r.screen.Size()
	sx, sy := r.cellSize()
	if sx > 0 {
		r.drawWorld(s, cols, rows-HUDRows, sx, sy)
		r.drawCar(s, rows-HUDRows)
	}
	r.drawHUD(s, cols, rows)
	r.drawFlashes(flashes, cols)
	if paused {
		r.centerText(rows/2, cols, " PAUSED ", flashStyle)
	}
	r.screen.Show()
}

func (r *Renderer) drawWorld(s *sim.State, cols, rows int, sx, sy float64) {
	off := r.backdrop.MountainOffset(s.CameraX)
	mw := r.mountains.Bounds().Dx()
	if n := cols * rows; cap(r.bg) < n {
		r.bg = make([]tcell.Color, n)
	} else {
		r.bg = r.bg[:n]
	}
	r.bgCol = cols

	for c := 0; c < cols; c++ {
		wx := s.CameraX + (float64(c)+0.5)*sx
		ground := s.Terrain.GroundY(wx)
		seg := s.Terrain.At(s.Terrain.IndexAt(wx))
		mx := ((int((float64(c)+0.5)*sx-off) % mw) + mw) % mw

		for row := 0; row < rows; row++ {
			top := float64(row) * sy
			wy := top + sy/2
			fg, bg, ch := tcell.ColorDefault, skyColor, ' '
			switch {
			case wy >= ground:
				bg = groundColor
				if top < ground && seg.Kind == terrain.KindGround {
					fg, ch = grassColor, GrassRune
				}
			case seg.Kind == terrain.KindBridge && ground-wy < sy:
				fg, ch = deckColor, DeckRune
			default:
				if px := r.mountains.RGBAAt(mx, int(wy)); px.A > 0 {
					bg = tcell.NewRGBColor(int32(px.R), int32(px.G), int32(px.B))
				}
			}
			r.bg[row*cols+c] = bg
			r.screen.SetContent(c, row, ch, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
}

func (r *Renderer) drawCar(s *sim.State, rows int) {
	car := s.Car
	c0, r0 := r.Cell(car.X-car.Width/2, car.Y-car.Height-10, s.CameraX)
	c1, r1 := r.Cell(car.X+car.Width/2, car.Y-10, s.CameraX)
	for row := r0; row <= r1; row++ {
		for c := c0; c <= c1; c++ {
			r.set(c, row, rows, BodyRune, bodyStyle)
		}
	}

	rear, front := car.WheelOffsets()
	for _, dx := range []float64{rear, front} {
		c, row := r.Cell(car.X+dx, car.Y+6, s.CameraX)
		r.set(c, row, rows, WheelRune, wheelStyle)
	}
}

// set writes a cell that sits inside the world area, keeping its background
func (r *Renderer) set(c, row, rows int, ch rune, style tcell.Style) {
	cols, _ := r.screen.Size()
	if c < 0 || c >= cols || row < 0 || row >= rows {
		return
	}
	if i := row*r.bgCol + c; c < r.bgCol && i < len(r.bg) {
		style = style.Background(r.bg[i])
	}
	r.screen.SetContent(c, row, ch, nil, style)
}

func (r *Renderer) drawHUD(s *sim.State, cols, rows int) {
	st := hud.Read(s)
	line1 := strings.Join([]string{st.Score, st.Level, st.Distance, st.LevelCost}, "  ")
	r.text(0, rows-2, cols, padRight(line1, cols), hudStyle)

	const barWidth = 20
	filled := int(math.Round(st.EnergyFraction * barWidth))
	bar := fmt.Sprintf("[%s%s] %s  1/2: -/+ energy  L: level up  P: pause  R: restart  Esc: quit",
		strings.Repeat("#", filled), strings.Repeat("-", barWidth-filled), st.Energy)
	r.text(0, rows-1, cols, padRight(bar, cols), hudStyle)
}

func (r *Renderer) drawFlashes(flashes []hud.Flash, cols int) {
	for i, f := range flashes {
		style := flashStyle
		if f.Alpha < 0.5 {
			style = style.Dim(true)
		}
		r.centerText(1+i, cols, " "+f.Text+" ", style)
	}
}

func (r *Renderer) centerText(row, cols int, str string, style tcell.Style) {
	r.text((cols-len(str))/2, row, cols, str, style)
}

func (r *Renderer) text(x, y, cols int, str string, style tcell.Style) {
	for i, ch := range []rune(str) {
		if x+i < 0 || x+i >= cols {
			continue
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
