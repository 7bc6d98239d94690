package game

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/hillclimb/pkg/hud"
	"github.com/golangdaddy/hillclimb/pkg/terrain"
	"github.com/golangdaddy/hillclimb/pkg/ui"
	"github.com/golangdaddy/hillclimb/pkg/vehicle"
)

var (
	groundColor  = color.RGBA{0xcd, 0xbf, 0x90, 0xff}
	deckColor    = color.RGBA{0x6b, 0x3f, 0x2a, 0xff}
	supportColor = color.RGBA{0x4b, 0x2b, 0x18, 0xff}
	grassColor   = color.RGBA{0x2f, 0x8b, 0x3a, 0xff}
	bodyColor    = color.RGBA{0xf2, 0xd4, 0x5a, 0xff}
	windowColor  = color.RGBA{0xcf, 0xe7, 0xff, 0xff}
	tyreColor    = color.RGBA{0x11, 0x11, 0x11, 0xff}
	hubColor     = color.RGBA{0x77, 0x77, 0x77, 0xff}
)

// gapDrop is how far below the screen a gap's edge is drawn
const gapDrop = 200

// bodyLift is the gap between the wheel line and the underside of the body
const bodyLift = 10

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// drawBackdrop draws the sky and two tiles of the parallax mountains
func (gs *GameplayScreen) drawBackdrop(screen *ebiten.Image) {
	screen.DrawImage(gs.sky, nil)

	off := gs.backdrop.MountainOffset(gs.state.CameraX)
	for _, x := range []float64{off, off + float64(gs.screenWidth)} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, 0)
		screen.DrawImage(gs.mountains, op)
	}
}

// drawTerrain fills the ground under the course surface, then adds the
// bridge and grass decorations
func (gs *GameplayScreen) drawTerrain(screen *ebiten.Image) {
	t := gs.state.Terrain
	camX := gs.state.CameraX
	w := t.SegmentWidth()
	bottom := float32(gs.screenHeight)

	first := max(0, int(camX/w)-1)
	last := min(t.Len()-1, int((camX+float64(gs.screenWidth))/w)+1)

	surface := func(i int) float32 {
		seg := t.At(i)
		if seg.Kind == terrain.KindGap {
			return bottom + gapDrop
		}
		return float32(seg.Height)
	}

	// the surface runs straight from each slot's left edge to the next one's
	var vs []ebiten.Vertex
	var is []uint16
	for i := first; i < last; i++ {
		x0 := float32(float64(i)*w - camX)
		x1 := float32(float64(i+1)*w - camX)
		y0, y1 := surface(i), surface(i+1)
		base := uint16(len(vs))
		vs = append(vs,
			fillVertex(x0, y0, groundColor),
			fillVertex(x1, y1, groundColor),
			fillVertex(x1, bottom, groundColor),
			fillVertex(x0, bottom, groundColor),
		)
		is = append(is, base, base+1, base+2, base, base+2, base+3)
	}
	// the last slot closes straight down at the course end
	if last == t.Len()-1 {
		x := float32(float64(last)*w - camX)
		end := float32(float64(t.Len())*w - camX)
		y := surface(last)
		base := uint16(len(vs))
		vs = append(vs,
			fillVertex(x, y, groundColor),
			fillVertex(end, bottom, groundColor),
			fillVertex(x, bottom, groundColor),
		)
		is = append(is, base, base+1, base+2)
	}
	if len(is) > 0 {
		screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
	}

	sw := float32(w)
	for _, i := range t.Bridges() {
		x := float32(float64(i)*w - camX)
		y := float32(t.At(i).Height)
		vector.FillRect(screen, x+10, y-20, sw-20, 20, deckColor, false)
		vector.FillRect(screen, x+12, y, 10, 40, supportColor, false)
		vector.FillRect(screen, x+sw-26, y, 10, 40, supportColor, false)
	}

	for i := first - first%2; i <= last; i += 2 {
		seg := t.At(i)
		if seg.Kind != terrain.KindGround {
			continue
		}
		x := float32(float64(i)*w - camX + 8)
		vector.FillRect(screen, x, float32(seg.Height)-6, 12, 6, grassColor, false)
	}
}

func fillVertex(x, y float32, c color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 0xff,
		ColorG: float32(c.G) / 0xff,
		ColorB: float32(c.B) / 0xff,
		ColorA: float32(c.A) / 0xff,
	}
}

// newCarBody renders the jeep body once: a rounded chassis with two windows
func newCarBody(width, height float64) *ebiten.Image {
	w, h := float32(width), float32(height)
	img := ebiten.NewImage(int(math.Ceil(width)), int(math.Ceil(height)))

	const r = 6
	vector.FillRect(img, r, 0, w-2*r, h, bodyColor, true)
	vector.FillRect(img, 0, r, w, h-2*r, bodyColor, true)
	for _, c := range [][2]float32{{r, r}, {w - r, r}, {r, h - r}, {w - r, h - r}} {
		vector.FillCircle(img, c[0], c[1], r, bodyColor, true)
	}

	vector.FillRect(img, 8, 4, w/3, h/2, windowColor, false)
	vector.FillRect(img, 8+w/3+6, 4, w/3-8, h/2, windowColor, false)
	return img
}

// drawCar draws the body tilted by the car angle and the two wheels below it
func (gs *GameplayScreen) drawCar(screen *ebiten.Image) {
	car := gs.state.Car
	x := car.X - gs.state.CameraX

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-car.Width/2, -car.Height-bodyLift)
	op.GeoM.Rotate(car.Angle)
	op.GeoM.Translate(x, car.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(gs.carBody, op)

	rear, front := car.WheelOffsets()
	for _, dx := range []float64{rear, front} {
		drawWheel(screen, x+dx, car.Y+6, vehicle.WheelRadius, car.WheelRot)
	}
}

// drawWheel draws a tyre and hub with one spoke so the spin is visible
func drawWheel(screen *ebiten.Image, x, y, r, rot float64) {
	cx, cy := float32(x), float32(y)
	vector.FillCircle(screen, cx, cy, float32(r), tyreColor, true)
	vector.FillCircle(screen, cx, cy, float32(r*0.45), hubColor, true)

	sx := float32(x + math.Cos(rot)*r*0.8)
	sy := float32(y + math.Sin(rot)*r*0.8)
	vector.StrokeLine(screen, cx, cy, sx, sy, 2, hubColor, true)
}

// drawUI draws the HUD, buttons and flash messages over the world
func (gs *GameplayScreen) drawUI(screen *ebiten.Image) {
	ui.DrawStats(screen, hud.Read(gs.state))

	cx, cy := ebiten.CursorPosition()
	ui.DrawButtons(screen, gs.buttons, cx, cy)
	ui.DrawFlashes(screen, gs.flasher.Active(time.Now()))

	if gs.paused {
		vector.FillRect(screen, 0, 0, float32(gs.screenWidth), float32(gs.screenHeight), color.RGBA{0, 0, 0, 96}, false)
		ui.DrawTextCentered(screen, "PAUSED", float64(gs.screenWidth)/2, float64(gs.screenHeight)/2-24, 48, color.White)
	}
}
