package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Face is the shared HUD font
var Face = text.NewGoXFace(bitmapfont.Face)

// glyphHeight is the native line height of the bitmap font
const glyphHeight = 12.0

// DrawTextAt draws text with its top-left corner at (x, y). size is the
// target line height in pixels; the bitmap font is scaled to match.
func DrawTextAt(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color) {
	scale := size / glyphHeight

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)

	text.Draw(screen, str, Face, op)
}

// TextWidth returns the width of str at the given size
func TextWidth(str string, size float64) float64 {
	return text.Advance(str, Face) * size / glyphHeight
}

// DrawTextCentered draws text horizontally centred on cx
func DrawTextCentered(screen *ebiten.Image, str string, cx, y float64, size float64, clr color.Color) {
	DrawTextAt(screen, str, cx-TextWidth(str, size)/2, y, size, clr)
}
