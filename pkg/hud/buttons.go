package hud

import (
	"image"

	"github.com/golangdaddy/hillclimb/pkg/input"
)

// Button is an on-screen control bound to a command
type Button struct {
	Label  string
	Action input.Action
	Rect   image.Rectangle
}

const (
	buttonWidth  = 120
	buttonHeight = 32
	buttonGap    = 10
	buttonMargin = 12
)

// Layout places the progression buttons along the top-right edge of a
// screen of the given width. Key hints come from the keymap.
func Layout(screenWidth int, km *input.Keymap) []Button {
	specs := []struct {
		label  string
		action input.Action
	}{
		{"- Energy", input.ActionDecreaseCapacity},
		{"+ Energy", input.ActionIncreaseCapacity},
		{"Level Up", input.ActionLevelUp},
	}

	buttons := make([]Button, 0, len(specs))
	x := screenWidth - buttonMargin - len(specs)*buttonWidth - (len(specs)-1)*buttonGap
	for _, spec := range specs {
		label := spec.label
		if key := km.Label(spec.action); key != "" {
			label += " [" + key + "]"
		}
		buttons = append(buttons, Button{
			Label:  label,
			Action: spec.action,
			Rect:   image.Rect(x, buttonMargin, x+buttonWidth, buttonMargin+buttonHeight),
		})
		x += buttonWidth + buttonGap
	}
	return buttons
}

// HitTest returns the action of the button under (x, y)
func HitTest(buttons []Button, x, y int) (input.Action, bool) {
	p := image.Pt(x, y)
	for _, b := range buttons {
		if p.In(b.Rect) {
			return b.Action, true
		}
	}
	return input.ActionNone, false
}
