package terminal

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var specialKeys = map[tcell.Key]string{
	tcell.KeyRight: "ArrowRight",
	tcell.KeyLeft:  "ArrowLeft",
	tcell.KeyUp:    "ArrowUp",
	tcell.KeyDown:  "ArrowDown",
	tcell.KeyEnter: "Enter",
}

// KeyName maps a terminal key event to the key names used in the
// bindings, e.g. "ArrowRight", "Space", "Digit1" or "L". Keys with no
// binding name map to "".
func KeyName(ev *tcell.EventKey) string {
	return keyName(ev.Key(), ev.Rune())
}

func keyName(k tcell.Key, r rune) string {
	if k != tcell.KeyRune {
		return specialKeys[k]
	}
	switch {
	case r == ' ':
		return "Space"
	case r >= '0' && r <= '9':
		return "Digit" + string(r)
	case unicode.IsLetter(r):
		return strings.ToUpper(string(r))
	}
	return ""
}

// IsQuit reports whether the event should end the program
func IsQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}
