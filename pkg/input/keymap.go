package input

import (
	"strings"

	"github.com/golangdaddy/hillclimb/pkg/config"
)

// Action is something the player can ask for
type Action int

const (
	ActionNone Action = iota
	ActionAccelerate
	ActionBrake
	ActionJump
	ActionDecreaseCapacity
	ActionIncreaseCapacity
	ActionLevelUp
	ActionPause
	ActionRestart
)

var actionNames = map[Action]string{
	ActionNone:             "none",
	ActionAccelerate:       "accelerate",
	ActionBrake:            "brake",
	ActionJump:             "jump",
	ActionDecreaseCapacity: "decrease_capacity",
	ActionIncreaseCapacity: "increase_capacity",
	ActionLevelUp:          "level_up",
	ActionPause:            "pause",
	ActionRestart:          "restart",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Held reports whether the action is a pedal that stays active while its
// key is down, as opposed to a one-shot command
func (a Action) Held() bool {
	switch a {
	case ActionAccelerate, ActionBrake, ActionJump:
		return true
	}
	return false
}

// Keymap binds actions to key names. Key names are matched without regard to case.
type Keymap struct {
	bindings map[Action][]string
	byKey    map[string]Action
}

// NewKeymap builds a keymap from explicit bindings. A key bound to two
// actions keeps the first one in Action order.
func NewKeymap(bindings map[Action][]string) *Keymap {
	km := &Keymap{
		bindings: make(map[Action][]string, len(bindings)),
		byKey:    make(map[string]Action),
	}
	for a := ActionAccelerate; a <= ActionRestart; a++ {
		keys := bindings[a]
		km.bindings[a] = append([]string(nil), keys...)
		for _, k := range keys {
			name := normalize(k)
			if name == "" {
				continue
			}
			if _, taken := km.byKey[name]; !taken {
				km.byKey[name] = a
			}
		}
	}
	return km
}

// FromConfig builds the keymap described by the config
func FromConfig(keys config.KeysConfig) *Keymap {
	return NewKeymap(map[Action][]string{
		ActionAccelerate:       keys.Accelerate,
		ActionBrake:            keys.Brake,
		ActionJump:             keys.Jump,
		ActionDecreaseCapacity: keys.DecreaseCapacity,
		ActionIncreaseCapacity: keys.IncreaseCapacity,
		ActionLevelUp:          keys.LevelUp,
		ActionPause:            keys.Pause,
		ActionRestart:          keys.Restart,
	})
}

// Lookup returns the action bound to a key name, or ActionNone
func (km *Keymap) Lookup(key string) Action {
	return km.byKey[normalize(key)]
}

// Keys returns the key names bound to an action
func (km *Keymap) Keys(a Action) []string {
	return km.bindings[a]
}

// Label is a short hint for the HUD, e.g. "1" or "L"
func (km *Keymap) Label(a Action) string {
	keys := km.bindings[a]
	if len(keys) == 0 {
		return ""
	}
	return strings.TrimPrefix(keys[0], "Digit")
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
