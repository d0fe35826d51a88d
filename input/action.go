package input

// Action is a semantic binding target for a key
type Action uint8

const (
	ActionNone Action = iota

	// Movement, level-triggered while held
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// Abilities, edge-triggered
	ActionCloak
	ActionShield
	ActionDecoy

	// System, consumed by the shell
	ActionRestart
	ActionPause
	ActionQuit
	ActionMute

	actionCount
)

// actionNames maps canonical keymap names to actions
// "none" is the unbind sentinel
var actionNames = map[string]Action{
	"none":       ActionNone,
	"move_up":    ActionMoveUp,
	"move_down":  ActionMoveDown,
	"move_left":  ActionMoveLeft,
	"move_right": ActionMoveRight,
	"cloak":      ActionCloak,
	"shield":     ActionShield,
	"decoy":      ActionDecoy,
	"restart":    ActionRestart,
	"pause":      ActionPause,
	"quit":       ActionQuit,
	"mute":       ActionMute,
}

// ActionByName resolves a keymap action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionNames[name]
	return a, ok
}

// String returns the canonical keymap name
func (a Action) String() string {
	for name, v := range actionNames {
		if v == a {
			return name
		}
	}
	return "unknown"
}
