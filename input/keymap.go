package input

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Keymap binds runes and special keys to actions
type Keymap struct {
	Runes map[rune]Action
	Keys  map[tcell.Key]Action
}

// keymapFile is the on-disk layout: a single [keys] table of key name to action name
type keymapFile struct {
	Keys map[string]string `toml:"keys"`
}

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Special key names accepted in keymap files
var specialKeys = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"backspace": tcell.KeyBackspace2,
	"ctrl+c":    tcell.KeyCtrlC,
	"ctrl+q":    tcell.KeyCtrlQ,
	"ctrl+r":    tcell.KeyCtrlR,
	"ctrl+p":    tcell.KeyCtrlP,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
}

// DefaultKeymap returns the built-in bindings
func DefaultKeymap() *Keymap {
	return &Keymap{
		Runes: map[rune]Action{
			'w': ActionMoveUp,
			's': ActionMoveDown,
			'a': ActionMoveLeft,
			'd': ActionMoveRight,
			'W': ActionMoveUp,
			'S': ActionMoveDown,
			'A': ActionMoveLeft,
			'D': ActionMoveRight,
			'c': ActionCloak,
			' ': ActionShield,
			'e': ActionDecoy,
			'r': ActionRestart,
			'p': ActionPause,
			'q': ActionQuit,
			'm': ActionMute,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionMoveUp,
			tcell.KeyDown:   ActionMoveDown,
			tcell.KeyLeft:   ActionMoveLeft,
			tcell.KeyRight:  ActionMoveRight,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
		},
	}
}

// Clone returns a deep copy
func (k *Keymap) Clone() *Keymap {
	c := &Keymap{
		Runes: make(map[rune]Action, len(k.Runes)),
		Keys:  make(map[tcell.Key]Action, len(k.Keys)),
	}
	for r, a := range k.Runes {
		c.Runes[r] = a
	}
	for key, a := range k.Keys {
		c.Keys[key] = a
	}
	return c
}

// Translate resolves a terminal key event, ActionNone when unbound
func (k *Keymap) Translate(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return k.Runes[ev.Rune()]
	}
	return k.Keys[ev.Key()]
}

// ParseKeymap parses TOML keymap data into a sparse override Keymap
// Only keys present in the [keys] table are populated; "none" entries are kept for merge to unbind
func ParseKeymap(data []byte) (*Keymap, error) {
	var f keymapFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, errors.Wrap(err, "keymap parse")
	}

	km := &Keymap{
		Runes: make(map[rune]Action),
		Keys:  make(map[tcell.Key]Action),
	}

	for keyStr, actionName := range f.Keys {
		action, ok := ActionByName(strings.ToLower(strings.TrimSpace(actionName)))
		if !ok {
			return nil, errors.Errorf("[keys] key %q: unknown action %q", keyStr, actionName)
		}

		if special, ok := specialKeys[strings.ToLower(keyStr)]; ok {
			km.Keys[special] = action
			continue
		}

		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, errors.Wrapf(err, "[keys] key %q", keyStr)
		}
		km.Runes[r] = action
	}

	return km, nil
}

// LoadKeymap reads path and merges it onto the defaults
// An empty path yields the defaults
func LoadKeymap(path string) (*Keymap, error) {
	if path == "" {
		return DefaultKeymap(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read keymap %s", path)
	}
	override, err := ParseKeymap(data)
	if err != nil {
		return nil, errors.Wrapf(err, "keymap %s", path)
	}
	return MergeKeymap(DefaultKeymap(), override), nil
}

// MergeKeymap returns base with override applied; ActionNone entries delete the binding
func MergeKeymap(base, override *Keymap) *Keymap {
	result := base.Clone()
	for r, a := range override.Runes {
		if a == ActionNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = a
		}
	}
	for key, a := range override.Keys {
		if a == ActionNone {
			delete(result.Keys, key)
		} else {
			result.Keys[key] = a
		}
	}
	return result
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, errors.Errorf("invalid key %q (expected single character, alias or special key name)", s)
}
