package input

import (
	"time"

	"github.com/lixenwraith/space-courier/parameter"
)

// Latch tracks held and just-pressed actions between ticks
// Terminals deliver no key-up, so an action is held until holdTimeout passes without a repeat
// Not safe for concurrent use; the caller serializes Press and Consume
type Latch struct {
	holdTimeout time.Duration
	lastSeen    [actionCount]time.Time
	pressed     [actionCount]bool
}

// NewLatch creates a latch with the default hold timeout
func NewLatch() *Latch {
	return &Latch{holdTimeout: parameter.KeyHoldTimeout}
}

// NewLatchWithTimeout creates a latch with a custom hold timeout
func NewLatchWithTimeout(holdTimeout time.Duration) *Latch {
	return &Latch{holdTimeout: holdTimeout}
}

// Press records a key event for action at now
// A press on an action that is not currently held raises its just-pressed flag
func (l *Latch) Press(a Action, now time.Time) {
	if a == ActionNone || a >= actionCount {
		return
	}
	if !l.Held(a, now) {
		l.pressed[a] = true
	}
	l.lastSeen[a] = now
}

// Release drops an action immediately, for sources that do report key-up
func (l *Latch) Release(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	l.lastSeen[a] = time.Time{}
}

// Held reports whether action saw an event within the hold timeout
func (l *Latch) Held(a Action, now time.Time) bool {
	seen := l.lastSeen[a]
	if seen.IsZero() {
		return false
	}
	return now.Sub(seen) <= l.holdTimeout
}

// Consume samples one tick of input and clears just-pressed flags
func (l *Latch) Consume(now time.Time) Intent {
	var in Intent

	if l.Held(ActionMoveUp, now) {
		in.Move.Y -= 1
	}
	if l.Held(ActionMoveDown, now) {
		in.Move.Y += 1
	}
	if l.Held(ActionMoveLeft, now) {
		in.Move.X -= 1
	}
	if l.Held(ActionMoveRight, now) {
		in.Move.X += 1
	}

	in.Cloak = l.pressed[ActionCloak]
	in.Shield = l.pressed[ActionShield]
	in.Decoy = l.pressed[ActionDecoy]
	in.Restart = l.pressed[ActionRestart]
	in.Pause = l.pressed[ActionPause]
	in.Quit = l.pressed[ActionQuit]

	l.pressed = [actionCount]bool{}
	return in
}

// Reset forgets all held and pending actions
func (l *Latch) Reset() {
	l.lastSeen = [actionCount]time.Time{}
	l.pressed = [actionCount]bool{}
}
