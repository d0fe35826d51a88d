package input

import "github.com/lixenwraith/space-courier/vmath"

// Intent is the per-tick input sampled from the latch
// Move components are each in {-1, 0, +1}; ability flags are single-tick pulses
type Intent struct {
	Move   vmath.Vector2
	Cloak  bool
	Shield bool
	Decoy  bool

	// System pulses, never forwarded to the simulation
	Restart bool
	Pause   bool
	Quit    bool
}

// IsZero reports an intent with no movement and no pulses
func (in Intent) IsZero() bool {
	return in == Intent{}
}
