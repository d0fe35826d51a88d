package model

import (
	"math"

	"github.com/lixenwraith/space-courier/parameter"
	"github.com/lixenwraith/space-courier/vmath"
)

// Decoy is a stationary lure, always detectable within enemy view range
// Alpha and Pulse are cosmetic and never affect detection
type Decoy struct {
	Position vmath.Vector2
	Lifetime int
	Alpha    float64
	Pulse    float64
}

// NewDecoy creates a decoy at a fixed position with a full lifetime
func NewDecoy(pos vmath.Vector2) *Decoy {
	return &Decoy{
		Position: pos,
		Lifetime: parameter.DecoyLifetimeTicks,
		Alpha:    1.0,
		Pulse:    1.0,
	}
}

// DropDecoy creates a decoy at a random offset around origin
func DropDecoy(origin vmath.Vector2, rng *vmath.Rand) *Decoy {
	angle := rng.Angle()
	dist := rng.Range(parameter.DecoySpawnMinDistance, parameter.DecoySpawnMaxDistance)
	return NewDecoy(vmath.Polar(origin, angle, dist))
}

// Update consumes one tick of lifetime and refreshes the visual pulse
func (d *Decoy) Update() {
	d.Lifetime--
	t := float64(d.Lifetime)
	d.Alpha = parameter.DecoyAlphaBase + parameter.DecoyAlphaSpan*(math.Sin(t*parameter.DecoyAlphaFreq)+1)/2
	d.Pulse = parameter.DecoyPulseBase + parameter.DecoyPulseSpan*math.Sin(t*parameter.DecoyPulseFreq)
}

// Expired reports whether the lifetime has run out
func (d *Decoy) Expired() bool {
	return d.Lifetime <= 0
}
