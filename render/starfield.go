package render

import (
	"math"

	"github.com/lixenwraith/space-courier/parameter"
	"github.com/lixenwraith/space-courier/vmath"
)

// star is one background point; position is in starfield space
type star struct {
	pos        vmath.Vector2
	size       float64
	phase      float64
	brightness float64
}

// Starfield is a seeded, twinkling, parallax-scrolled backdrop
// Presentation only; it never feeds back into the simulation
type Starfield struct {
	stars  []star
	offset vmath.Vector2
}

// NewStarfield scatters StarCount stars from seed
func NewStarfield(seed uint64) *Starfield {
	rng := vmath.NewRand(seed)
	sf := &Starfield{stars: make([]star, parameter.StarCount)}
	for i := range sf.stars {
		sf.stars[i] = star{
			pos:   vmath.Vec(rng.Range(0, parameter.StarfieldWidth), rng.Range(0, parameter.StarfieldHeight)),
			size:  rng.Range(0.5, 2.7),
			phase: rng.Angle(),
		}
		sf.stars[i].brightness = twinkle(sf.stars[i].phase)
	}
	return sf
}

// Advance scrolls by the player's offset from arena center and steps every twinkle
func (sf *Starfield) Advance(player vmath.Vector2) {
	center := vmath.Vec(parameter.ArenaWidth/2, parameter.ArenaHeight/2)
	sf.offset = sf.offset.Add(player.Sub(center).Scale(parameter.StarParallax))
	sf.offset.X = wrapSigned(sf.offset.X, parameter.ArenaWidth)
	sf.offset.Y = wrapSigned(sf.offset.Y, parameter.ArenaHeight)

	for i := range sf.stars {
		sf.stars[i].phase += parameter.StarTwinkleStep
		sf.stars[i].brightness = twinkle(sf.stars[i].phase)
	}
}

// Len returns the star count
func (sf *Starfield) Len() int { return len(sf.stars) }

// Project returns star i in arena coordinates with its brightness and size
func (sf *Starfield) Project(i int) (vmath.Vector2, float64, float64) {
	s := sf.stars[i]
	return vmath.Vec(
		wrapPositive(s.pos.X-sf.offset.X, parameter.ArenaWidth),
		wrapPositive(s.pos.Y-sf.offset.Y, parameter.ArenaHeight),
	), s.brightness, s.size
}

// twinkle maps phase to brightness in [0.4, 1]
func twinkle(phase float64) float64 {
	return vmath.Clamp(math.Sin(phase)*0.3+0.7, 0.3, 1.0)
}

// wrapSigned keeps v within (-span, span]
func wrapSigned(v, span float64) float64 {
	if v > span {
		v -= span
	}
	if v < -span {
		v += span
	}
	return v
}

// wrapPositive folds v into [0, span)
func wrapPositive(v, span float64) float64 {
	v = math.Mod(v, span)
	if v < 0 {
		v += span
	}
	return v
}
