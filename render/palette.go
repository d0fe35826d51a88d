package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/space-courier/parameter"
	"github.com/lixenwraith/space-courier/session"
)

var black = colorful.Color{}

// Palette holds resolved terminal colors and the gradients derived from them
type Palette struct {
	Danger   tcell.Color
	Success  tcell.Color
	Neutral  tcell.Color
	Cloak    tcell.Color
	Shield   tcell.Color
	Goal     tcell.Color
	Station  tcell.Color
	ViewEdge tcell.Color

	patrol  colorful.Color
	alerted colorful.Color
	decoy   colorful.Color
	star    colorful.Color
}

// NewPalette resolves the hex constants
func NewPalette() *Palette {
	return &Palette{
		Danger:   toTcell(mustHex(parameter.ColorDanger)),
		Success:  toTcell(mustHex(parameter.ColorSuccess)),
		Neutral:  toTcell(mustHex(parameter.ColorNeutral)),
		Cloak:    toTcell(mustHex(parameter.ColorCloak)),
		Shield:   toTcell(mustHex(parameter.ColorShield)),
		Goal:     toTcell(mustHex(parameter.ColorGoal)),
		Station:  toTcell(mustHex(parameter.ColorStation)),
		ViewEdge: toTcell(mustHex(parameter.ColorViewEdge)),
		patrol:   mustHex(parameter.ColorPatrol),
		alerted:  mustHex(parameter.ColorAlerted),
		decoy:    mustHex(parameter.ColorDecoy),
		star:     mustHex(parameter.ColorStar),
	}
}

// Suspicion maps [0, SuspicionMax] onto the patrol-to-alerted gradient, blended in HCL
func (p *Palette) Suspicion(s float64) tcell.Color {
	t := s / parameter.SuspicionMax
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return toTcell(p.patrol.BlendHcl(p.alerted, t))
}

// Class returns the status message color
func (p *Palette) Class(c session.StatusClass) tcell.Color {
	switch c {
	case session.StatusDanger:
		return p.Danger
	case session.StatusSuccess:
		return p.Success
	default:
		return p.Neutral
	}
}

// Decoy fades the decoy color toward black by alpha
func (p *Palette) Decoy(alpha float64) tcell.Color {
	return toTcell(black.BlendRgb(p.decoy, alpha))
}

// Star fades the star color toward black by brightness
func (p *Palette) Star(brightness float64) tcell.Color {
	return toTcell(black.BlendRgb(p.star, brightness))
}

func mustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic("render: bad palette color " + hex)
	}
	return c
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
