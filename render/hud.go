package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/space-courier/parameter"
	"github.com/lixenwraith/space-courier/session"
)

// drawText writes s from (x, y), advancing by display width, clipped at maxX
// Returns the column after the last drawn cell
func drawText(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// energyBar renders a fixed-width gauge
func energyBar(energy, max float64, width int) string {
	filled := 0
	if max > 0 {
		filled = int(energy / max * float64(width))
	}
	if filled < 0 {
		filled = 0
	} else if filled > width {
		filled = width
	}
	return strings.Repeat(string(parameter.GlyphBarFull), filled) +
		strings.Repeat(string(parameter.GlyphBarEmpty), width-filled)
}

// hearts renders remaining lives
func hearts(health, max int) string {
	if health < 0 {
		health = 0
	}
	if health > max {
		health = max
	}
	return strings.Repeat(string(parameter.GlyphLife), health) + strings.Repeat(" ", max-health)
}

// abilityFlags renders active ability markers
func abilityFlags(p session.PlayerView, invincible bool) string {
	var parts []string
	if p.Cloaked {
		parts = append(parts, "CLOAK")
	}
	if p.Shielded {
		parts = append(parts, "SHIELD")
	}
	if invincible {
		parts = append(parts, "SAFE")
	}
	return strings.Join(parts, " ")
}

// drawHUD fills the rows below the arena
func (r *Renderer) drawHUD(v session.View, top, width int, paused bool) {
	base := tcell.StyleDefault.Foreground(r.palette.Neutral)

	// Row 1: lives, energy, decoys, abilities
	x := drawText(r.screen, 0, top, width, "HP ", base)
	x = drawText(r.screen, x, top, width, hearts(v.Player.Health, v.Player.MaxHealth), base.Foreground(r.palette.Danger))
	x = drawText(r.screen, x, top, width, "  EN ", base)
	x = drawText(r.screen, x, top, width, energyBar(v.Player.Energy, v.Player.MaxEnergy, parameter.EnergyBarWidth), base.Foreground(r.palette.Shield))
	x = drawText(r.screen, x, top, width, fmt.Sprintf(" %3.0f  DECOYS %d  ", v.Player.Energy, v.Player.Decoys), base)
	drawText(r.screen, x, top, width, abilityFlags(v.Player, v.Invincible), base.Foreground(r.palette.Cloak).Bold(true))

	// Row 2: status message or goal distance
	line := fmt.Sprintf("GOAL %4.0f", v.DistanceToGoal)
	style := base
	switch {
	case v.State.Terminal():
		line = v.Message + "  [r] restart  [q] quit"
		style = base.Foreground(r.palette.Class(v.Class)).Bold(true)
	case paused:
		line = "PAUSED  [p] resume"
		style = base.Bold(true)
	}
	drawText(r.screen, 0, top+1, width, runewidth.Truncate(line, width, "…"), style)

	// Row 3: debug metrics or key help
	help := "WASD/arrows move  [c] cloak  [space] shield  [e] decoy  [p] pause  [m] mute  [q] quit"
	if r.debug && r.registry != nil {
		help = fmt.Sprintf("seed=%d %s", v.Seed, r.registry.Format())
	}
	drawText(r.screen, 0, top+2, width, runewidth.Truncate(help, width, "…"), base.Dim(true))
}
