package model

import (
	"github.com/lixenwraith/space-courier/parameter"
	"github.com/lixenwraith/space-courier/vmath"
)

// Player is the courier ship: kinematics, energy economy, abilities, health and decoy inventory
// Abilities are gated by energy and switched off by the energy tick, never by callers
type Player struct {
	Position  vmath.Vector2
	Speed     float64
	Direction float64 // Radians, 0 = +X, retained while idle
	Health    int
	Energy    float64
	MaxEnergy float64
	Decoys    int

	cloaked  bool
	shielded bool
}

// NewPlayer creates a fresh ship at the given position
func NewPlayer(start vmath.Vector2) *Player {
	return &Player{
		Position:  start,
		Speed:     parameter.PlayerSpeed,
		Health:    parameter.PlayerMaxHealth,
		Energy:    parameter.EnergyMax,
		MaxEnergy: parameter.EnergyMax,
		Decoys:    parameter.PlayerStartDecoys,
	}
}

// IsCloaked reports whether cloak is engaged
func (p *Player) IsCloaked() bool { return p.cloaked }

// IsShielded reports whether the shield is raised
func (p *Player) IsShielded() bool { return p.shielded }

// Move steps the ship along direction at Speed
// Direction need not be normalized; zero vector is a no-op and keeps the last heading
// Bounds are enforced by the simulation after the full tick
func (p *Player) Move(direction vmath.Vector2) {
	if direction.IsZero() {
		return
	}
	p.Direction = direction.Angle()
	p.Position = p.Position.Add(direction.Normalize().Scale(p.Speed))
}

// ActivateCloak engages cloak if energy allows, otherwise no-op
func (p *Player) ActivateCloak() {
	if p.Energy >= parameter.CloakActivationEnergy && !p.cloaked {
		p.cloaked = true
	}
}

// ActivateShield raises the shield if energy allows, otherwise no-op
func (p *Player) ActivateShield() {
	if p.Energy >= parameter.ShieldActivationEnergy && !p.shielded {
		p.shielded = true
	}
}

// DeactivateCloak drops cloak unconditionally
func (p *Player) DeactivateCloak() { p.cloaked = false }

// DeactivateShield drops the shield unconditionally
func (p *Player) DeactivateShield() { p.shielded = false }

// TickEnergy applies one tick of regen and ability drain
// Regen and drains net out before the cap, so a full ship with shield up lands at max+regen-drain
// Must run exactly once per simulation tick
func (p *Player) TickEnergy() {
	p.Energy += parameter.EnergyRegenPerTick
	if p.cloaked {
		p.Energy -= parameter.CloakDrainPerTick
	}
	if p.shielded {
		p.Energy -= parameter.ShieldDrainPerTick
	}
	if p.Energy > p.MaxEnergy {
		p.Energy = p.MaxEnergy
	}
	if p.Energy <= 0 {
		p.Energy = 0
		p.cloaked = false
		p.shielded = false
	}
}

// TakeDamage is the only path that reduces health
// An active shield with energy absorbs the hit at a fixed energy cost instead
func (p *Player) TakeDamage(amount int) {
	if p.shielded && p.Energy > 0 {
		p.Energy -= parameter.ShieldAbsorbCost
		if p.Energy <= 0 {
			p.Energy = 0
			p.shielded = false
		}
		return
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}

// ConsumeDecoy takes one decoy from inventory, false when empty
func (p *Player) ConsumeDecoy() bool {
	if p.Decoys <= 0 {
		return false
	}
	p.Decoys--
	return true
}

// Alive reports whether the ship has health left
func (p *Player) Alive() bool {
	return p.Health > 0
}
