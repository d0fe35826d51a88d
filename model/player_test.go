package model

import (
	"math"
	"testing"

	"github.com/lixenwraith/space-courier/parameter"
	"github.com/lixenwraith/space-courier/vmath"
)

// TestPlayerMoveNormalizesAndFaces verifies diagonal input moves exactly Speed and sets heading
func TestPlayerMoveNormalizesAndFaces(t *testing.T) {
	p := NewPlayer(vmath.Vec(100, 100))
	p.Move(vmath.Vec(1, 1))

	moved := p.Position.DistanceTo(vmath.Vec(100, 100))
	if math.Abs(moved-parameter.PlayerSpeed) > 1e-9 {
		t.Errorf("Expected displacement %f, got %f", parameter.PlayerSpeed, moved)
	}
	if math.Abs(p.Direction-math.Pi/4) > 1e-9 {
		t.Errorf("Expected direction π/4, got %f", p.Direction)
	}
}

// TestPlayerMoveZeroKeepsHeading verifies a zero vector is a no-op
func TestPlayerMoveZeroKeepsHeading(t *testing.T) {
	p := NewPlayer(vmath.Vec(100, 100))
	p.Move(vmath.Vec(0, -1))
	pos, dir := p.Position, p.Direction

	p.Move(vmath.Vec(0, 0))

	if p.Position != pos {
		t.Errorf("Expected position %v unchanged, got %v", pos, p.Position)
	}
	if p.Direction != dir {
		t.Errorf("Expected direction %f retained, got %f", dir, p.Direction)
	}
}

// TestShieldScenario verifies shield activation at full energy and the first tick drain
func TestShieldScenario(t *testing.T) {
	p := NewPlayer(vmath.Vec(100, 100))
	p.ActivateShield()
	if !p.IsShielded() {
		t.Fatal("Expected shield active at full energy")
	}

	p.TickEnergy()
	if p.Energy != 95.5 {
		t.Errorf("Expected energy 95.5, got %f", p.Energy)
	}
}

// TestAbilityThresholds verifies activation gating on energy
func TestAbilityThresholds(t *testing.T) {
	tests := []struct {
		name     string
		energy   float64
		cloak    bool
		shield   bool
		activate func(*Player)
	}{
		{"cloak below threshold", 9.9, false, false, (*Player).ActivateCloak},
		{"cloak at threshold", 10, true, false, (*Player).ActivateCloak},
		{"shield below threshold", 29.9, false, false, (*Player).ActivateShield},
		{"shield at threshold", 30, false, true, (*Player).ActivateShield},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(vmath.Vec(0, 0))
			p.Energy = tt.energy
			tt.activate(p)
			if p.IsCloaked() != tt.cloak {
				t.Errorf("Expected cloak=%v, got %v", tt.cloak, p.IsCloaked())
			}
			if p.IsShielded() != tt.shield {
				t.Errorf("Expected shield=%v, got %v", tt.shield, p.IsShielded())
			}
			if p.Energy != tt.energy {
				t.Errorf("Expected activation to cost nothing, energy %f -> %f", tt.energy, p.Energy)
			}
		})
	}
}

// TestActivateCloakIdempotent verifies a second activation changes nothing
func TestActivateCloakIdempotent(t *testing.T) {
	once := NewPlayer(vmath.Vec(0, 0))
	once.ActivateCloak()

	twice := NewPlayer(vmath.Vec(0, 0))
	twice.ActivateCloak()
	twice.ActivateCloak()

	if *once != *twice {
		t.Errorf("Expected identical state, got %+v vs %+v", *once, *twice)
	}
}

// TestEnergyDepletionDropsAbilities verifies both abilities switch off at zero energy
func TestEnergyDepletionDropsAbilities(t *testing.T) {
	p := NewPlayer(vmath.Vec(0, 0))
	p.Energy = 31
	p.ActivateCloak()
	p.ActivateShield()

	// Net -6.5 per tick: 31 -> 24.5 -> 18 -> 11.5 -> 5 -> 0
	for i := 0; i < 5; i++ {
		p.TickEnergy()
	}

	if p.Energy != 0 {
		t.Errorf("Expected energy clamped to 0, got %f", p.Energy)
	}
	if p.IsCloaked() || p.IsShielded() {
		t.Errorf("Expected abilities off, cloak=%v shield=%v", p.IsCloaked(), p.IsShielded())
	}

	p.TickEnergy()
	if p.Energy != parameter.EnergyRegenPerTick {
		t.Errorf("Expected regen to resume, got %f", p.Energy)
	}
}

// TestEnergyRegenCapped verifies regen never exceeds the cap
func TestEnergyRegenCapped(t *testing.T) {
	p := NewPlayer(vmath.Vec(0, 0))
	p.Energy = 99.8
	p.TickEnergy()
	if p.Energy != p.MaxEnergy {
		t.Errorf("Expected energy %f, got %f", p.MaxEnergy, p.Energy)
	}
	p.TickEnergy()
	if p.Energy != p.MaxEnergy {
		t.Errorf("Expected energy to stay at cap, got %f", p.Energy)
	}
}

// TestEnergyNetsBeforeCap verifies regen and drains combine before the cap is applied
func TestEnergyNetsBeforeCap(t *testing.T) {
	tests := []struct {
		name     string
		energy   float64
		cloaked  bool
		shielded bool
		want     float64
	}{
		{"full shielded", 100, false, true, 95.5},
		{"near cap cloaked", 99.8, true, false, 98.3},
		{"full both", 100, true, true, 93.5},
		{"full idle", 100, false, false, 100},
	}
	for _, tt := range tests {
		p := NewPlayer(vmath.Vec(0, 0))
		p.Energy = tt.energy
		if tt.cloaked {
			p.ActivateCloak()
		}
		if tt.shielded {
			p.ActivateShield()
		}
		p.TickEnergy()
		if math.Abs(p.Energy-tt.want) > 1e-9 {
			t.Errorf("%s: expected energy %f, got %f", tt.name, tt.want, p.Energy)
		}
	}
}

// TestTakeDamage verifies health loss and shield absorption
func TestTakeDamage(t *testing.T) {
	p := NewPlayer(vmath.Vec(0, 0))
	p.TakeDamage(1)
	if p.Health != parameter.PlayerMaxHealth-1 {
		t.Errorf("Expected health %d, got %d", parameter.PlayerMaxHealth-1, p.Health)
	}

	p.TakeDamage(10)
	if p.Health != 0 {
		t.Errorf("Expected health floored at 0, got %d", p.Health)
	}

	s := NewPlayer(vmath.Vec(0, 0))
	s.ActivateShield()
	s.TakeDamage(1)
	if s.Health != parameter.PlayerMaxHealth {
		t.Errorf("Expected shield to absorb, health %d", s.Health)
	}
	if s.Energy != parameter.EnergyMax-parameter.ShieldAbsorbCost {
		t.Errorf("Expected energy %f, got %f", parameter.EnergyMax-parameter.ShieldAbsorbCost, s.Energy)
	}
}

// TestShieldAbsorbDepletes verifies an absorb that empties energy drops the shield
func TestShieldAbsorbDepletes(t *testing.T) {
	p := NewPlayer(vmath.Vec(0, 0))
	p.ActivateShield()
	p.Energy = 1.0

	p.TakeDamage(1)

	if p.IsShielded() {
		t.Error("Expected shield down after depleting absorb")
	}
	if p.Energy != 0 {
		t.Errorf("Expected energy 0, got %f", p.Energy)
	}
	if p.Health != parameter.PlayerMaxHealth {
		t.Errorf("Expected health untouched, got %d", p.Health)
	}
}

// TestConsumeDecoy verifies inventory accounting
func TestConsumeDecoy(t *testing.T) {
	p := NewPlayer(vmath.Vec(0, 0))
	for i := 0; i < parameter.PlayerStartDecoys; i++ {
		if !p.ConsumeDecoy() {
			t.Fatalf("Expected decoy %d to be available", i+1)
		}
	}
	if p.ConsumeDecoy() {
		t.Error("Expected empty inventory to refuse")
	}
	if p.Decoys != 0 {
		t.Errorf("Expected 0 decoys, got %d", p.Decoys)
	}
}
