package model

import (
	"github.com/lixenwraith/space-courier/parameter"
	"github.com/lixenwraith/space-courier/vmath"
)

// TickReport summarizes cross-entity outcomes of one Update
type TickReport struct {
	LifeLost      bool
	Absorbed      bool // Contact hit taken by the shield
	NewlyAlerted  int  // Enemies that crossed the alert threshold this tick
	DecoysExpired int
}

// Simulation owns every entity and is the sole mutator of cross-entity interactions
// Not safe for concurrent use; the caller serializes access
type Simulation struct {
	Width, Height float64
	Station       vmath.Vector2
	Goal          vmath.Vector2

	Player  *Player
	Enemies []*Enemy
	Decoys  []*Decoy

	invincibility int
	tick          uint64
	rng           *vmath.Rand

	// Reused per tick to hand enemies a read-only decoy view without allocating
	decoyView []vmath.Vector2
}

// NewSimulation builds the level: player at station, fixed enemy roster, initial invincibility
// rng is the session randomness source and is retained for decoy drops
func NewSimulation(rng *vmath.Rand) *Simulation {
	s := &Simulation{
		Width:         parameter.ArenaWidth,
		Height:        parameter.ArenaHeight,
		Station:       vmath.Vec(parameter.StationX, parameter.StationY),
		Goal:          vmath.Vec(parameter.GoalX, parameter.GoalY),
		invincibility: parameter.InvincibilityTicks,
		rng:           rng,
	}
	s.Player = NewPlayer(s.Station)
	s.Enemies = make([]*Enemy, 0, len(parameter.EnemySpawns))
	for _, sp := range parameter.EnemySpawns {
		s.Enemies = append(s.Enemies, NewEnemy(vmath.Vec(sp[0], sp[1]), rng))
	}
	return s
}

// Tick returns the number of completed updates
func (s *Simulation) Tick() uint64 { return s.tick }

// Invincibility returns the remaining damage-immune ticks
func (s *Simulation) Invincibility() int { return s.invincibility }

// PlayerInvincible reports whether contact damage is suppressed
func (s *Simulation) PlayerInvincible() bool { return s.invincibility > 0 }

// MovePlayer forwards a move intent, zero vector is ignored
func (s *Simulation) MovePlayer(dir vmath.Vector2) {
	if dir.IsZero() {
		return
	}
	s.Player.Move(dir)
}

// ActivateCloak forwards a cloak request
func (s *Simulation) ActivateCloak() { s.Player.ActivateCloak() }

// ActivateShield forwards a shield request
func (s *Simulation) ActivateShield() { s.Player.ActivateShield() }

// UseDecoy consumes one decoy and drops it near the player, false when inventory is empty
func (s *Simulation) UseDecoy() bool {
	if !s.Player.ConsumeDecoy() {
		return false
	}
	s.Decoys = append(s.Decoys, DropDecoy(s.Player.Position, s.rng))
	return true
}

// Update advances every entity exactly once in fixed order
func (s *Simulation) Update() TickReport {
	var report TickReport

	// 1. Energy economy
	s.Player.TickEnergy()

	// 2. Invincibility countdown
	if s.invincibility > 0 {
		s.invincibility--
	}

	// 3. Decoy lifetime, pruning before any enemy observes the roster
	live := s.Decoys[:0]
	for _, d := range s.Decoys {
		d.Update()
		if d.Expired() {
			report.DecoysExpired++
			continue
		}
		live = append(live, d)
	}
	for i := len(live); i < len(s.Decoys); i++ {
		s.Decoys[i] = nil
	}
	s.Decoys = live

	// 4. Enemy AI against an immutable decoy view
	s.decoyView = s.decoyView[:0]
	for _, d := range s.Decoys {
		s.decoyView = append(s.decoyView, d.Position)
	}
	playerPos := s.Player.Position
	cloaked := s.Player.IsCloaked()
	for _, e := range s.Enemies {
		wasAlerted := e.Alerted()
		e.UpdateAI(playerPos, cloaked, s.decoyView)
		if e.Alerted() && !wasAlerted {
			report.NewlyAlerted++
		}
	}

	// 5. Contact check, at most one life-lost event per tick
	lifeLost := false
	if !s.PlayerInvincible() {
		for _, e := range s.Enemies {
			if e.Alerted() && e.Position.DistanceTo(s.Player.Position) < parameter.ContactRadius {
				lifeLost = true
				break
			}
		}
	}

	// 6. Damage and respawn
	if lifeLost {
		shielded := s.Player.IsShielded() && s.Player.Energy > 0
		s.Player.TakeDamage(parameter.ContactDamage)
		s.Player.Position = s.Station
		s.invincibility = parameter.InvincibilityTicks
		report.LifeLost = !shielded
		report.Absorbed = shielded
	}

	// 7. Player bounds
	s.Player.Position = s.Player.Position.Clamp(0, 0, s.Width, s.Height)

	s.tick++
	return report
}

// DistanceToGoal returns the player's distance from the goal
func (s *Simulation) DistanceToGoal() float64 {
	return s.Player.Position.DistanceTo(s.Goal)
}
