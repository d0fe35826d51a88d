package session

import "github.com/lixenwraith/space-courier/vmath"

// PlayerView is a read-only copy of the ship
type PlayerView struct {
	Position  vmath.Vector2
	Direction float64
	Health    int
	MaxHealth int
	Energy    float64
	MaxEnergy float64
	Decoys    int
	Cloaked   bool
	Shielded  bool
}

// EnemyView is a read-only copy of one enemy
type EnemyView struct {
	Position     vmath.Vector2
	Rotation     float64
	Suspicion    float64
	Chasing      bool
	Alerted      bool
	ViewDistance float64
	PatrolCenter vmath.Vector2
}

// DecoyView is a read-only copy of one live decoy
type DecoyView struct {
	Position vmath.Vector2
	Lifetime int
	Alpha    float64
	Pulse    float64
}

// View is everything presentation needs for one frame
// Slices are freshly allocated per call and never alias simulation state
type View struct {
	SessionID string
	Seed      uint64
	Tick      uint64

	Width, Height float64
	Station       vmath.Vector2
	Goal          vmath.Vector2

	Player  PlayerView
	Enemies []EnemyView
	Decoys  []DecoyView

	Invincible     bool
	DistanceToGoal float64

	State   State
	Message string
	Class   StatusClass
}
