package model

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/space-courier/vmath"
)

// SnapshotVersion is bumped whenever the snapshot layout changes
const SnapshotVersion = 1

// PlayerState is the serializable form of Player
type PlayerState struct {
	Position  vmath.Vector2 `msgpack:"pos"`
	Speed     float64       `msgpack:"speed"`
	Direction float64       `msgpack:"dir"`
	Health    int           `msgpack:"hp"`
	Energy    float64       `msgpack:"energy"`
	MaxEnergy float64       `msgpack:"max_energy"`
	Decoys    int           `msgpack:"decoys"`
	Cloaked   bool          `msgpack:"cloaked"`
	Shielded  bool          `msgpack:"shielded"`
}

// EnemyState is the serializable form of Enemy, including private AI memory
type EnemyState struct {
	Position      vmath.Vector2 `msgpack:"pos"`
	Speed         float64       `msgpack:"speed"`
	Rotation      float64       `msgpack:"rot"`
	RotationSpeed float64       `msgpack:"rot_speed"`
	PatrolRadius  float64       `msgpack:"patrol_radius"`
	ViewDistance  float64       `msgpack:"view_dist"`
	ViewAngle     float64       `msgpack:"view_angle"`
	Suspicion     float64       `msgpack:"suspicion"`
	PatrolCenter  vmath.Vector2 `msgpack:"patrol_center"`
	PatrolPhase   float64       `msgpack:"patrol_phase"`
	LastKnown     vmath.Vector2 `msgpack:"last_known"`
	ChaseTimer    int           `msgpack:"chase_timer"`
}

// DecoyState is the serializable form of Decoy
type DecoyState struct {
	Position vmath.Vector2 `msgpack:"pos"`
	Lifetime int           `msgpack:"lifetime"`
	Alpha    float64       `msgpack:"alpha"`
	Pulse    float64       `msgpack:"pulse"`
}

// Snapshot captures every game-affecting field of a Simulation
// Restoring it and replaying the same intents reproduces an uninterrupted run
type Snapshot struct {
	Version       int           `msgpack:"v"`
	Tick          uint64        `msgpack:"tick"`
	Width         float64       `msgpack:"w"`
	Height        float64       `msgpack:"h"`
	Station       vmath.Vector2 `msgpack:"station"`
	Goal          vmath.Vector2 `msgpack:"goal"`
	Invincibility int           `msgpack:"invincibility"`
	Player        PlayerState   `msgpack:"player"`
	Enemies       []EnemyState  `msgpack:"enemies"`
	Decoys        []DecoyState  `msgpack:"decoys"`
	RandState     []byte        `msgpack:"rand"`
}

// Snapshot captures the current simulation state
func (s *Simulation) Snapshot() (Snapshot, error) {
	randState, err := s.rng.MarshalBinary()
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "snapshot rand state")
	}

	p := s.Player
	snap := Snapshot{
		Version:       SnapshotVersion,
		Tick:          s.tick,
		Width:         s.Width,
		Height:        s.Height,
		Station:       s.Station,
		Goal:          s.Goal,
		Invincibility: s.invincibility,
		Player: PlayerState{
			Position:  p.Position,
			Speed:     p.Speed,
			Direction: p.Direction,
			Health:    p.Health,
			Energy:    p.Energy,
			MaxEnergy: p.MaxEnergy,
			Decoys:    p.Decoys,
			Cloaked:   p.cloaked,
			Shielded:  p.shielded,
		},
		Enemies:   make([]EnemyState, 0, len(s.Enemies)),
		Decoys:    make([]DecoyState, 0, len(s.Decoys)),
		RandState: randState,
	}

	for _, e := range s.Enemies {
		snap.Enemies = append(snap.Enemies, EnemyState{
			Position:      e.Position,
			Speed:         e.Speed,
			Rotation:      e.Rotation,
			RotationSpeed: e.RotationSpeed,
			PatrolRadius:  e.PatrolRadius,
			ViewDistance:  e.ViewDistance,
			ViewAngle:     e.ViewAngle,
			Suspicion:     e.suspicion,
			PatrolCenter:  e.patrolAnchor,
			PatrolPhase:   e.patrolPhase,
			LastKnown:     e.lastKnown,
			ChaseTimer:    e.chaseTimer,
		})
	}

	for _, d := range s.Decoys {
		snap.Decoys = append(snap.Decoys, DecoyState{
			Position: d.Position,
			Lifetime: d.Lifetime,
			Alpha:    d.Alpha,
			Pulse:    d.Pulse,
		})
	}

	return snap, nil
}

// Restore rebuilds a Simulation from a snapshot, including its randomness source
func Restore(snap Snapshot) (*Simulation, error) {
	if snap.Version != SnapshotVersion {
		return nil, errors.Errorf("snapshot version %d unsupported (want %d)", snap.Version, SnapshotVersion)
	}

	rng := &vmath.Rand{}
	if err := rng.UnmarshalBinary(snap.RandState); err != nil {
		return nil, errors.Wrap(err, "restore rand state")
	}

	ps := snap.Player
	s := &Simulation{
		Width:         snap.Width,
		Height:        snap.Height,
		Station:       snap.Station,
		Goal:          snap.Goal,
		invincibility: snap.Invincibility,
		tick:          snap.Tick,
		rng:           rng,
		Player: &Player{
			Position:  ps.Position,
			Speed:     ps.Speed,
			Direction: ps.Direction,
			Health:    ps.Health,
			Energy:    ps.Energy,
			MaxEnergy: ps.MaxEnergy,
			Decoys:    ps.Decoys,
			cloaked:   ps.Cloaked,
			shielded:  ps.Shielded,
		},
		Enemies: make([]*Enemy, 0, len(snap.Enemies)),
		Decoys:  make([]*Decoy, 0, len(snap.Decoys)),
	}

	for _, es := range snap.Enemies {
		s.Enemies = append(s.Enemies, &Enemy{
			Position:      es.Position,
			Speed:         es.Speed,
			Rotation:      es.Rotation,
			RotationSpeed: es.RotationSpeed,
			PatrolRadius:  es.PatrolRadius,
			ViewDistance:  es.ViewDistance,
			ViewAngle:     es.ViewAngle,
			suspicion:     es.Suspicion,
			patrolAnchor:  es.PatrolCenter,
			patrolPhase:   es.PatrolPhase,
			lastKnown:     es.LastKnown,
			chaseTimer:    es.ChaseTimer,
		})
	}

	for _, ds := range snap.Decoys {
		s.Decoys = append(s.Decoys, &Decoy{
			Position: ds.Position,
			Lifetime: ds.Lifetime,
			Alpha:    ds.Alpha,
			Pulse:    ds.Pulse,
		})
	}

	return s, nil
}

// EncodeSnapshot serializes a snapshot with msgpack
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return nil, errors.Wrap(err, "encode snapshot")
	}
	return data, nil
}

// DecodeSnapshot parses a msgpack snapshot produced by EncodeSnapshot
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, errors.Wrap(err, "decode snapshot")
	}
	return snap, nil
}
