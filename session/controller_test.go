package session

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/space-courier/input"
	"github.com/lixenwraith/space-courier/model"
	"github.com/lixenwraith/space-courier/parameter"
	"github.com/lixenwraith/space-courier/status"
	"github.com/lixenwraith/space-courier/vmath"
)

// rigContact parks an alerted enemy on the station with the spawn window expired
func rigContact(t *testing.T, c *Controller) {
	t.Helper()
	snap, err := c.sim.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	snap.Invincibility = 0
	snap.Enemies[0].Position = snap.Station
	snap.Enemies[0].Suspicion = parameter.SuspicionMax
	sim, err := model.Restore(snap)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	c.sim = sim
}

// TestControllerVictoryRadius verifies the strict goal radius
func TestControllerVictoryRadius(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		state State
	}{
		{"inside at 29", parameter.GoalX - 29, StateVictory},
		{"outside at 31", parameter.GoalX - 31, StatePlaying},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(1)
			c.sim.Player.Position = vmath.Vec(tt.x, parameter.GoalY)

			c.Tick(input.Intent{})

			if c.State() != tt.state {
				t.Errorf("Expected %v, got %v", tt.state, c.State())
			}
			v := c.View()
			if tt.state == StateVictory {
				if v.Message != parameter.VictoryMessage || v.Class != StatusSuccess {
					t.Errorf("Expected victory status, got %q class %d", v.Message, v.Class)
				}
				if !c.Events().Has(EventVictory) {
					t.Error("Expected victory event")
				}
			} else if v.Message != "" || v.Class != StatusNone {
				t.Errorf("Expected no status, got %q class %d", v.Message, v.Class)
			}
		})
	}
}

// TestControllerDefeatOnLastLife verifies repeated contact ends the session
func TestControllerDefeatOnLastLife(t *testing.T) {
	c := New(9)
	rigContact(t, c)

	lost := 0
	for i := 0; i < 1000 && !c.State().Terminal(); i++ {
		c.Tick(input.Intent{})
		if c.Events().Has(EventLifeLost) {
			lost++
		}
	}

	if c.State() != StateDefeat {
		t.Fatalf("Expected defeat, got %v", c.State())
	}
	if lost != parameter.PlayerMaxHealth {
		t.Errorf("Expected %d life-lost events, got %d", parameter.PlayerMaxHealth, lost)
	}
	v := c.View()
	if v.Message != parameter.DefeatMessage || v.Class != StatusDanger {
		t.Errorf("Expected defeat status, got %q class %d", v.Message, v.Class)
	}
	if v.Player.Health != 0 {
		t.Errorf("Expected health 0, got %d", v.Player.Health)
	}
	if !c.Events().Has(EventDefeat) {
		t.Error("Expected defeat event on the final tick")
	}
}

// TestControllerTerminalIgnoresInput verifies no state changes after the session ends
func TestControllerTerminalIgnoresInput(t *testing.T) {
	c := New(2)
	c.sim.Player.Position = vmath.Vec(parameter.GoalX, parameter.GoalY)
	c.Tick(input.Intent{})
	if c.State() != StateVictory {
		t.Fatalf("setup: expected victory, got %v", c.State())
	}

	before := c.View()
	c.Tick(input.Intent{Move: vmath.Vec(-1, 0), Cloak: true, Decoy: true})
	after := c.View()

	if !reflect.DeepEqual(before, after) {
		t.Error("Expected terminal session to ignore input")
	}
	if c.Events() != 0 {
		t.Errorf("Expected no events, got %b", c.Events())
	}
}

// TestControllerAbilityEvents verifies edge events and counters
func TestControllerAbilityEvents(t *testing.T) {
	reg := status.NewRegistry()
	c := New(4, WithRegistry(reg))

	c.Tick(input.Intent{Cloak: true, Decoy: true})
	ev := c.Events()
	if !ev.Has(EventCloakOn) || !ev.Has(EventDecoyDeployed) {
		t.Errorf("Expected cloak and decoy events, got %b", ev)
	}
	if ev.Has(EventShieldOn) {
		t.Error("Expected no shield event")
	}

	c.Tick(input.Intent{Cloak: true})
	if c.Events().Has(EventCloakOn) {
		t.Error("Expected no event for already-active cloak")
	}

	c.Tick(input.Intent{Shield: true})
	if !c.Events().Has(EventShieldOn) {
		t.Error("Expected shield event")
	}

	if got := reg.Ints.Get(status.KeySessionDecoysUsed).Load(); got != 1 {
		t.Errorf("Expected decoys_used 1, got %d", got)
	}
	if got := reg.Strings.Get(status.KeySessionID).Load(); got != c.ID().String() {
		t.Errorf("Expected session id %s published, got %s", c.ID(), got)
	}

	v := c.View()
	if len(v.Decoys) != 1 || v.Player.Decoys != parameter.PlayerStartDecoys-1 {
		t.Errorf("Expected one live decoy and %d left, got %d and %d",
			parameter.PlayerStartDecoys-1, len(v.Decoys), v.Player.Decoys)
	}
}

// TestControllerMoveIntent verifies movement reaches the simulation
func TestControllerMoveIntent(t *testing.T) {
	c := New(3)
	start := c.View().Player.Position

	c.Tick(input.Intent{Move: vmath.Vec(1, 0)})

	got := c.View().Player.Position
	if got != start.Add(vmath.Vec(parameter.PlayerSpeed, 0)) {
		t.Errorf("Expected %v, got %v", start.Add(vmath.Vec(parameter.PlayerSpeed, 0)), got)
	}
}

// TestControllerRestart verifies fresh state and seed derivation
func TestControllerRestart(t *testing.T) {
	c := New(5, WithFixedSeed())
	id := c.ID()
	c.Tick(input.Intent{Decoy: true})
	c.Restart()

	if c.ID() == id {
		t.Error("Expected new session id")
	}
	if c.Seed() != 5 {
		t.Errorf("Expected fixed seed 5, got %d", c.Seed())
	}
	v := c.View()
	if v.Tick != 0 || v.Player.Decoys != parameter.PlayerStartDecoys || len(v.Decoys) != 0 {
		t.Errorf("Expected fresh simulation, got tick %d decoys %d/%d", v.Tick, v.Player.Decoys, len(v.Decoys))
	}

	d := New(5)
	d.Restart()
	if d.Seed() == 5 {
		t.Error("Expected derived seed after restart")
	}
}

// TestControllerDeterministic verifies identical seeds and intents yield identical views
func TestControllerDeterministic(t *testing.T) {
	a, b := New(77), New(77)
	for i := 0; i < 500; i++ {
		in := input.Intent{
			Move:  vmath.Vec(1, float64(i/50%3-1)),
			Cloak: i%120 == 0,
			Decoy: i%170 == 30,
		}
		a.Tick(in)
		b.Tick(in)
	}

	va, vb := a.View(), b.View()
	va.SessionID, vb.SessionID = "", ""
	if !reflect.DeepEqual(va, vb) {
		t.Error("Expected identical views")
	}
}

// TestControllerViewIsCopy verifies presentation cannot mutate the simulation
func TestControllerViewIsCopy(t *testing.T) {
	c := New(6)
	v := c.View()
	v.Enemies[0].Position = vmath.Vec(-1, -1)
	v.Player.Health = 0

	if c.View().Enemies[0].Position == vmath.Vec(-1, -1) {
		t.Error("Expected enemy view to be a copy")
	}
	if c.View().Player.Health != parameter.PlayerMaxHealth {
		t.Error("Expected player view to be a copy")
	}
}

// TestControllerSnapshot verifies the debug dump decodes
func TestControllerSnapshot(t *testing.T) {
	c := New(8)
	c.Tick(input.Intent{Move: vmath.Vec(1, 1)})

	data, err := c.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	snap, err := model.DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Tick != 1 {
		t.Errorf("Expected tick 1, got %d", snap.Tick)
	}
}
