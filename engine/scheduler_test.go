package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/space-courier/status"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// waitFor polls cond until it holds or the deadline passes
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return cond()
}

// TestSchedulerSteps verifies steps run and metrics publish
func TestSchedulerSteps(t *testing.T) {
	reg := status.NewRegistry()
	var steps atomic.Int64
	s, done := NewScheduler(func(time.Time) { steps.Add(1) }, reg, WithInterval(time.Millisecond))

	s.Start(context.Background())
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Expected update-done signal")
	}

	if !waitFor(t, time.Second, func() bool { return steps.Load() >= 10 }) {
		t.Fatalf("Expected at least 10 steps, got %d", steps.Load())
	}
	if reg.Ints.Get(status.KeyEngineTicks).Load() == 0 {
		t.Error("Expected engine.ticks published")
	}
}

// TestSchedulerPause verifies no steps while paused
func TestSchedulerPause(t *testing.T) {
	reg := status.NewRegistry()
	var steps atomic.Int64
	s, _ := NewScheduler(func(time.Time) { steps.Add(1) }, reg, WithInterval(time.Millisecond))
	s.Pause()
	s.Start(context.Background())
	defer s.Stop()

	time.Sleep(30 * time.Millisecond)
	if n := steps.Load(); n != 0 {
		t.Errorf("Expected no steps while paused, got %d", n)
	}
	if !reg.Bools.Get(status.KeyEnginePaused).Load() {
		t.Error("Expected paused metric set")
	}

	if paused := s.TogglePause(); paused {
		t.Fatal("Expected toggle to resume")
	}
	if !waitFor(t, time.Second, func() bool { return steps.Load() > 0 }) {
		t.Error("Expected steps after resume")
	}
}

// TestSchedulerContextCancel verifies ctx ends the loop
func TestSchedulerContextCancel(t *testing.T) {
	var steps atomic.Int64
	s, _ := NewScheduler(func(time.Time) { steps.Add(1) }, status.NewRegistry(), WithInterval(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	waitFor(t, time.Second, func() bool { return steps.Load() > 0 })
	cancel()
	s.Stop()

	n := steps.Load()
	time.Sleep(20 * time.Millisecond)
	if steps.Load() != n {
		t.Error("Expected no steps after cancel")
	}
}

// TestSchedulerPassesClock verifies the step receives the configured clock
func TestSchedulerPassesClock(t *testing.T) {
	want := time.Unix(1234, 0)
	got := make(chan time.Time, 1)
	s, _ := NewScheduler(func(now time.Time) {
		select {
		case got <- now:
		default:
		}
	}, status.NewRegistry(), WithInterval(time.Millisecond), WithClock(fixedClock{want}))

	s.Start(context.Background())
	defer s.Stop()

	select {
	case now := <-got:
		if !now.Equal(want) {
			t.Errorf("Expected %v, got %v", want, now)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected a step")
	}
}

// TestSchedulerStopWithoutStart verifies Stop is safe on an idle scheduler
func TestSchedulerStopWithoutStart(t *testing.T) {
	s, _ := NewScheduler(func(time.Time) {}, status.NewRegistry())
	s.Stop()
	s.Stop()
}

// TestAdvanceDeadline verifies drift correction and backlog drop
func TestAdvanceDeadline(t *testing.T) {
	base := time.Unix(0, 0)
	interval := 10 * time.Millisecond
	maxLag := 20 * time.Millisecond

	tests := []struct {
		name     string
		deadline time.Time
		now      time.Time
		want     time.Time
	}{
		{"on time", base, base, base.Add(interval)},
		{"late but within lag", base, base.Add(25 * time.Millisecond), base.Add(interval)},
		{"far behind re-anchors", base, base.Add(100 * time.Millisecond), base.Add(110 * time.Millisecond)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := advanceDeadline(tt.deadline, tt.now, interval, maxLag); !got.Equal(tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
