package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/space-courier/core"
	"github.com/lixenwraith/space-courier/parameter"
	"github.com/lixenwraith/space-courier/status"
)

// StepFunc advances the game by exactly one tick
type StepFunc func(now time.Time)

// Scheduler calls a step on a fixed tick with deadline-based drift correction
// Pausing skips steps without losing the cadence; resuming re-anchors the deadline
type Scheduler struct {
	step     StepFunc
	clock    Clock
	interval time.Duration
	maxLag   time.Duration

	paused atomic.Bool

	mu           sync.Mutex
	nextDeadline time.Time

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Signaled after every step, dropped if the reader is behind
	updateDone chan struct{}

	statTicks    *atomic.Int64
	statTickNs   *atomic.Int64
	statOverruns *atomic.Int64
	statPaused   *atomic.Bool
}

// SchedulerOption configures a Scheduler
type SchedulerOption func(*Scheduler)

// WithClock overrides the time source passed to steps
func WithClock(c Clock) SchedulerOption {
	return func(s *Scheduler) { s.clock = c }
}

// WithInterval overrides the tick interval
func WithInterval(d time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		s.interval = d
		s.maxLag = 2 * d
	}
}

// NewScheduler creates a stopped scheduler and returns it with its update-done channel
func NewScheduler(step StepFunc, reg *status.Registry, opts ...SchedulerOption) (*Scheduler, <-chan struct{}) {
	s := &Scheduler{
		step:         step,
		clock:        SystemClock{},
		interval:     parameter.TickInterval,
		maxLag:       parameter.MaxTickLag,
		stopChan:     make(chan struct{}),
		updateDone:   make(chan struct{}, 1),
		statTicks:    reg.Ints.Get(status.KeyEngineTicks),
		statTickNs:   reg.Ints.Get(status.KeyEngineTickNs),
		statOverruns: reg.Ints.Get(status.KeyEngineOverruns),
		statPaused:   reg.Bools.Get(status.KeyEnginePaused),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, s.updateDone
}

// Start launches the loop; it ends on Stop or ctx cancellation
func (s *Scheduler) Start(ctx context.Context) {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		core.Go(func() { s.loop(ctx) })
	}
}

// Stop halts the loop and waits for the in-flight step
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
}

// Pause suspends stepping
func (s *Scheduler) Pause() {
	s.paused.Store(true)
	s.statPaused.Store(true)
}

// Resume restarts stepping one interval from now
func (s *Scheduler) Resume() {
	if s.paused.CompareAndSwap(true, false) {
		s.mu.Lock()
		s.nextDeadline = time.Now().Add(s.interval)
		s.mu.Unlock()
		s.statPaused.Store(false)
	}
}

// TogglePause flips pause state and returns the new state
func (s *Scheduler) TogglePause() bool {
	if s.paused.Load() {
		s.Resume()
		return false
	}
	s.Pause()
	return true
}

// IsPaused reports pause state
func (s *Scheduler) IsPaused() bool {
	return s.paused.Load()
}

// TickCount returns the number of completed steps
func (s *Scheduler) TickCount() uint64 {
	return s.tickCount.Load()
}

func (s *Scheduler) loop(ctx context.Context) {
	defer s.wg.Done()
	defer s.running.Store(false)

	s.mu.Lock()
	s.nextDeadline = time.Now().Add(s.interval)
	s.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		default:
		}

		var sleep time.Duration

		if s.paused.Load() {
			sleep = 2 * s.interval
		} else {
			now := time.Now()

			s.mu.Lock()
			deadline := s.nextDeadline
			s.mu.Unlock()

			if !now.Before(deadline) {
				s.runStep()

				s.mu.Lock()
				s.nextDeadline = advanceDeadline(s.nextDeadline, now, s.interval, s.maxLag)
				deadline = s.nextDeadline
				s.mu.Unlock()

				sleep = time.Until(deadline)
			} else {
				sleep = deadline.Sub(now)
			}
		}

		if sleep <= 0 {
			continue
		}
		timer.Reset(sleep)
		select {
		case <-timer.C:
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

// runStep executes one step and publishes timing
func (s *Scheduler) runStep() {
	start := time.Now()
	s.step(s.clock.Now())
	elapsed := time.Since(start)

	s.tickCount.Add(1)
	s.statTicks.Add(1)
	s.statTickNs.Store(elapsed.Nanoseconds())
	if elapsed > s.interval {
		s.statOverruns.Add(1)
	}

	select {
	case s.updateDone <- struct{}{}:
	default:
	}
}

// advanceDeadline moves the deadline one interval forward
// When now has fallen more than maxLag behind, the backlog is dropped and the cadence re-anchors at now
func advanceDeadline(deadline, now time.Time, interval, maxLag time.Duration) time.Time {
	next := deadline.Add(interval)
	if now.Sub(next) > maxLag {
		return now.Add(interval)
	}
	return next
}
