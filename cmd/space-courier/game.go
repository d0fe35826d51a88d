package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/space-courier/audio"
	"github.com/lixenwraith/space-courier/input"
	"github.com/lixenwraith/space-courier/render"
	"github.com/lixenwraith/space-courier/session"
)

// pauser is the slice of engine.Scheduler the shell toggles
type pauser interface {
	TogglePause() bool
	IsPaused() bool
}

// game wires terminal input, the scheduler step and rendering around one controller
// mu guards ctrl and latch; the scheduler goroutine and the event loop both take it
type game struct {
	mu    sync.Mutex
	ctrl  *session.Controller
	latch *input.Latch

	keymap   *input.Keymap
	sound    *audio.Player
	renderer *render.Renderer
	sched    pauser

	// Main goroutine only
	starSeed uint64
}

func newGame(ctrl *session.Controller, km *input.Keymap, sound *audio.Player, renderer *render.Renderer) *game {
	return &game{
		ctrl:     ctrl,
		latch:    input.NewLatch(),
		keymap:   km,
		sound:    sound,
		renderer: renderer,
		starSeed: ctrl.Seed(),
	}
}

// step is the scheduler callback: one intent, one controller tick
func (g *game) step(now time.Time) {
	g.mu.Lock()
	in := g.latch.Consume(now)
	if in.Restart {
		g.ctrl.Restart()
		g.latch.Reset()
		g.mu.Unlock()
		return
	}
	g.ctrl.Tick(in)
	events := g.ctrl.Events()
	g.mu.Unlock()

	g.sound.Play(events)
}

// handleKey applies one key event and reports whether the game should keep running
// Pause, mute and quit act immediately; everything else is latched for the next step
func (g *game) handleKey(ev *tcell.EventKey, now time.Time) bool {
	action := g.keymap.Translate(ev)
	switch action {
	case input.ActionNone:
	case input.ActionQuit:
		return false
	case input.ActionPause:
		paused := g.sched.TogglePause()
		g.mu.Lock()
		g.latch.Reset()
		g.mu.Unlock()
		log.Printf("pause=%t", paused)
	case input.ActionMute:
		log.Printf("mute=%t", g.sound.ToggleMute())
	default:
		g.mu.Lock()
		g.latch.Press(action, now)
		g.mu.Unlock()
	}
	return true
}

// draw renders the current view; advance steps the starfield
func (g *game) draw(advance bool) {
	g.mu.Lock()
	v := g.ctrl.View()
	g.mu.Unlock()

	if v.Seed != g.starSeed {
		g.renderer.Reseed(v.Seed)
		g.starSeed = v.Seed
	}
	g.renderer.Draw(v, g.sched.IsPaused(), advance)
}

// dumpSnapshot writes the running simulation to dir and returns the file path
func (g *game) dumpSnapshot(dir string) (string, error) {
	g.mu.Lock()
	id := g.ctrl.ID()
	data, err := g.ctrl.Snapshot()
	g.mu.Unlock()
	if err != nil {
		return "", errors.Wrap(err, "snapshot")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, "create snapshot dir %s", dir)
	}
	path := filepath.Join(dir, fmt.Sprintf("snapshot-%s.msgpack", id))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, "write snapshot %s", path)
	}
	return path, nil
}
