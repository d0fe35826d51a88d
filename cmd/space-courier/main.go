package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/space-courier/audio"
	"github.com/lixenwraith/space-courier/core"
	"github.com/lixenwraith/space-courier/engine"
	"github.com/lixenwraith/space-courier/input"
	"github.com/lixenwraith/space-courier/parameter"
	"github.com/lixenwraith/space-courier/render"
	"github.com/lixenwraith/space-courier/session"
	"github.com/lixenwraith/space-courier/status"
)

var (
	seedFlag      = flag.Uint64("seed", 0, "Simulation seed, 0 derives one from the clock")
	keymapFlag    = flag.String("keymap", "", "Path to a TOML keymap override")
	muteFlag      = flag.Bool("mute", false, "Start with audio muted")
	debugFlag     = flag.Bool("debug", false, "Write logs, show engine metrics and dump a snapshot on quit")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "space-courier: %v\n", err)
		log.Printf("exit err=%v", err)
		os.Exit(1)
	}
}

func run() error {
	applyColorMode(*colorModeFlag)

	seed := *seedFlag
	var sessionOpts []session.Option
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	} else {
		// An explicit seed replays the same level on restart
		sessionOpts = append(sessionOpts, session.WithFixedSeed())
	}

	keymap, err := input.LoadKeymap(*keymapFlag)
	if err != nil {
		log.Printf("keymap fallback to defaults err=%v", err)
		keymap = input.DefaultKeymap()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.HideCursor()

	sound := audio.NewPlayer()
	sound.SetMuted(*muteFlag)
	if err := sound.Init(); err != nil {
		log.Printf("audio disabled err=%v", err)
	}
	defer sound.Close()

	reg := status.NewRegistry()
	sessionOpts = append(sessionOpts, session.WithRegistry(reg))
	ctrl := session.New(seed, sessionOpts...)

	var renderOpts []render.Option
	if *debugFlag {
		renderOpts = append(renderOpts, render.WithDebug(reg))
	}
	g := newGame(ctrl, keymap, sound, render.NewRenderer(screen, seed, renderOpts...))

	sched, updateDone := engine.NewScheduler(g.step, reg)
	g.sched = sched

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan tcell.Event, parameter.InputEventBuffer)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	sched.Start(ctx)
	g.draw(false)

	for running := true; running; {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				running = g.handleKey(ev, time.Now())
				if running && sched.IsPaused() {
					g.draw(false)
				}
			case *tcell.EventResize:
				screen.Sync()
				g.draw(false)
			}
		case <-updateDone:
			g.draw(true)
		}
	}

	cancel()
	sched.Stop()
	log.Printf("shutdown ticks=%d %s", sched.TickCount(), reg.Format())

	if *debugFlag {
		if path, err := g.dumpSnapshot(parameter.LogDir); err != nil {
			log.Printf("snapshot dump failed err=%v", err)
		} else {
			log.Printf("snapshot dumped path=%s", path)
		}
	}
	return nil
}

// applyColorMode steers tcell's color detection through its environment variables
func applyColorMode(mode string) {
	switch mode {
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}
}
