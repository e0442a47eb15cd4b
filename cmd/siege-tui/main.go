// cmd/siege-tui/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-siege-defense/internal/app"
	"go-siege-defense/internal/audio"
	"go-siege-defense/internal/clock"
	"go-siege-defense/internal/config"
	"go-siege-defense/internal/defs"
	"go-siege-defense/internal/tui"
)

func main() {
	catalogPath := flag.String("catalog", "", "path to a JSON catalog (default: built-in)")
	nav := flag.String("nav", string(config.Navigation), "navigation policy: astar or greedy")
	persistent := flag.Bool("persistent-siege", config.PersistentCoreSiege, "units keep striking the core instead of leaving")
	logPath := flag.String("log", "", "write the game log to this file (default: discard)")
	sound := flag.Bool("sound", false, "enable sound")
	flag.Parse()

	// Терминал занят экраном, лог уходит в файл или в никуда
	var logOutput io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOutput = f
	}
	log.SetOutput(logOutput)

	catalog, err := defs.LoadCatalog(*catalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	opts := app.DefaultOptions()
	opts.Navigation = config.NavigationPolicy(*nav)
	opts.PersistentCoreSiege = *persistent
	opts.LogOutput = logOutput

	game, err := app.NewGame(catalog, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	if *sound {
		sm := audio.NewSoundManager(game.Logger())
		if err := sm.Initialize(); err != nil {
			game.Logger().Printf("audio disabled: %v", err)
		}
		defer sm.Cleanup()
		game.AddPresenter(sm)
	}

	view := tui.NewView(config.MapSize)
	game.AddPresenter(view)
	controller := tui.NewController(game)
	game.Start()

	run(screen, game, view, controller)
}

func run(screen tcell.Screen, game *app.Game, view *tui.View, controller *tui.Controller) {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- screen.PollEvent()
		}
	}()

	frames := clock.NewFrameTimer(clock.RealTimeProvider{}, config.MaxDeltaTime)
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !controller.HandleEvent(ev) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			game.Update(frames.Tick())
			snap := game.Snapshot()
			view.Draw(screen, &snap, game.Projection(), controller.Cursor)
			if stats, ok := game.Selected(); ok {
				tui.DrawSelection(screen, config.MapSize, stats)
			}
		}
	}
}
