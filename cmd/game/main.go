// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-siege-defense/internal/app"
	"go-siege-defense/internal/audio"
	"go-siege-defense/internal/config"
	"go-siege-defense/internal/defs"
	"go-siege-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	catalogPath := flag.String("catalog", "", "path to a JSON catalog (default: built-in)")
	nav := flag.String("nav", string(config.Navigation), "navigation policy: astar or greedy")
	persistent := flag.Bool("persistent-siege", config.PersistentCoreSiege, "units keep striking the core instead of leaving")
	mute := flag.Bool("mute", false, "disable sound")
	skipMenu := flag.Bool("skip-menu", false, "start straight into the game")
	flag.Parse()

	catalog, err := defs.LoadCatalog(*catalogPath)
	if err != nil {
		log.Fatal(err)
	}

	opts := app.DefaultOptions()
	opts.Navigation = config.NavigationPolicy(*nav)
	opts.PersistentCoreSiege = *persistent

	sound := audio.NewSoundManager(log.Default())
	if !*mute {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
		defer sound.Cleanup()
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if *skipMenu {
		gs, err := state.NewGameState(sm, catalog, opts, sound)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, catalog, opts, sound))
	}

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Siege Defense")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
