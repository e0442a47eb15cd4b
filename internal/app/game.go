// internal/app/game.go
package app

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"

	"go-siege-defense/internal/ability"
	"go-siege-defense/internal/clock"
	"go-siege-defense/internal/component"
	"go-siege-defense/internal/config"
	"go-siege-defense/internal/defs"
	"go-siege-defense/internal/economy"
	"go-siege-defense/internal/entity"
	"go-siege-defense/internal/event"
	"go-siege-defense/internal/grid"
	"go-siege-defense/internal/interfaces"
	"go-siege-defense/internal/navigation"
	"go-siege-defense/internal/system"
	"go-siege-defense/internal/types"
	"go-siege-defense/pkg/isogrid"
)

// Options настраивают сборку симуляции.
type Options struct {
	Navigation          config.NavigationPolicy
	PersistentCoreSiege bool
	LogOutput           io.Writer // nil - os.Stderr
}

// DefaultOptions takes the package-level config defaults.
func DefaultOptions() Options {
	return Options{
		Navigation:          config.Navigation,
		PersistentCoreSiege: config.PersistentCoreSiege,
	}
}

// Game holds the main game state and logic.
type Game struct {
	SessionID string
	Catalog   *defs.Catalog
	ECS       *entity.ECS
	Grid      *grid.Occupancy
	Ledger    *economy.Ledger
	Clock     *clock.Clock

	WaveSystem         *system.WaveSystem
	UnitSystem         *system.UnitSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	StatusEffectSystem *system.StatusEffectSystem
	IncomeSystem       *system.IncomeSystem
	Abilities          *ability.System
	EventDispatcher    *event.Dispatcher

	projection isogrid.Projection
	core       isogrid.Cell
	coreID     types.EntityID
	presenter  interfaces.Presenters
	logger     *log.Logger

	buildKey string
	selected types.EntityID
	victory  bool
	defeat   bool
}

// NewGame initializes a new game instance.
func NewGame(catalog *defs.Catalog, opts Options) (*Game, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog must not be nil")
	}
	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	sessionID := uuid.NewString()

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	occ := grid.NewOccupancy(config.MapSize)
	projection := isogrid.NewProjection(config.TileWidth, config.TileHeight, config.MapOffsetX, config.MapOffsetY)
	core := isogrid.Cell{Col: config.CoreCol, Row: config.CoreRow}
	spawn := isogrid.Cell{Col: config.SpawnCol, Row: config.SpawnRow}

	g := &Game{
		SessionID:       sessionID,
		Catalog:         catalog,
		ECS:             ecs,
		Grid:            occ,
		Ledger:          economy.NewLedger(config.StartingGold, config.StartingMana, config.StartingLives),
		Clock:           clock.New(),
		EventDispatcher: dispatcher,
		projection:      projection,
		core:            core,
		logger:          log.New(out, fmt.Sprintf("[siege %s] ", sessionID[:8]), log.LstdFlags),
	}

	g.UnitSystem = system.NewUnitSystem(ecs, dispatcher, occ, navigation.New(opts.Navigation, occ, core), projection, core)
	g.UnitSystem.PersistentCoreSiege = opts.PersistentCoreSiege
	g.CombatSystem = system.NewCombatSystem(ecs, dispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, dispatcher)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, dispatcher)
	g.IncomeSystem = system.NewIncomeSystem(ecs, g.Ledger)
	g.WaveSystem = system.NewWaveSystem(ecs, dispatcher, catalog, projection, spawn)
	coreX, coreY := projection.GridToWorld(core)
	g.Abilities = ability.NewSystem(ecs, dispatcher, g.Ledger, catalog, coreX, coreY)

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(listener,
		event.UnitRemoved, event.CoreStruck, event.WaveEnded, event.StructureDestroyed,
		event.PhaseChanged, event.WaveTimer, event.WaveStarted, event.Victory,
		event.SpellCast, event.EffectRequested, event.SoundRequested)
	g.Ledger.OnChange(func(s event.Stats) { g.presenter.OnStatsChanged(s) })
	g.Ledger.OnDefeat(g.onDefeat)

	if err := g.placeCore(); err != nil {
		return nil, err
	}
	if keys := catalog.BuildKeys(); len(keys) > 0 {
		g.buildKey = keys[0]
	}
	g.logger.Printf("new game: navigation=%s persistentCoreSiege=%v waves=%d", opts.Navigation, opts.PersistentCoreSiege, len(catalog.Waves))
	return g, nil
}

// AddPresenter attaches an outbound collaborator (renderer, audio, TUI).
func (g *Game) AddPresenter(p interfaces.Presenter) {
	g.presenter = append(g.presenter, p)
}

// Start opens the first build phase. Presenters attached before Start see
// the initial phase and stats.
func (g *Game) Start() {
	g.presenter.OnStatsChanged(g.Ledger.Snapshot())
	g.WaveSystem.Start()
}

// Update advances the simulation by a real-time delta. Nothing happens
// after victory or defeat.
func (g *Game) Update(deltaTime float64) {
	if g.IsOver() {
		return
	}
	dt := g.Clock.Advance(deltaTime)
	if dt <= 0 {
		return
	}
	g.ECS.GameTime = g.Clock.Now()

	g.WaveSystem.Update()
	g.StatusEffectSystem.Update()
	g.UnitSystem.Update(dt)
	g.CombatSystem.Update()
	g.ProjectileSystem.Update(dt)
	g.IncomeSystem.Update()
	g.Abilities.Update()
}

func (g *Game) IsOver() bool        { return g.victory || g.defeat }
func (g *Game) Victory() bool       { return g.victory }
func (g *Game) Defeat() bool        { return g.defeat }
func (g *Game) Logger() *log.Logger { return g.logger }

// Projection returns the grid/world mapping used by the simulation.
func (g *Game) Projection() isogrid.Projection { return g.projection }

func (g *Game) Phase() component.Phase { return g.ECS.Wave.Phase }

// SetSpeed sets the simulation speed multiplier (x1/x2/x4).
func (g *Game) SetSpeed(multiplier float64) { g.Clock.SetScale(multiplier) }

// TogglePause pauses or resumes the simulation clock.
func (g *Game) TogglePause() { g.Clock.SetPaused(!g.Clock.Paused()) }

// StartWaveNow skips the rest of the build countdown.
func (g *Game) StartWaveNow() {
	if g.IsOver() {
		return
	}
	g.WaveSystem.StartNextWave()
}

// CastSpell is the player intent for abilities.
func (g *Game) CastSpell(spellID string) ability.CastResult {
	if g.IsOver() {
		return ability.CastUnknown
	}
	result := g.Abilities.Cast(spellID)
	if result != ability.CastOK {
		g.logger.Printf("cast %s rejected: %s", spellID, result)
	}
	return result
}

func (g *Game) placeCore() error {
	def, ok := g.Catalog.Structure(defs.CoreKey)
	if !ok {
		return fmt.Errorf("structure %s: %w", defs.CoreKey, defs.ErrUnknownKey)
	}
	id, err := g.spawnStructure(def, g.core)
	if err != nil {
		return fmt.Errorf("failed to place core: %w", err)
	}
	g.coreID = id
	return nil
}

func (g *Game) onDefeat() {
	g.defeat = true
	g.logger.Printf("defeat at wave %d", g.ECS.Wave.Number())
	g.presenter.OnDefeat()
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.UnitRemoved:
		if data, ok := e.Data.(event.UnitRemovedData); ok && data.RewardGold > 0 {
			g.Ledger.Earn(economy.Gold, data.RewardGold)
		}
	case event.CoreStruck:
		g.Ledger.LoseLife()
	case event.WaveEnded:
		if data, ok := e.Data.(event.WaveEndedData); ok {
			g.Ledger.Earn(economy.Gold, data.Reward)
			g.logger.Printf("wave %d cleared, reward %d", data.WaveNumber, data.Reward)
		}
	case event.StructureDestroyed:
		if data, ok := e.Data.(event.StructureData); ok && data.ID == g.selected {
			g.Deselect()
		}
	case event.PhaseChanged:
		if phase, ok := e.Data.(component.Phase); ok {
			g.presenter.OnPhaseChanged(phase)
		}
	case event.WaveTimer:
		if data, ok := e.Data.(event.WaveTimerData); ok {
			g.presenter.OnWaveTimer(data.TimeLeft, data.TotalTime)
		}
	case event.WaveStarted:
		if n, ok := e.Data.(int); ok {
			g.presenter.OnWaveStarted(n)
		}
	case event.Victory:
		if n, ok := e.Data.(int); ok {
			g.victory = true
			g.logger.Printf("victory after wave %d", n)
			g.presenter.OnVictory(n)
		}
	case event.SpellCast:
		if data, ok := e.Data.(event.SpellCastData); ok {
			g.presenter.OnSpellCast(data.SpellID, data.Success)
		}
	case event.EffectRequested:
		if data, ok := e.Data.(event.EffectData); ok {
			g.presenter.PlayEffect(data.Kind, data.X, data.Y)
		}
	case event.SoundRequested:
		if data, ok := e.Data.(event.SoundData); ok {
			g.presenter.PlaySound(data.Key, data.Volume)
		}
	}
}
