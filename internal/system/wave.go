// internal/system/wave.go
package system

import (
	"log"

	"go-siege-defense/internal/component"
	"go-siege-defense/internal/config"
	"go-siege-defense/internal/defs"
	"go-siege-defense/internal/entity"
	"go-siege-defense/internal/event"
	"go-siege-defense/pkg/isogrid"
)

// WaveSystem - конечный автомат BUILDING/COMBAT: отсчёт фазы строительства,
// спавн волны, награда и победа после последней волны.
type WaveSystem struct {
	ecs        *entity.ECS
	events     *event.Dispatcher
	catalog    *defs.Catalog
	projection isogrid.Projection
	spawn      isogrid.Cell
}

func NewWaveSystem(ecs *entity.ECS, events *event.Dispatcher, catalog *defs.Catalog,
	projection isogrid.Projection, spawn isogrid.Cell) *WaveSystem {
	ws := &WaveSystem{
		ecs:        ecs,
		events:     events,
		catalog:    catalog,
		projection: projection,
		spawn:      spawn,
	}
	events.Subscribe(ws, event.UnitRemoved)
	return ws
}

// Start opens the first build phase.
func (s *WaveSystem) Start() {
	s.startBuildPhase(config.FirstBuildPhase)
}

func (s *WaveSystem) Update() {
	wave := s.ecs.Wave
	if wave.Finished {
		return
	}
	now := s.ecs.GameTime

	switch wave.Phase {
	case component.PhaseBuilding:
		for now >= wave.NextCountdown {
			wave.NextCountdown++
			wave.TimeLeft--
			s.events.Emit(event.WaveTimer, event.WaveTimerData{TimeLeft: wave.TimeLeft, TotalTime: wave.BuildDuration})
			if wave.TimeLeft <= 0 {
				s.StartNextWave()
				return
			}
		}
	case component.PhaseCombat:
		for wave.Remaining > 0 && now >= wave.NextSpawn {
			wave.NextSpawn += wave.SpawnInterval
			s.spawnUnit(wave.Archetype)
			wave.Remaining--
		}
		s.checkCompletion()
	}
}

// StartNextWave ends the build phase early or, after the last wave, declares victory.
func (s *WaveSystem) StartNextWave() {
	wave := s.ecs.Wave
	if wave.Finished || wave.Phase == component.PhaseCombat {
		return
	}
	wave.Index++
	if wave.Index >= len(s.catalog.Waves) {
		s.finish(len(s.catalog.Waves))
		return
	}

	def := s.catalog.Waves[wave.Index]
	wave.Phase = component.PhaseCombat
	wave.Archetype = def.Archetype
	wave.Remaining = def.EnemyCount
	wave.Active = 0
	wave.SpawnInterval = def.SpawnInterval()
	wave.NextSpawn = s.ecs.GameTime + wave.SpawnInterval

	s.events.Emit(event.PhaseChanged, component.PhaseCombat)
	s.events.Emit(event.WaveStarted, def.WaveNumber)
	s.checkCompletion()
}

func (s *WaveSystem) startBuildPhase(seconds int) {
	wave := s.ecs.Wave
	wave.Phase = component.PhaseBuilding
	wave.BuildDuration = seconds
	wave.TimeLeft = seconds
	wave.NextCountdown = s.ecs.GameTime + 1

	s.events.Emit(event.PhaseChanged, component.PhaseBuilding)
	s.events.Emit(event.WaveTimer, event.WaveTimerData{TimeLeft: seconds, TotalTime: seconds})
}

func (s *WaveSystem) spawnUnit(archetype string) {
	def, ok := s.catalog.Archetype(archetype)
	if !ok {
		log.Printf("WaveSystem: archetype %q not found, spawn skipped", archetype)
		return
	}

	id := s.ecs.NewEntity()
	x, y := s.projection.GridToWorld(s.spawn)
	attackDamage := def.AttackDamage
	if attackDamage <= 0 {
		attackDamage = config.UnitAttackDamage
	}
	attackInterval := def.AttackInterval()
	if attackInterval <= 0 {
		attackInterval = config.UnitAttackInterval
	}

	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Renderables[id] = &component.Renderable{Color: def.Color.Color(), Scale: def.Scale}
	s.ecs.Units[id] = &component.Unit{
		Archetype:       def.ID,
		State:           component.UnitMoving,
		Cell:            s.spawn,
		MoveDuration:    def.MoveDuration(),
		SpeedMultiplier: 1,
		AttackDamage:    attackDamage,
		AttackInterval:  attackInterval,
	}
	s.ecs.Wave.Active++
	s.events.Emit(event.UnitSpawned, id)
}

func (s *WaveSystem) checkCompletion() {
	wave := s.ecs.Wave
	if wave.Phase != component.PhaseCombat || wave.Remaining > 0 || wave.Active > 0 {
		return
	}
	reward := config.WaveRewardBase + config.WaveRewardStep*wave.Index
	s.events.Emit(event.WaveEnded, event.WaveEndedData{WaveNumber: wave.Number(), Reward: reward})

	if wave.Index+1 >= len(s.catalog.Waves) {
		s.finish(wave.Number())
		return
	}
	s.startBuildPhase(config.NextBuildPhase)
}

func (s *WaveSystem) finish(finalWave int) {
	wave := s.ecs.Wave
	wave.Finished = true
	s.events.Emit(event.Victory, finalWave)
}

// OnEvent считает удалённых юнитов; вне боевой фазы удаления игнорируются.
func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type != event.UnitRemoved || s.ecs.Wave.Phase != component.PhaseCombat || s.ecs.Wave.Finished {
		return
	}
	s.ecs.Wave.Active--
	s.checkCompletion()
}
