// internal/system/movement.go
package system

import (
	"go-siege-defense/internal/component"
	"go-siege-defense/internal/config"
	"go-siege-defense/internal/entity"
	"go-siege-defense/internal/event"
	"go-siege-defense/internal/grid"
	"go-siege-defense/internal/navigation"
	"go-siege-defense/internal/types"
	"go-siege-defense/internal/utils"
	"go-siege-defense/pkg/isogrid"
)

// UnitSystem ведёт юнитов по клеткам и переключает их в осаду, когда
// следующий шаг занят строением.
type UnitSystem struct {
	ecs        *entity.ECS
	events     *event.Dispatcher
	occ        *grid.Occupancy
	policy     navigation.Policy
	projection isogrid.Projection
	goal       isogrid.Cell

	// PersistentCoreSiege держит дошедшего юнита у ядра, он бьёт каждую секунду.
	PersistentCoreSiege bool
}

func NewUnitSystem(ecs *entity.ECS, events *event.Dispatcher, occ *grid.Occupancy,
	policy navigation.Policy, projection isogrid.Projection, goal isogrid.Cell) *UnitSystem {
	return &UnitSystem{
		ecs:        ecs,
		events:     events,
		occ:        occ,
		policy:     policy,
		projection: projection,
		goal:       goal,
	}
}

func (s *UnitSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.UnitIDs() {
		unit, ok := s.ecs.Units[id]
		if !ok || unit.Removed {
			continue
		}
		if IsStunned(s.ecs, id) {
			s.holdAttack(unit)
			continue
		}
		switch unit.State {
		case component.UnitMoving:
			s.move(id, unit, deltaTime)
		case component.UnitAttacking:
			s.siege(id, unit)
		}
	}
}

// move продвигает юнита; остаток dt после завершения шага переходит в следующий.
func (s *UnitSystem) move(id types.EntityID, unit *component.Unit, budget float64) {
	pos := s.ecs.Positions[id]
	for budget > 0 && unit.State == component.UnitMoving && !unit.Removed {
		if !unit.Stepping && !s.decide(id, unit, pos) {
			return
		}
		if unit.MoveDuration <= 0 || unit.SpeedMultiplier <= 0 {
			return
		}
		rate := unit.SpeedMultiplier / unit.MoveDuration // доля клетки в секунду
		need := (1 - unit.Progress) / rate
		if budget < need {
			unit.Progress += budget * rate
			budget = 0
		} else {
			budget -= need
			unit.Progress = 1
		}

		toX, toY := s.projection.GridToWorld(unit.Next)
		pos.X = utils.Lerp(unit.FromX, toX, unit.Progress)
		pos.Y = utils.Lerp(unit.FromY, toY, unit.Progress)

		if unit.Progress >= 1 {
			unit.Cell = unit.Next
			unit.Stepping = false
			unit.Progress = 0
		}
	}
	if !unit.Stepping && unit.State == component.UnitMoving && !unit.Removed && unit.Cell == s.goal {
		s.decide(id, unit, pos)
	}
}

// decide asks the navigation policy for the next action. It returns true
// when the unit has started a new step.
func (s *UnitSystem) decide(id types.EntityID, unit *component.Unit, pos *component.Position) bool {
	step := s.policy.NextStep(unit)
	switch step.Kind {
	case navigation.StepArrived:
		s.arrive(id, unit)
		return false
	case navigation.StepSiege:
		unit.State = component.UnitAttacking
		unit.SiegeTarget = step.Blocker
		unit.NextAttack = s.ecs.GameTime + unit.AttackInterval
		return false
	}
	unit.Next = step.Cell
	unit.Stepping = true
	unit.Progress = 0
	unit.FromX, unit.FromY = pos.X, pos.Y
	return true
}

func (s *UnitSystem) arrive(id types.EntityID, unit *component.Unit) {
	s.strikeCore(id)
	if !s.PersistentCoreSiege {
		RemoveUnit(s.ecs, s.events, id, false)
		return
	}
	unit.State = component.UnitAttacking
	unit.AtGoal = true
	unit.SiegeTarget = 0
	unit.NextAttack = s.ecs.GameTime + config.CoreStrikeInterval
}

func (s *UnitSystem) strikeCore(id types.EntityID) {
	s.events.Emit(event.CoreStruck, id)
	if pos, ok := s.ecs.Positions[id]; ok {
		playEffect(s.events, event.EffectExplosion, pos.X, pos.Y)
	}
}

// holdAttack сдвигает дедлайн удара, пока юнит оглушён: после оглушения
// он бьёт не раньше чем через полный интервал, без пропущенных ударов.
func (s *UnitSystem) holdAttack(unit *component.Unit) {
	if unit.State != component.UnitAttacking {
		return
	}
	interval := unit.AttackInterval
	if unit.AtGoal {
		interval = config.CoreStrikeInterval
	}
	if next := s.ecs.GameTime + interval; next > unit.NextAttack {
		unit.NextAttack = next
	}
}

// siege - периодический урон по захваченному строению. Живость цели
// проверяется перед каждым ударом.
func (s *UnitSystem) siege(id types.EntityID, unit *component.Unit) {
	now := s.ecs.GameTime
	if unit.AtGoal {
		for now >= unit.NextAttack && !unit.Removed {
			unit.NextAttack += config.CoreStrikeInterval
			s.strikeCore(id)
		}
		return
	}

	for {
		if !s.ecs.IsLiveStructure(unit.SiegeTarget) {
			s.resume(unit)
			return
		}
		if now < unit.NextAttack {
			return
		}
		unit.NextAttack += unit.AttackInterval
		target := unit.SiegeTarget
		if pos, ok := s.ecs.Positions[target]; ok {
			playEffect(s.events, event.EffectHit, pos.X, pos.Y-20)
		}
		if DamageStructure(s.ecs, s.events, s.occ, target, unit.AttackDamage) {
			s.resume(unit)
			return
		}
		if unit.AttackInterval <= 0 {
			return
		}
	}
}

// resume возвращает юнита в движение; путь пересчитывается заново.
func (s *UnitSystem) resume(unit *component.Unit) {
	unit.State = component.UnitMoving
	unit.SiegeTarget = 0
	unit.Path = nil
	unit.PathIndex = 0
}
