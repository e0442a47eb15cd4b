// internal/system/status_effect.go
package system

import (
	"go-siege-defense/internal/component"
	"go-siege-defense/internal/defs"
	"go-siege-defense/internal/entity"
	"go-siege-defense/internal/event"
	"go-siege-defense/internal/types"
)

// Порядок обработки эффектов внутри одного юнита.
var effectOrder = []defs.EffectType{defs.EffectSlow, defs.EffectBurn, defs.EffectStun}

// StatusEffectSystem управляет жизненным циклом эффектов: истечение, тики горения.
type StatusEffectSystem struct {
	ecs    *entity.ECS
	events *event.Dispatcher
}

func NewStatusEffectSystem(ecs *entity.ECS, events *event.Dispatcher) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, events: events}
}

// ApplyStatusEffect adds an effect or refreshes the running one of the same
// type. A refresh only restarts the duration; the first magnitude stays.
func ApplyStatusEffect(ecs *entity.ECS, unitID types.EntityID, def defs.StatusEffectDef) {
	if !ecs.IsLiveUnit(unitID) {
		return
	}
	effects, ok := ecs.StatusEffects[unitID]
	if !ok {
		effects = component.NewStatusEffects()
		ecs.StatusEffects[unitID] = effects
	}

	expires := ecs.GameTime + def.Duration()
	if existing, ok := effects.Active[def.Type]; ok {
		existing.ExpiresAt = expires
		return
	}
	effects.Active[def.Type] = &component.ActiveEffect{
		Magnitude: def.Value,
		ExpiresAt: expires,
		NextTick:  ecs.GameTime + 1,
	}
	recalculateSpeed(ecs, unitID)
}

// IsStunned reports whether the unit has a running STUN.
func IsStunned(ecs *entity.ECS, unitID types.EntityID) bool {
	effects, ok := ecs.StatusEffects[unitID]
	return ok && effects.Has(defs.EffectStun)
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update() {
	now := s.ecs.GameTime
	for _, id := range s.ecs.UnitIDs() {
		effects, ok := s.ecs.StatusEffects[id]
		if !ok {
			continue
		}
		changed := false
		for _, t := range effectOrder {
			effect, ok := effects.Active[t]
			if !ok {
				continue
			}
			if t == defs.EffectBurn {
				for effect.NextTick <= now && effect.NextTick <= effect.ExpiresAt {
					effect.NextTick++
					if ApplyDamage(s.ecs, s.events, id, int(effect.Magnitude)) {
						break
					}
				}
				if !s.ecs.IsLiveUnit(id) {
					break
				}
			}
			if now >= effect.ExpiresAt {
				delete(effects.Active, t)
				changed = true
			}
		}
		if changed && s.ecs.IsLiveUnit(id) {
			recalculateSpeed(s.ecs, id)
		}
	}
}

// recalculateSpeed - произведение величин всех активных SLOW. Движение читает
// множитель каждый тик, поэтому новый темп действует сразу.
func recalculateSpeed(ecs *entity.ECS, unitID types.EntityID) {
	unit, ok := ecs.Units[unitID]
	if !ok {
		return
	}
	mult := 1.0
	if effects, ok := ecs.StatusEffects[unitID]; ok {
		for t, effect := range effects.Active {
			if t == defs.EffectSlow {
				mult *= effect.Magnitude
			}
		}
	}
	unit.SpeedMultiplier = mult
}
