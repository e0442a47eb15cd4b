// internal/system/utils.go
package system

import (
	"go-siege-defense/internal/component"
	"go-siege-defense/internal/config"
	"go-siege-defense/internal/entity"
	"go-siege-defense/internal/event"
	"go-siege-defense/internal/grid"
	"go-siege-defense/internal/types"
)

// ApplyDamage наносит урон юниту. При здоровье <= 0 юнит удаляется,
// награда за убийство начисляется ровно один раз. Возвращает true, если юнит убит.
func ApplyDamage(ecs *entity.ECS, events *event.Dispatcher, unitID types.EntityID, damage int) bool {
	if damage <= 0 || !ecs.IsLiveUnit(unitID) {
		return false
	}
	health, ok := ecs.Healths[unitID]
	if !ok {
		return false
	}

	health.Value -= damage
	ecs.DamageFlashes[unitID] = &component.DamageFlash{Until: ecs.GameTime + config.DamageFlashDuration}

	if health.Value <= 0 {
		health.Value = 0
		RemoveUnit(ecs, events, unitID, true)
		return true
	}
	return false
}

// RemoveUnit удаляет юнита из арены и уведомляет подписчиков. Повторный вызов
// для того же юнита ничего не делает.
func RemoveUnit(ecs *entity.ECS, events *event.Dispatcher, unitID types.EntityID, killed bool) {
	unit, ok := ecs.Units[unitID]
	if !ok || unit.Removed {
		return
	}
	unit.Removed = true

	data := event.UnitRemovedData{ID: unitID, Killed: killed}
	if pos, ok := ecs.Positions[unitID]; ok {
		data.X, data.Y = pos.X, pos.Y
	}
	if killed {
		data.RewardGold = config.KillReward
	}
	// Компоненты со всеми дедлайнами (эффекты, атака) уходят вместе с сущностью
	ecs.RemoveEntity(unitID)
	events.Emit(event.UnitRemoved, data)
}

// DamageStructure наносит урон строению. Неразрушимые строения игнорируют урон.
func DamageStructure(ecs *entity.ECS, events *event.Dispatcher, occ *grid.Occupancy, id types.EntityID, damage int) bool {
	s, ok := ecs.Structures[id]
	if !ok || s.Indestructible || damage <= 0 {
		return false
	}
	health, ok := ecs.Healths[id]
	if !ok {
		return false
	}
	health.Value -= damage
	ecs.DamageFlashes[id] = &component.DamageFlash{Until: ecs.GameTime + config.DamageFlashDuration}
	if health.Value <= 0 {
		health.Value = 0
		DestroyStructure(ecs, events, occ, id, false)
		return true
	}
	return false
}

// DestroyStructure освобождает клетку сразу, чтобы следующий запрос
// занятости в этом же тике видел её пустой.
func DestroyStructure(ecs *entity.ECS, events *event.Dispatcher, occ *grid.Occupancy, id types.EntityID, sold bool) {
	s, ok := ecs.Structures[id]
	if !ok {
		return
	}
	if occupant, ok := occ.At(s.Cell); ok && occupant == id {
		occ.Remove(s.Cell)
	}
	data := event.StructureData{ID: id, Key: s.DefKey, Cell: s.Cell, Sold: sold}
	ecs.RemoveEntity(id)
	events.Emit(event.StructureDestroyed, data)
}

func playEffect(events *event.Dispatcher, kind string, x, y float64) {
	events.Emit(event.EffectRequested, event.EffectData{Kind: kind, X: x, Y: y})
}

func playSound(events *event.Dispatcher, key string, volume float64) {
	if key == "" {
		return
	}
	events.Emit(event.SoundRequested, event.SoundData{Key: key, Volume: volume})
}
