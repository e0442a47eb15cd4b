// internal/system/combat.go
package system

import (
	"math"

	"go-siege-defense/internal/component"
	"go-siege-defense/internal/config"
	"go-siege-defense/internal/entity"
	"go-siege-defense/internal/event"
	"go-siege-defense/internal/types"
	"go-siege-defense/pkg/isogrid"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs    *entity.ECS
	events *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, events *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, events: events}
}

// ReadyToFire reports whether the tower's cooldown gate is open at now.
func ReadyToFire(tower *component.Tower, now float64) bool {
	if !tower.HasFired {
		return true
	}
	return now > tower.LastFired+float64(tower.CooldownMs)/1000
}

func (s *CombatSystem) Update() {
	now := s.ecs.GameTime
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		pos, ok := s.ecs.Positions[id]
		if !ok || !ReadyToFire(tower, now) {
			continue
		}
		target := s.findNearestUnitInRange(pos, tower.Range)
		if target == 0 {
			continue
		}
		s.fire(id, tower, pos, target)
		tower.LastFired = now
		tower.HasFired = true
	}
}

// findNearestUnitInRange - при равной дистанции побеждает первый найденный.
func (s *CombatSystem) findNearestUnitInRange(from *component.Position, rangeRadius float64) types.EntityID {
	var nearest types.EntityID
	minDistance := math.MaxFloat64
	for _, id := range s.ecs.UnitIDs() {
		unitPos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		distance := isogrid.Distance(from.X, from.Y, unitPos.X, unitPos.Y)
		if distance <= rangeRadius && distance < minDistance {
			minDistance = distance
			nearest = id
		}
	}
	return nearest
}

func (s *CombatSystem) fire(towerID types.EntityID, tower *component.Tower, towerPos *component.Position, targetID types.EntityID) {
	projID := s.ecs.NewEntity()
	muzzleX, muzzleY := towerPos.X, towerPos.Y-config.MuzzleHeight
	targetPos := s.ecs.Positions[targetID]

	s.ecs.Positions[projID] = &component.Position{X: muzzleX, Y: muzzleY}
	s.ecs.Projectiles[projID] = &component.Projectile{
		TargetID:    targetID,
		Damage:      tower.EffectiveDamage(),
		Speed:       tower.ProjectileSpeed,
		Color:       tower.ProjectileColor,
		IsAoE:       tower.IsAoE,
		BlastRadius: tower.BlastRadius,
		Effect:      tower.Effect,
		AimX:        targetPos.X,
		AimY:        targetPos.Y - config.ChestOffset,
	}

	playSound(s.events, tower.FireSound, 0.6)
	playEffect(s.events, event.EffectMuzzle, muzzleX, muzzleY)
	s.events.Emit(event.TowerFired, event.TowerFiredData{TowerID: towerID, TargetID: targetID, Projectile: projID})
}
