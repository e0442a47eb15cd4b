// internal/system/projectile.go
package system

import (
	"math"

	"go-siege-defense/internal/component"
	"go-siege-defense/internal/config"
	"go-siege-defense/internal/defs"
	"go-siege-defense/internal/entity"
	"go-siege-defense/internal/event"
	"go-siege-defense/internal/types"
	"go-siege-defense/pkg/isogrid"
)

// ProjectileSystem двигает снаряды и разрешает попадания.
type ProjectileSystem struct {
	ecs    *entity.ECS
	events *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, events *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, events: events}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj, ok := s.ecs.Projectiles[id]
		if !ok {
			continue
		}
		pos := s.ecs.Positions[id]

		if target, alive := s.ecs.Positions[proj.TargetID]; alive && s.ecs.IsLiveUnit(proj.TargetID) {
			proj.AimX, proj.AimY = target.X, target.Y-config.ChestOffset
		} else if !proj.IsAoE {
			// Цель исчезла - одиночный снаряд отменяется
			s.ecs.RemoveEntity(id)
			continue
		}

		dx := proj.AimX - pos.X
		dy := proj.AimY - pos.Y
		dist := math.Hypot(dx, dy)
		step := proj.Speed * deltaTime
		if dist < config.ImpactRadius || dist <= step {
			if dist >= config.ImpactRadius {
				pos.X, pos.Y = proj.AimX, proj.AimY
			}
			s.resolve(proj, pos.X, pos.Y)
			s.ecs.RemoveEntity(id)
			continue
		}
		pos.X += dx / dist * step
		pos.Y += dy / dist * step
	}
}

// resolve применяет урон и эффект один раз и никогда больше для этого снаряда.
func (s *ProjectileSystem) resolve(proj *component.Projectile, x, y float64) {
	playSound(s.events, event.SoundEnemyHit, 0.4)
	if proj.IsAoE {
		playEffect(s.events, event.EffectExplosion, x, y)
		for _, id := range UnitsInBlast(s.ecs, x, y, proj.BlastRadius) {
			s.hit(id, proj.Damage, proj.Effect)
		}
		return
	}

	s.hit(proj.TargetID, proj.Damage, proj.Effect)
	if proj.Effect != nil && proj.Effect.Type == defs.EffectSlow {
		playEffect(s.events, event.EffectIce, x, y)
	} else {
		playEffect(s.events, event.EffectHit, x, y)
	}
}

func (s *ProjectileSystem) hit(unitID types.EntityID, damage int, effect *defs.StatusEffectDef) {
	if ApplyDamage(s.ecs, s.events, unitID, damage) {
		return
	}
	if effect != nil {
		ApplyStatusEffect(s.ecs, unitID, *effect)
	}
}

// UnitsInBlast returns live units whose chest point lies within radius of (x, y).
func UnitsInBlast(ecs *entity.ECS, x, y, radius float64) []types.EntityID {
	var hits []types.EntityID
	for _, id := range ecs.UnitIDs() {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		if isogrid.Distance(x, y, pos.X, pos.Y-config.ChestOffset) <= radius {
			hits = append(hits, id)
		}
	}
	return hits
}
