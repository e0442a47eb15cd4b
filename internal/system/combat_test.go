package system

import (
	"testing"

	"go-siege-defense/internal/component"
	"go-siege-defense/internal/defs"
	"go-siege-defense/internal/entity"
	"go-siege-defense/internal/event"
	"go-siege-defense/internal/types"
)

func addTowerAt(ecs *entity.ECS, x, y float64, tower component.Tower) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	if tower.DamageMultiplier == 0 {
		tower.DamageMultiplier = 1
	}
	ecs.Towers[id] = &tower
	return id
}

func TestReadyToFire(t *testing.T) {
	tower := &component.Tower{CooldownMs: 800}
	tests := []struct {
		name      string
		hasFired  bool
		lastFired float64
		now       float64
		want      bool
	}{
		{"never fired", false, 0, 0, true},
		{"inside cooldown", true, 1, 1.5, false},
		{"exactly at cooldown", true, 1, 1.8, false},
		{"after cooldown", true, 1, 1.81, true},
	}
	for _, tt := range tests {
		tower.HasFired, tower.LastFired = tt.hasFired, tt.lastFired
		if got := ReadyToFire(tower, tt.now); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestTowerTargetsNearestAndKeepsFirstOnTie(t *testing.T) {
	ecs, events, rec := newWorld()
	sys := NewCombatSystem(ecs, events)
	addTowerAt(ecs, 500, 500, component.Tower{Damage: 10, Range: 250, CooldownMs: 1000, ProjectileSpeed: 400})

	far := addUnitAt(ecs, 700, 500, 100)
	first := addUnitAt(ecs, 400, 500, 100)
	addUnitAt(ecs, 600, 500, 100) // та же дистанция, но позже по порядку
	addUnitAt(ecs, 900, 500, 100) // вне радиуса

	sys.Update()
	fired := rec.of(event.TowerFired)
	if len(fired) != 1 {
		t.Fatalf("Expected 1 shot, got %d", len(fired))
	}
	data := fired[0].Data.(event.TowerFiredData)
	if data.TargetID != first {
		t.Errorf("Expected target %d, got %d (far unit is %d)", first, data.TargetID, far)
	}
	proj := ecs.Projectiles[data.Projectile]
	if proj.AimY != 500-16 {
		t.Errorf("Expected aim at chest height 484, got %v", proj.AimY)
	}
	if pos := ecs.Positions[data.Projectile]; pos.Y != 500-40 {
		t.Errorf("Expected muzzle at y=460, got %v", pos.Y)
	}

	// Повторный тик в то же время не стреляет
	sys.Update()
	if rec.count(event.TowerFired) != 1 {
		t.Error("tower fired during cooldown")
	}
}

func TestTowerDamageUsesMultiplier(t *testing.T) {
	ecs, events, _ := newWorld()
	sys := NewCombatSystem(ecs, events)
	addTowerAt(ecs, 0, 0, component.Tower{Damage: 15, Range: 100, CooldownMs: 800, ProjectileSpeed: 400, DamageMultiplier: 1.5})
	addUnitAt(ecs, 50, 0, 100)

	sys.Update()
	for _, p := range ecs.Projectiles {
		if p.Damage != 22 {
			t.Errorf("Expected floor(15*1.5)=22, got %d", p.Damage)
		}
	}
}

func TestProjectileDiscardedWhenTargetDies(t *testing.T) {
	ecs, events, rec := newWorld()
	sys := NewProjectileSystem(ecs, events)
	target := addUnitAt(ecs, 500, 500, 100)
	other := addUnitAt(ecs, 505, 500, 100)
	projID := ecs.NewEntity()
	ecs.Positions[projID] = &component.Position{X: 100, Y: 100}
	ecs.Projectiles[projID] = &component.Projectile{TargetID: target, Damage: 50, Speed: 100, AimX: 500, AimY: 484}

	RemoveUnit(ecs, events, target, true)
	sys.Update(0.1)

	if _, ok := ecs.Projectiles[projID]; ok {
		t.Error("projectile must be cancelled when its target is gone")
	}
	if ecs.Healths[other].Value != 100 {
		t.Error("cancelled projectile must not damage anyone")
	}
	if rec.count(event.SoundRequested) != 0 {
		t.Error("cancelled projectile must not resolve")
	}
}

func TestAoEProjectileSurvivesTargetDeath(t *testing.T) {
	ecs, events, _ := newWorld()
	sys := NewProjectileSystem(ecs, events)
	target := addUnitAt(ecs, 200, 116, 100)
	bystander := addUnitAt(ecs, 230, 116, 100)
	projID := ecs.NewEntity()
	ecs.Positions[projID] = &component.Position{X: 200, Y: 50}
	ecs.Projectiles[projID] = &component.Projectile{TargetID: target, Damage: 30, Speed: 100, IsAoE: true, BlastRadius: 80, AimX: 200, AimY: 100}

	RemoveUnit(ecs, events, target, true)
	sys.Update(0.3) // 30 единиц за тик
	if _, ok := ecs.Projectiles[projID]; !ok {
		t.Fatal("AoE projectile should keep flying")
	}
	sys.Update(0.3)
	if _, ok := ecs.Projectiles[projID]; ok {
		t.Fatal("AoE projectile should have exploded")
	}
	if got := ecs.Healths[bystander].Value; got != 70 {
		t.Errorf("Expected bystander at 70 hp, got %d", got)
	}
}

// Взрыв радиусом 80: три юнита внутри, один на 90 - урон получают ровно трое.
func TestAoEHitsOnlyUnitsInsideBlast(t *testing.T) {
	ecs, events, _ := newWorld()
	sys := NewProjectileSystem(ecs, events)

	// Точка удара (400,300); позиция юнита - ноги, дистанция считается до груди (y-16)
	inside := []types.EntityID{
		addUnitAt(ecs, 400, 316, 100),
		addUnitAt(ecs, 450, 316, 100),
		addUnitAt(ecs, 400, 396, 100),
	}
	outside := addUnitAt(ecs, 490, 316, 100)

	projID := ecs.NewEntity()
	ecs.Positions[projID] = &component.Position{X: 400, Y: 300}
	ecs.Projectiles[projID] = &component.Projectile{
		TargetID:    inside[0],
		Damage:      25,
		Speed:       300,
		IsAoE:       true,
		BlastRadius: 80,
		Effect:      &defs.StatusEffectDef{Type: defs.EffectSlow, DurationMs: 1000, Value: 0.5},
	}
	sys.Update(0.016)

	for _, id := range inside {
		if got := ecs.Healths[id].Value; got != 75 {
			t.Errorf("unit %d: expected 75 hp, got %d", id, got)
		}
		if ecs.Units[id].SpeedMultiplier != 0.5 {
			t.Errorf("unit %d: expected slow applied", id)
		}
	}
	if got := ecs.Healths[outside].Value; got != 100 {
		t.Errorf("unit at 90 must be untouched, got %d hp", got)
	}
	if len(ecs.Projectiles) != 0 {
		t.Error("projectile must resolve exactly once")
	}
}

func TestEffectSkippedWhenHitKills(t *testing.T) {
	ecs, events, _ := newWorld()
	sys := NewProjectileSystem(ecs, events)
	id := addUnitAt(ecs, 100, 116, 10)
	projID := ecs.NewEntity()
	ecs.Positions[projID] = &component.Position{X: 100, Y: 100}
	ecs.Projectiles[projID] = &component.Projectile{
		TargetID: id, Damage: 10, Speed: 100,
		Effect: &defs.StatusEffectDef{Type: defs.EffectStun, DurationMs: 1000},
	}
	sys.Update(0.016)
	if _, ok := ecs.StatusEffects[id]; ok {
		t.Error("no effect on a unit killed by the same hit")
	}
}
