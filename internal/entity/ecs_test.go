package entity

import (
	"testing"

	"go-siege-defense/internal/component"
)

func TestNewEntityNeverReturnsZero(t *testing.T) {
	ecs := NewECS()
	first := ecs.NewEntity()
	second := ecs.NewEntity()
	if first == 0 || second != first+1 {
		t.Errorf("Expected sequential non-zero ids, got %d, %d", first, second)
	}
}

func TestUnitIDsInSpawnOrderSkipsRemoved(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 5; i++ {
		id := ecs.NewEntity()
		ecs.Units[id] = &component.Unit{}
	}
	ecs.Units[ecs.UnitIDs()[2]].Removed = true

	got := ecs.UnitIDs()
	if len(got) != 4 {
		t.Fatalf("Expected 4 live units, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("ids not in spawn order: %v", got)
		}
	}
}

func TestRemoveEntityClearsAllStores(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Healths[id] = &component.Health{Value: 1, Max: 1}
	ecs.Units[id] = &component.Unit{}
	ecs.StatusEffects[id] = component.NewStatusEffects()
	ecs.DamageFlashes[id] = &component.DamageFlash{}

	ecs.RemoveEntity(id)

	if ecs.IsLiveUnit(id) {
		t.Error("unit still live after removal")
	}
	if len(ecs.Positions)+len(ecs.Healths)+len(ecs.StatusEffects)+len(ecs.DamageFlashes) != 0 {
		t.Error("Expected every store to be empty")
	}
}
