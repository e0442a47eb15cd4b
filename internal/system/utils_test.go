package system

import (
	"testing"

	"go-siege-defense/internal/config"
	"go-siege-defense/internal/defs"
	"go-siege-defense/internal/event"
	"go-siege-defense/internal/grid"
	"go-siege-defense/pkg/isogrid"
)

func TestApplyDamageCreditsKillOnce(t *testing.T) {
	ecs, events, rec := newWorld()
	id := addUnitAt(ecs, 0, 0, 10)

	if ApplyDamage(ecs, events, id, 4) {
		t.Fatal("unit should survive 4 damage")
	}
	if ecs.Healths[id].Value != 6 {
		t.Errorf("Expected health 6, got %d", ecs.Healths[id].Value)
	}
	if !ApplyDamage(ecs, events, id, 15) {
		t.Fatal("Expected the unit to die")
	}
	if ApplyDamage(ecs, events, id, 15) {
		t.Error("a dead unit cannot be killed twice")
	}
	RemoveUnit(ecs, events, id, true)

	removed := rec.of(event.UnitRemoved)
	if len(removed) != 1 {
		t.Fatalf("Expected 1 UnitRemoved, got %d", len(removed))
	}
	data := removed[0].Data.(event.UnitRemovedData)
	if !data.Killed || data.RewardGold != config.KillReward {
		t.Errorf("Expected killed with reward %d, got %+v", config.KillReward, data)
	}
	if _, ok := ecs.Units[id]; ok {
		t.Error("unit components must be removed")
	}
}

func TestRemoveUnitAtGoalHasNoReward(t *testing.T) {
	ecs, events, rec := newWorld()
	id := addUnitAt(ecs, 0, 0, 10)
	RemoveUnit(ecs, events, id, false)

	data := rec.of(event.UnitRemoved)[0].Data.(event.UnitRemovedData)
	if data.Killed || data.RewardGold != 0 {
		t.Errorf("Expected no reward for a unit that reached the goal, got %+v", data)
	}
}

func TestDestroyStructureFreesCellImmediately(t *testing.T) {
	ecs, events, rec := newWorld()
	occ := grid.NewOccupancy(20)
	cell := isogrid.Cell{Col: 3, Row: 4}
	id := addStructure(t, ecs, occ, cell, defs.KindWall, 20)

	if DamageStructure(ecs, events, occ, id, 10) {
		t.Fatal("wall should survive the first hit")
	}
	if !DamageStructure(ecs, events, occ, id, 10) {
		t.Fatal("Expected the wall to be destroyed")
	}
	if occ.IsOccupied(cell) {
		t.Error("cell must be free right after destruction")
	}
	if ecs.IsLiveStructure(id) {
		t.Error("structure must leave the registry")
	}
	if rec.count(event.StructureDestroyed) != 1 {
		t.Errorf("Expected 1 StructureDestroyed, got %d", rec.count(event.StructureDestroyed))
	}
}

func TestIndestructibleStructureIgnoresDamage(t *testing.T) {
	ecs, events, _ := newWorld()
	occ := grid.NewOccupancy(20)
	id := addStructure(t, ecs, occ, testGoal, defs.KindCore, 50)

	if DamageStructure(ecs, events, occ, id, 1000) {
		t.Error("core must not be destroyed")
	}
	if ecs.Healths[id].Value != 50 {
		t.Errorf("Expected core health 50, got %d", ecs.Healths[id].Value)
	}
}
