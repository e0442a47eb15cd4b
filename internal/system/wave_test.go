package system

import (
	"fmt"
	"strings"
	"testing"

	"go-siege-defense/internal/component"
	"go-siege-defense/internal/defs"
	"go-siege-defense/internal/entity"
	"go-siege-defense/internal/event"
	"go-siege-defense/pkg/isogrid"
)

func testCatalog(t *testing.T, counts ...int) *defs.Catalog {
	t.Helper()
	waves := make([]string, len(counts))
	for i, n := range counts {
		waves[i] = fmt.Sprintf(`{"wave": %d, "enemy_count": %d, "spawn_interval_ms": 100, "archetype": "basic"}`, i+1, n)
	}
	data := `{
		"structures": [{"key": "HQ", "kind": "CORE", "health": 5000, "indestructible": true, "tint": "#3b82f6"}],
		"archetypes": [{"id": "basic", "health": 100, "move_duration_ms": 300, "scale": 1, "color": "#84cc16"}],
		"waves": [` + strings.Join(waves, ",") + `]
	}`
	catalog, err := defs.ParseCatalog([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	return catalog
}

func newWaveWorld(t *testing.T, counts ...int) (*entity.ECS, *event.Dispatcher, *recorder, *WaveSystem) {
	t.Helper()
	ecs, events, rec := newWorld()
	ws := NewWaveSystem(ecs, events, testCatalog(t, counts...), testProjection, isogrid.Cell{})
	ws.Start()
	return ecs, events, rec, ws
}

func TestBuildCountdownStartsWave(t *testing.T) {
	ecs, _, rec, ws := newWaveWorld(t, 3)

	for now := 1; now <= 9; now++ {
		ecs.GameTime = float64(now)
		ws.Update()
	}
	if ecs.Wave.Phase != component.PhaseBuilding || ecs.Wave.TimeLeft != 1 {
		t.Fatalf("Expected 1s left in build phase, got %v/%d", ecs.Wave.Phase, ecs.Wave.TimeLeft)
	}
	ecs.GameTime = 10
	ws.Update()
	if ecs.Wave.Phase != component.PhaseCombat {
		t.Fatal("Expected combat after 10 seconds")
	}
	if got := rec.count(event.WaveTimer); got != 11 {
		t.Errorf("Expected 11 WaveTimer events, got %d", got)
	}
	started := rec.of(event.WaveStarted)
	if len(started) != 1 || started[0].Data.(int) != 1 {
		t.Errorf("Expected WaveStarted(1), got %v", started)
	}
}

func TestWaveCompletesAfterAllSpawnsAndRemovals(t *testing.T) {
	ecs, events, rec, ws := newWaveWorld(t, 5)
	ws.StartNextWave()

	ecs.GameTime = 0.35
	ws.Update()
	ids := ecs.UnitIDs()
	if len(ids) != 3 {
		t.Fatalf("Expected 3 spawns by t=0.35, got %d", len(ids))
	}
	RemoveUnit(ecs, events, ids[0], true)
	RemoveUnit(ecs, events, ids[2], false)
	if rec.count(event.WaveEnded) != 0 {
		t.Fatal("wave ended before all units spawned")
	}

	ecs.GameTime = 1
	ws.Update()
	ids = ecs.UnitIDs()
	if len(ids) != 3 || ecs.Wave.Remaining != 0 {
		t.Fatalf("Expected 3 live units and nothing left to spawn, got %d/%d", len(ids), ecs.Wave.Remaining)
	}
	for i, id := range ids {
		RemoveUnit(ecs, events, id, i%2 == 0)
		if i < len(ids)-1 && rec.count(event.WaveEnded) != 0 {
			t.Fatalf("wave ended with %d units still alive", len(ids)-1-i)
		}
	}

	ended := rec.of(event.WaveEnded)
	if len(ended) != 1 {
		t.Fatalf("Expected exactly 1 WaveEnded, got %d", len(ended))
	}
	if data := ended[0].Data.(event.WaveEndedData); data.Reward != 100 || data.WaveNumber != 1 {
		t.Errorf("Expected wave 1 reward 100, got %+v", data)
	}
	victory := rec.of(event.Victory)
	if len(victory) != 1 || victory[0].Data.(int) != 1 {
		t.Errorf("Expected Victory(1), got %v", victory)
	}
}

func TestNextBuildPhaseAndRewardGrowth(t *testing.T) {
	ecs, events, rec, ws := newWaveWorld(t, 1, 1)

	ws.StartNextWave()
	ecs.GameTime = 0.1
	ws.Update()
	RemoveUnit(ecs, events, ecs.UnitIDs()[0], true)

	if ecs.Wave.Phase != component.PhaseBuilding || ecs.Wave.TimeLeft != 15 {
		t.Fatalf("Expected a 15s build phase, got %v/%d", ecs.Wave.Phase, ecs.Wave.TimeLeft)
	}

	ws.StartNextWave()
	ecs.GameTime = 0.2
	ws.Update()
	RemoveUnit(ecs, events, ecs.UnitIDs()[0], false)

	ended := rec.of(event.WaveEnded)
	if len(ended) != 2 || ended[1].Data.(event.WaveEndedData).Reward != 150 {
		t.Errorf("Expected rewards 100 then 150, got %v", ended)
	}
	if !ecs.Wave.Finished {
		t.Error("Expected the scheduler to finish after the last wave")
	}
	if ecs.Wave.Phase != component.PhaseCombat {
		t.Error("no build phase follows the final wave")
	}
}

func TestRemovalsOutsideCombatAreIgnored(t *testing.T) {
	ecs, events, _, _ := newWaveWorld(t, 2)
	id := addUnitAt(ecs, 0, 0, 10)
	RemoveUnit(ecs, events, id, true)
	if ecs.Wave.Active != 0 {
		t.Errorf("Expected active count untouched, got %d", ecs.Wave.Active)
	}
}

func TestStartNextWaveDuringCombatIsNoop(t *testing.T) {
	ecs, _, rec, ws := newWaveWorld(t, 2, 2)
	ws.StartNextWave()
	ws.StartNextWave()
	if ecs.Wave.Number() != 1 || rec.count(event.WaveStarted) != 1 {
		t.Errorf("Expected to stay on wave 1, got %d", ecs.Wave.Number())
	}
}
