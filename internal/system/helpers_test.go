package system

import (
	"testing"

	"go-siege-defense/internal/component"
	"go-siege-defense/internal/defs"
	"go-siege-defense/internal/entity"
	"go-siege-defense/internal/event"
	"go-siege-defense/internal/grid"
	"go-siege-defense/internal/types"
	"go-siege-defense/pkg/isogrid"
)

var (
	testProjection = isogrid.NewProjection(64, 32, 640, 180)
	testGoal       = isogrid.Cell{Col: 10, Row: 10}
)

// recorder собирает все события нужных типов.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) of(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newWorld() (*entity.ECS, *event.Dispatcher, *recorder) {
	ecs := entity.NewECS()
	events := event.NewDispatcher()
	rec := &recorder{}
	events.Subscribe(rec,
		event.UnitSpawned, event.UnitRemoved, event.StructureDestroyed, event.TowerFired,
		event.CoreStruck, event.PhaseChanged, event.WaveTimer, event.WaveStarted,
		event.WaveEnded, event.Victory, event.EffectRequested, event.SoundRequested)
	return ecs, events, rec
}

func addUnitAt(ecs *entity.ECS, x, y float64, hp int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	ecs.Units[id] = &component.Unit{
		State:           component.UnitMoving,
		MoveDuration:    0.25,
		SpeedMultiplier: 1,
		AttackDamage:    10,
		AttackInterval:  1,
	}
	return id
}

func addUnitOnCell(ecs *entity.ECS, cell isogrid.Cell, hp int) types.EntityID {
	x, y := testProjection.GridToWorld(cell)
	id := addUnitAt(ecs, x, y, hp)
	ecs.Units[id].Cell = cell
	return id
}

func addStructure(t *testing.T, ecs *entity.ECS, occ *grid.Occupancy, cell isogrid.Cell, kind defs.StructureKind, hp int) types.EntityID {
	t.Helper()
	id := ecs.NewEntity()
	if err := occ.Place(cell, id); err != nil {
		t.Fatal(err)
	}
	x, y := testProjection.GridToWorld(cell)
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	ecs.Structures[id] = &component.Structure{
		DefKey:         string(kind),
		Kind:           kind,
		Cell:           cell,
		Indestructible: kind == defs.KindCore,
		Level:          1,
	}
	return id
}
