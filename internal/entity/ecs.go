// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-siege-defense/internal/component"
	"go-siege-defense/internal/types"
)

// ECS - арена сущностей. Ссылки между сущностями хранятся как EntityID
// и проверяются на живость перед каждым использованием.
type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Structures    map[types.EntityID]*component.Structure
	Towers        map[types.EntityID]*component.Tower
	Generators    map[types.EntityID]*component.Generator
	Units         map[types.EntityID]*component.Unit
	StatusEffects map[types.EntityID]*component.StatusEffects
	Projectiles   map[types.EntityID]*component.Projectile
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Wave          *component.Wave
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Structures:    make(map[types.EntityID]*component.Structure),
		Towers:        make(map[types.EntityID]*component.Tower),
		Generators:    make(map[types.EntityID]*component.Generator),
		Units:         make(map[types.EntityID]*component.Unit),
		StatusEffects: make(map[types.EntityID]*component.StatusEffects),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Wave:          &component.Wave{Index: -1},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности. Таймеры хранятся в компонентах,
// поэтому вместе с ними отменяются.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Structures, id)
	delete(ecs.Towers, id)
	delete(ecs.Generators, id)
	delete(ecs.Units, id)
	delete(ecs.StatusEffects, id)
	delete(ecs.Projectiles, id)
	delete(ecs.DamageFlashes, id)
}

// IsLiveUnit reports whether id refers to a unit that has not been removed.
func (ecs *ECS) IsLiveUnit(id types.EntityID) bool {
	u, ok := ecs.Units[id]
	return ok && !u.Removed
}

// IsLiveStructure reports whether id refers to a standing structure.
func (ecs *ECS) IsLiveStructure(id types.EntityID) bool {
	_, ok := ecs.Structures[id]
	return ok
}

// UnitIDs returns live unit ids in spawn order.
func (ecs *ECS) UnitIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Units))
	for id, u := range ecs.Units {
		if !u.Removed {
			ids = append(ids, id)
		}
	}
	sortIDs(ids)
	return ids
}

// TowerIDs returns tower ids in creation order.
func (ecs *ECS) TowerIDs() []types.EntityID {
	return SortedIDs(ecs.Towers)
}

// ProjectileIDs returns projectile ids in creation order.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return SortedIDs(ecs.Projectiles)
}

// StructureIDs returns structure ids in creation order.
func (ecs *ECS) StructureIDs() []types.EntityID {
	return SortedIDs(ecs.Structures)
}

// SortedIDs returns the keys of a component store in ascending order.
// Ids grow monotonically, so this is creation order.
func SortedIDs[T any](store map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(store))
	for id := range store {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

func sortIDs(ids []types.EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
