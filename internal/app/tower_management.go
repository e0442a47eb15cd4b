// internal/app/tower_management.go
package app

import (
	"errors"
	"math"

	"go-siege-defense/internal/component"
	"go-siege-defense/internal/config"
	"go-siege-defense/internal/defs"
	"go-siege-defense/internal/economy"
	"go-siege-defense/internal/event"
	"go-siege-defense/internal/grid"
	"go-siege-defense/internal/interfaces"
	"go-siege-defense/internal/system"
	"go-siege-defense/internal/types"
	"go-siege-defense/pkg/isogrid"
)

// PlaceResult - итог попытки постройки.
type PlaceResult int

const (
	PlaceOK PlaceResult = iota
	PlaceWrongPhase
	PlaceUnaffordable
	PlaceOccupied
	PlaceOutOfBounds
	PlaceUnknownKey
	PlaceGameOver
	PlaceSpawnCell
)

func (r PlaceResult) String() string {
	switch r {
	case PlaceOK:
		return "ok"
	case PlaceWrongPhase:
		return "wrong phase"
	case PlaceUnaffordable:
		return "not enough gold"
	case PlaceOccupied:
		return "cell occupied"
	case PlaceOutOfBounds:
		return "out of bounds"
	case PlaceUnknownKey:
		return "unknown structure"
	case PlaceGameOver:
		return "game over"
	case PlaceSpawnCell:
		return "spawn cell"
	}
	return "unknown"
}

// SetBuildMode выбирает строение для следующей постройки.
func (g *Game) SetBuildMode(key string) bool {
	def, ok := g.Catalog.Structure(key)
	if !ok || !def.Buildable() {
		g.logger.Printf("build mode %q rejected", key)
		return false
	}
	g.buildKey = key
	return true
}

// BuildMode returns the currently selected structure key.
func (g *Game) BuildMode() string { return g.buildKey }

// PlaceBuildingAt attempts to place the current build-mode structure.
// Проверки идут в порядке: фаза, золото, клетка.
func (g *Game) PlaceBuildingAt(col, row int) PlaceResult {
	if g.IsOver() {
		return PlaceGameOver
	}
	if g.ECS.Wave.Phase != component.PhaseBuilding {
		return PlaceWrongPhase
	}
	def, ok := g.Catalog.Structure(g.buildKey)
	if !ok || !def.Buildable() {
		return PlaceUnknownKey
	}
	if !g.Ledger.CanAfford(economy.Gold, def.Cost) {
		return PlaceUnaffordable
	}
	cell := isogrid.Cell{Col: col, Row: row}
	if !cell.InBounds(g.Grid.Size()) {
		return PlaceOutOfBounds
	}
	// точка появления врагов всегда свободна
	if cell == (isogrid.Cell{Col: config.SpawnCol, Row: config.SpawnRow}) {
		return PlaceSpawnCell
	}
	if g.Grid.IsOccupied(cell) {
		return PlaceOccupied
	}
	if !g.Ledger.Spend(economy.Gold, def.Cost) {
		return PlaceUnaffordable
	}

	id, err := g.spawnStructure(def, cell)
	if err != nil {
		// клетку проверили выше, сюда попасть нельзя; возвращаем золото
		g.Ledger.Earn(economy.Gold, def.Cost)
		g.logger.Printf("place %s at %v failed: %v", def.Key, cell, err)
		if errors.Is(err, grid.ErrOutOfBounds) {
			return PlaceOutOfBounds
		}
		return PlaceOccupied
	}

	x, y := g.projection.GridToWorld(cell)
	g.EventDispatcher.Emit(event.EffectRequested, event.EffectData{Kind: event.EffectBuild, X: x, Y: y})
	g.EventDispatcher.Emit(event.SoundRequested, event.SoundData{Key: event.SoundBuildPlace, Volume: 0.8})
	g.EventDispatcher.Emit(event.StructurePlaced, event.StructureData{ID: id, Key: def.Key, Cell: cell})
	return PlaceOK
}

// spawnStructure создаёт сущность строения и регистрирует её в сетке.
func (g *Game) spawnStructure(def defs.StructureDefinition, cell isogrid.Cell) (types.EntityID, error) {
	if !cell.InBounds(g.Grid.Size()) {
		return 0, grid.ErrOutOfBounds
	}
	if g.Grid.IsOccupied(cell) {
		return 0, grid.ErrOccupied
	}
	id := g.ECS.NewEntity()
	if err := g.Grid.Place(cell, id); err != nil {
		return 0, err
	}

	x, y := g.projection.GridToWorld(cell)
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	g.ECS.Renderables[id] = &component.Renderable{Color: def.Tint.Color(), Scale: 1}
	g.ECS.Structures[id] = &component.Structure{
		DefKey:         def.Key,
		Kind:           def.Kind,
		Cell:           cell,
		Indestructible: def.Indestructible,
		Level:          1,
		TotalInvested:  def.Cost,
		BaseCost:       def.Cost,
	}

	if def.Kind == defs.KindTower {
		var effect *defs.StatusEffectDef
		if def.Effect != nil {
			e := *def.Effect
			effect = &e
		}
		g.ECS.Towers[id] = &component.Tower{
			Damage:           def.Damage,
			Range:            def.Range,
			CooldownMs:       def.CooldownMs,
			DamageMultiplier: 1,
			ProjectileSpeed:  def.ProjectileSpeed,
			ProjectileColor:  def.ProjectileColor.Color(),
			IsAoE:            def.IsAoE,
			BlastRadius:      def.BlastRadius,
			Effect:           effect,
			FireSound:        def.FireSound,
		}
	}
	if def.GoldPerTick > 0 || def.ManaPerTick > 0 {
		g.ECS.Generators[id] = &component.Generator{GoldPerTick: def.GoldPerTick, ManaPerTick: def.ManaPerTick}
	}
	return id, nil
}

// SelectStructureAt выделяет строение в клетке. Пустая клетка снимает выделение.
func (g *Game) SelectStructureAt(col, row int) bool {
	id, ok := g.Grid.At(isogrid.Cell{Col: col, Row: row})
	if !ok || !g.ECS.IsLiveStructure(id) {
		g.Deselect()
		return false
	}
	g.selected = id
	g.EventDispatcher.Emit(event.SoundRequested, event.SoundData{Key: event.SoundUIClick, Volume: 0.5})
	g.presenter.OnTowerSelected(g.statsFor(id))
	return true
}

// Deselect clears the inspector selection.
func (g *Game) Deselect() {
	if g.selected == 0 {
		return
	}
	g.selected = 0
	g.presenter.OnTowerDeselected()
}

// Selected returns the inspected structure's stats, if any.
func (g *Game) Selected() (interfaces.TowerStats, bool) {
	if g.selected == 0 || !g.ECS.IsLiveStructure(g.selected) {
		return interfaces.TowerStats{}, false
	}
	return g.statsFor(g.selected), true
}

// UpgradeCost is floor(baseCost × 0.6 × level) for the current level.
func UpgradeCost(s *component.Structure) int {
	return int(math.Floor(float64(s.BaseCost) * config.UpgradeCostFactor * float64(s.Level)))
}

// SellValue is floor(totalInvested × 0.7).
func SellValue(s *component.Structure) int {
	return int(math.Floor(float64(s.TotalInvested) * config.SellRefundFactor))
}

// UpgradeSelected улучшает выбранную башню. Только башни; ядро и стены нельзя.
func (g *Game) UpgradeSelected() bool {
	if g.IsOver() || g.selected == 0 {
		return false
	}
	s, ok := g.ECS.Structures[g.selected]
	tower, isTower := g.ECS.Towers[g.selected]
	if !ok || !isTower || s.Kind == defs.KindCore {
		return false
	}
	cost := UpgradeCost(s)
	if !g.Ledger.Spend(economy.Gold, cost) {
		return false
	}

	s.Level++
	s.TotalInvested += cost
	tower.Damage = int(math.Floor(float64(tower.Damage) * config.UpgradeDamageFactor))
	tower.Range = math.Floor(tower.Range * config.UpgradeRangeFactor)
	tower.CooldownMs = int(math.Floor(float64(tower.CooldownMs) * config.UpgradeCooldownFactor))
	if tower.CooldownMs < config.MinTowerCooldownMs {
		tower.CooldownMs = config.MinTowerCooldownMs
	}

	if pos, ok := g.ECS.Positions[g.selected]; ok {
		g.EventDispatcher.Emit(event.EffectRequested, event.EffectData{Kind: event.EffectBuild, X: pos.X, Y: pos.Y})
	}
	g.EventDispatcher.Emit(event.SoundRequested, event.SoundData{Key: event.SoundBuildPlace, Volume: 0.8})
	g.presenter.OnTowerSelected(g.statsFor(g.selected))
	return true
}

// SellSelected продаёт выбранное строение и освобождает клетку.
func (g *Game) SellSelected() bool {
	if g.IsOver() || g.selected == 0 {
		return false
	}
	s, ok := g.ECS.Structures[g.selected]
	if !ok || s.Kind == defs.KindCore {
		return false
	}
	refund := SellValue(s)
	id := g.selected
	g.Ledger.Earn(economy.Gold, refund)
	system.DestroyStructure(g.ECS, g.EventDispatcher, g.Grid, id, true)
	g.EventDispatcher.Emit(event.SoundRequested, event.SoundData{Key: event.SoundUIClick, Volume: 0.5})
	return true
}

func (g *Game) statsFor(id types.EntityID) interfaces.TowerStats {
	s := g.ECS.Structures[id]
	stats := interfaces.TowerStats{
		ID:    id,
		Key:   s.DefKey,
		Kind:  string(s.Kind),
		Level: s.Level,
	}
	if def, ok := g.Catalog.Structure(s.DefKey); ok {
		stats.Name = def.Name
	}
	if h, ok := g.ECS.Healths[id]; ok {
		stats.Health, stats.MaxHealth = h.Value, h.Max
	}
	if t, ok := g.ECS.Towers[id]; ok {
		stats.Damage = t.EffectiveDamage()
		stats.Range = t.Range
		stats.CooldownMs = t.CooldownMs
		stats.Multiplier = t.DamageMultiplier
		stats.Upgradable = s.Kind != defs.KindCore
		stats.UpgradeCost = UpgradeCost(s)
	}
	if s.Kind != defs.KindCore {
		stats.Sellable = true
		stats.SellValue = SellValue(s)
	}
	return stats
}
