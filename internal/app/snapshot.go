// internal/app/snapshot.go
package app

import (
	"image/color"

	"go-siege-defense/internal/component"
	"go-siege-defense/internal/defs"
	"go-siege-defense/internal/event"
	"go-siege-defense/internal/types"
	"go-siege-defense/pkg/isogrid"
)

// StructureView - строение глазами рендера.
type StructureView struct {
	ID        types.EntityID
	Key       string
	Kind      defs.StructureKind
	Cell      isogrid.Cell
	X, Y      float64
	Health    int
	MaxHealth int
	Level     int
	Tint      color.RGBA
	Flash     bool
	Buffed    bool
}

// UnitView - юнит глазами рендера.
type UnitView struct {
	ID        types.EntityID
	Archetype string
	X, Y      float64
	Health    int
	MaxHealth int
	Color     color.RGBA
	Scale     float64
	Attacking bool
	Slowed    bool
	Burning   bool
	Stunned   bool
	Flash     bool
}

type ProjectileView struct {
	X, Y  float64
	Color color.RGBA
	IsAoE bool
}

type SpellView struct {
	ID       string
	Name     string
	Hotkey   string
	Cost     int
	Progress float64
	Ready    bool
}

// Snapshot is a read-only copy of the world for presentation layers.
// Nothing in it aliases simulation state.
type Snapshot struct {
	SessionID   string
	Time        float64
	Phase       component.Phase
	WaveNumber  int
	TotalWaves  int
	TimeLeft    int
	Stats       event.Stats
	Speed       float64
	Paused      bool
	Victory     bool
	Defeat      bool
	BuildKey    string
	Selected    types.EntityID
	Structures  []StructureView
	Units       []UnitView
	Projectiles []ProjectileView
	Spells      []SpellView
}

// Snapshot собирает снимок мира в детерминированном порядке (по id).
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	now := ecs.GameTime
	snap := Snapshot{
		SessionID:  g.SessionID,
		Time:       now,
		Phase:      ecs.Wave.Phase,
		WaveNumber: ecs.Wave.Number(),
		TotalWaves: len(g.Catalog.Waves),
		TimeLeft:   ecs.Wave.TimeLeft,
		Stats:      g.Ledger.Snapshot(),
		Speed:      g.Clock.Scale(),
		Paused:     g.Clock.Paused(),
		Victory:    g.victory,
		Defeat:     g.defeat,
		BuildKey:   g.buildKey,
		Selected:   g.selected,
	}

	for _, id := range ecs.StructureIDs() {
		s := ecs.Structures[id]
		v := StructureView{ID: id, Key: s.DefKey, Kind: s.Kind, Cell: s.Cell, Level: s.Level, Flash: g.flashing(id)}
		if pos, ok := ecs.Positions[id]; ok {
			v.X, v.Y = pos.X, pos.Y
		}
		if h, ok := ecs.Healths[id]; ok {
			v.Health, v.MaxHealth = h.Value, h.Max
		}
		if r, ok := ecs.Renderables[id]; ok {
			v.Tint = r.Color
		}
		if t, ok := ecs.Towers[id]; ok {
			v.Buffed = t.DamageMultiplier > 1
		}
		snap.Structures = append(snap.Structures, v)
	}

	for _, id := range ecs.UnitIDs() {
		u := ecs.Units[id]
		v := UnitView{ID: id, Archetype: u.Archetype, Attacking: u.State == component.UnitAttacking, Flash: g.flashing(id)}
		if pos, ok := ecs.Positions[id]; ok {
			v.X, v.Y = pos.X, pos.Y
		}
		if h, ok := ecs.Healths[id]; ok {
			v.Health, v.MaxHealth = h.Value, h.Max
		}
		if r, ok := ecs.Renderables[id]; ok {
			v.Color, v.Scale = r.Color, r.Scale
		}
		if effects, ok := ecs.StatusEffects[id]; ok {
			v.Slowed = effects.Has(defs.EffectSlow)
			v.Burning = effects.Has(defs.EffectBurn)
			v.Stunned = effects.Has(defs.EffectStun)
		}
		snap.Units = append(snap.Units, v)
	}

	for _, id := range ecs.ProjectileIDs() {
		p := ecs.Projectiles[id]
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileView{X: pos.X, Y: pos.Y, Color: p.Color, IsAoE: p.IsAoE})
	}

	for _, spell := range g.Catalog.Spells {
		snap.Spells = append(snap.Spells, SpellView{
			ID:       spell.ID,
			Name:     spell.Name,
			Hotkey:   spell.Hotkey,
			Cost:     spell.Cost,
			Progress: g.Abilities.CooldownProgress(spell.ID),
			Ready:    g.Abilities.Ready(spell.ID),
		})
	}
	return snap
}

func (g *Game) flashing(id types.EntityID) bool {
	f, ok := g.ECS.DamageFlashes[id]
	return ok && g.ECS.GameTime < f.Until
}
