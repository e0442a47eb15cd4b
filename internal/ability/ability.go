// internal/ability/ability.go
package ability

import (
	"log"

	"go-siege-defense/internal/defs"
	"go-siege-defense/internal/economy"
	"go-siege-defense/internal/entity"
	"go-siege-defense/internal/event"
	"go-siege-defense/internal/system"
	"go-siege-defense/internal/types"
)

// CastResult - итог попытки применить способность.
type CastResult int

const (
	CastOK CastResult = iota
	CastUnknown
	CastOnCooldown
	CastUnaffordable
)

func (r CastResult) String() string {
	switch r {
	case CastOK:
		return "ok"
	case CastUnknown:
		return "unknown spell"
	case CastOnCooldown:
		return "on cooldown"
	case CastUnaffordable:
		return "not enough mana"
	}
	return "invalid"
}

type buff struct {
	towers    []types.EntityID
	expiresAt float64
}

// System - глобальные способности игрока. У каждой свой независимый кулдаун.
type System struct {
	ecs     *entity.ECS
	events  *event.Dispatcher
	ledger  *economy.Ledger
	catalog *defs.Catalog
	coreX   float64
	coreY   float64

	lastCast map[string]float64
	buffs    []buff
}

func NewSystem(ecs *entity.ECS, events *event.Dispatcher, ledger *economy.Ledger, catalog *defs.Catalog, coreX, coreY float64) *System {
	return &System{
		ecs:      ecs,
		events:   events,
		ledger:   ledger,
		catalog:  catalog,
		coreX:    coreX,
		coreY:    coreY,
		lastCast: make(map[string]float64),
	}
}

// Cast validates cooldown first, then mana, and only then debits and applies.
func (s *System) Cast(spellID string) CastResult {
	result := s.cast(spellID)
	s.events.Emit(event.SpellCast, event.SpellCastData{SpellID: spellID, Success: result == CastOK})
	return result
}

func (s *System) cast(spellID string) CastResult {
	spell, ok := s.catalog.Spell(spellID)
	if !ok {
		log.Printf("ability: unknown spell %q", spellID)
		return CastUnknown
	}
	now := s.ecs.GameTime
	if last, cast := s.lastCast[spellID]; cast && now < last+spell.Cooldown() {
		return CastOnCooldown
	}
	if !s.ledger.Spend(economy.Mana, spell.Cost) {
		return CastUnaffordable
	}
	s.lastCast[spellID] = now
	s.apply(spell)
	return CastOK
}

func (s *System) apply(spell defs.SpellDefinition) {
	switch spell.Kind {
	case defs.SpellHeal:
		s.ledger.AddLives(int(spell.Amount))
		s.events.Emit(event.SoundRequested, event.SoundData{Key: event.SoundBuildPlace, Volume: 1})
		s.events.Emit(event.EffectRequested, event.EffectData{Kind: event.EffectBuild, X: s.coreX, Y: s.coreY})
	case defs.SpellBuff:
		s.overcharge(spell.Amount, spell.Duration())
	case defs.SpellNuke:
		s.nuke(int(spell.Amount))
	}
}

// overcharge поднимает множитель урона всем башням, стоящим в момент каста.
func (s *System) overcharge(multiplier, duration float64) {
	s.events.Emit(event.SoundRequested, event.SoundData{Key: event.SoundUIClick, Volume: 1})
	b := buff{expiresAt: s.ecs.GameTime + duration}
	for _, id := range s.ecs.TowerIDs() {
		s.ecs.Towers[id].DamageMultiplier = multiplier
		b.towers = append(b.towers, id)
		if pos, ok := s.ecs.Positions[id]; ok {
			s.events.Emit(event.EffectRequested, event.EffectData{Kind: event.EffectBuild, X: pos.X, Y: pos.Y})
		}
	}
	s.buffs = append(s.buffs, b)
}

func (s *System) nuke(damage int) {
	s.events.Emit(event.SoundRequested, event.SoundData{Key: event.SoundShootCannon, Volume: 1})
	for _, id := range s.ecs.UnitIDs() {
		if pos, ok := s.ecs.Positions[id]; ok {
			s.events.Emit(event.EffectRequested, event.EffectData{Kind: event.EffectExplosion, X: pos.X, Y: pos.Y})
		}
		system.ApplyDamage(s.ecs, s.events, id, damage)
	}
}

// Update снимает истёкшие бафы с башен, которые ещё стоят и не покрыты
// более поздним бафом.
func (s *System) Update() {
	now := s.ecs.GameTime
	kept := s.buffs[:0]
	var expired []buff
	for _, b := range s.buffs {
		if now >= b.expiresAt {
			expired = append(expired, b)
		} else {
			kept = append(kept, b)
		}
	}
	s.buffs = kept

	for _, b := range expired {
		for _, id := range b.towers {
			tower, ok := s.ecs.Towers[id]
			if !ok || s.stillBuffed(id) {
				continue
			}
			tower.DamageMultiplier = 1
		}
	}
}

func (s *System) stillBuffed(id types.EntityID) bool {
	for _, b := range s.buffs {
		for _, t := range b.towers {
			if t == id {
				return true
			}
		}
	}
	return false
}

// CooldownProgress is elapsed/cooldown clamped to [0,1]; a spell never cast is ready.
func (s *System) CooldownProgress(spellID string) float64 {
	spell, ok := s.catalog.Spell(spellID)
	if !ok {
		return 0
	}
	last, cast := s.lastCast[spellID]
	if !cast || spell.Cooldown() <= 0 {
		return 1
	}
	p := (s.ecs.GameTime - last) / spell.Cooldown()
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Ready reports whether the spell is off cooldown (mana is not considered).
func (s *System) Ready(spellID string) bool {
	return s.CooldownProgress(spellID) >= 1
}
