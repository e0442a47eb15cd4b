// internal/defs/towers.go
package defs

// StructureDefinition holds all the static data for one buildable structure.
type StructureDefinition struct {
	Key             string           `json:"key"`
	Name            string           `json:"name"`
	Kind            StructureKind    `json:"kind"`
	Cost            int              `json:"cost"`
	Health          int              `json:"health"`
	Indestructible  bool             `json:"indestructible,omitempty"`
	Range           float64          `json:"range,omitempty"`
	Damage          int              `json:"damage,omitempty"`
	CooldownMs      int              `json:"cooldown_ms,omitempty"`
	ProjectileSpeed float64          `json:"projectile_speed,omitempty"`
	ProjectileColor HexColor         `json:"projectile_color,omitempty"`
	IsAoE           bool             `json:"is_aoe,omitempty"`
	BlastRadius     float64          `json:"blast_radius,omitempty"`
	Tint            HexColor         `json:"tint"`
	Effect          *StatusEffectDef `json:"effect,omitempty"`
	GoldPerTick     int              `json:"gold_per_tick,omitempty"`
	ManaPerTick     int              `json:"mana_per_tick,omitempty"`
	FireSound       string           `json:"fire_sound,omitempty"`
	Description     string           `json:"description"`
}

// Buildable reports whether the player may place this structure.
func (d StructureDefinition) Buildable() bool {
	return d.Kind != KindCore
}
