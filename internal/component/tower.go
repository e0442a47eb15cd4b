// component/tower.go
package component

import (
	"image/color"

	"go-siege-defense/internal/defs"
	"go-siege-defense/pkg/isogrid"
)

// Structure - любое строение на сетке (ядро, башня, стена, генератор).
type Structure struct {
	DefKey         string
	Kind           defs.StructureKind
	Cell           isogrid.Cell
	Indestructible bool
	Level          int // начинается с 1
	TotalInvested  int // стоимость постройки плюс все улучшения
	BaseCost       int
}

// Tower - боевые характеристики башни. Текущие значения растут с улучшениями.
type Tower struct {
	Damage           int
	Range            float64
	CooldownMs       int
	LastFired        float64
	HasFired         bool
	DamageMultiplier float64 // баф от способностей, 1.0 по умолчанию
	ProjectileSpeed  float64
	ProjectileColor  color.RGBA
	IsAoE            bool
	BlastRadius      float64
	Effect           *defs.StatusEffectDef
	FireSound        string
}

// EffectiveDamage is the damage the next shot will carry.
func (t *Tower) EffectiveDamage() int {
	return int(float64(t.Damage) * t.DamageMultiplier)
}

// Generator - пассивный доход строения за один тик дохода.
type Generator struct {
	GoldPerTick int
	ManaPerTick int
}
