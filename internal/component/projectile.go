// internal/component/projectile.go
package component

import (
	"image/color"

	"go-siege-defense/internal/defs"
	"go-siege-defense/internal/types"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	TargetID    types.EntityID
	Damage      int
	Speed       float64
	Color       color.RGBA
	IsAoE       bool
	BlastRadius float64
	Effect      *defs.StatusEffectDef
	// Последняя известная точка прицеливания; AoE-снаряд летит к ней после смерти цели.
	AimX, AimY float64
}
