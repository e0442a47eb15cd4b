// internal/component/status_effect.go
package component

import "go-siege-defense/internal/defs"

// ActiveEffect is one running status effect on a unit.
type ActiveEffect struct {
	Magnitude float64
	ExpiresAt float64
	NextTick  float64 // для BURN
}

// StatusEffects holds at most one effect per type.
type StatusEffects struct {
	Active map[defs.EffectType]*ActiveEffect
}

func NewStatusEffects() *StatusEffects {
	return &StatusEffects{Active: make(map[defs.EffectType]*ActiveEffect)}
}

// Has reports whether an effect of the given type is running.
func (s *StatusEffects) Has(t defs.EffectType) bool {
	_, ok := s.Active[t]
	return ok
}
