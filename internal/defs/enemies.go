// internal/defs/enemies.go
package defs

// ArchetypeDefinition - пресет характеристик врага (basic/fast/tank/boss).
type ArchetypeDefinition struct {
	ID               string   `json:"id"`
	Health           int      `json:"health"`
	MoveDurationMs   int      `json:"move_duration_ms"` // время прохода одной клетки
	AttackDamage     int      `json:"attack_damage"`
	AttackIntervalMs int      `json:"attack_interval_ms"`
	Scale            float64  `json:"scale"`
	Color            HexColor `json:"color"`
}

func (a ArchetypeDefinition) MoveDuration() float64   { return msToSeconds(a.MoveDurationMs) }
func (a ArchetypeDefinition) AttackInterval() float64 { return msToSeconds(a.AttackIntervalMs) }
