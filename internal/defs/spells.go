// internal/defs/spells.go
package defs

// SpellKind - вид эффекта заклинания.
type SpellKind string

const (
	SpellHeal SpellKind = "HEAL" // восстанавливает жизни
	SpellBuff SpellKind = "BUFF" // множитель урона башен на время
	SpellNuke SpellKind = "NUKE" // урон всем юнитам
)

// SpellDefinition holds the static data of a player ability.
// Amount is lives for HEAL, the damage multiplier for BUFF and damage for NUKE.
type SpellDefinition struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Kind       SpellKind `json:"kind"`
	Cost       int       `json:"cost"` // мана
	CooldownMs int       `json:"cooldown_ms"`
	Amount     float64   `json:"amount"`
	DurationMs int       `json:"duration_ms,omitempty"`
	Hotkey     string    `json:"hotkey"`
}

func (s SpellDefinition) Cooldown() float64 { return msToSeconds(s.CooldownMs) }
func (s SpellDefinition) Duration() float64 { return msToSeconds(s.DurationMs) }
