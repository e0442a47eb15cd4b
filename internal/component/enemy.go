// internal/component/enemy.go
package component

import (
	"go-siege-defense/internal/types"
	"go-siege-defense/pkg/isogrid"
)

// UnitState - поведенческое состояние врага.
type UnitState int

const (
	UnitMoving UnitState = iota
	UnitAttacking
)

func (s UnitState) String() string {
	if s == UnitAttacking {
		return "ATTACKING"
	}
	return "MOVING"
}

// Unit представляет вражескую сущность.
type Unit struct {
	Archetype string
	State     UnitState

	// Клетка, которую юнит занимает логически, и клетка, в которую он идёт.
	Cell     isogrid.Cell
	Next     isogrid.Cell
	Stepping bool
	Progress float64 // 0..1 между Cell и Next
	FromX    float64
	FromY    float64

	MoveDuration    float64 // секунды на клетку при множителе 1
	SpeedMultiplier float64

	Path      []isogrid.Cell
	PathIndex int // индекс Cell в Path

	SiegeTarget    types.EntityID // 0 - атакует ядро напрямую
	AtGoal         bool
	AttackDamage   int
	AttackInterval float64
	NextAttack     float64

	Removed bool
}
