// internal/system/income.go
package system

import (
	"go-siege-defense/internal/clock"
	"go-siege-defense/internal/config"
	"go-siege-defense/internal/economy"
	"go-siege-defense/internal/entity"
)

// IncomeSystem раз в секунду суммирует доход всех генераторов и начисляет
// его одним пакетным вызовом.
type IncomeSystem struct {
	ecs    *entity.ECS
	ledger *economy.Ledger
	ticker clock.Ticker
}

func NewIncomeSystem(ecs *entity.ECS, ledger *economy.Ledger) *IncomeSystem {
	s := &IncomeSystem{ecs: ecs, ledger: ledger}
	s.ticker.Start(ecs.GameTime, config.IncomeInterval)
	return s
}

func (s *IncomeSystem) Update() {
	for s.ticker.Due(s.ecs.GameTime) {
		gold, mana := s.Yield()
		s.ledger.EarnBatch(gold, mana)
	}
}

// Yield returns the per-tick income of every standing generator.
func (s *IncomeSystem) Yield() (gold, mana int) {
	for _, gen := range s.ecs.Generators {
		gold += gen.GoldPerTick
		mana += gen.ManaPerTick
	}
	return gold, mana
}
